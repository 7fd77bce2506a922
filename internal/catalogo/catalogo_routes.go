package catalogo

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	catalogos := r.Group("/catalogos")
	{
		// Debounced type-ahead searches from the form.
		catalogos.GET("/productos", middleware.RateLimitByUser(10, 30), handler.SearchProductos)
		catalogos.GET("/procesos", middleware.RateLimitByUser(10, 30), handler.SearchProcesos)
		catalogos.GET("/servicios", middleware.RateLimitByUser(5, 20), handler.ListServicios)
	}
}
