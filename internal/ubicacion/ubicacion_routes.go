package ubicacion

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	ubicaciones := r.Group("/ubicaciones")
	{
		// Dropdown chains are fetched on every form open, allow bursts.
		ubicaciones.GET("/estados", middleware.RateLimitByUser(5, 20), handler.ListEstados)
		ubicaciones.GET("/municipios", middleware.RateLimitByUser(5, 20), handler.ListMunicipios)
		ubicaciones.GET("/parroquias", middleware.RateLimitByUser(5, 20), handler.ListParroquias)
	}
}
