package reporte

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	reportes := r.Group("/reportes")
	{
		// Export assembles every row in one pass, keep it throttled.
		reportes.GET("/exportacion", middleware.RateLimitByUser(1, 2), handler.Exportacion)
		reportes.GET("/dashboard", handler.Dashboard)
	}
}
