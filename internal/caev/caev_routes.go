package caev

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	caev := r.Group("/caev")
	{
		caev.GET("/secciones", middleware.RateLimitByUser(5, 20), handler.ListSecciones)
		caev.GET("/divisiones", middleware.RateLimitByUser(5, 20), handler.ListDivisiones)
		caev.GET("/clases", middleware.RateLimitByUser(5, 20), handler.ListClases)
	}
}
