package integrante

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	integrantes := r.Group("/integrantes")
	{
		integrantes.GET("", handler.ListByEstablecimiento)
		integrantes.GET("/:id", handler.GetByID)
		integrantes.POST("", middleware.RateLimitByUser(2, 5), handler.Create)
		integrantes.PUT("/:id", middleware.RateLimitByUser(2, 5), handler.Update)
		integrantes.DELETE("/:id", middleware.RateLimitByUser(1, 3), handler.Delete)
	}
}
