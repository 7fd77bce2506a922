package establecimiento

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	ests := r.Group("/establecimientos")
	{
		ests.GET("", handler.List)
		ests.GET("/opciones", handler.GetOptions)
		ests.GET("/:id", handler.GetDetail)
		ests.DELETE("/:id", middleware.RateLimitByUser(1, 3), handler.Delete)
	}
}
