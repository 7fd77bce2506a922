package gremio

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	gremios := r.Group("/gremios")
	{
		gremios.GET("", handler.List)
		gremios.GET("/:rif", handler.GetByRIF)
		gremios.POST("", middleware.RateLimitByUser(1, 2), handler.Save)
		gremios.DELETE("/:rif", middleware.RateLimitByUser(1, 3), handler.Delete)
	}
}
