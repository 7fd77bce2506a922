package compania

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	companias := r.Group("/companias")
	{
		// Verification is triggered per keystroke-confirm, keep it tight.
		companias.GET("/verificar/:rif", middleware.RateLimitByUser(1, 5), handler.VerifyRIF)
		companias.GET("/:rif", middleware.RateLimitByUser(2, 10), handler.GetByRIF)
	}
}
