package empresa

import (
	"mi-ciec/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	empresas := r.Group("/empresas")
	{
		borrador := empresas.Group("/borrador")
		{
			borrador.GET("", handler.GetDraft)
			borrador.PATCH("", handler.PatchDraft)
			borrador.POST("/logo", handler.StageLogo)
			borrador.DELETE("/logo", handler.ClearLogo)
			// One save at a time; the store refuses re-entrant submits but
			// the limiter keeps retries from hammering the gateway.
			borrador.POST("/guardar", middleware.RateLimitByUser(1, 2), handler.SaveDraft)
			borrador.POST("/descartar", handler.RequestDiscard)
			borrador.POST("/descartar/confirmar", handler.ConfirmDiscard)
			borrador.POST("/descartar/cancelar", handler.CancelDiscard)
		}

		empresas.POST("/panel/abrir", handler.OpenDrawer)
		empresas.POST("/panel/cerrar", handler.CloseDrawer)
		empresas.POST("/navegacion", handler.NotifyNavigation)

		empresas.GET("/:id/instantanea", handler.GetSnapshot)
		empresas.PUT("/:id", middleware.RateLimitByUser(1, 2), handler.SubmitEdit)
	}
}
