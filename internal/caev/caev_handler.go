package caev

import (
	"net/http"

	"mi-ciec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("caev.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("caev.handler")
	}
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) ListSecciones(c *gin.Context) {
	secciones, err := h.repo.ListSecciones(c.Request.Context())
	if err != nil {
		h.logger.Error("list secciones failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list secciones CAEV", nil)
		return
	}
	response.Success(c, http.StatusOK, secciones, nil)
}

func (h *Handler) ListDivisiones(c *gin.Context) {
	divisiones, err := h.repo.ListDivisiones(c.Request.Context(), c.Query("id_seccion"))
	if err != nil {
		h.logger.Error("list divisiones failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list divisiones CAEV", nil)
		return
	}
	response.Success(c, http.StatusOK, divisiones, nil)
}

func (h *Handler) ListClases(c *gin.Context) {
	clases, err := h.repo.ListClases(c.Request.Context(), c.Query("id_division"))
	if err != nil {
		h.logger.Error("list clases failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list clases CAEV", nil)
		return
	}
	response.Success(c, http.StatusOK, clases, nil)
}
