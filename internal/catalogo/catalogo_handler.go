package catalogo

import (
	"net/http"

	"mi-ciec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("catalogo.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("catalogo.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) SearchProductos(c *gin.Context) {
	productos, err := h.service.SearchProductos(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("search productos failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search productos", nil)
		return
	}
	response.Success(c, http.StatusOK, productos, nil)
}

func (h *Handler) SearchProcesos(c *gin.Context) {
	procesos, err := h.service.SearchProcesos(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.logger.Error("search procesos failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to search procesos", nil)
		return
	}
	response.Success(c, http.StatusOK, procesos, nil)
}

func (h *Handler) ListServicios(c *gin.Context) {
	servicios, err := h.service.ListServicios(c.Request.Context())
	if err != nil {
		h.logger.Error("list servicios failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list servicios", nil)
		return
	}
	response.Success(c, http.StatusOK, servicios, nil)
}
