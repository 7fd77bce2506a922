package reporte

import (
	"net/http"

	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("reporte.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("reporte.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Exportacion(c *gin.Context) {
	filas, err := h.service.Exportacion(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, filas, nil)
}

func (h *Handler) Dashboard(c *gin.Context) {
	dash, err := h.service.Dashboard(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, dash, nil)
}
