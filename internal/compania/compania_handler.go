package compania

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
	l := zap.L().Named("compania.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("compania.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) VerifyRIF(c *gin.Context) {
	result, err := h.service.VerifyRIF(c.Request.Context(), c.Param("rif"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, result, nil)
}

func (h *Handler) GetByRIF(c *gin.Context) {
	comp, err := h.service.GetByRIF(c.Request.Context(), c.Param("rif"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, comp, nil)
}
