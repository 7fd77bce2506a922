package establecimiento

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
	l := zap.L().Named("establecimiento.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("establecimiento.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) List(c *gin.Context) {
	rows, err := h.service.List(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}

func (h *Handler) GetOptions(c *gin.Context) {
	options, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, options, nil)
}

func (h *Handler) GetDetail(c *gin.Context) {
	est, err := h.service.GetDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, est, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
