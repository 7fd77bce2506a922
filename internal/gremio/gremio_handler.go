package gremio

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
	l := zap.L().Named("gremio.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gremio.handler")
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

func (h *Handler) GetByRIF(c *gin.Context) {
	inst, err := h.service.GetByRIF(c.Request.Context(), c.Param("rif"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, inst, nil)
}

func (h *Handler) Save(c *gin.Context) {
	var form GremioForm
	if err := c.ShouldBindJSON(&form); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	if err := h.service.Save(c.Request.Context(), form); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"success": true}, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("rif")); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}
