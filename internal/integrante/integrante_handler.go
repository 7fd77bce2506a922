package integrante

import (
	"net/http"
	"strconv"

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
	l := zap.L().Named("integrante.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("integrante.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	integrante, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusCreated, integrante, nil)
}

func (h *Handler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "id_integrante is invalid", nil)
		return
	}

	var req UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpErr := apperror.ToHTTP(apperror.MapValidationError(err))
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	integrante, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, integrante, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "id_integrante is invalid", nil)
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true}, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "id_integrante is invalid", nil)
		return
	}

	integrante, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, integrante, nil)
}

func (h *Handler) ListByEstablecimiento(c *gin.Context) {
	rows, err := h.service.ListByEstablecimiento(c.Request.Context(), c.Query("id_establecimiento"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, rows, nil)
}
