package empresa

import (
	"io"
	"net/http"

	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// 2MB, matching the logo input constraint on the form side.
const maxLogoBytes = 2 << 20

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("empresa.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetDraft(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Draft(), nil)
}

// PatchDraft merges the posted fields over the current form: only keys
// present in the body change, everything else keeps its draft value.
func (h *Handler) PatchDraft(c *gin.Context) {
	form := h.service.Draft().Draft.Form
	if err := c.ShouldBindJSON(&form); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid draft payload", nil)
		return
	}

	snapshot, err := h.service.UpdateDraft(c.Request.Context(), form)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snapshot, nil)
}

func (h *Handler) StageLogo(c *gin.Context) {
	file, header, err := c.Request.FormFile("logo")
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "logo file is required", nil)
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxLogoBytes+1))
	if err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "could not read logo file", nil)
		return
	}
	if len(data) > maxLogoBytes {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "logo file is too large", nil)
		return
	}

	if err := h.service.StageLogo(data, header.Header.Get("Content-Type"), header.Filename); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, h.service.Draft(), nil)
}

func (h *Handler) ClearLogo(c *gin.Context) {
	if err := h.service.ClearLogo(); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, h.service.Draft(), nil)
}

func (h *Handler) SaveDraft(c *gin.Context) {
	if err := h.service.SaveDraft(c.Request.Context()); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, SaveResult{Success: true, Refreshed: true}, nil)
}

func (h *Handler) RequestDiscard(c *gin.Context) {
	snapshot, err := h.service.RequestDiscard()
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snapshot, nil)
}

func (h *Handler) ConfirmDiscard(c *gin.Context) {
	snapshot, err := h.service.ConfirmDiscard()
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snapshot, nil)
}

func (h *Handler) CancelDiscard(c *gin.Context) {
	snapshot, err := h.service.CancelDiscard()
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, snapshot, nil)
}

func (h *Handler) OpenDrawer(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.OpenDrawer(), nil)
}

func (h *Handler) CloseDrawer(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.CloseDrawer(), nil)
}

func (h *Handler) NotifyNavigation(c *gin.Context) {
	var body struct {
		Path string `json:"path" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "path is required", nil)
		return
	}
	response.Success(c, http.StatusOK, h.service.SetActivePath(body.Path), nil)
}

func (h *Handler) GetSnapshot(c *gin.Context) {
	form, err := h.service.LoadSnapshot(c.Request.Context(), c.Param("id"))
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, form, nil)
}

func (h *Handler) SubmitEdit(c *gin.Context) {
	var req EditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid edit payload", nil)
		return
	}
	req.Current.IDEstablecimiento = c.Param("id")

	if err := h.service.SubmitEdit(c.Request.Context(), req); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}
	response.Success(c, http.StatusOK, SaveResult{Success: true, Refreshed: true}, nil)
}
