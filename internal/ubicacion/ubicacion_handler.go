package ubicacion

import (
	"net/http"
	"strconv"

	"mi-ciec/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	repo   Repository
	logger *zap.Logger
}

func NewHandler(repo Repository, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("ubicacion.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("ubicacion.handler")
	}
	return &Handler{repo: repo, logger: l}
}

func (h *Handler) ListEstados(c *gin.Context) {
	estados, err := h.repo.ListEstados(c.Request.Context())
	if err != nil {
		h.logger.Error("list estados failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list estados", nil)
		return
	}
	response.Success(c, http.StatusOK, estados, nil)
}

func (h *Handler) ListMunicipios(c *gin.Context) {
	idEstado, _ := strconv.Atoi(c.Query("id_estado"))
	municipios, err := h.repo.ListMunicipios(c.Request.Context(), idEstado)
	if err != nil {
		h.logger.Error("list municipios failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list municipios", nil)
		return
	}
	response.Success(c, http.StatusOK, municipios, nil)
}

func (h *Handler) ListParroquias(c *gin.Context) {
	idMunicipio, _ := strconv.Atoi(c.Query("id_municipio"))
	parroquias, err := h.repo.ListParroquias(c.Request.Context(), idMunicipio)
	if err != nil {
		h.logger.Error("list parroquias failed", zap.Error(err))
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list parroquias", nil)
		return
	}
	response.Success(c, http.StatusOK, parroquias, nil)
}
