package gremio

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mi-ciec/internal/direccion"
	"mi-ciec/internal/shared/apperror"
	"mi-ciec/internal/shared/blobstore"
	"mi-ciec/internal/shared/contextutil"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

const LogoBucket = "logos-gremios"

//go:generate mockgen -source=gremio_service.go -destination=mock/gremio_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]ResumenResponse, error)
	GetByRIF(ctx context.Context, rif string) (*Institucion, error)
	Save(ctx context.Context, form GremioForm) error
	Delete(ctx context.Context, rif string) error
}

type service struct {
	repo        Repository
	direcciones direccion.Repository
	blobs       blobstore.Uploader
	logger      *zap.Logger
}

func NewService(repo Repository, direcciones direccion.Repository, blobs blobstore.Uploader, logger ...*zap.Logger) Service {
	l := zap.L().Named("gremio.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("gremio.service")
	}
	return &service{
		repo:        repo,
		direcciones: direcciones,
		blobs:       blobs,
		logger:      l,
	}
}

func (s *service) List(ctx context.Context) ([]ResumenResponse, error) {
	insts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]ResumenResponse, 0, len(insts))
	for _, inst := range insts {
		result = append(result, ResumenResponse{
			RIF:         inst.RIF,
			Nombre:      inst.Nombre,
			Abreviacion: inst.Abreviacion,
			LogoGremio:  inst.LogoGremio,
		})
	}
	return result, nil
}

func (s *service) GetByRIF(ctx context.Context, rif string) (*Institucion, error) {
	inst, err := s.repo.GetByRIF(ctx, rif)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.ErrNotFound
		}
		return nil, err
	}
	return inst, nil
}

// Save reconciles the gremio form: insert-or-update decided by RIF lookup,
// direccion upserted, servicio junction synced by set difference.
func (s *service) Save(ctx context.Context, form GremioForm) error {
	if form.RIF == "" {
		return apperror.RequiredField("rif")
	}
	if form.Nombre == "" {
		return apperror.RequiredField("nombre")
	}
	if (form.Latitud == nil) != (form.Longitud == nil) {
		return direccion.ErrPartialCoordinates
	}

	existing, err := s.repo.GetByRIF(ctx, form.RIF)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing == nil {
		return s.create(ctx, form)
	}
	return s.update(ctx, form, existing)
}

func (s *service) create(ctx context.Context, form GremioForm) error {
	var logo *string
	if len(form.LogoData) > 0 {
		url, err := s.uploadLogo(ctx, form)
		if err != nil {
			return err
		}
		logo = &url
	}

	var idDireccion *int64
	if form.IDParroquia != nil {
		dir := &direccion.Direccion{
			IDParroquia:        *form.IDParroquia,
			DireccionDetallada: form.DireccionDetallada,
			Latitud:            form.Latitud,
			Longitud:           form.Longitud,
		}
		if err := s.direcciones.Create(ctx, dir); err != nil {
			return apperror.Dependency(err, "Error creando la direccion: "+err.Error())
		}
		idDireccion = &dir.IDDireccion
	}

	inst := &Institucion{
		RIF:          form.RIF,
		Nombre:       form.Nombre,
		Abreviacion:  form.Abreviacion,
		LogoGremio:   logo,
		IDDireccion:  idDireccion,
		AnoFundacion: form.AnoFundacion,
	}
	if err := s.repo.Create(ctx, inst); err != nil {
		// The institucion row owns the direccion; undo the orphan.
		if idDireccion != nil {
			if derr := s.direcciones.Delete(ctx, *idDireccion); derr != nil {
				s.logger.Error("compensating direccion delete failed",
					zap.String("request_id", contextutil.GetRequestID(ctx)),
					zap.Int64("id_direccion", *idDireccion),
					zap.Error(derr),
				)
			}
		}
		return apperror.Dependency(err, "Error creando el gremio: "+err.Error())
	}

	rows := make([]InstitucionServicio, 0, len(form.SelectedServicios))
	for _, id := range form.SelectedServicios {
		rows = append(rows, InstitucionServicio{RIFInstitucion: inst.RIF, IDServicio: id})
	}
	if err := s.repo.BulkInsertServicios(ctx, rows); err != nil {
		return apperror.Dependency(err, "Error vinculando servicios: "+err.Error())
	}
	return nil
}

func (s *service) update(ctx context.Context, form GremioForm, existing *Institucion) error {
	logo := existing.LogoGremio
	if len(form.LogoData) > 0 {
		url, err := s.uploadLogo(ctx, form)
		if err != nil {
			return err
		}
		logo = &url
	} else if form.LogoPreview == nil && existing.LogoGremio != nil {
		logo = nil
	}

	idDireccion := existing.IDDireccion
	if form.IDParroquia != nil {
		if idDireccion != nil {
			dir := &direccion.Direccion{
				IDDireccion:        *idDireccion,
				IDParroquia:        *form.IDParroquia,
				DireccionDetallada: form.DireccionDetallada,
				Latitud:            form.Latitud,
				Longitud:           form.Longitud,
			}
			if err := s.direcciones.Update(ctx, dir); err != nil {
				return apperror.Dependency(err, "Error actualizando direccion: "+err.Error())
			}
		} else {
			dir := &direccion.Direccion{
				IDParroquia:        *form.IDParroquia,
				DireccionDetallada: form.DireccionDetallada,
				Latitud:            form.Latitud,
				Longitud:           form.Longitud,
			}
			if err := s.direcciones.Create(ctx, dir); err != nil {
				return apperror.Dependency(err, "Error creando la direccion: "+err.Error())
			}
			idDireccion = &dir.IDDireccion
		}
	}

	fields := map[string]interface{}{
		"nombre":        form.Nombre,
		"abreviacion":   form.Abreviacion,
		"logo_gremio":   logo,
		"id_direccion":  idDireccion,
		"ano_fundacion": form.AnoFundacion,
	}
	if err := s.repo.UpdateFields(ctx, form.RIF, fields); err != nil {
		return apperror.Dependency(err, "Error actualizando gremio: "+err.Error())
	}

	current := make(map[int64]bool, len(form.SelectedServicios))
	for _, id := range form.SelectedServicios {
		current[id] = true
	}
	previous := make(map[int64]bool, len(existing.Servicios))
	for _, row := range existing.Servicios {
		previous[row.IDServicio] = true
	}

	var toAdd []InstitucionServicio
	for _, id := range form.SelectedServicios {
		if !previous[id] {
			toAdd = append(toAdd, InstitucionServicio{RIFInstitucion: form.RIF, IDServicio: id})
		}
	}
	var toRemove []int64
	for _, row := range existing.Servicios {
		if !current[row.IDServicio] {
			toRemove = append(toRemove, row.IDServicio)
		}
	}

	if err := s.repo.BulkInsertServicios(ctx, toAdd); err != nil {
		return apperror.Dependency(err, "Error vinculando servicios: "+err.Error())
	}
	if err := s.repo.BulkDeleteServicios(ctx, form.RIF, toRemove); err != nil {
		return apperror.Dependency(err, "Error desvinculando servicios: "+err.Error())
	}
	return nil
}

func (s *service) Delete(ctx context.Context, rif string) error {
	inst, err := s.repo.GetByRIF(ctx, rif)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperror.ErrNotFound
		}
		return err
	}

	if err := s.repo.DeleteDependents(ctx, rif); err != nil {
		return apperror.Dependency(err, "Error eliminando dependencias del gremio: "+err.Error())
	}
	if err := s.repo.Delete(ctx, rif); err != nil {
		return apperror.Dependency(err, "Error eliminando gremio: "+err.Error())
	}

	if inst.IDDireccion != nil {
		if derr := s.direcciones.Delete(ctx, *inst.IDDireccion); derr != nil {
			s.logger.Warn("orphan direccion cleanup failed",
				zap.String("request_id", contextutil.GetRequestID(ctx)),
				zap.Int64("id_direccion", *inst.IDDireccion),
				zap.Error(derr),
			)
		}
	}
	return nil
}

func (s *service) uploadLogo(ctx context.Context, form GremioForm) (string, error) {
	key := fmt.Sprintf("%s-%d", form.RIF, time.Now().UnixMilli())
	url, err := s.blobs.Upload(ctx, LogoBucket, key, form.LogoData, form.LogoContentType)
	if err != nil {
		return "", apperror.Dependency(err, "Error subiendo el logo: "+err.Error())
	}
	return url, nil
}
