package gremio

import (
	"context"

	"gorm.io/gorm"
)

//go:generate mockgen -source=gremio_repo.go -destination=mock/gremio_repo_mock.go -package=mock
type Repository interface {
	GetByRIF(ctx context.Context, rif string) (*Institucion, error)
	List(ctx context.Context) ([]Institucion, error)
	Create(ctx context.Context, inst *Institucion) error
	UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error
	Delete(ctx context.Context, rif string) error
	DeleteDependents(ctx context.Context, rif string) error
	BulkInsertServicios(ctx context.Context, rows []InstitucionServicio) error
	BulkDeleteServicios(ctx context.Context, rif string, idsServicio []int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByRIF(ctx context.Context, rif string) (*Institucion, error) {
	var inst Institucion
	err := r.db.WithContext(ctx).
		Preload("Direccion").
		Preload("Servicios.Servicio").
		First(&inst, "rif = ?", rif).Error
	if err != nil {
		return nil, err
	}
	return &inst, nil
}

func (r *repository) List(ctx context.Context) ([]Institucion, error) {
	var insts []Institucion
	err := r.db.WithContext(ctx).
		Preload("Direccion").
		Order("nombre").
		Find(&insts).Error
	return insts, err
}

func (r *repository) Create(ctx context.Context, inst *Institucion) error {
	return r.db.WithContext(ctx).
		Omit("Direccion", "Servicios").
		Create(inst).Error
}

// UpdateFields patches only the given columns; the RIF is never changed.
func (r *repository) UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error {
	delete(fields, "rif")
	return r.db.WithContext(ctx).
		Model(&Institucion{}).
		Where("rif = ?", rif).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, rif string) error {
	return r.db.WithContext(ctx).Delete(&Institucion{}, "rif = ?", rif).Error
}

// DeleteDependents clears the service junction and any establishment
// affiliations pointing at this gremio. Must run before Delete.
func (r *repository) DeleteDependents(ctx context.Context, rif string) error {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&InstitucionServicio{}, "rif_institucion = ?", rif).Error; err != nil {
		return err
	}
	return db.Exec("DELETE FROM afiliaciones WHERE rif_institucion = ?", rif).Error
}

func (r *repository) BulkInsertServicios(ctx context.Context, rows []InstitucionServicio) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Servicio").Create(&rows).Error
}

func (r *repository) BulkDeleteServicios(ctx context.Context, rif string, idsServicio []int64) error {
	if len(idsServicio) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("rif_institucion = ? AND id_servicio IN ?", rif, idsServicio).
		Delete(&InstitucionServicio{}).Error
}
