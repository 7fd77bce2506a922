package establecimiento

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=establecimiento_repo.go -destination=mock/establecimiento_repo_mock.go -package=mock
type Repository interface {
	Create(ctx context.Context, est *Establecimiento) error
	UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteDependents(ctx context.Context, id uuid.UUID) error
	GetDetail(ctx context.Context, id uuid.UUID) (*Establecimiento, error)
	List(ctx context.Context) ([]Establecimiento, error)

	BulkInsertProductos(ctx context.Context, rows []EstablecimientoProducto) error
	BulkDeleteProductos(ctx context.Context, id uuid.UUID, idsProducto []int64) error
	BulkInsertProcesos(ctx context.Context, rows []EstablecimientoProceso) error
	BulkDeleteProcesos(ctx context.Context, id uuid.UUID, idsProceso []int64) error
	UpdateProcesoPorcentaje(ctx context.Context, id uuid.UUID, idProceso int64, porcentaje *float64) error
	BulkInsertAfiliaciones(ctx context.Context, rows []Afiliacion) error
	BulkDeleteAfiliaciones(ctx context.Context, id uuid.UUID, rifs []string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the row; the store generates id_establecimiento and gorm
// backfills it through RETURNING. The caller must verify the id came back.
func (r *repository) Create(ctx context.Context, est *Establecimiento) error {
	return r.db.WithContext(ctx).
		Omit("Compania", "Direccion", "Productos", "Procesos", "Afiliaciones").
		Create(est).Error
}

func (r *repository) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return r.db.WithContext(ctx).
		Model(&Establecimiento{}).
		Where("id_establecimiento = ?", id).
		Updates(fields).Error
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Delete(&Establecimiento{}, "id_establecimiento = ?", id).Error
}

// DeleteDependents clears every row referencing the establecimiento. Must
// run before Delete; the store enforces the foreign keys.
func (r *repository) DeleteDependents(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	if err := db.Delete(&Afiliacion{}, "id_establecimiento = ?", id).Error; err != nil {
		return err
	}
	if err := db.Exec("DELETE FROM integrantes WHERE id_establecimiento = ?", id).Error; err != nil {
		return err
	}
	if err := db.Delete(&EstablecimientoProducto{}, "id_establecimiento = ?", id).Error; err != nil {
		return err
	}
	return db.Delete(&EstablecimientoProceso{}, "id_establecimiento = ?", id).Error
}

func (r *repository) GetDetail(ctx context.Context, id uuid.UUID) (*Establecimiento, error) {
	var est Establecimiento
	err := r.db.WithContext(ctx).
		Preload("Compania").
		Preload("Direccion").
		Preload("Productos.Producto").
		Preload("Procesos.Proceso").
		Preload("Afiliaciones").
		First(&est, "id_establecimiento = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &est, nil
}

func (r *repository) List(ctx context.Context) ([]Establecimiento, error) {
	var ests []Establecimiento
	err := r.db.WithContext(ctx).
		Preload("Compania").
		Preload("Direccion").
		Order("nombre_establecimiento").
		Find(&ests).Error
	return ests, err
}

func (r *repository) BulkInsertProductos(ctx context.Context, rows []EstablecimientoProducto) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Producto").Create(&rows).Error
}

func (r *repository) BulkDeleteProductos(ctx context.Context, id uuid.UUID, idsProducto []int64) error {
	if len(idsProducto) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id_establecimiento = ? AND id_producto IN ?", id, idsProducto).
		Delete(&EstablecimientoProducto{}).Error
}

func (r *repository) BulkInsertProcesos(ctx context.Context, rows []EstablecimientoProceso) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit("Proceso").Create(&rows).Error
}

func (r *repository) BulkDeleteProcesos(ctx context.Context, id uuid.UUID, idsProceso []int64) error {
	if len(idsProceso) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id_establecimiento = ? AND id_proceso IN ?", id, idsProceso).
		Delete(&EstablecimientoProceso{}).Error
}

// UpdateProcesoPorcentaje patches one junction row keyed by the composite.
func (r *repository) UpdateProcesoPorcentaje(ctx context.Context, id uuid.UUID, idProceso int64, porcentaje *float64) error {
	return r.db.WithContext(ctx).
		Model(&EstablecimientoProceso{}).
		Where("id_establecimiento = ? AND id_proceso = ?", id, idProceso).
		Update("porcentaje_capacidad_uso", porcentaje).Error
}

func (r *repository) BulkInsertAfiliaciones(ctx context.Context, rows []Afiliacion) error {
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) BulkDeleteAfiliaciones(ctx context.Context, id uuid.UUID, rifs []string) error {
	if len(rifs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("id_establecimiento = ? AND rif_institucion IN ?", id, rifs).
		Delete(&Afiliacion{}).Error
}
