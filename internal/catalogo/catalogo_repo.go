package catalogo

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	BulkCreateProductos(ctx context.Context, productos []Producto) ([]Producto, error)
	BulkCreateProcesos(ctx context.Context, procesos []ProcesoProductivo) ([]ProcesoProductivo, error)
	SearchProductos(ctx context.Context, term string, limit int) ([]Producto, error)
	SearchProcesos(ctx context.Context, term string, limit int) ([]ProcesoProductivo, error)
	ListServicios(ctx context.Context) ([]Servicio, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) BulkCreateProductos(ctx context.Context, productos []Producto) ([]Producto, error) {
	if len(productos) == 0 {
		return nil, nil
	}
	// gorm backfills the generated ids on the slice elements.
	err := r.db.WithContext(ctx).Create(&productos).Error
	return productos, err
}

func (r *repository) BulkCreateProcesos(ctx context.Context, procesos []ProcesoProductivo) ([]ProcesoProductivo, error) {
	if len(procesos) == 0 {
		return nil, nil
	}
	err := r.db.WithContext(ctx).Create(&procesos).Error
	return procesos, err
}

func (r *repository) SearchProductos(ctx context.Context, term string, limit int) ([]Producto, error) {
	var productos []Producto
	err := r.db.WithContext(ctx).
		Where("nombre_producto ILIKE ?", "%"+term+"%").
		Order("nombre_producto").
		Limit(limit).
		Find(&productos).Error
	return productos, err
}

func (r *repository) SearchProcesos(ctx context.Context, term string, limit int) ([]ProcesoProductivo, error) {
	var procesos []ProcesoProductivo
	err := r.db.WithContext(ctx).
		Where("nombre_proceso ILIKE ?", "%"+term+"%").
		Order("nombre_proceso").
		Limit(limit).
		Find(&procesos).Error
	return procesos, err
}

func (r *repository) ListServicios(ctx context.Context) ([]Servicio, error) {
	var servicios []Servicio
	err := r.db.WithContext(ctx).Order("nombre_servicio").Find(&servicios).Error
	return servicios, err
}
