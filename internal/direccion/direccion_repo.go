package direccion

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, direccion *Direccion) error
	Update(ctx context.Context, direccion *Direccion) error
	Delete(ctx context.Context, idDireccion int64) error
	GetByID(ctx context.Context, idDireccion int64) (*Direccion, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Create inserts the row and backfills the generated id_direccion.
func (r *repository) Create(ctx context.Context, direccion *Direccion) error {
	return r.db.WithContext(ctx).Create(direccion).Error
}

func (r *repository) Update(ctx context.Context, direccion *Direccion) error {
	return r.db.WithContext(ctx).
		Model(&Direccion{}).
		Where("id_direccion = ?", direccion.IDDireccion).
		Updates(map[string]interface{}{
			"id_parroquia":        direccion.IDParroquia,
			"direccion_detallada": direccion.DireccionDetallada,
			"latitud":             direccion.Latitud,
			"longitud":            direccion.Longitud,
		}).Error
}

// Delete removes an address row. Used as the compensating action when the
// establecimiento insert that should own it fails.
func (r *repository) Delete(ctx context.Context, idDireccion int64) error {
	return r.db.WithContext(ctx).Delete(&Direccion{}, "id_direccion = ?", idDireccion).Error
}

func (r *repository) GetByID(ctx context.Context, idDireccion int64) (*Direccion, error) {
	var direccion Direccion
	err := r.db.WithContext(ctx).First(&direccion, "id_direccion = ?", idDireccion).Error
	if err != nil {
		return nil, err
	}
	return &direccion, nil
}
