package integrante

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, integrante *Integrante) error
	Update(ctx context.Context, integrante *Integrante) error
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (*Integrante, error)
	ListByEstablecimiento(ctx context.Context, idEstablecimiento uuid.UUID) ([]Integrante, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, integrante *Integrante) error {
	return r.db.WithContext(ctx).Create(integrante).Error
}

func (r *repository) Update(ctx context.Context, integrante *Integrante) error {
	return r.db.WithContext(ctx).
		Model(&Integrante{}).
		Where("id_integrante = ?", integrante.IDIntegrante).
		Updates(map[string]interface{}{
			"nombre_persona": integrante.NombrePersona,
			"cargo":          integrante.Cargo,
			"email":          integrante.Email,
			"telefono":       integrante.Telefono,
		}).Error
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&Integrante{}, "id_integrante = ?", id).Error
}

func (r *repository) GetByID(ctx context.Context, id int64) (*Integrante, error) {
	var integrante Integrante
	err := r.db.WithContext(ctx).First(&integrante, "id_integrante = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &integrante, nil
}

func (r *repository) ListByEstablecimiento(ctx context.Context, idEstablecimiento uuid.UUID) ([]Integrante, error) {
	var integrantes []Integrante
	err := r.db.WithContext(ctx).
		Where("id_establecimiento = ?", idEstablecimiento).
		Order("nombre_persona").
		Find(&integrantes).Error
	return integrantes, err
}
