package compania

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

type Repository interface {
	GetByRIF(ctx context.Context, rif string) (*Compania, error)
	Create(ctx context.Context, compania *Compania) error
	Update(ctx context.Context, compania *Compania) error
	UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetByRIF(ctx context.Context, rif string) (*Compania, error) {
	var compania Compania
	err := r.db.WithContext(ctx).First(&compania, "rif = ?", rif).Error
	if err != nil {
		return nil, err
	}
	return &compania, nil
}

func (r *repository) Create(ctx context.Context, compania *Compania) error {
	return r.db.WithContext(ctx).Create(compania).Error
}

func (r *repository) Update(ctx context.Context, compania *Compania) error {
	return r.db.WithContext(ctx).Save(compania).Error
}

// UpdateFields patches only the given columns, keyed by RIF. The RIF itself
// is never part of the patch.
func (r *repository) UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error {
	delete(fields, "rif")
	return r.db.WithContext(ctx).
		Model(&Compania{}).
		Where("rif = ?", rif).
		Updates(fields).Error
}

// IsUniqueViolation reports whether err is a postgres duplicate-key error.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
