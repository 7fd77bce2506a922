package caev

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListSecciones(ctx context.Context) ([]Seccion, error)
	ListDivisiones(ctx context.Context, idSeccion string) ([]Division, error)
	ListClases(ctx context.Context, idDivision string) ([]Clase, error)
	GetClaseByID(ctx context.Context, idClase string) (*Clase, error)
	GetDivisionByID(ctx context.Context, idDivision string) (*Division, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListSecciones(ctx context.Context) ([]Seccion, error) {
	var secciones []Seccion
	err := r.db.WithContext(ctx).Order("nombre_seccion").Find(&secciones).Error
	return secciones, err
}

func (r *repository) ListDivisiones(ctx context.Context, idSeccion string) ([]Division, error) {
	var divisiones []Division
	q := r.db.WithContext(ctx).Order("nombre_division")
	if idSeccion != "" {
		q = q.Where("id_seccion = ?", idSeccion)
	}
	err := q.Find(&divisiones).Error
	return divisiones, err
}

func (r *repository) ListClases(ctx context.Context, idDivision string) ([]Clase, error) {
	var clases []Clase
	q := r.db.WithContext(ctx).Order("nombre_clase")
	if idDivision != "" {
		q = q.Where("id_division = ?", idDivision)
	}
	err := q.Find(&clases).Error
	return clases, err
}

func (r *repository) GetClaseByID(ctx context.Context, idClase string) (*Clase, error) {
	var clase Clase
	err := r.db.WithContext(ctx).First(&clase, "id_clase = ?", idClase).Error
	if err != nil {
		return nil, err
	}
	return &clase, nil
}

func (r *repository) GetDivisionByID(ctx context.Context, idDivision string) (*Division, error) {
	var division Division
	err := r.db.WithContext(ctx).First(&division, "id_division = ?", idDivision).Error
	if err != nil {
		return nil, err
	}
	return &division, nil
}
