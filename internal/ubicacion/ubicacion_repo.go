package ubicacion

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListEstados(ctx context.Context) ([]Estado, error)
	ListMunicipios(ctx context.Context, idEstado int) ([]Municipio, error)
	ListParroquias(ctx context.Context, idMunicipio int) ([]Parroquia, error)
	GetParroquiaByID(ctx context.Context, idParroquia int) (*Parroquia, error)
	GetMunicipioByID(ctx context.Context, idMunicipio int) (*Municipio, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListEstados(ctx context.Context) ([]Estado, error) {
	var estados []Estado
	err := r.db.WithContext(ctx).Order("nombre_estado").Find(&estados).Error
	return estados, err
}

func (r *repository) ListMunicipios(ctx context.Context, idEstado int) ([]Municipio, error) {
	var municipios []Municipio
	q := r.db.WithContext(ctx).Order("nombre_municipio")
	if idEstado > 0 {
		q = q.Where("id_estado = ?", idEstado)
	}
	err := q.Find(&municipios).Error
	return municipios, err
}

func (r *repository) ListParroquias(ctx context.Context, idMunicipio int) ([]Parroquia, error) {
	var parroquias []Parroquia
	q := r.db.WithContext(ctx).Order("nombre_parroquia")
	if idMunicipio > 0 {
		q = q.Where("id_municipio = ?", idMunicipio)
	}
	err := q.Find(&parroquias).Error
	return parroquias, err
}

func (r *repository) GetParroquiaByID(ctx context.Context, idParroquia int) (*Parroquia, error) {
	var parroquia Parroquia
	err := r.db.WithContext(ctx).First(&parroquia, "id_parroquia = ?", idParroquia).Error
	if err != nil {
		return nil, err
	}
	return &parroquia, nil
}

func (r *repository) GetMunicipioByID(ctx context.Context, idMunicipio int) (*Municipio, error) {
	var municipio Municipio
	err := r.db.WithContext(ctx).First(&municipio, "id_municipio = ?", idMunicipio).Error
	if err != nil {
		return nil, err
	}
	return &municipio, nil
}
