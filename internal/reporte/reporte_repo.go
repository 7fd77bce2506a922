package reporte

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	ListFilasExportacion(ctx context.Context) ([]FilaExportacion, error)
	CountEstablecimientos(ctx context.Context) (int64, error)
	CountCompanias(ctx context.Context) (int64, error)
	CountGremios(ctx context.Context) (int64, error)
	CountPorEstado(ctx context.Context) ([]ConteoAgrupado, error)
	CountPorMunicipio(ctx context.Context) ([]ConteoAgrupado, error)
	CountPorSeccionCaev(ctx context.Context) ([]ConteoAgrupado, error)
	CountPorGremio(ctx context.Context) ([]ConteoAgrupado, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) ListFilasExportacion(ctx context.Context) ([]FilaExportacion, error) {
	var filas []FilaExportacion
	err := r.db.WithContext(ctx).Raw(`
SELECT
	e.id_establecimiento::text AS id_establecimiento,
	e.nombre_establecimiento,
	c.rif,
	c.razon_social,
	c.ano_fundacion,
	es.nombre_estado      AS estado,
	m.nombre_municipio    AS municipio,
	p.nombre_parroquia    AS parroquia,
	d.direccion_detallada,
	cl.nombre_clase       AS clase_caev,
	e.email_principal,
	e.telefono_principal_1,
	e.personal_obrero,
	e.personal_empleado,
	e.personal_directivo,
	d.latitud,
	d.longitud
FROM establecimientos e
JOIN companias c          ON c.rif = e.rif_compania
LEFT JOIN direcciones d   ON d.id_direccion = e.id_direccion
LEFT JOIN parroquias p    ON p.id_parroquia = d.id_parroquia
LEFT JOIN municipios m    ON m.id_municipio = p.id_municipio
LEFT JOIN estados es      ON es.id_estado = m.id_estado
LEFT JOIN clases_caev cl  ON cl.id_clase = e.id_clase_caev
ORDER BY e.nombre_establecimiento
`).Scan(&filas).Error
	return filas, err
}

func (r *repository) CountEstablecimientos(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("establecimientos").Count(&total).Error
	return total, err
}

func (r *repository) CountCompanias(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("companias").Count(&total).Error
	return total, err
}

func (r *repository) CountGremios(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Table("instituciones").Count(&total).Error
	return total, err
}

func (r *repository) CountPorEstado(ctx context.Context) ([]ConteoAgrupado, error) {
	var conteos []ConteoAgrupado
	err := r.db.WithContext(ctx).Raw(`
SELECT es.nombre_estado AS nombre, COUNT(*) AS total
FROM establecimientos e
JOIN direcciones d ON d.id_direccion = e.id_direccion
JOIN parroquias p  ON p.id_parroquia = d.id_parroquia
JOIN municipios m  ON m.id_municipio = p.id_municipio
JOIN estados es    ON es.id_estado = m.id_estado
GROUP BY es.nombre_estado
ORDER BY total DESC
`).Scan(&conteos).Error
	return conteos, err
}

func (r *repository) CountPorMunicipio(ctx context.Context) ([]ConteoAgrupado, error) {
	var conteos []ConteoAgrupado
	err := r.db.WithContext(ctx).Raw(`
SELECT m.nombre_municipio AS nombre, COUNT(*) AS total
FROM establecimientos e
JOIN direcciones d ON d.id_direccion = e.id_direccion
JOIN parroquias p  ON p.id_parroquia = d.id_parroquia
JOIN municipios m  ON m.id_municipio = p.id_municipio
GROUP BY m.nombre_municipio
ORDER BY total DESC
`).Scan(&conteos).Error
	return conteos, err
}

func (r *repository) CountPorSeccionCaev(ctx context.Context) ([]ConteoAgrupado, error) {
	var conteos []ConteoAgrupado
	err := r.db.WithContext(ctx).Raw(`
SELECT s.nombre_seccion AS nombre, COUNT(*) AS total
FROM establecimientos e
JOIN clases_caev cl     ON cl.id_clase = e.id_clase_caev
JOIN divisiones_caev dv ON dv.id_division = cl.id_division
JOIN secciones_caev s   ON s.id_seccion = dv.id_seccion
GROUP BY s.nombre_seccion
ORDER BY total DESC
`).Scan(&conteos).Error
	return conteos, err
}

func (r *repository) CountPorGremio(ctx context.Context) ([]ConteoAgrupado, error) {
	var conteos []ConteoAgrupado
	err := r.db.WithContext(ctx).Raw(`
SELECT i.nombre AS nombre, COUNT(*) AS total
FROM afiliaciones a
JOIN instituciones i ON i.rif = a.rif_institucion
GROUP BY i.nombre
ORDER BY total DESC
`).Scan(&conteos).Error
	return conteos, err
}
