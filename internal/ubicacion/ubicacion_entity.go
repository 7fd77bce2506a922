package ubicacion

// Fixed administrative hierarchy (estado -> municipio -> parroquia).
// Seeded reference data, read-only for this service.

type Estado struct {
	IDEstado     int    `gorm:"primaryKey;autoIncrement" json:"id_estado"`
	NombreEstado string `gorm:"type:varchar(100);not null" json:"nombre_estado"`
}

func (Estado) TableName() string {
	return "estados"
}

type Municipio struct {
	IDMunicipio     int    `gorm:"primaryKey;autoIncrement" json:"id_municipio"`
	IDEstado        int    `gorm:"not null;index" json:"id_estado"`
	NombreMunicipio string `gorm:"type:varchar(100);not null" json:"nombre_municipio"`
}

func (Municipio) TableName() string {
	return "municipios"
}

type Parroquia struct {
	IDParroquia     int    `gorm:"primaryKey;autoIncrement" json:"id_parroquia"`
	IDMunicipio     int    `gorm:"not null;index" json:"id_municipio"`
	NombreParroquia string `gorm:"type:varchar(100);not null" json:"nombre_parroquia"`
}

func (Parroquia) TableName() string {
	return "parroquias"
}
