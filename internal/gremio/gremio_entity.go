package gremio

import (
	"mi-ciec/internal/catalogo"
	"mi-ciec/internal/direccion"
)

// Institucion is a guild/chamber. Like a compania it is keyed by its fiscal
// id and owns at most one direccion.
type Institucion struct {
	RIF          string  `gorm:"type:varchar(20);primaryKey;column:rif" json:"rif"`
	Nombre       string  `gorm:"type:varchar(255);not null" json:"nombre"`
	Abreviacion  *string `gorm:"type:varchar(50)" json:"abreviacion"`
	LogoGremio   *string `gorm:"type:text" json:"logo_gremio"`
	IDDireccion  *int64  `json:"id_direccion"`
	AnoFundacion *string `gorm:"type:varchar(10)" json:"ano_fundacion"`

	Direccion *direccion.Direccion  `gorm:"foreignKey:IDDireccion;references:IDDireccion" json:"direccion,omitempty"`
	Servicios []InstitucionServicio `gorm:"foreignKey:RIFInstitucion" json:"servicios,omitempty"`
}

func (Institucion) TableName() string {
	return "instituciones"
}

type InstitucionServicio struct {
	RIFInstitucion string `gorm:"type:varchar(20);primaryKey;column:rif_institucion" json:"rif_institucion"`
	IDServicio     int64  `gorm:"primaryKey" json:"id_servicio"`

	Servicio *catalogo.Servicio `gorm:"foreignKey:IDServicio;references:IDServicio" json:"servicio,omitempty"`
}

func (InstitucionServicio) TableName() string {
	return "institucion_servicios"
}
