package integrante

import "github.com/google/uuid"

// Integrante is a person attached to an establecimiento (contact, delegate).
type Integrante struct {
	IDIntegrante      int64     `gorm:"primaryKey;autoIncrement" json:"id_integrante"`
	IDEstablecimiento uuid.UUID `gorm:"type:uuid;not null;index" json:"id_establecimiento"`
	NombrePersona     string    `gorm:"type:varchar(255);not null" json:"nombre_persona"`
	Cargo             *string   `gorm:"type:varchar(100)" json:"cargo"`
	Email             *string   `gorm:"type:varchar(255)" json:"email"`
	Telefono          *string   `gorm:"type:varchar(30)" json:"telefono"`
}

func (Integrante) TableName() string {
	return "integrantes"
}
