package caev

// CAEV economic-activity taxonomy (seccion -> division -> clase).
// Seeded reference data, read-only for this service.

type Seccion struct {
	IDSeccion          string  `gorm:"type:varchar(10);primaryKey" json:"id_seccion"`
	NombreSeccion      string  `gorm:"type:varchar(255);not null" json:"nombre_seccion"`
	DescripcionSeccion *string `gorm:"type:text" json:"descripcion_seccion"`
}

func (Seccion) TableName() string {
	return "secciones_caev"
}

type Division struct {
	IDDivision          string  `gorm:"type:varchar(10);primaryKey" json:"id_division"`
	IDSeccion           string  `gorm:"type:varchar(10);not null;index" json:"id_seccion"`
	NombreDivision      string  `gorm:"type:varchar(255);not null" json:"nombre_division"`
	DescripcionDivision *string `gorm:"type:text" json:"descripcion_division"`
}

func (Division) TableName() string {
	return "divisiones_caev"
}

type Clase struct {
	IDClase          string  `gorm:"type:varchar(10);primaryKey" json:"id_clase"`
	IDDivision       string  `gorm:"type:varchar(10);not null;index" json:"id_division"`
	NombreClase      string  `gorm:"type:varchar(255);not null" json:"nombre_clase"`
	DescripcionClase *string `gorm:"type:text" json:"descripcion_clase"`
}

func (Clase) TableName() string {
	return "clases_caev"
}
