package compania

// Compania is the legal entity. The RIF is the natural key and immutable
// once created; companies are never deleted from this service.
type Compania struct {
	RIF             string  `gorm:"type:varchar(20);primaryKey;column:rif" json:"rif"`
	RazonSocial     string  `gorm:"type:varchar(255);not null" json:"razon_social"`
	Logo            *string `gorm:"type:text" json:"logo"`
	DireccionFiscal *string `gorm:"type:text" json:"direccion_fiscal"`
	AnoFundacion    *string `gorm:"type:varchar(10)" json:"ano_fundacion"`
}

func (Compania) TableName() string {
	return "companias"
}
