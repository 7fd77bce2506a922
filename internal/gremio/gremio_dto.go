package gremio

// GremioForm is the flat editing surface for an institucion: its own columns
// plus the owned direccion and the selected servicios. The save path decides
// insert-vs-update by looking the RIF up.
type GremioForm struct {
	RIF          string  `json:"rif" binding:"required"`
	Nombre       string  `json:"nombre" binding:"required"`
	Abreviacion  *string `json:"abreviacion"`
	AnoFundacion *string `json:"ano_fundacion"`

	IDDireccion        *int64   `json:"id_direccion"`
	IDParroquia        *int     `json:"id_parroquia"`
	DireccionDetallada *string  `json:"direccion_detallada"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`

	SelectedServicios []int64 `json:"selected_servicios"`

	// Staged logo file; LogoPreview nil on update means explicit removal.
	LogoData        []byte  `json:"logo_data"`
	LogoContentType string  `json:"logo_content_type"`
	LogoPreview     *string `json:"logo_preview"`
}

type ResumenResponse struct {
	RIF         string  `json:"rif"`
	Nombre      string  `json:"nombre"`
	Abreviacion *string `json:"abreviacion"`
	LogoGremio  *string `json:"logo_gremio"`
}
