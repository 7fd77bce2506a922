package establecimiento

// ResumenResponse is the list-view row for the map and the directory table.
type ResumenResponse struct {
	IDEstablecimiento     string   `json:"id_establecimiento"`
	NombreEstablecimiento string   `json:"nombre_establecimiento"`
	RIFCompania           string   `json:"rif_compania"`
	RazonSocial           string   `json:"razon_social,omitempty"`
	Logo                  *string  `json:"logo,omitempty"`
	IDParroquia           *int     `json:"id_parroquia,omitempty"`
	Latitud               *float64 `json:"latitud,omitempty"`
	Longitud              *float64 `json:"longitud,omitempty"`
}

// OptionResponse is the lightweight id/name pair cached for pickers.
type OptionResponse struct {
	IDEstablecimiento     string `json:"id_establecimiento"`
	NombreEstablecimiento string `json:"nombre_establecimiento"`
}
