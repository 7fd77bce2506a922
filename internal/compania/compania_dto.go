package compania

// VerificacionResponse is the output of the RIF verification step. EsNueva
// feeds the engine's insert-vs-update branching for the compania row; when a
// company is found its fields pre-populate the form.
type VerificacionResponse struct {
	RIF             string  `json:"rif"`
	EsNueva         bool    `json:"es_nueva"`
	RazonSocial     string  `json:"razon_social,omitempty"`
	Logo            *string `json:"logo,omitempty"`
	DireccionFiscal *string `json:"direccion_fiscal,omitempty"`
	AnoFundacion    *string `json:"ano_fundacion,omitempty"`
}
