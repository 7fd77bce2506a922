package empresa

import (
	"mi-ciec/internal/catalogo"
)

// FormData is the flat aggregate edited across the multi-step form. It spans
// compania, establecimiento and direccion columns plus UI-derived selection
// chains; the reconciler splits it back into per-table writes on save.
type FormData struct {
	// compania
	RIF             string  `json:"rif"`
	RazonSocial     string  `json:"razon_social"`
	Logo            *string `json:"logo"`
	DireccionFiscal *string `json:"direccion_fiscal"`
	AnoFundacion    *string `json:"ano_fundacion"`

	// establecimiento
	IDEstablecimiento     string  `json:"id_establecimiento"`
	NombreEstablecimiento string  `json:"nombre_establecimiento"`
	EmailPrincipal        *string `json:"email_principal"`
	TelefonoPrincipal1    *string `json:"telefono_principal_1"`
	TelefonoPrincipal2    *string `json:"telefono_principal_2"`
	FechaApertura         *string `json:"fecha_apertura"`
	PersonalObrero        *int    `json:"personal_obrero"`
	PersonalEmpleado      *int    `json:"personal_empleado"`
	PersonalDirectivo     *int    `json:"personal_directivo"`

	// direccion
	IDDireccion        *int64   `json:"id_direccion"`
	IDEstado           *int     `json:"id_estado"`
	IDMunicipio        *int     `json:"id_municipio"`
	IDParroquia        *int     `json:"id_parroquia"`
	DireccionDetallada *string  `json:"direccion_detallada"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`

	// CAEV selection chain; seccion and division are UI-only parents of the
	// persisted clase.
	IDSeccion   *string `json:"id_seccion"`
	IDDivision  *string `json:"id_division"`
	IDClaseCaev *string `json:"id_clase_caev"`

	// Tri-state: nil until the RIF verification step has run.
	IsNewCompany *bool `json:"is_new_company"`

	SelectedProducts     []catalogo.ProductoRef `json:"selected_products"`
	SelectedProcesses    []catalogo.ProcesoRef  `json:"selected_processes"`
	SelectedInstitutions []string               `json:"selected_institutions"`
}

// Draft is the form plus the staged (not yet uploaded) logo file.
type Draft struct {
	Form            FormData `json:"form"`
	LogoData        []byte   `json:"-"`
	LogoContentType string   `json:"-"`
	LogoPreview     *string  `json:"logo_preview"`
}

// DraftSnapshot is what the presentation layer reads back: the draft plus
// the store's lifecycle fields.
type DraftSnapshot struct {
	Draft        Draft      `json:"draft"`
	State        DraftState `json:"state"`
	DrawerOpen   bool       `json:"drawer_open"`
	DiscardCount uint64     `json:"discard_count"`
}

// EditRequest is the update-path input: the snapshot taken at load time and
// the edited form, plus the logo change. LogoData set means replace;
// LogoPreview nil while the snapshot had a logo means explicit removal.
type EditRequest struct {
	Original        FormData `json:"original"`
	Current         FormData `json:"current"`
	LogoData        []byte   `json:"logo_data"`
	LogoContentType string   `json:"logo_content_type"`
	LogoPreview     *string  `json:"logo_preview"`
}

// SaveResult is the engine's outcome envelope.
type SaveResult struct {
	Success   bool   `json:"success"`
	Refreshed bool   `json:"refreshed,omitempty"`
	Error     string `json:"error,omitempty"`
}
