package reporte

// FilaExportacion is one flattened spreadsheet row: the establecimiento with
// its compania, address chain and classification joined in. File generation
// happens client-side; this service only assembles the rows.
type FilaExportacion struct {
	IDEstablecimiento     string   `json:"id_establecimiento"`
	NombreEstablecimiento string   `json:"nombre_establecimiento"`
	RIF                   string   `json:"rif"`
	RazonSocial           string   `json:"razon_social"`
	AnoFundacion          *string  `json:"ano_fundacion"`
	Estado                *string  `json:"estado"`
	Municipio             *string  `json:"municipio"`
	Parroquia             *string  `json:"parroquia"`
	DireccionDetallada    *string  `json:"direccion_detallada"`
	ClaseCaev             *string  `json:"clase_caev"`
	EmailPrincipal        *string  `json:"email_principal"`
	TelefonoPrincipal1    *string  `json:"telefono_principal_1"`
	PersonalObrero        *int     `json:"personal_obrero"`
	PersonalEmpleado      *int     `json:"personal_empleado"`
	PersonalDirectivo     *int     `json:"personal_directivo"`
	Latitud               *float64 `json:"latitud"`
	Longitud              *float64 `json:"longitud"`
}

// ConteoAgrupado is one dashboard bucket (a name and how many
// establecimientos fall into it).
type ConteoAgrupado struct {
	Nombre string `json:"nombre"`
	Total  int64  `json:"total"`
}

type Dashboard struct {
	TotalEstablecimientos int64            `json:"total_establecimientos"`
	TotalCompanias        int64            `json:"total_companias"`
	TotalGremios          int64            `json:"total_gremios"`
	PorEstado             []ConteoAgrupado `json:"por_estado"`
	PorMunicipio          []ConteoAgrupado `json:"por_municipio"`
	PorSeccionCaev        []ConteoAgrupado `json:"por_seccion_caev"`
	PorGremio             []ConteoAgrupado `json:"por_gremio"`
}
