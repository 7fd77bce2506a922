package establecimiento

import (
	"mi-ciec/internal/catalogo"
	"mi-ciec/internal/compania"
	"mi-ciec/internal/direccion"

	"github.com/google/uuid"
)

// Establecimiento is a single operating site of a compania. The id is
// generated by the store; the row is only written after its direccion exists.
type Establecimiento struct {
	IDEstablecimiento     uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id_establecimiento"`
	RIFCompania           string    `gorm:"type:varchar(20);not null;index;column:rif_compania" json:"rif_compania"`
	NombreEstablecimiento string    `gorm:"type:varchar(255);not null" json:"nombre_establecimiento"`
	IDDireccion           *int64    `json:"id_direccion"`
	IDClaseCaev           *string   `gorm:"type:varchar(10);column:id_clase_caev" json:"id_clase_caev"`
	EmailPrincipal        *string   `gorm:"type:varchar(255)" json:"email_principal"`
	TelefonoPrincipal1    *string   `gorm:"type:varchar(30);column:telefono_principal_1" json:"telefono_principal_1"`
	TelefonoPrincipal2    *string   `gorm:"type:varchar(30);column:telefono_principal_2" json:"telefono_principal_2"`
	FechaApertura         *string   `gorm:"type:varchar(10)" json:"fecha_apertura"`
	PersonalObrero        *int      `json:"personal_obrero"`
	PersonalEmpleado      *int      `json:"personal_empleado"`
	PersonalDirectivo     *int      `json:"personal_directivo"`

	Compania     *compania.Compania       `gorm:"foreignKey:RIFCompania;references:RIF" json:"compania,omitempty"`
	Direccion    *direccion.Direccion     `gorm:"foreignKey:IDDireccion;references:IDDireccion" json:"direccion,omitempty"`
	Productos    []EstablecimientoProducto `gorm:"foreignKey:IDEstablecimiento" json:"productos,omitempty"`
	Procesos     []EstablecimientoProceso  `gorm:"foreignKey:IDEstablecimiento" json:"procesos,omitempty"`
	Afiliaciones []Afiliacion              `gorm:"foreignKey:IDEstablecimiento" json:"afiliaciones,omitempty"`
}

func (Establecimiento) TableName() string {
	return "establecimientos"
}

type EstablecimientoProducto struct {
	IDEstablecimiento uuid.UUID `gorm:"type:uuid;primaryKey" json:"id_establecimiento"`
	IDProducto        int64     `gorm:"primaryKey" json:"id_producto"`

	Producto *catalogo.Producto `gorm:"foreignKey:IDProducto;references:IDProducto" json:"producto,omitempty"`
}

func (EstablecimientoProducto) TableName() string {
	return "establecimiento_productos"
}

// EstablecimientoProceso carries the junction-local capacity percentage;
// it belongs to the link, not to the catalog entity.
type EstablecimientoProceso struct {
	IDEstablecimiento      uuid.UUID `gorm:"type:uuid;primaryKey" json:"id_establecimiento"`
	IDProceso              int64     `gorm:"primaryKey" json:"id_proceso"`
	PorcentajeCapacidadUso *float64  `json:"porcentaje_capacidad_uso"`

	Proceso *catalogo.ProcesoProductivo `gorm:"foreignKey:IDProceso;references:IDProceso" json:"proceso,omitempty"`
}

func (EstablecimientoProceso) TableName() string {
	return "establecimiento_procesos"
}

// Afiliacion links an establecimiento to a gremio, keyed by the pair.
type Afiliacion struct {
	IDEstablecimiento uuid.UUID `gorm:"type:uuid;primaryKey" json:"id_establecimiento"`
	RIFInstitucion    string    `gorm:"type:varchar(20);primaryKey;column:rif_institucion" json:"rif_institucion"`
}

func (Afiliacion) TableName() string {
	return "afiliaciones"
}
