package direccion

import (
	"net/http"

	"mi-ciec/internal/shared/apperror"
)

// ErrPartialCoordinates rejects a one-sided latitud/longitud pair before any
// write; the pair is atomic in the store.
var ErrPartialCoordinates = apperror.New(
	apperror.CodeInvalidInput,
	"Latitud y longitud deben indicarse juntas",
	http.StatusBadRequest,
)

// Direccion is a physical location owned by exactly one establecimiento or
// institucion. Latitud/longitud are atomic: both set or both null.
type Direccion struct {
	IDDireccion        int64    `gorm:"primaryKey;autoIncrement" json:"id_direccion"`
	IDParroquia        int      `gorm:"not null;index" json:"id_parroquia"`
	DireccionDetallada *string  `gorm:"type:text" json:"direccion_detallada"`
	Latitud            *float64 `json:"latitud"`
	Longitud           *float64 `json:"longitud"`
}

func (Direccion) TableName() string {
	return "direcciones"
}
