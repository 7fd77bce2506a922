package catalogo

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ProductoRef is one entry of a form's product selection. A nil IDProducto
// with a non-empty name marks a pending creation; a non-nil ID is resolved.
type ProductoRef struct {
	IDProducto     *int64 `json:"id_producto"`
	NombreProducto string `json:"nombre_producto"`
}

// ProcesoRef mirrors ProductoRef and additionally carries the junction-local
// capacity percentage.
type ProcesoRef struct {
	IDProceso              *int64     `json:"id_proceso"`
	NombreProceso          string     `json:"nombre_proceso"`
	PorcentajeCapacidadUso Porcentaje `json:"porcentaje_capacidad_uso"`
}

// Porcentaje accepts a JSON number, a numeric string or null. Form clients
// send whatever the input widget held, so "45" and 45 must compare equal.
type Porcentaje struct {
	raw json.RawMessage
}

func NewPorcentaje(v float64) Porcentaje {
	b, _ := json.Marshal(v)
	return Porcentaje{raw: b}
}

// PorcentajeFrom lifts a stored nullable number back into the form type.
func PorcentajeFrom(v *float64) Porcentaje {
	if v == nil {
		return Porcentaje{}
	}
	return NewPorcentaje(*v)
}

func NewPorcentajeString(s string) Porcentaje {
	b, _ := json.Marshal(s)
	return Porcentaje{raw: b}
}

func (p *Porcentaje) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		p.raw = nil
		return nil
	}
	p.raw = append(p.raw[:0], b...)
	return nil
}

func (p Porcentaje) MarshalJSON() ([]byte, error) {
	if p.raw == nil {
		return []byte("null"), nil
	}
	return p.raw, nil
}

// Value normalizes to a number or nil. Mirrors the form's `Number(x) || null`
// coercion: empty, unparsable and zero values all collapse to nil so a zero
// percentage is never persisted as a distinct state.
func (p Porcentaje) Value() *float64 {
	if p.raw == nil {
		return nil
	}

	s := string(p.raw)
	if len(s) >= 2 && s[0] == '"' {
		var unquoted string
		if err := json.Unmarshal(p.raw, &unquoted); err != nil {
			return nil
		}
		s = unquoted
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 {
		return nil
	}
	return &f
}
