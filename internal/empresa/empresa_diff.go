package empresa

import (
	"mi-ciec/internal/catalogo"
)

// Set differences between the edited form and its load-time snapshot. These
// are pure: the reconciler turns their output into bulk repo calls.

func diffIDSet(current, snapshot []int64) (toAdd, toRemove []int64) {
	inCurrent := make(map[int64]bool, len(current))
	for _, id := range current {
		inCurrent[id] = true
	}
	inSnapshot := make(map[int64]bool, len(snapshot))
	for _, id := range snapshot {
		inSnapshot[id] = true
	}

	for _, id := range current {
		if !inSnapshot[id] {
			toAdd = append(toAdd, id)
		}
	}
	for _, id := range snapshot {
		if !inCurrent[id] {
			toRemove = append(toRemove, id)
		}
	}
	return toAdd, toRemove
}

func diffRIFSet(current, snapshot []string) (toAdd, toRemove []string) {
	inCurrent := make(map[string]bool, len(current))
	for _, rif := range current {
		inCurrent[rif] = true
	}
	inSnapshot := make(map[string]bool, len(snapshot))
	for _, rif := range snapshot {
		inSnapshot[rif] = true
	}

	for _, rif := range current {
		if !inSnapshot[rif] {
			toAdd = append(toAdd, rif)
		}
	}
	for _, rif := range snapshot {
		if !inCurrent[rif] {
			toRemove = append(toRemove, rif)
		}
	}
	return toAdd, toRemove
}

type porcentajeUpdate struct {
	IDProceso  int64
	Porcentaje *float64
}

// diffProcesos computes additions, removals and porcentaje updates between
// two resolved process selections. Percentages compare through the
// normalized value, so "45" and 45 never produce a spurious update.
func diffProcesos(current, snapshot []catalogo.ProcesoRef) (toAdd []catalogo.ProcesoRef, toRemove []int64, toUpdate []porcentajeUpdate) {
	currentByID := make(map[int64]catalogo.ProcesoRef, len(current))
	for _, ref := range current {
		if ref.IDProceso != nil {
			currentByID[*ref.IDProceso] = ref
		}
	}
	snapshotByID := make(map[int64]catalogo.ProcesoRef, len(snapshot))
	for _, ref := range snapshot {
		if ref.IDProceso != nil {
			snapshotByID[*ref.IDProceso] = ref
		}
	}

	for _, ref := range current {
		if ref.IDProceso == nil {
			continue
		}
		prev, existed := snapshotByID[*ref.IDProceso]
		if !existed {
			toAdd = append(toAdd, ref)
			continue
		}
		if !porcentajeEqual(ref.PorcentajeCapacidadUso.Value(), prev.PorcentajeCapacidadUso.Value()) {
			toUpdate = append(toUpdate, porcentajeUpdate{
				IDProceso:  *ref.IDProceso,
				Porcentaje: ref.PorcentajeCapacidadUso.Value(),
			})
		}
	}
	for _, ref := range snapshot {
		if ref.IDProceso == nil {
			continue
		}
		if _, stays := currentByID[*ref.IDProceso]; !stays {
			toRemove = append(toRemove, *ref.IDProceso)
		}
	}
	return toAdd, toRemove, toUpdate
}

func porcentajeEqual(a, b *float64) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func resolvedProductIDs(refs []catalogo.ProductoRef) []int64 {
	ids := make([]int64, 0, len(refs))
	for _, ref := range refs {
		if ref.IDProducto != nil {
			ids = append(ids, *ref.IDProducto)
		}
	}
	return ids
}
