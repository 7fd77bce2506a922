package empresa

import (
	"testing"

	"mi-ciec/internal/catalogo"

	"github.com/stretchr/testify/assert"
)

func int64Ptr(v int64) *int64 { return &v }

func TestDiffIDSet(t *testing.T) {
	toAdd, toRemove := diffIDSet([]int64{1, 2, 3}, []int64{2, 3, 4})
	assert.Equal(t, []int64{1}, toAdd)
	assert.Equal(t, []int64{4}, toRemove)
}

func TestDiffIDSet_EqualSetsEmitNothing(t *testing.T) {
	toAdd, toRemove := diffIDSet([]int64{7, 8}, []int64{8, 7})
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
}

func TestDiffRIFSet_RemovalOnly(t *testing.T) {
	toAdd, toRemove := diffRIFSet([]string{"G1"}, []string{"G1", "G2"})
	assert.Empty(t, toAdd)
	assert.Equal(t, []string{"G2"}, toRemove)
}

func TestDiffProcesos_AddRemoveUpdate(t *testing.T) {
	current := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(1), PorcentajeCapacidadUso: catalogo.NewPorcentaje(20)},
		{IDProceso: int64Ptr(7), PorcentajeCapacidadUso: catalogo.NewPorcentajeString("45")},
	}
	snapshot := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(7), PorcentajeCapacidadUso: catalogo.NewPorcentaje(30)},
		{IDProceso: int64Ptr(9), PorcentajeCapacidadUso: catalogo.NewPorcentaje(10)},
	}

	toAdd, toRemove, toUpdate := diffProcesos(current, snapshot)

	assert.Len(t, toAdd, 1)
	assert.Equal(t, int64(1), *toAdd[0].IDProceso)
	assert.Equal(t, []int64{9}, toRemove)
	assert.Len(t, toUpdate, 1)
	assert.Equal(t, int64(7), toUpdate[0].IDProceso)
	assert.Equal(t, 45.0, *toUpdate[0].Porcentaje)
}

func TestDiffProcesos_CoercedEqualityIsNotAnUpdate(t *testing.T) {
	// "50" (string) vs 50 (number) must not emit an update.
	current := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(7), PorcentajeCapacidadUso: catalogo.NewPorcentajeString("50")},
	}
	snapshot := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(7), PorcentajeCapacidadUso: catalogo.NewPorcentaje(50)},
	}

	toAdd, toRemove, toUpdate := diffProcesos(current, snapshot)
	assert.Empty(t, toAdd)
	assert.Empty(t, toRemove)
	assert.Empty(t, toUpdate)
}

func TestDiffProcesos_ZeroCoercesToNull(t *testing.T) {
	// 0 and null both normalize to nil, so no update either way.
	current := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(3), PorcentajeCapacidadUso: catalogo.NewPorcentaje(0)},
	}
	snapshot := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(3)},
	}

	_, _, toUpdate := diffProcesos(current, snapshot)
	assert.Empty(t, toUpdate)
}

func TestDiffProcesos_NullToValueIsAnUpdate(t *testing.T) {
	current := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(3), PorcentajeCapacidadUso: catalogo.NewPorcentaje(60)},
	}
	snapshot := []catalogo.ProcesoRef{
		{IDProceso: int64Ptr(3)},
	}

	_, _, toUpdate := diffProcesos(current, snapshot)
	assert.Len(t, toUpdate, 1)
	assert.Equal(t, 60.0, *toUpdate[0].Porcentaje)
}

func TestResolvedProductIDs_SkipsPending(t *testing.T) {
	ids := resolvedProductIDs([]catalogo.ProductoRef{
		{IDProducto: int64Ptr(5)},
		{NombreProducto: "Tornillos"},
		{IDProducto: int64Ptr(6)},
	})
	assert.Equal(t, []int64{5, 6}, ids)
}
