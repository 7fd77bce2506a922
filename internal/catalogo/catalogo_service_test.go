package catalogo

import (
	"context"
	"errors"
	"testing"

	"mi-ciec/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	bulkCreateProductosFn func(ctx context.Context, productos []Producto) ([]Producto, error)
	bulkCreateProcesosFn  func(ctx context.Context, procesos []ProcesoProductivo) ([]ProcesoProductivo, error)
}

func (f *fakeRepo) BulkCreateProductos(ctx context.Context, productos []Producto) ([]Producto, error) {
	if f.bulkCreateProductosFn != nil {
		return f.bulkCreateProductosFn(ctx, productos)
	}
	for i := range productos {
		productos[i].IDProducto = int64(100 + i)
	}
	return productos, nil
}
func (f *fakeRepo) BulkCreateProcesos(ctx context.Context, procesos []ProcesoProductivo) ([]ProcesoProductivo, error) {
	if f.bulkCreateProcesosFn != nil {
		return f.bulkCreateProcesosFn(ctx, procesos)
	}
	for i := range procesos {
		procesos[i].IDProceso = int64(200 + i)
	}
	return procesos, nil
}
func (f *fakeRepo) SearchProductos(ctx context.Context, term string, limit int) ([]Producto, error) {
	return nil, nil
}
func (f *fakeRepo) SearchProcesos(ctx context.Context, term string, limit int) ([]ProcesoProductivo, error) {
	return nil, nil
}
func (f *fakeRepo) ListServicios(ctx context.Context) ([]Servicio, error) {
	return nil, nil
}

func idPtr(v int64) *int64 { return &v }

func TestResolveProductos_MixedResolvedAndPending(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, zap.NewNop())

	ids, err := svc.ResolveProductos(context.Background(), []ProductoRef{
		{IDProducto: idPtr(5)},
		{NombreProducto: "Tornillos"},
		{IDProducto: idPtr(6)},
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{5, 100, 6}, ids)
}

func TestResolveProductos_DuplicatePendingNameCreatedOnce(t *testing.T) {
	var inserted []Producto
	repo := &fakeRepo{
		bulkCreateProductosFn: func(ctx context.Context, productos []Producto) ([]Producto, error) {
			inserted = productos
			for i := range productos {
				productos[i].IDProducto = int64(100 + i)
			}
			return productos, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	ids, err := svc.ResolveProductos(context.Background(), []ProductoRef{
		{NombreProducto: "Tornillos"},
		{NombreProducto: "Tornillos"},
	})

	assert.NoError(t, err)
	assert.Len(t, inserted, 1)
	// Both references resolve to the single created row.
	assert.Equal(t, []int64{100, 100}, ids)
}

func TestResolveProductos_BlankEntriesDropped(t *testing.T) {
	svc := NewService(&fakeRepo{}, zap.NewNop())

	ids, err := svc.ResolveProductos(context.Background(), []ProductoRef{
		{},
		{IDProducto: idPtr(9)},
	})

	assert.NoError(t, err)
	assert.Equal(t, []int64{9}, ids)
}

func TestResolveProductos_BulkCreateFailureWrapped(t *testing.T) {
	repo := &fakeRepo{
		bulkCreateProductosFn: func(ctx context.Context, productos []Producto) ([]Producto, error) {
			return nil, errors.New("disk full")
		},
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.ResolveProductos(context.Background(), []ProductoRef{
		{NombreProducto: "Tornillos"},
	})

	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeDependencyFailed, appErr.Code)
	assert.Contains(t, appErr.Message, "Error creando productos")
	assert.Contains(t, appErr.Message, "disk full")
}

func TestResolveProcesos_PendingKeepsPorcentaje(t *testing.T) {
	svc := NewService(&fakeRepo{}, zap.NewNop())

	out, err := svc.ResolveProcesos(context.Background(), []ProcesoRef{
		{NombreProceso: "Fundicion", PorcentajeCapacidadUso: NewPorcentaje(35)},
		{IDProceso: idPtr(7), PorcentajeCapacidadUso: NewPorcentajeString("45")},
	})

	assert.NoError(t, err)
	assert.Len(t, out, 2)
	assert.Equal(t, int64(200), *out[0].IDProceso)
	assert.Equal(t, 35.0, *out[0].PorcentajeCapacidadUso.Value())
	assert.Equal(t, int64(7), *out[1].IDProceso)
	assert.Equal(t, 45.0, *out[1].PorcentajeCapacidadUso.Value())
}

func TestResolveProcesos_UnresolvableDropped(t *testing.T) {
	repo := &fakeRepo{
		bulkCreateProcesosFn: func(ctx context.Context, procesos []ProcesoProductivo) ([]ProcesoProductivo, error) {
			return nil, nil
		},
	}
	svc := NewService(repo, zap.NewNop())

	out, err := svc.ResolveProcesos(context.Background(), []ProcesoRef{
		{NombreProceso: "Fundicion"},
		{IDProceso: idPtr(7)},
	})

	assert.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(7), *out[0].IDProceso)
}
