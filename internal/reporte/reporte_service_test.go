package reporte

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeRepo struct {
	countEstablecimientosFn func(ctx context.Context) (int64, error)
	countPorEstadoFn        func(ctx context.Context) ([]ConteoAgrupado, error)
}

func (f *fakeRepo) ListFilasExportacion(ctx context.Context) ([]FilaExportacion, error) {
	return []FilaExportacion{{IDEstablecimiento: "e1", NombreEstablecimiento: "Planta 1"}}, nil
}
func (f *fakeRepo) CountEstablecimientos(ctx context.Context) (int64, error) {
	if f.countEstablecimientosFn != nil {
		return f.countEstablecimientosFn(ctx)
	}
	return 12, nil
}
func (f *fakeRepo) CountCompanias(ctx context.Context) (int64, error) { return 8, nil }
func (f *fakeRepo) CountGremios(ctx context.Context) (int64, error)   { return 3, nil }
func (f *fakeRepo) CountPorEstado(ctx context.Context) ([]ConteoAgrupado, error) {
	if f.countPorEstadoFn != nil {
		return f.countPorEstadoFn(ctx)
	}
	return []ConteoAgrupado{{Nombre: "Carabobo", Total: 7}}, nil
}
func (f *fakeRepo) CountPorMunicipio(ctx context.Context) ([]ConteoAgrupado, error) {
	return []ConteoAgrupado{{Nombre: "Valencia", Total: 5}}, nil
}
func (f *fakeRepo) CountPorSeccionCaev(ctx context.Context) ([]ConteoAgrupado, error) {
	return []ConteoAgrupado{{Nombre: "Industrias manufactureras", Total: 9}}, nil
}
func (f *fakeRepo) CountPorGremio(ctx context.Context) ([]ConteoAgrupado, error) {
	return []ConteoAgrupado{{Nombre: "Camara de Industriales", Total: 4}}, nil
}

func TestDashboard_AssemblesAllAggregates(t *testing.T) {
	svc := NewService(&fakeRepo{}, zap.NewNop())

	dash, err := svc.Dashboard(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(12), dash.TotalEstablecimientos)
	assert.Equal(t, int64(8), dash.TotalCompanias)
	assert.Equal(t, int64(3), dash.TotalGremios)
	assert.Equal(t, "Carabobo", dash.PorEstado[0].Nombre)
	assert.Equal(t, "Valencia", dash.PorMunicipio[0].Nombre)
	assert.Equal(t, int64(9), dash.PorSeccionCaev[0].Total)
	assert.Equal(t, int64(4), dash.PorGremio[0].Total)
}

func TestDashboard_AnyQueryFailureFailsTheWhole(t *testing.T) {
	repo := &fakeRepo{
		countPorEstadoFn: func(ctx context.Context) ([]ConteoAgrupado, error) {
			return nil, errors.New("db down")
		},
	}
	svc := NewService(repo, zap.NewNop())

	_, err := svc.Dashboard(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestExportacion_PassesRowsThrough(t *testing.T) {
	svc := NewService(&fakeRepo{}, zap.NewNop())

	rows, err := svc.Exportacion(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Planta 1", rows[0].NombreEstablecimiento)
}
