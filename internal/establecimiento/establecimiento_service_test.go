package establecimiento_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"mi-ciec/internal/compania"
	"mi-ciec/internal/direccion"
	"mi-ciec/internal/establecimiento"
	"mi-ciec/internal/shared/apperror"

	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	listFn      func(ctx context.Context) ([]establecimiento.Establecimiento, error)
	getDetailFn func(ctx context.Context, id uuid.UUID) (*establecimiento.Establecimiento, error)

	calls []string
}

func (f *fakeRepo) Create(ctx context.Context, est *establecimiento.Establecimiento) error {
	return nil
}
func (f *fakeRepo) UpdateFields(ctx context.Context, id uuid.UUID, fields map[string]interface{}) error {
	return nil
}
func (f *fakeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "delete")
	return nil
}
func (f *fakeRepo) DeleteDependents(ctx context.Context, id uuid.UUID) error {
	f.calls = append(f.calls, "delete_dependents")
	return nil
}
func (f *fakeRepo) GetDetail(ctx context.Context, id uuid.UUID) (*establecimiento.Establecimiento, error) {
	if f.getDetailFn != nil {
		return f.getDetailFn(ctx, id)
	}
	return nil, errors.New("not implemented")
}
func (f *fakeRepo) List(ctx context.Context) ([]establecimiento.Establecimiento, error) {
	f.calls = append(f.calls, "list")
	if f.listFn != nil {
		return f.listFn(ctx)
	}
	return nil, nil
}
func (f *fakeRepo) BulkInsertProductos(ctx context.Context, rows []establecimiento.EstablecimientoProducto) error {
	return nil
}
func (f *fakeRepo) BulkDeleteProductos(ctx context.Context, id uuid.UUID, ids []int64) error {
	return nil
}
func (f *fakeRepo) BulkInsertProcesos(ctx context.Context, rows []establecimiento.EstablecimientoProceso) error {
	return nil
}
func (f *fakeRepo) BulkDeleteProcesos(ctx context.Context, id uuid.UUID, ids []int64) error {
	return nil
}
func (f *fakeRepo) UpdateProcesoPorcentaje(ctx context.Context, id uuid.UUID, idProceso int64, porcentaje *float64) error {
	return nil
}
func (f *fakeRepo) BulkInsertAfiliaciones(ctx context.Context, rows []establecimiento.Afiliacion) error {
	return nil
}
func (f *fakeRepo) BulkDeleteAfiliaciones(ctx context.Context, id uuid.UUID, rifs []string) error {
	return nil
}

func TestGetOptions_CacheHit(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeRepo{}
	svc := establecimiento.NewService(repo, rdb, zap.NewNop())

	cached := []establecimiento.OptionResponse{
		{IDEstablecimiento: "e1", NombreEstablecimiento: "Planta 1"},
	}
	payload, _ := json.Marshal(cached)
	redisMock.ExpectGet(establecimiento.OptionsCacheKey).SetVal(string(payload))

	options, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, cached, options)

	// The store is never touched on a hit.
	assert.Empty(t, repo.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetOptions_CacheMissFillsCache(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	estID := uuid.New()
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]establecimiento.Establecimiento, error) {
			return []establecimiento.Establecimiento{
				{IDEstablecimiento: estID, NombreEstablecimiento: "Planta 1"},
			}, nil
		},
	}
	svc := establecimiento.NewService(repo, rdb, zap.NewNop())

	expected := []establecimiento.OptionResponse{
		{IDEstablecimiento: estID.String(), NombreEstablecimiento: "Planta 1"},
	}
	payload, _ := json.Marshal(expected)

	redisMock.ExpectGet(establecimiento.OptionsCacheKey).RedisNil()
	redisMock.ExpectSet(establecimiento.OptionsCacheKey, payload, 10*time.Minute).SetVal("OK")

	options, err := svc.GetOptions(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, expected, options)
	assert.Equal(t, []string{"list"}, repo.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestGetOptions_RepoErrorPropagates(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]establecimiento.Establecimiento, error) {
			return nil, errors.New("db down")
		},
	}
	svc := establecimiento.NewService(repo, rdb, zap.NewNop())

	redisMock.ExpectGet(establecimiento.OptionsCacheKey).RedisNil()

	_, err := svc.GetOptions(context.Background())
	assert.EqualError(t, err, "db down")
}

func TestList_FlattensPreloads(t *testing.T) {
	estID := uuid.New()
	logo := "https://cdn.example/logos/acme"
	lat, lng := 10.48, -66.87
	repo := &fakeRepo{
		listFn: func(ctx context.Context) ([]establecimiento.Establecimiento, error) {
			return []establecimiento.Establecimiento{
				{
					IDEstablecimiento:     estID,
					NombreEstablecimiento: "Planta 1",
					RIFCompania:           "J123456789",
					Compania:              &compania.Compania{RazonSocial: "Acme", Logo: &logo},
					Direccion:             &direccion.Direccion{IDParroquia: 42, Latitud: &lat, Longitud: &lng},
				},
			}, nil
		},
	}
	svc := establecimiento.NewService(repo, nil, zap.NewNop())

	rows, err := svc.List(context.Background())
	assert.NoError(t, err)
	assert.Len(t, rows, 1)
	assert.Equal(t, "Acme", rows[0].RazonSocial)
	assert.Equal(t, &logo, rows[0].Logo)
	assert.Equal(t, 42, *rows[0].IDParroquia)
	assert.Equal(t, 10.48, *rows[0].Latitud)
}

func TestGetDetail_InvalidID(t *testing.T) {
	svc := establecimiento.NewService(&fakeRepo{}, nil, zap.NewNop())

	_, err := svc.GetDetail(context.Background(), "not-a-uuid")
	appErr, ok := err.(*apperror.AppError)
	assert.True(t, ok)
	assert.Equal(t, apperror.CodeInvalidInput, appErr.Code)
}

func TestGetDetail_NotFound(t *testing.T) {
	repo := &fakeRepo{
		getDetailFn: func(ctx context.Context, id uuid.UUID) (*establecimiento.Establecimiento, error) {
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := establecimiento.NewService(repo, nil, zap.NewNop())

	_, err := svc.GetDetail(context.Background(), uuid.NewString())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestDelete_DependentsFirstThenInvalidate(t *testing.T) {
	rdb, redisMock := redismock.NewClientMock()
	repo := &fakeRepo{}
	svc := establecimiento.NewService(repo, rdb, zap.NewNop())

	redisMock.ExpectDel(establecimiento.OptionsCacheKey).SetVal(1)

	assert.NoError(t, svc.Delete(context.Background(), uuid.NewString()))
	assert.Equal(t, []string{"delete_dependents", "delete"}, repo.calls)
	assert.NoError(t, redisMock.ExpectationsWereMet())
}

func TestDelete_InvalidID(t *testing.T) {
	repo := &fakeRepo{}
	svc := establecimiento.NewService(repo, nil, zap.NewNop())

	err := svc.Delete(context.Background(), "nope")
	assert.Error(t, err)
	assert.Empty(t, repo.calls)
}
