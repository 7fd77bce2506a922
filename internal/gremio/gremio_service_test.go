package gremio

import (
	"context"
	"errors"
	"testing"

	"mi-ciec/internal/direccion"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	getByRIFFn func(ctx context.Context, rif string) (*Institucion, error)
	createFn   func(ctx context.Context, inst *Institucion) error

	created          []Institucion
	updatedFields    []map[string]interface{}
	insertedServs    [][]InstitucionServicio
	deletedServs     [][]int64
	deletedRIFs      []string
	deletedDependent []string
}

func (f *fakeRepo) GetByRIF(ctx context.Context, rif string) (*Institucion, error) {
	if f.getByRIFFn != nil {
		return f.getByRIFFn(ctx, rif)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) List(ctx context.Context) ([]Institucion, error) { return nil, nil }
func (f *fakeRepo) Create(ctx context.Context, inst *Institucion) error {
	if f.createFn != nil {
		return f.createFn(ctx, inst)
	}
	f.created = append(f.created, *inst)
	return nil
}
func (f *fakeRepo) UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error {
	f.updatedFields = append(f.updatedFields, fields)
	return nil
}
func (f *fakeRepo) Delete(ctx context.Context, rif string) error {
	f.deletedRIFs = append(f.deletedRIFs, rif)
	return nil
}
func (f *fakeRepo) DeleteDependents(ctx context.Context, rif string) error {
	f.deletedDependent = append(f.deletedDependent, rif)
	return nil
}
func (f *fakeRepo) BulkInsertServicios(ctx context.Context, rows []InstitucionServicio) error {
	if len(rows) > 0 {
		f.insertedServs = append(f.insertedServs, rows)
	}
	return nil
}
func (f *fakeRepo) BulkDeleteServicios(ctx context.Context, rif string, idsServicio []int64) error {
	if len(idsServicio) > 0 {
		f.deletedServs = append(f.deletedServs, idsServicio)
	}
	return nil
}

type fakeDireccionRepo struct {
	deleteFn func(ctx context.Context, id int64) error

	created []direccion.Direccion
	updated []direccion.Direccion
	deleted []int64
}

func (f *fakeDireccionRepo) Create(ctx context.Context, d *direccion.Direccion) error {
	d.IDDireccion = 55
	f.created = append(f.created, *d)
	return nil
}
func (f *fakeDireccionRepo) Update(ctx context.Context, d *direccion.Direccion) error {
	f.updated = append(f.updated, *d)
	return nil
}
func (f *fakeDireccionRepo) Delete(ctx context.Context, id int64) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	f.deleted = append(f.deleted, id)
	return nil
}
func (f *fakeDireccionRepo) GetByID(ctx context.Context, id int64) (*direccion.Direccion, error) {
	return nil, errors.New("not implemented")
}

type fakeUploader struct {
	uploads int
	failFn  func() error
}

func (f *fakeUploader) Upload(ctx context.Context, bucket, key string, data []byte, contentType string) (string, error) {
	f.uploads++
	if f.failFn != nil {
		if err := f.failFn(); err != nil {
			return "", err
		}
	}
	return "https://cdn.example/" + bucket + "/" + key, nil
}

func intPtr(v int) *int { return &v }

func TestSave_CreatesNewInstitucion(t *testing.T) {
	repo := &fakeRepo{}
	dirs := &fakeDireccionRepo{}
	svc := NewService(repo, dirs, &fakeUploader{}, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{
		RIF:               "G200001234",
		Nombre:            "Camara de Industriales",
		IDParroquia:       intPtr(42),
		SelectedServicios: []int64{1, 2},
	})

	assert.NoError(t, err)
	assert.Len(t, dirs.created, 1)
	assert.Len(t, repo.created, 1)
	assert.Equal(t, int64(55), *repo.created[0].IDDireccion)
	assert.Len(t, repo.insertedServs, 1)
	assert.Len(t, repo.insertedServs[0], 2)
}

func TestSave_CreateWithoutParroquiaSkipsDireccion(t *testing.T) {
	repo := &fakeRepo{}
	dirs := &fakeDireccionRepo{}
	svc := NewService(repo, dirs, &fakeUploader{}, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{RIF: "G200001234", Nombre: "Camara"})

	assert.NoError(t, err)
	assert.Empty(t, dirs.created)
	assert.Len(t, repo.created, 1)
	assert.Nil(t, repo.created[0].IDDireccion)
}

func TestSave_CreateFailureCompensatesDireccion(t *testing.T) {
	repo := &fakeRepo{
		createFn: func(ctx context.Context, inst *Institucion) error {
			return errors.New("boom")
		},
	}
	dirs := &fakeDireccionRepo{}
	svc := NewService(repo, dirs, &fakeUploader{}, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{
		RIF:         "G200001234",
		Nombre:      "Camara",
		IDParroquia: intPtr(42),
	})

	assert.Error(t, err)
	assert.Equal(t, []int64{55}, dirs.deleted)
	assert.Empty(t, repo.insertedServs)
}

func TestSave_UpdateSyncsServicios(t *testing.T) {
	existing := &Institucion{
		RIF:    "G200001234",
		Nombre: "Camara",
		Servicios: []InstitucionServicio{
			{RIFInstitucion: "G200001234", IDServicio: 1},
			{RIFInstitucion: "G200001234", IDServicio: 2},
		},
	}
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*Institucion, error) {
			return existing, nil
		},
	}
	svc := NewService(repo, &fakeDireccionRepo{}, &fakeUploader{}, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{
		RIF:               "G200001234",
		Nombre:            "Camara",
		SelectedServicios: []int64{2, 3},
	})

	assert.NoError(t, err)
	assert.Len(t, repo.updatedFields, 1)
	assert.Len(t, repo.insertedServs, 1)
	assert.Equal(t, int64(3), repo.insertedServs[0][0].IDServicio)
	assert.Equal(t, [][]int64{{1}}, repo.deletedServs)
}

func TestSave_UpdateLogoExplicitDelete(t *testing.T) {
	logo := "https://cdn.example/logos-gremios/old"
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*Institucion, error) {
			return &Institucion{RIF: rif, Nombre: "Camara", LogoGremio: &logo}, nil
		},
	}
	blobs := &fakeUploader{}
	svc := NewService(repo, &fakeDireccionRepo{}, blobs, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{RIF: "G200001234", Nombre: "Camara"})

	assert.NoError(t, err)
	assert.Zero(t, blobs.uploads)
	assert.Nil(t, repo.updatedFields[0]["logo_gremio"])
}

func TestSave_UpdateLogoKeptWhenPreviewPresent(t *testing.T) {
	logo := "https://cdn.example/logos-gremios/old"
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*Institucion, error) {
			return &Institucion{RIF: rif, Nombre: "Camara", LogoGremio: &logo}, nil
		},
	}
	svc := NewService(repo, &fakeDireccionRepo{}, &fakeUploader{}, zap.NewNop())

	err := svc.Save(context.Background(), GremioForm{
		RIF:         "G200001234",
		Nombre:      "Camara",
		LogoPreview: &logo,
	})

	assert.NoError(t, err)
	assert.Equal(t, &logo, repo.updatedFields[0]["logo_gremio"])
}

func TestSave_ValidationErrors(t *testing.T) {
	svc := NewService(&fakeRepo{}, &fakeDireccionRepo{}, &fakeUploader{}, zap.NewNop())

	assert.Error(t, svc.Save(context.Background(), GremioForm{Nombre: "Camara"}))
	assert.Error(t, svc.Save(context.Background(), GremioForm{RIF: "G200001234"}))

	lat := 10.48
	err := svc.Save(context.Background(), GremioForm{
		RIF:     "G200001234",
		Nombre:  "Camara",
		Latitud: &lat,
	})
	assert.ErrorIs(t, err, direccion.ErrPartialCoordinates)
}

func TestDelete_CascadesAndCleansDireccion(t *testing.T) {
	idDir := int64(9)
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*Institucion, error) {
			return &Institucion{RIF: rif, Nombre: "Camara", IDDireccion: &idDir}, nil
		},
	}
	dirs := &fakeDireccionRepo{}
	svc := NewService(repo, dirs, &fakeUploader{}, zap.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), "G200001234"))
	assert.Equal(t, []string{"G200001234"}, repo.deletedDependent)
	assert.Equal(t, []string{"G200001234"}, repo.deletedRIFs)
	assert.Equal(t, []int64{9}, dirs.deleted)
}

func TestDelete_OrphanCleanupFailureIsNotFatal(t *testing.T) {
	idDir := int64(9)
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*Institucion, error) {
			return &Institucion{RIF: rif, Nombre: "Camara", IDDireccion: &idDir}, nil
		},
	}
	dirs := &fakeDireccionRepo{
		deleteFn: func(ctx context.Context, id int64) error {
			return errors.New("fk violation")
		},
	}
	svc := NewService(repo, dirs, &fakeUploader{}, zap.NewNop())

	assert.NoError(t, svc.Delete(context.Background(), "G200001234"))
}
