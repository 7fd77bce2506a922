package compania_test

import (
	"context"
	"errors"
	"testing"

	"mi-ciec/internal/compania"
	companiaerrors "mi-ciec/internal/compania/errors"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeRepo struct {
	getByRIFFn func(ctx context.Context, rif string) (*compania.Compania, error)
	lookups    []string
}

func (f *fakeRepo) GetByRIF(ctx context.Context, rif string) (*compania.Compania, error) {
	f.lookups = append(f.lookups, rif)
	if f.getByRIFFn != nil {
		return f.getByRIFFn(ctx, rif)
	}
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeRepo) Create(ctx context.Context, c *compania.Compania) error { return nil }
func (f *fakeRepo) Update(ctx context.Context, c *compania.Compania) error { return nil }
func (f *fakeRepo) UpdateFields(ctx context.Context, rif string, fields map[string]interface{}) error {
	return nil
}

func TestVerifyRIF_InvalidFormat(t *testing.T) {
	repo := &fakeRepo{}
	svc := compania.NewService(repo, zap.NewNop())

	for _, rif := range []string{"", "123456789", "X123456789", "J12345", "J12345678901"} {
		_, err := svc.VerifyRIF(context.Background(), rif)
		assert.ErrorIs(t, err, companiaerrors.ErrInvalidRIF, "rif %q", rif)
	}
	// Rejected before any lookup.
	assert.Empty(t, repo.lookups)
}

func TestVerifyRIF_NormalizesInput(t *testing.T) {
	repo := &fakeRepo{}
	svc := compania.NewService(repo, zap.NewNop())

	resp, err := svc.VerifyRIF(context.Background(), "  j123456789 ")
	assert.NoError(t, err)
	assert.Equal(t, []string{"J123456789"}, repo.lookups)
	assert.True(t, resp.EsNueva)
	assert.Equal(t, "J123456789", resp.RIF)
}

func TestVerifyRIF_ExistingCompany(t *testing.T) {
	logo := "https://cdn.example/logos/acme"
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*compania.Compania, error) {
			return &compania.Compania{RIF: rif, RazonSocial: "Acme", Logo: &logo}, nil
		},
	}
	svc := compania.NewService(repo, zap.NewNop())

	resp, err := svc.VerifyRIF(context.Background(), "J123456789")
	assert.NoError(t, err)
	assert.False(t, resp.EsNueva)
	assert.Equal(t, "Acme", resp.RazonSocial)
	assert.Equal(t, &logo, resp.Logo)
}

func TestVerifyRIF_StoreErrorPropagates(t *testing.T) {
	repo := &fakeRepo{
		getByRIFFn: func(ctx context.Context, rif string) (*compania.Compania, error) {
			return nil, errors.New("db down")
		},
	}
	svc := compania.NewService(repo, zap.NewNop())

	_, err := svc.VerifyRIF(context.Background(), "J123456789")
	assert.EqualError(t, err, "db down")
}

func TestGetByRIF_NotFoundMapped(t *testing.T) {
	svc := compania.NewService(&fakeRepo{}, zap.NewNop())

	_, err := svc.GetByRIF(context.Background(), "J123456789")
	assert.ErrorIs(t, err, companiaerrors.ErrCompaniaNotFound)
}
