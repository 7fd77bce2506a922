package integrante

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&Integrante{}))
	return db
}

func strP(s string) *string { return &s }

func TestRepository_CreateAndGet(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	estID := uuid.New()

	row := &Integrante{
		IDEstablecimiento: estID,
		NombrePersona:     "Maria Perez",
		Cargo:             strP("Gerente"),
	}
	assert.NoError(t, repo.Create(ctx, row))
	assert.NotZero(t, row.IDIntegrante)

	got, err := repo.GetByID(ctx, row.IDIntegrante)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Perez", got.NombrePersona)
	assert.Equal(t, estID, got.IDEstablecimiento)
}

func TestRepository_UpdateOverwritesNullable(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	row := &Integrante{
		IDEstablecimiento: uuid.New(),
		NombrePersona:     "Maria Perez",
		Cargo:             strP("Gerente"),
	}
	assert.NoError(t, repo.Create(ctx, row))

	row.NombrePersona = "Maria Perez de Gomez"
	row.Cargo = nil
	assert.NoError(t, repo.Update(ctx, row))

	got, err := repo.GetByID(ctx, row.IDIntegrante)
	assert.NoError(t, err)
	assert.Equal(t, "Maria Perez de Gomez", got.NombrePersona)
	// nil pointers clear the column rather than being skipped
	assert.Nil(t, got.Cargo)
}

func TestRepository_ListByEstablecimientoOrdered(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()
	estID := uuid.New()
	otherID := uuid.New()

	for _, nombre := range []string{"Zoila", "Ana"} {
		assert.NoError(t, repo.Create(ctx, &Integrante{
			IDEstablecimiento: estID,
			NombrePersona:     nombre,
		}))
	}
	assert.NoError(t, repo.Create(ctx, &Integrante{
		IDEstablecimiento: otherID,
		NombrePersona:     "Pedro",
	}))

	rows, err := repo.ListByEstablecimiento(ctx, estID)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "Ana", rows[0].NombrePersona)
	assert.Equal(t, "Zoila", rows[1].NombrePersona)
}

func TestRepository_Delete(t *testing.T) {
	repo := NewRepository(openTestDB(t))
	ctx := context.Background()

	row := &Integrante{IDEstablecimiento: uuid.New(), NombrePersona: "Maria"}
	assert.NoError(t, repo.Create(ctx, row))
	assert.NoError(t, repo.Delete(ctx, row.IDIntegrante))

	_, err := repo.GetByID(ctx, row.IDIntegrante)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
