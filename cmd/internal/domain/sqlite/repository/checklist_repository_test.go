package repository

import (
	"testing"

	"goldcredit/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChecklistRepository_FindByCedenteID_Missing(t *testing.T) {
	repo := NewChecklistRepository(newTestDB(t))

	checklist, err := repo.FindByCedenteID(1)
	require.NoError(t, err)
	assert.Nil(t, checklist)
}

func TestChecklistRepository_Upsert_KeepsSingleRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewChecklistRepository(db)
	cedenteRepo := NewCedenteRepository(db)

	cedente := seedCedente(t, cedenteRepo, "Alpha SA", "11144477735")

	require.NoError(t, repo.Upsert(&entity.DocumentChecklist{
		CedenteID:      cedente.ID,
		SocialContract: true,
		UpdatedAt:      1,
	}))

	first, err := repo.FindByCedenteID(cedente.ID)
	require.NoError(t, err)
	require.NotNil(t, first)
	assert.True(t, first.SocialContract)
	assert.False(t, first.BankingData)

	// Second write replaces, it does not insert a second row.
	require.NoError(t, repo.Upsert(&entity.DocumentChecklist{
		CedenteID:      cedente.ID,
		SocialContract: false,
		BankingData:    true,
		UpdatedAt:      2,
	}))

	second, err := repo.FindByCedenteID(cedente.ID)
	require.NoError(t, err)
	require.NotNil(t, second)

	assert.Equal(t, first.ID, second.ID)
	assert.False(t, second.SocialContract)
	assert.True(t, second.BankingData)

	var count int64
	require.NoError(t, db.Model(&entity.DocumentChecklist{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
