package repository

import (
	"testing"

	"goldcredit/cmd/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_FindActiveByID(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))

	active := &entity.User{Email: "jane@goldcreditsa.com.br", Name: "Jane", PasswordHash: "h", Active: true, CreatedAt: 1}
	inactive := &entity.User{Email: "old@goldcreditsa.com.br", Name: "Old", PasswordHash: "h", Active: false, CreatedAt: 1}
	require.NoError(t, repo.Save(active))
	require.NoError(t, repo.Save(inactive))

	found, err := repo.FindActiveByID(active.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "jane@goldcreditsa.com.br", found.Email)

	// Deactivated accounts are invisible to the auth middleware.
	found, err = repo.FindActiveByID(inactive.ID)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestUserRepository_ExistsByEmail(t *testing.T) {
	repo := NewUserRepository(newTestDB(t))
	require.NoError(t, repo.Save(&entity.User{Email: "jane@goldcreditsa.com.br", Name: "Jane", PasswordHash: "h", Active: true, CreatedAt: 1}))

	exists, err := repo.ExistsByEmail("jane@goldcreditsa.com.br")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail("nobody@goldcreditsa.com.br")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCompanyRepository_CacheLifecycle(t *testing.T) {
	repo := NewCompanyRepository(newTestDB(t))

	require.NoError(t, repo.Save(&entity.Company{
		CNPJ:      "11222333000181",
		LegalName: "ALPHA SA",
		RegStatus: entity.StatusActive,
		Found:     true,
		CachedAt:  100,
		Partners: []*entity.CompanyPartner{
			{Name: "JANE DOE", Role: "Administradora"},
		},
	}))

	company, err := repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	require.NotNil(t, company)
	assert.Equal(t, "ALPHA SA", company.LegalName)
	require.Len(t, company.Partners, 1)
	assert.Equal(t, "JANE DOE", company.Partners[0].Name)

	require.NoError(t, repo.DeleteExpired(500))

	company, err = repo.FindByCNPJ("11222333000181")
	require.NoError(t, err)
	assert.Nil(t, company)
}
