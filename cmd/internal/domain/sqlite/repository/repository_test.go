package repository

import (
	"testing"

	"goldcredit/cmd/internal/domain/sqlite"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.Init(":memory:")
	require.NoError(t, err)
	return db
}
