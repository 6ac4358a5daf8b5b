package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rafael/mathsolver/internal/db"
)

// NewTestDB creates an in-memory SQLite database with all migrations
// applied. The single-connection pool keeps the memory database alive
// for the lifetime of the test.
func NewTestDB(t *testing.T) *db.DB {
	t.Helper()

	database, err := db.Open("file::memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, database.Close())
	})
	return database
}
