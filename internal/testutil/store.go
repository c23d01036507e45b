// Package testutil provides an in-memory store seeded with a small dialogue corpus
// so repository, service and handler tests run without PostgreSQL.
package testutil

import (
	"testing"

	"movie-dialogue-api/backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewStore opens an empty in-memory SQLite database with the schema migrated.
// The pool holds a single connection: an in-memory database lives only as long as
// its connection, and one connection also serializes concurrent transactions.
func NewStore(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(models.All()...))
	return db
}

// NewSeededStore opens a store and loads the fixture corpus into it
func NewSeededStore(t testing.TB) *gorm.DB {
	t.Helper()

	db := NewStore(t)
	Seed(t, db)
	return db
}

// Seed inserts the fixture corpus
func Seed(t testing.TB, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(Movies()).Error)
	require.NoError(t, db.Create(Characters()).Error)
	require.NoError(t, db.Create(Conversations()).Error)
	require.NoError(t, db.Create(Lines()).Error)
}
