package database_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/arcade-go/internal/infrastructure/config"
	"github.com/andrescamacho/arcade-go/internal/infrastructure/database"
)

func TestNewConnection_CreatesSQLiteDirectory(t *testing.T) {
	// Arrange - a path whose parent directory does not exist yet
	path := filepath.Join(t.TempDir(), ".arcade", "arcade.db")

	// Act
	db, err := database.NewConnection(&config.DatabaseConfig{
		Type: "sqlite",
		Path: path,
	})

	// Assert
	require.NoError(t, err)
	defer database.Close(db)
	assert.FileExists(t, path)
}

func TestNewConnection_InMemorySQLite(t *testing.T) {
	db, err := database.NewConnection(&config.DatabaseConfig{
		Type: "sqlite",
		Path: ":memory:",
	})

	require.NoError(t, err)
	defer database.Close(db)
	assert.True(t, db.Migrator().HasTable("sessions"))
}

func TestNewConnection_UnsupportedType(t *testing.T) {
	_, err := database.NewConnection(&config.DatabaseConfig{Type: "mongodb"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported database type")
}
