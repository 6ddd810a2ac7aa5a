package database_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"palette-backend/internal/database"
)

func TestMigrations_Ordered(t *testing.T) {
	names, err := database.Migrations()
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_users.sql", "002_create_generations.sql"}, names)
}

func TestNewMigrator_Unreachable(t *testing.T) {
	_, err := database.NewMigrator("postgres://nobody@127.0.0.1:1/none?sslmode=disable&connect_timeout=1", nil)
	assert.Error(t, err)
}
