package database_test

import (
	"fmt"
	"testing"

	"produtos/internal/database"
	"produtos/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func memoryDSN() string {
	return fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	db, err := database.Open("mysql", "whatever")
	assert.Error(t, err)
	assert.Nil(t, db)
	assert.Contains(t, err.Error(), "unsupported database driver")
}

func TestMigrate_IsIdempotent(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, memoryDSN())
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Migrate(db))

	assert.True(t, db.Migrator().HasTable("produto"))
	for _, column := range []string{"id", "imagem", "nome", "valor", "descricao"} {
		assert.True(t, db.Migrator().HasColumn(&models.Product{}, column), "missing column %s", column)
	}
}

func TestMigrate_KeepsExistingRows(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, memoryDSN())
	require.NoError(t, err)
	defer database.Close(db)

	require.NoError(t, database.Migrate(db))
	require.NoError(t, db.Create(&models.Product{Imagem: "u", Nome: "n", Valor: 1, Descricao: "d"}).Error)
	require.NoError(t, database.Migrate(db))

	var count int64
	require.NoError(t, db.Model(&models.Product{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestPing(t *testing.T) {
	db, err := database.Open(database.DriverSQLite, memoryDSN())
	require.NoError(t, err)

	assert.NoError(t, database.Ping(db))
	require.NoError(t, database.Close(db))
	assert.Error(t, database.Ping(db))
}
