package infra

import (
	"testing"

	"github.com/amirasaad/exchange/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDBConnection_RequiresURL(t *testing.T) {
	_, err := NewDBConnection(&config.DB{}, "test")
	assert.EqualError(t, err, "DATABASE_URL is not set")

	_, err = NewDBConnection(nil, "test")
	assert.Error(t, err)
}

func TestNewDBConnection_SQLite(t *testing.T) {
	db, err := NewDBConnection(&config.DB{Url: "sqlite://file::memory:"}, "production")
	require.NoError(t, err)
	assert.Equal(t, "sqlite", db.Dialector.Name())

	require.NoError(t, Migrate(db))
	assert.True(t, db.Migrator().HasTable("users"))
	assert.True(t, db.Migrator().HasTable("conversions"))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "file::memory:?_foreign_keys=on", sqliteDSN("file::memory:"))
	assert.Equal(t, "exchange.db?cache=shared&_foreign_keys=on", sqliteDSN("exchange.db?cache=shared"))
	assert.Equal(t, "exchange.db?_fk=0", sqliteDSN("exchange.db?_fk=0"))
}

func TestNewDBConnection_SQLiteForeignKeys(t *testing.T) {
	db, err := NewDBConnection(&config.DB{Url: "sqlite://file::memory:"}, "test")
	require.NoError(t, err)

	var enabled int
	require.NoError(t, db.Raw("PRAGMA foreign_keys").Scan(&enabled).Error)
	assert.Equal(t, 1, enabled)
}

func TestIsSQLite(t *testing.T) {
	assert.True(t, IsSQLite("sqlite://exchange.db"))
	assert.False(t, IsSQLite("postgres://localhost:5432/exchange"))
}
