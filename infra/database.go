package infra

import (
	"errors"
	"strings"
	"time"

	"github.com/amirasaad/exchange/pkg/config"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const sqlitePrefix = "sqlite://"

// NewDBConnection opens the configured database. URLs starting with sqlite://
// open a SQLite file (or :memory:), anything else is handed to the postgres driver.
func NewDBConnection(
	cnf *config.DB,
	appEnv string,
) (*gorm.DB, error) {
	if cnf == nil || cnf.Url == "" {
		return nil, errors.New("DATABASE_URL is not set")
	}

	var logMode logger.LogLevel
	if appEnv == "development" {
		logMode = logger.Info
	} else {
		logMode = logger.Silent
	}

	connection, err := gorm.Open(dialectorFor(cnf.Url), &gorm.Config{
		Logger:                 logger.Default.LogMode(logMode),
		SkipDefaultTransaction: true,
		TranslateError:         true,
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := connection.DB()
	if err != nil {
		return nil, err
	}
	if IsSQLite(cnf.Url) {
		// SQLite allows a single writer.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(25)
		sqlDB.SetConnMaxLifetime(1 * time.Hour)
	}

	return connection, nil
}

// IsSQLite reports whether url selects the SQLite driver.
func IsSQLite(url string) bool {
	return strings.HasPrefix(url, sqlitePrefix)
}

func dialectorFor(url string) gorm.Dialector {
	if IsSQLite(url) {
		return sqlite.Open(sqliteDSN(strings.TrimPrefix(url, sqlitePrefix)))
	}
	return postgres.Open(url)
}

// sqliteDSN turns on foreign key enforcement, which SQLite leaves off per
// connection, unless the DSN already sets it.
func sqliteDSN(dsn string) string {
	if strings.Contains(dsn, "_foreign_keys=") || strings.Contains(dsn, "_fk=") {
		return dsn
	}
	if strings.Contains(dsn, "?") {
		return dsn + "&_foreign_keys=on"
	}
	return dsn + "?_foreign_keys=on"
}
