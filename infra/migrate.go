package infra

import (
	"errors"
	"fmt"

	conversionrepo "github.com/amirasaad/exchange/infra/repository/conversion"
	userrepo "github.com/amirasaad/exchange/infra/repository/user"
	"github.com/amirasaad/exchange/internal/migrations"
	"github.com/golang-migrate/migrate/v4"
	migratepostgres "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"gorm.io/gorm"
)

// Migrate brings the schema up to date. Postgres runs the embedded SQL
// migrations; SQLite, used for local runs and tests, is auto-migrated from the models.
func Migrate(db *gorm.DB) error {
	if db.Dialector.Name() == "sqlite" {
		return db.AutoMigrate(&userrepo.User{}, &conversionrepo.Conversion{})
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	driver, err := migratepostgres.WithInstance(sqlDB, &migratepostgres.Config{})
	if err != nil {
		return fmt.Errorf("migrate: postgres driver: %w", err)
	}
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("migrate: source: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "postgres", driver)
	if err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate: up: %w", err)
	}
	return nil
}
