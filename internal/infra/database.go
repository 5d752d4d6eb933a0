package infra

import (
	"fmt"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate to create / update all tables.
func NewDatabase(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	if err := RunMigrations(db); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}
	return db, nil
}

// RunMigrations applies the schema. Also used by integration tests
// against a throwaway container.
func RunMigrations(db *gorm.DB) error {
	// gen_random_uuid() needs pgcrypto on Postgres < 13
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&model.Product{},
		&model.Variation{},
		&model.Category{},
		&model.Promotion{},
		&model.Order{},
		&model.OrderItem{},
		&model.Banner{},
		&model.HeaderLink{},
		&model.FooterLink{},
		&model.TextSection{},
		&model.SiteStat{},
		&model.User{},
	); err != nil {
		return err
	}
	// Human-facing order numbers come from a sequence so concurrent
	// checkouts never collide.
	return db.Exec(`CREATE SEQUENCE IF NOT EXISTS orders_number_seq`).Error
}
