package infra

import (
	"fmt"

	"stockli/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDatabase establishes a GORM connection backed by pgx and runs
// AutoMigrate for all entities. gen_random_uuid() defaults require
// PostgreSQL 13+.
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

	if err := db.AutoMigrate(
		&model.User{},
		&model.Category{},
		&model.Supplier{},
		&model.Product{},
		&model.StockMovement{},
		&model.PaymentMethod{},
		&model.SalesTransaction{},
		&model.TransactionItem{},
		&model.PurchaseOrder{},
		&model.PurchaseOrderItem{},
		&model.Recipe{},
		&model.RecipeIngredient{},
		&model.AuditLog{},
		&model.Alert{},
		&model.Employee{},
		&model.Schedule{},
		&model.TimeEntry{},
	); err != nil {
		return nil, fmt.Errorf("automigrate: %w", err)
	}

	return db, nil
}
