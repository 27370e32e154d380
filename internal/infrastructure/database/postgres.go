package database

import (
	"fmt"
	"log"

	"github.com/avillarama/resto-api/internal/config"
	"github.com/avillarama/resto-api/internal/domain/entity"
	"github.com/avillarama/resto-api/internal/domain/enum"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	logLevel := logger.Info

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying SQL DB to set connection pool settings
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		// Membership and menu
		&entity.Member{},
		&entity.Dish{},

		// Orders
		&entity.Order{},
		&entity.OrderLineItem{},

		// Discounts (base row plus sub-records)
		&entity.Discount{},
		&entity.InHouseDiscount{},
		&entity.SpecialIDDiscount{},
		&entity.SeniorDetail{},
		&entity.PWDDetail{},

		// Ledger
		&entity.Bill{},
		&entity.Payment{},
		&entity.HistoryEntry{},

		// System entities
		&entity.IdempotencyKey{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData seeds the database with a starter in-house discount
// catalog when none exists yet
func SeedDefaultData(db *gorm.DB) error {
	log.Println("Seeding default data...")

	var count int64
	if err := db.Model(&entity.Discount{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Println("Discount catalog already seeded, skipping")
		return nil
	}

	defaults := []entity.InHouseDiscount{
		{Description: "Loyalty member", Rate: 0.05},
		{Description: "Weekday lunch promo", Rate: 0.10},
	}

	for _, inhouse := range defaults {
		err := db.Transaction(func(tx *gorm.DB) error {
			discount := entity.Discount{Type: enum.DiscountTypeInHouse}
			if err := tx.Create(&discount).Error; err != nil {
				return err
			}
			inhouse.DiscountID = discount.DiscountID
			return tx.Create(&inhouse).Error
		})
		if err != nil {
			log.Printf("Warning: failed to seed discount %q: %v", inhouse.Description, err)
		}
	}

	log.Println("Default data seeding completed")
	return nil
}
