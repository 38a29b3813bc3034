package database

import (
	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"gorm.io/gorm"
)

func RunMigrations(db *gorm.DB) error {
	// Create tables if they don't exist
	if err := db.AutoMigrate(&models.Ride{}); err != nil {
		return err
	}

	// Enforce listing invariants at the database level. Older deployments
	// predate these checks, so drop-and-recreate keeps them current.
	if db.Migrator().HasTable(&models.Ride{}) {
		constraints := map[string]string{
			"rides_seats_check":      "CHECK (seats >= 0)",
			"rides_price_check":      "CHECK (price >= 0)",
			"rides_rating_check":     "CHECK (rating >= 0 AND rating <= 5)",
			"rides_passengers_check": "CHECK (passengers >= 0)",
			"rides_vehicle_check":    "CHECK (vehicle IN ('car', 'bike'))",
		}

		for name, check := range constraints {
			db.Exec("ALTER TABLE rides DROP CONSTRAINT IF EXISTS " + name)
			if err := db.Exec("ALTER TABLE rides ADD CONSTRAINT " + name + " " + check).Error; err != nil {
				return err
			}
		}
	}

	return nil
}
