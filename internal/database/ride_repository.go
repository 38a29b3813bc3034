package database

import (
	"context"

	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"gorm.io/gorm"
)

// RideRepository is the GORM-backed implementation of the ride store's
// repository: the hosted "rides" collection with exactly two operations,
// select-all-newest-first and insert-one-returning-row.
type RideRepository struct {
	db *gorm.DB
}

func NewRideRepository(db *gorm.DB) *RideRepository {
	return &RideRepository{db: db}
}

// ListAll returns every ride ordered by creation time descending.
func (r *RideRepository) ListAll(ctx context.Context) ([]models.Ride, error) {
	var rides []models.Ride
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&rides).Error; err != nil {
		return nil, err
	}
	return rides, nil
}

// Insert stores one ride and returns the persisted row, including the
// assigned ID and creation timestamp.
func (r *RideRepository) Insert(ctx context.Context, ride models.Ride) (models.Ride, error) {
	if err := r.db.WithContext(ctx).Create(&ride).Error; err != nil {
		return models.Ride{}, err
	}
	return ride, nil
}
