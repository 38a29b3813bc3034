package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type VehicleType string

const (
	VehicleCar  VehicleType = "car"
	VehicleBike VehicleType = "bike"
)

const (
	// RideStatusConfirmed is the only status rides ever carry. Bookings are
	// not implemented, so rides never transition anywhere else.
	RideStatusConfirmed = "confirmed"

	// DefaultDriverName marks rides created through the offer-ride form as
	// belonging to the current user. There are no real accounts.
	DefaultDriverName = "You"

	// DefaultRating is assigned to every newly offered ride.
	DefaultRating = 5.0
)

// Ride is a single offered journey listing. Date and time are stored as the
// form strings ("YYYY-MM-DD" / "HH:MM") because search compares them as
// strings; they are parsed only when ordering upcoming rides.
type Ride struct {
	gorm.Model
	From       string  `json:"from" gorm:"column:from_location;not null"`
	To         string  `json:"to" gorm:"column:to_location;not null"`
	Date       string  `json:"date" gorm:"not null"`
	Time       string  `json:"time" gorm:"not null"`
	Vehicle    string  `json:"vehicle" gorm:"not null"`
	Seats      int     `json:"seats" gorm:"not null"`
	Price      float64 `json:"price" gorm:"not null"`
	Driver     string  `json:"driver" gorm:"not null"`
	Rating     float64 `json:"rating" gorm:"default:5"`
	Image      string  `json:"image"`
	Status     string  `json:"status" gorm:"default:confirmed"`
	Passengers int     `json:"passengers" gorm:"default:0"`
}

// DepartureTime combines the date and time fields into a single moment in
// the given location. Rides with malformed schedules return an error and are
// skipped by consumers that need an ordering.
func (r *Ride) DepartureTime(loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	t, err := time.ParseInLocation("2006-01-02T15:04", fmt.Sprintf("%sT%s", r.Date, r.Time), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("ride %d has invalid schedule: %w", r.ID, err)
	}
	return t, nil
}
