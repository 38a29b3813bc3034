// Package search implements the find-ride filter: multi-field predicate
// matching over the in-memory ride snapshot.
package search

import (
	"strconv"
	"strings"

	"github.com/ruralconnect/ruralconnect-backend/internal/models"
)

// VehicleAny is the search form's "no preference" vehicle value.
const VehicleAny = "any"

// Criteria carries the search form fields as submitted. An empty field (or
// "any" for the vehicle) is no constraint. Time is carried on the form but
// is not a filter predicate.
type Criteria struct {
	From        string `form:"from"`
	To          string `form:"to"`
	Date        string `form:"date"`
	Time        string `form:"time"`
	Passengers  string `form:"passengers"`
	VehicleType string `form:"vehicleType"`
}

// Filter returns the rides satisfying every specified criterion, preserving
// snapshot order. From/To match as case-insensitive substrings, Date matches
// exactly, Passengers requires at least that many seats.
func Filter(rides []models.Ride, c Criteria) []models.Ride {
	minSeats := 0
	if c.Passengers != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(c.Passengers)); err == nil {
			minSeats = n
		}
	}

	matched := make([]models.Ride, 0, len(rides))
	for _, ride := range rides {
		if !containsFold(ride.From, c.From) {
			continue
		}
		if !containsFold(ride.To, c.To) {
			continue
		}
		if c.Date != "" && ride.Date != c.Date {
			continue
		}
		if c.VehicleType != "" && c.VehicleType != VehicleAny && ride.Vehicle != c.VehicleType {
			continue
		}
		if ride.Seats < minSeats {
			continue
		}
		matched = append(matched, ride)
	}
	return matched
}

func containsFold(value, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(value), strings.ToLower(substr))
}
