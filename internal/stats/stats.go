// Package stats computes the dashboard's derived figures from the ride
// snapshot. Everything here is pure and recomputed on demand; nothing is
// persisted.
package stats

import (
	"sort"
	"time"

	"github.com/ruralconnect/ruralconnect-backend/internal/models"
)

// CO2SavedPerRideKg is the synthetic environmental-savings constant applied
// per offered ride.
const CO2SavedPerRideKg = 5.0

// upcomingLimit caps the dashboard's upcoming-rides list.
const upcomingLimit = 3

// Summary aggregates the current user's offered rides. AverageRating is only
// meaningful when HasRating is true; with no rides offered the dashboard
// shows "N/A".
type Summary struct {
	TotalRides    int     `json:"totalRides"`
	TotalEarnings float64 `json:"totalEarnings"`
	AverageRating float64 `json:"averageRating"`
	HasRating     bool    `json:"hasRating"`
	CO2SavedKg    float64 `json:"co2SavedKg"`
}

// Summarize partitions the snapshot into the rides offered by self and
// computes count, earnings (price × booked passengers), mean rating, and the
// estimated CO₂ savings.
func Summarize(rides []models.Ride, self string) Summary {
	var s Summary
	var ratingTotal float64

	for _, ride := range rides {
		if ride.Driver != self {
			continue
		}
		s.TotalRides++
		s.TotalEarnings += ride.Price * float64(ride.Passengers)
		ratingTotal += ride.Rating
	}

	if s.TotalRides > 0 {
		s.AverageRating = ratingTotal / float64(s.TotalRides)
		s.HasRating = true
	}
	s.CO2SavedKg = float64(s.TotalRides) * CO2SavedPerRideKg

	return s
}

// Upcoming returns the rides, from any driver, departing strictly after now,
// soonest first, capped at three. Rides with unparseable schedules are never
// upcoming.
func Upcoming(rides []models.Ride, now time.Time) []models.Ride {
	type scheduled struct {
		ride models.Ride
		at   time.Time
	}

	upcoming := make([]scheduled, 0, len(rides))
	for _, ride := range rides {
		at, err := ride.DepartureTime(now.Location())
		if err != nil {
			continue
		}
		if at.After(now) {
			upcoming = append(upcoming, scheduled{ride: ride, at: at})
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].at.Before(upcoming[j].at)
	})

	if len(upcoming) > upcomingLimit {
		upcoming = upcoming[:upcomingLimit]
	}

	result := make([]models.Ride, len(upcoming))
	for i, s := range upcoming {
		result[i] = s.ride
	}
	return result
}
