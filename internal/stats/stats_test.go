package stats

import (
	"testing"
	"time"

	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestSummarizeSelfRidesOnly(t *testing.T) {
	rides := []models.Ride{
		{Driver: "You", Price: 10, Passengers: 2, Rating: 5},
		{Driver: "You", Price: 12.5, Passengers: 1, Rating: 4},
		{Driver: "Sarah", Price: 100, Passengers: 3, Rating: 3},
	}

	s := Summarize(rides, "You")
	assert.Equal(t, 2, s.TotalRides)
	assert.InDelta(t, 32.5, s.TotalEarnings, 1e-9)
	assert.True(t, s.HasRating)
	assert.InDelta(t, 4.5, s.AverageRating, 1e-9)
	assert.InDelta(t, 10.0, s.CO2SavedKg, 1e-9)
}

func TestSummarizeNoSelfRides(t *testing.T) {
	rides := []models.Ride{{Driver: "Sarah", Price: 20, Passengers: 1, Rating: 5}}

	s := Summarize(rides, "You")
	assert.Zero(t, s.TotalRides)
	assert.Zero(t, s.TotalEarnings)
	assert.False(t, s.HasRating)
	assert.Zero(t, s.CO2SavedKg)
}

func TestSummarizeEarningsUseBookedPassengers(t *testing.T) {
	// Newly offered rides have zero passengers and earn nothing.
	rides := []models.Ride{{Driver: "You", Price: 50, Passengers: 0, Rating: 5}}

	s := Summarize(rides, "You")
	assert.Equal(t, 1, s.TotalRides)
	assert.Zero(t, s.TotalEarnings)
}

func TestUpcomingSortedAndCapped(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rides := []models.Ride{
		{From: "D", Date: "2025-01-04", Time: "09:00"},
		{From: "A", Date: "2025-01-01", Time: "13:00"},
		{From: "C", Date: "2025-01-03", Time: "08:00"},
		{From: "B", Date: "2025-01-02", Time: "07:30"},
	}

	got := Upcoming(rides, now)
	assert.Len(t, got, 3)
	assert.Equal(t, "A", got[0].From)
	assert.Equal(t, "B", got[1].From)
	assert.Equal(t, "C", got[2].From)
}

func TestUpcomingExcludesPastAndPresent(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rides := []models.Ride{
		{From: "past", Date: "2024-12-31", Time: "09:00"},
		{From: "now", Date: "2025-01-01", Time: "12:00"},
		{From: "future", Date: "2025-01-01", Time: "12:01"},
	}

	got := Upcoming(rides, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "future", got[0].From)
}

func TestUpcomingSkipsInvalidSchedules(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rides := []models.Ride{
		{From: "bad", Date: "soon", Time: "ish"},
		{From: "ok", Date: "2025-01-02", Time: "10:00"},
	}

	got := Upcoming(rides, now)
	assert.Len(t, got, 1)
	assert.Equal(t, "ok", got[0].From)
}
