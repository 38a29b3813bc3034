package store

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"github.com/ruralconnect/ruralconnect-backend/internal/services"
)

// RideRepository is the hosted rides collection. Two operations exist: read
// everything newest-first, and insert one row returning the stored record.
// There is no update and no delete.
type RideRepository interface {
	ListAll(ctx context.Context) ([]models.Ride, error)
	Insert(ctx context.Context, ride models.Ride) (models.Ride, error)
}

type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// Store owns the in-memory ride snapshot shared by every view. The snapshot
// reflects the last successful fetch; a failed fetch leaves it untouched and
// flips the status to error. Inserts prepend the stored row locally instead
// of re-fetching.
type Store struct {
	repo     RideRepository
	notifier services.Notifier
	self     string

	mu      sync.RWMutex
	rides   []models.Ride
	status  Status
	lastErr error
}

func New(repo RideRepository, notifier services.Notifier, self string) *Store {
	if self == "" {
		self = models.DefaultDriverName
	}
	return &Store{
		repo:     repo,
		notifier: notifier,
		self:     self,
		status:   StatusLoading,
	}
}

// Self returns the display name used to mark rides created by the current
// user.
func (s *Store) Self() string {
	return s.self
}

// Refresh fetches every ride, newest first, and replaces the snapshot. No
// retry on failure; the previous snapshot (possibly empty) stays visible and
// the failure is surfaced as a notification.
func (s *Store) Refresh(ctx context.Context) error {
	rides, err := s.repo.ListAll(ctx)

	s.mu.Lock()
	if err != nil {
		s.status = StatusError
		s.lastErr = err
		s.mu.Unlock()

		s.notify(services.Notification{
			Level:   services.NotifyError,
			Title:   "❌ Database Error",
			Message: "Could not fetch ride data. Please try again later.",
		})
		return err
	}
	s.rides = rides
	s.status = StatusReady
	s.lastErr = nil
	s.mu.Unlock()

	return nil
}

// Snapshot returns a copy of the current ride list.
func (s *Store) Snapshot() []models.Ride {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rides := make([]models.Ride, len(s.rides))
	copy(rides, s.rides)
	return rides
}

// State returns the snapshot status and the last fetch error, if any.
func (s *Store) State() (Status, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status, s.lastErr
}

// ErrInvalidDraft marks a draft whose seats or price could not be coerced.
var ErrInvalidDraft = errors.New("invalid ride draft")

// RideDraft is the offer-ride form as submitted: seats and price arrive as
// strings and are coerced, nothing else is validated.
type RideDraft struct {
	From        string `json:"from" binding:"required"`
	To          string `json:"to" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
	VehicleType string `json:"vehicleType"`
	Seats       string `json:"seats" binding:"required"`
	Price       string `json:"price" binding:"required"`
	Description string `json:"description"`
}

// Create coerces the draft, inserts it, and prepends the stored row to the
// snapshot. On any failure the snapshot is left untouched. Nothing prevents
// two rapid submissions from inserting two rows.
func (s *Store) Create(ctx context.Context, draft RideDraft) (models.Ride, error) {
	seats, err := strconv.Atoi(strings.TrimSpace(draft.Seats))
	if err != nil {
		s.notifyCreateFailed()
		return models.Ride{}, fmt.Errorf("%w: seats %q: %v", ErrInvalidDraft, draft.Seats, err)
	}
	price, err := strconv.ParseFloat(strings.TrimSpace(draft.Price), 64)
	if err != nil {
		s.notifyCreateFailed()
		return models.Ride{}, fmt.Errorf("%w: price %q: %v", ErrInvalidDraft, draft.Price, err)
	}

	vehicle := draft.VehicleType
	if vehicle == "" {
		vehicle = string(models.VehicleCar)
	}

	ride := models.Ride{
		From:       draft.From,
		To:         draft.To,
		Date:       draft.Date,
		Time:       draft.Time,
		Vehicle:    vehicle,
		Seats:      seats,
		Price:      price,
		Driver:     s.self,
		Rating:     models.DefaultRating,
		Image:      "User profile picture placeholder",
		Status:     models.RideStatusConfirmed,
		Passengers: 0,
	}

	stored, err := s.repo.Insert(ctx, ride)
	if err != nil {
		s.notifyCreateFailed()
		return models.Ride{}, err
	}

	s.mu.Lock()
	s.rides = append([]models.Ride{stored}, s.rides...)
	s.mu.Unlock()

	s.notify(services.Notification{
		Level:   services.NotifySuccess,
		Title:   "✅ Ride Offered!",
		Message: "Your ride has been successfully listed.",
	})
	return stored, nil
}

func (s *Store) notifyCreateFailed() {
	s.notify(services.Notification{
		Level:   services.NotifyError,
		Title:   "❌ Could not offer ride",
		Message: "There was an error listing your ride. Please try again.",
	})
}

func (s *Store) notify(n services.Notification) {
	if s.notifier != nil {
		s.notifier.Notify(n)
	}
}
