package geocode

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/ruralconnect/ruralconnect-backend/internal/services"
	"github.com/ruralconnect/ruralconnect-backend/pkg/utils"
)

// Position source failure reasons, mirrored from the device geolocation API.
var (
	ErrPermissionDenied    = errors.New("location permission denied")
	ErrPositionUnavailable = errors.New("location information is unavailable")
	ErrPositionTimeout     = errors.New("location request timed out")

	// ErrBusy rejects re-invocation while a lookup is outstanding.
	ErrBusy = errors.New("location request already in progress")
)

// Position is a device-reported coordinate pair.
type Position struct {
	Latitude  float64
	Longitude float64
}

// PositionOptions mirror the one-shot device position request options.
type PositionOptions struct {
	EnableHighAccuracy bool
	Timeout            time.Duration
	MaximumAge         time.Duration
}

// DefaultPositionOptions are the options every lookup uses: high accuracy,
// a 10 second timeout, and tolerance for a position cached up to a minute.
var DefaultPositionOptions = PositionOptions{
	EnableHighAccuracy: true,
	Timeout:            10 * time.Second,
	MaximumAge:         60 * time.Second,
}

// PositionSource is a one-shot position request. The HTTP surface relays
// browser-reported coordinates through StaticSource; tests substitute their
// own.
type PositionSource interface {
	CurrentPosition(ctx context.Context, opts PositionOptions) (Position, error)
}

// StaticSource reports a fixed, already-acquired position.
type StaticSource Position

func (s StaticSource) CurrentPosition(ctx context.Context, opts PositionOptions) (Position, error) {
	return Position(s), nil
}

// ReverseGeocoder resolves coordinates to an address.
type ReverseGeocoder interface {
	Reverse(ctx context.Context, lat, lon float64) (string, error)
}

// Result is a resolved location. Fallback marks the degraded path where
// Address is the fixed-precision coordinate string rather than a street
// address.
type Result struct {
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Fallback  bool    `json:"fallback"`
}

// Locator runs the full location flow: request a position, reverse-geocode
// it, and fall back to coordinates when no address comes back. At most one
// lookup is in flight at a time; concurrent calls get ErrBusy.
type Locator struct {
	geocoder ReverseGeocoder
	notifier services.Notifier
	busy     atomic.Bool
}

func NewLocator(geocoder ReverseGeocoder, notifier services.Notifier) *Locator {
	return &Locator{geocoder: geocoder, notifier: notifier}
}

// Busy reports whether a lookup is currently outstanding.
func (l *Locator) Busy() bool {
	return l.busy.Load()
}

// Locate resolves the source's position to an address. Position failures are
// hard errors surfaced per reason; reverse-geocoding failures are degraded
// successes that fall back to a "lat, lon" string.
func (l *Locator) Locate(ctx context.Context, source PositionSource) (Result, error) {
	if !l.busy.CompareAndSwap(false, true) {
		return Result{}, ErrBusy
	}
	defer l.busy.Store(false)

	l.notify(services.Notification{
		Level:   services.NotifyInfo,
		Title:   "🛰️ Getting your location...",
		Message: "Please allow location access when prompted.",
	})

	pos, err := source.CurrentPosition(ctx, DefaultPositionOptions)
	if err != nil {
		l.notify(services.Notification{
			Level:   services.NotifyError,
			Title:   "❌ Location Error",
			Message: positionErrorMessage(err),
		})
		return Result{}, err
	}

	result := Result{Latitude: pos.Latitude, Longitude: pos.Longitude}

	address, err := l.geocoder.Reverse(ctx, pos.Latitude, pos.Longitude)
	switch {
	case err == nil:
		result.Address = address
		l.notify(services.Notification{
			Level:   services.NotifySuccess,
			Title:   "📍 Location Found!",
			Message: "Your current address has been automatically filled in.",
		})
	case errors.Is(err, ErrNoAddress):
		result.Address = utils.FormatCoordinates(pos.Latitude, pos.Longitude)
		result.Fallback = true
		l.notify(services.Notification{
			Level:   services.NotifyInfo,
			Title:   "📍 Coordinates Set",
			Message: "Using your GPS coordinates as location.",
		})
	default:
		result.Address = utils.FormatCoordinates(pos.Latitude, pos.Longitude)
		result.Fallback = true
		l.notify(services.Notification{
			Level:   services.NotifyWarning,
			Title:   "⚠️ Address lookup failed",
			Message: "Using GPS coordinates instead. You can edit this manually.",
		})
	}

	return result, nil
}

func positionErrorMessage(err error) string {
	const prefix = "Could not get your location. "
	switch {
	case errors.Is(err, ErrPermissionDenied):
		return prefix + "Please allow location access in your browser settings."
	case errors.Is(err, ErrPositionUnavailable):
		return prefix + "Location information is unavailable."
	case errors.Is(err, ErrPositionTimeout):
		return prefix + "Location request timed out."
	default:
		return prefix + "An unknown error occurred."
	}
}

func (l *Locator) notify(n services.Notification) {
	if l.notifier != nil {
		l.notifier.Notify(n)
	}
}
