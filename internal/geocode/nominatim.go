// Package geocode turns device coordinates into human-readable addresses via
// the Nominatim reverse-geocoding endpoint, falling back to raw coordinates
// when no address can be resolved.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the public Nominatim instance.
const DefaultBaseURL = "https://nominatim.openstreetmap.org"

// userAgent identifies this application per Nominatim's usage policy.
const userAgent = "RuralConnect/1.0"

// ErrNoAddress means the endpoint answered cleanly but without a
// display_name. Callers treat it differently from transport failures: the
// lookup "worked", there is just no address at that point.
var ErrNoAddress = errors.New("no address found")

// Cache stores resolved addresses keyed by coordinates.
type Cache interface {
	GetAddress(ctx context.Context, lat, lon float64) (string, bool)
	SetAddress(ctx context.Context, lat, lon float64, address string)
}

// Client is a Nominatim reverse-geocoding client with an optional cache.
type Client struct {
	httpClient *http.Client
	baseURL    string
	cache      Cache
}

// NewClient builds a client against baseURL (the public instance when
// empty). cache may be nil.
func NewClient(baseURL string, cache Cache) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		baseURL:    baseURL,
		cache:      cache,
	}
}

// Reverse resolves coordinates to a display address. Returns ErrNoAddress
// when the response is well-formed but carries no address; any other
// problem is a hard failure.
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	if c.cache != nil {
		if address, ok := c.cache.GetAddress(ctx, lat, lon); ok {
			return address, nil
		}
	}

	url := fmt.Sprintf("%s/reverse?format=json&lat=%f&lon=%f&zoom=18&addressdetails=1",
		c.baseURL, lat, lon)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("reverse geocoding request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("reverse geocoding failed: status %d", resp.StatusCode)
	}

	var payload struct {
		DisplayName string `json:"display_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", fmt.Errorf("reverse geocoding response invalid: %w", err)
	}

	if payload.DisplayName == "" {
		return "", ErrNoAddress
	}

	if c.cache != nil {
		c.cache.SetAddress(ctx, lat, lon, payload.DisplayName)
	}
	return payload.DisplayName, nil
}
