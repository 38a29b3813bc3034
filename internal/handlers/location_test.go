package handlers

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/geocode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGeocoder struct {
	address string
	err     error
}

func (s stubGeocoder) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	return s.address, s.err
}

func TestResolveLocationReturnsAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	locator := geocode.NewLocator(stubGeocoder{address: "123 Main St"}, nil)
	r := gin.New()
	r.GET("/api/location/resolve", ResolveLocation(locator))

	w := performRequest(r, "GET", "/api/location/resolve?lat=40.7128&lon=-74.0060", nil)
	require.Equal(t, 200, w.Code)

	var result geocode.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "123 Main St", result.Address)
	assert.False(t, result.Fallback)
}

func TestResolveLocationFallsBackToCoordinates(t *testing.T) {
	gin.SetMode(gin.TestMode)
	locator := geocode.NewLocator(stubGeocoder{err: geocode.ErrNoAddress}, nil)
	r := gin.New()
	r.GET("/api/location/resolve", ResolveLocation(locator))

	w := performRequest(r, "GET", "/api/location/resolve?lat=40.712800&lon=-74.006000", nil)
	require.Equal(t, 200, w.Code)

	var result geocode.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "40.712800, -74.006000", result.Address)
	assert.True(t, result.Fallback)
}

func TestResolveLocationValidatesInput(t *testing.T) {
	gin.SetMode(gin.TestMode)
	locator := geocode.NewLocator(stubGeocoder{}, nil)
	r := gin.New()
	r.GET("/api/location/resolve", ResolveLocation(locator))

	w := performRequest(r, "GET", "/api/location/resolve", nil)
	assert.Equal(t, 400, w.Code)

	w = performRequest(r, "GET", "/api/location/resolve?lat=abc&lon=1", nil)
	assert.Equal(t, 400, w.Code)

	w = performRequest(r, "GET", "/api/location/resolve?lat=95&lon=10", nil)
	assert.Equal(t, 400, w.Code)
}
