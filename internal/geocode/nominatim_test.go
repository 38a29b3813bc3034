package geocode

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCache struct {
	entries map[string]string
	sets    int
}

func (f *fakeCache) key(lat, lon float64) string {
	return fmt.Sprintf("%f:%f", lat, lon)
}

func (f *fakeCache) GetAddress(ctx context.Context, lat, lon float64) (string, bool) {
	address, ok := f.entries[f.key(lat, lon)]
	return address, ok
}

func (f *fakeCache) SetAddress(ctx context.Context, lat, lon float64, address string) {
	if f.entries == nil {
		f.entries = make(map[string]string)
	}
	f.entries[f.key(lat, lon)] = address
	f.sets++
}

func TestReverseReturnsDisplayName(t *testing.T) {
	var gotRequest *http.Request
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotRequest = r.Clone(context.Background())
		w.Write([]byte(`{"display_name": "123 Main St"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	address, err := client.Reverse(context.Background(), 40.7128, -74.006)
	require.NoError(t, err)
	assert.Equal(t, "123 Main St", address)

	require.NotNil(t, gotRequest)
	assert.Equal(t, "/reverse", gotRequest.URL.Path)
	q := gotRequest.URL.Query()
	assert.Equal(t, "json", q.Get("format"))
	assert.Equal(t, "18", q.Get("zoom"))
	assert.Equal(t, "1", q.Get("addressdetails"))
	assert.NotEmpty(t, q.Get("lat"))
	assert.NotEmpty(t, q.Get("lon"))
	assert.Equal(t, "RuralConnect/1.0", gotRequest.Header.Get("User-Agent"))
}

func TestReverseEmptyResponseIsNoAddress(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Reverse(context.Background(), 1, 2)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestReverseNonOKStatusIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Reverse(context.Background(), 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAddress)
}

func TestReverseMalformedBodyIsFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewClient(server.URL, nil)
	_, err := client.Reverse(context.Background(), 1, 2)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoAddress)
}

func TestReverseUsesCache(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{"display_name": "Mill Road"}`))
	}))
	defer server.Close()

	cache := &fakeCache{}
	client := NewClient(server.URL, cache)

	for i := 0; i < 3; i++ {
		address, err := client.Reverse(context.Background(), 51.5, -0.12)
		require.NoError(t, err)
		assert.Equal(t, "Mill Road", address)
	}

	assert.Equal(t, 1, calls, "subsequent lookups come from the cache")
	assert.Equal(t, 1, cache.sets)
}
