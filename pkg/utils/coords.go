package utils

import "fmt"

// FormatCoordinates renders a position as the fixed-precision fallback
// string used when no street address is available.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.6f, %.6f", lat, lng)
}

// ValidCoordinates checks that a latitude/longitude pair is on the globe.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}
