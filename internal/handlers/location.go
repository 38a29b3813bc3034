package handlers

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/geocode"
	"github.com/ruralconnect/ruralconnect-backend/pkg/utils"
)

// ResolveLocation turns browser-reported coordinates into an address via the
// locator flow. A degraded lookup still answers 200 with the coordinate
// fallback; only position failures are errors.
func ResolveLocation(locator *geocode.Locator) gin.HandlerFunc {
	return func(c *gin.Context) {
		lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
		lon, lonErr := strconv.ParseFloat(c.Query("lon"), 64)
		if latErr != nil || lonErr != nil {
			c.JSON(400, gin.H{"error": "lat and lon query parameters are required"})
			return
		}
		if !utils.ValidCoordinates(lat, lon) {
			c.JSON(400, gin.H{"error": "coordinates out of range"})
			return
		}

		source := geocode.StaticSource{Latitude: lat, Longitude: lon}
		result, err := locator.Locate(c.Request.Context(), source)
		if err != nil {
			switch {
			case errors.Is(err, geocode.ErrBusy):
				c.JSON(409, gin.H{"error": "A location request is already in progress"})
			case errors.Is(err, geocode.ErrPermissionDenied):
				c.JSON(403, gin.H{"error": "Location permission denied"})
			case errors.Is(err, geocode.ErrPositionUnavailable):
				c.JSON(503, gin.H{"error": "Location information is unavailable"})
			case errors.Is(err, geocode.ErrPositionTimeout):
				c.JSON(504, gin.H{"error": "Location request timed out"})
			default:
				c.JSON(500, gin.H{"error": "Failed to resolve location"})
			}
			return
		}

		c.JSON(200, result)
	}
}
