package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/search"
	"github.com/ruralconnect/ruralconnect-backend/internal/services"
	"github.com/ruralconnect/ruralconnect-backend/internal/store"
)

// SearchRides filters the ride snapshot by the find-ride form fields. No
// criteria returns the whole snapshot.
func SearchRides(rides *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var criteria search.Criteria
		if err := c.ShouldBindQuery(&criteria); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		matches := search.Filter(rides.Snapshot(), criteria)
		status, _ := rides.State()

		c.JSON(200, gin.H{
			"rides":  matches,
			"count":  len(matches),
			"status": status,
		})
	}
}

// CreateRide handles the offer-ride form. Seats and price arrive as strings
// and are coerced by the store; nothing else is validated.
func CreateRide(rides *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var draft store.RideDraft
		if err := c.ShouldBindJSON(&draft); err != nil {
			c.JSON(400, gin.H{"error": err.Error()})
			return
		}

		ride, err := rides.Create(c.Request.Context(), draft)
		if err != nil {
			if errors.Is(err, store.ErrInvalidDraft) {
				c.JSON(400, gin.H{"error": err.Error()})
				return
			}
			c.JSON(500, gin.H{"error": "Failed to create ride"})
			return
		}

		c.JSON(201, ride)
	}
}

// BookRide is the booking stub. Booking has no implementation yet; the
// operation answers explicitly instead of silently doing nothing.
func BookRide(notifier services.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if notifier != nil {
			notifier.Notify(services.Notification{
				Level:   services.NotifyInfo,
				Title:   "🚗 Booking ride...",
				Message: "🚧 This feature isn't implemented yet.",
			})
		}
		c.JSON(501, gin.H{"error": "Booking rides is not yet supported"})
	}
}
