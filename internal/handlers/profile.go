package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"github.com/ruralconnect/ruralconnect-backend/internal/services"
)

// Placeholder profile data. There are no accounts yet, so the profile view
// serves the same fixture to everyone and edits are rejected explicitly.
var currentProfile = models.Profile{
	Name:       "John Smith",
	Email:      "john.smith@email.com",
	Phone:      "+1 (555) 123-4567",
	Location:   "Millbrook Village",
	Bio:        "Friendly local farmer who loves helping neighbors get around. Been driving these rural roads for over 20 years!",
	Rating:     4.8,
	TotalRides: 156,
	JoinDate:   "March 2023",
	Vehicles: []models.Vehicle{
		{Type: "car", Model: "2018 Toyota Camry", Seats: 4, Verified: true},
		{Type: "bike", Model: "Honda CB500F", Seats: 1, Verified: true},
	},
}

var profileReviews = []models.Review{
	{ID: 1, Reviewer: "Sarah Johnson", Rating: 5, Comment: "John is an excellent driver! Very punctual and friendly. Made the long trip to the city very comfortable.", Date: "2 weeks ago"},
	{ID: 2, Reviewer: "Mike Thompson", Rating: 5, Comment: "Great conversation and safe driving. John knows all the best routes through the countryside.", Date: "1 month ago"},
	{ID: 3, Reviewer: "Emma Davis", Rating: 4, Comment: "Reliable and helpful. John even helped me carry my groceries to the door!", Date: "2 months ago"},
}

// GetProfile retrieves the current user's profile
func GetProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"profile": currentProfile,
			"reviews": profileReviews,
		})
	}
}

// UpdateProfile rejects profile edits; persistence arrives with real
// accounts.
func UpdateProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(501, gin.H{"error": "Profile updates are not yet supported"})
	}
}

// VerifyVehicle is the vehicle-verification stub.
func VerifyVehicle(notifier services.Notifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if notifier != nil {
			notifier.Notify(services.Notification{
				Level:   services.NotifyInfo,
				Title:   "🔍 Verifying vehicle...",
				Message: "🚧 This feature isn't implemented yet.",
			})
		}
		c.JSON(501, gin.H{"error": "Vehicle verification is not yet supported"})
	}
}
