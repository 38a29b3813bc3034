package handlers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/models"
	"github.com/ruralconnect/ruralconnect-backend/internal/stats"
	"github.com/ruralconnect/ruralconnect-backend/internal/store"
)

// recentActivity is placeholder feed content until ride events are recorded.
var recentActivity = []gin.H{
	{"id": 1, "action": "Completed ride to County Hospital", "time": "2 hours ago", "type": "completed"},
	{"id": 2, "action": "New booking request from Mike T.", "time": "5 hours ago", "type": "booking"},
	{"id": 3, "action": "Ride offer created for Market Square", "time": "1 day ago", "type": "offer"},
	{"id": 4, "action": "Received 5-star rating from Emma D.", "time": "2 days ago", "type": "rating"},
}

// GetDashboard computes the dashboard view: the current user's ride summary,
// the next three upcoming rides across all drivers, and the user's own
// listings. Everything is derived from the snapshot on each request.
func GetDashboard(rides *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		snapshot := rides.Snapshot()
		self := rides.Self()

		summary := stats.Summarize(snapshot, self)
		rating := "N/A"
		if summary.HasRating {
			rating = fmt.Sprintf("%.1f", summary.AverageRating)
		}

		myRides := make([]models.Ride, 0)
		for _, ride := range snapshot {
			if ride.Driver == self {
				myRides = append(myRides, ride)
			}
		}

		c.JSON(200, gin.H{
			"stats": gin.H{
				"totalRides":    summary.TotalRides,
				"totalEarnings": summary.TotalEarnings,
				"averageRating": rating,
				"co2SavedKg":    summary.CO2SavedKg,
			},
			"upcomingRides":  stats.Upcoming(snapshot, time.Now()),
			"myRides":        myRides,
			"recentActivity": recentActivity,
		})
	}
}
