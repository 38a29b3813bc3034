package handlers

import (
	"github.com/gin-gonic/gin"
)

// Static home view content: community stats and the feature list shown on
// the landing page.
var communityStats = []gin.H{
	{"number": "5,200+", "label": "Active Members"},
	{"number": "28,500+", "label": "Successful Rides"},
	{"number": "120+", "label": "Rural Communities"},
	{"number": "4.9★", "label": "Average Rating"},
}

var features = []gin.H{
	{"title": "Local Route Intelligence", "description": "Navigate rural roads with confidence using our specialized local route intelligence"},
	{"title": "Trusted Community", "description": "Ride with verified neighbors from your own rural community"},
	{"title": "Flexible Scheduling", "description": "Find or offer rides that fit around farm work and village life"},
	{"title": "Fair Pricing", "description": "Transparent per-passenger pricing set by the people offering rides"},
}

// GetHome serves the landing view content.
func GetHome() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(200, gin.H{
			"stats":    communityStats,
			"features": features,
		})
	}
}
