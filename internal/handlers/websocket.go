package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/ruralconnect/ruralconnect-backend/internal/services"
)

// WebSocketHandler upgrades the connection and attaches the view to the
// notification stream.
func WebSocketHandler(hub *services.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		services.HandleWebSocket(hub, c.Writer, c.Request)
	}
}
