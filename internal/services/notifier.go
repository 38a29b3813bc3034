package services

import (
	"encoding/json"
	"log"
)

type NotificationLevel string

const (
	NotifySuccess NotificationLevel = "success"
	NotifyInfo    NotificationLevel = "info"
	NotifyWarning NotificationLevel = "warning"
	NotifyError   NotificationLevel = "error"
)

// Notification is a transient user-visible message, the server-side
// equivalent of the UI's toasts. Every failure in the system is recovered
// where it happens and surfaced as one of these; none are fatal and none are
// retried.
type Notification struct {
	Level   NotificationLevel `json:"level"`
	Title   string            `json:"title"`
	Message string            `json:"message"`
}

// Notifier delivers notifications to whoever is watching.
type Notifier interface {
	Notify(n Notification)
}

// HubNotifier broadcasts notifications to all connected views over the
// WebSocket hub and traces them to the log.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

func (n *HubNotifier) Notify(notification Notification) {
	log.Printf("[%s] %s: %s", notification.Level, notification.Title, notification.Message)

	payload, err := json.Marshal(map[string]interface{}{
		"type": "notification",
		"data": notification,
	})
	if err != nil {
		log.Printf("Failed to marshal notification: %v", err)
		return
	}

	n.hub.Broadcast(payload)
}
