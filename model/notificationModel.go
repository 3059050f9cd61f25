// model/notification.go
package model

import "time"

type NotificationType string

const (
	NotifSuccess NotificationType = "success"
	NotifInfo    NotificationType = "info"
	NotifWarning NotificationType = "warning"
)

type Notification struct {
	ID        string           `json:"id"`
	Type      NotificationType `json:"type"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Timestamp time.Time        `json:"timestamp"`
}
