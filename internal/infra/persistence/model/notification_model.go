package model

import (
	"time"

	"eventify/internal/domain/entity"
)

// NotificationFromDoc maps a raw notification document to its entity.
// The timestamp is stored as an RFC3339 string; an unparseable or
// missing value yields the zero time rather than an error.
func NotificationFromDoc(id string, data map[string]any) *entity.Notification {
	read, _ := data["read"].(bool)

	var timestamp time.Time
	if raw := stringField(data, "timestamp"); raw != "" {
		if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
			timestamp = parsed
		}
	}

	return &entity.Notification{
		ID:          id,
		BusinessID:  stringField(data, "businessId"),
		ProductName: stringField(data, "productName"),
		EventID:     stringField(data, "eventId"),
		EventTitle:  stringField(data, "eventTitle"),
		Timestamp:   timestamp,
		Read:        read,
	}
}

// NotificationToDoc converts a notification entity to its stored shape.
func NotificationToDoc(notification *entity.Notification) map[string]any {
	return map[string]any{
		"businessId":  notification.BusinessID,
		"productName": notification.ProductName,
		"eventId":     notification.EventID,
		"eventTitle":  notification.EventTitle,
		"timestamp":   notification.Timestamp.Format(time.RFC3339),
		"read":        notification.Read,
	}
}
