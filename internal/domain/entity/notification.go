package entity

import "time"

// Notification records that a product was attached to a customer event,
// awaiting acknowledgment by the owning business. Notifications are
// created by the attach action, mutated only by the read transition and
// never deleted by this subsystem.
type Notification struct {
	ID          string    `json:"id"`
	BusinessID  string    `json:"businessId"`
	ProductName string    `json:"productName"`
	EventID     string    `json:"eventId"`
	EventTitle  string    `json:"eventTitle"`
	Timestamp   time.Time `json:"timestamp"` // Stored as an RFC3339 string.
	Read        bool      `json:"read"`
}
