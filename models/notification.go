package models

// NotificationKind categorizes inbox entries
type NotificationKind string

const (
	NotificationOrder     NotificationKind = "order"
	NotificationPromotion NotificationKind = "promotion"
	NotificationSystem    NotificationKind = "system"
	NotificationDelivery  NotificationKind = "delivery"
)

// Notification is a persisted inbox entry. Append-only except for the
// read flag, which only ever flips false→true.
type Notification struct {
	ID        string           `json:"id"`
	Kind      NotificationKind `json:"kind"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Time      string           `json:"time"`
	Timestamp int64            `json:"timestamp"`
	IsRead    bool             `json:"is_read"`
	Image     string           `json:"image,omitempty"`
}
