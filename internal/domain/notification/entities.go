package notification

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("notification not found")

// Notification is a fire-and-forget message for one account. Delivery and
// formatting belong to the outer layers; the core only records the event.
type Notification struct {
	ID             uint64 `gorm:"primaryKey;column:id" json:"-"`
	NotificationID string `gorm:"size:32;uniqueIndex:ux_notifications_id" json:"notification_id"`
	AccountID      string `gorm:"size:32;index:idx_notifications_account" json:"account_id"`
	Message        string `gorm:"type:text" json:"message"`
	Link           string `gorm:"size:255" json:"link,omitempty"`
	Read           bool   `gorm:"default:false" json:"read"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Notification) TableName() string { return "notifications" }
