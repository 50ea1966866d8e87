package model

import "time"

// NotificationPref is the per (user, type) email switch. A missing row
// means email stays enabled for that type.
type NotificationPref struct {
	UserID       uint64    `gorm:"primaryKey" json:"userId"`
	Type         string    `gorm:"primaryKey;type:varchar(32)" json:"type"`
	EmailEnabled bool      `gorm:"not null;default:true" json:"emailEnabled"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (NotificationPref) TableName() string {
	return "notification_prefs"
}
