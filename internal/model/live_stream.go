package model

import "time"

// LiveStream maps a room on the external SFU to its host and metadata.
// Media transport happens entirely on the SFU; this row only tracks state.
type LiveStream struct {
	ID          uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	HostID      uint64     `gorm:"not null;index:idx_stream_host" json:"hostId"`
	RoomName    string     `gorm:"uniqueIndex;type:varchar(128);not null" json:"roomName"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Description string     `gorm:"type:varchar(1000)" json:"description"`
	Status      string     `gorm:"type:varchar(16);not null;default:live;index" json:"status"`
	StartedAt   time.Time  `json:"startedAt"`
	EndedAt     *time.Time `json:"endedAt"`
}

func (LiveStream) TableName() string {
	return "live_streams"
}
