package model

import "time"

// Clip is a short-form video entry, sharing the like accounting of posts
type Clip struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID   uint64    `gorm:"not null;index:idx_clip_author" json:"authorId"`
	Title      string    `gorm:"type:varchar(255)" json:"title"`
	VideoURL   string    `gorm:"type:varchar(255);not null" json:"videoUrl"`
	CoverURL   string    `gorm:"type:varchar(255)" json:"coverUrl"`
	Duration   int       `gorm:"not null;default:0" json:"duration"`
	LikesCount int64     `gorm:"not null;default:0" json:"likesCount"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
}

func (Clip) TableName() string {
	return "clips"
}
