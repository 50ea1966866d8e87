package model

import "time"

// Post is a feed entry. LikesCount and CommentsCount are denormalized and
// maintained with atomic column increments alongside child-row writes.
type Post struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID      uint64    `gorm:"not null;index:idx_post_author" json:"authorId"`
	GroupID       uint64    `gorm:"not null;default:0;index:idx_post_group" json:"groupId"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	MediaURL      string    `gorm:"type:varchar(255)" json:"mediaUrl"`
	LinkURL       string    `gorm:"type:varchar(500)" json:"linkUrl"`
	LinkTitle     string    `gorm:"type:varchar(255)" json:"linkTitle"`
	LinkExcerpt   string    `gorm:"type:varchar(500)" json:"linkExcerpt"`
	LinkImageURL  string    `gorm:"type:varchar(500)" json:"linkImageUrl"`
	LikesCount    int64     `gorm:"not null;default:0" json:"likesCount"`
	CommentsCount int64     `gorm:"not null;default:0" json:"commentsCount"`
	Status        int8      `gorm:"not null;default:1" json:"status"`
	CreatedAt     time.Time `gorm:"index" json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Post) TableName() string {
	return "posts"
}
