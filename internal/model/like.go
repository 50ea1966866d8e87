package model

import (
	"time"
)

type Like struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	PostID    uint64    `gorm:"primaryKey;index:idx_like_post" json:"postId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (Like) TableName() string {
	return "likes"
}

type ClipLike struct {
	UserID    uint64    `gorm:"primaryKey" json:"userId"`
	ClipID    uint64    `gorm:"primaryKey;index:idx_clip_like_clip" json:"clipId"`
	CreatedAt time.Time `json:"createdAt"`
}

func (ClipLike) TableName() string {
	return "clip_likes"
}
