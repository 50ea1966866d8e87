package es

import "time"

// PostES post document as written to the index
type PostES struct {
	ID            uint64    `json:"id"`
	AuthorID      uint64    `json:"author_id"`
	GroupID       uint64    `json:"group_id"`
	Status        int       `json:"status"`
	Content       string    `json:"content"`
	LinkTitle     string    `json:"link_title"`
	AuthorName    string    `json:"author_name"`
	AuthorAvatar  string    `json:"author_avatar"`
	LikesCount    int64     `json:"likes_count"`
	CommentsCount int64     `json:"comments_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
