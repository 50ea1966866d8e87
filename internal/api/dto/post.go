package dto

// PostBaseDTO create or edit a post
type PostBaseDTO struct {
	ID      uint64 `json:"id"`
	Content  string `json:"content" binding:"required" validate:"min=1,max=5000"`
	MediaURL string `json:"media_url" validate:"omitempty,url,max=255"`
	LinkURL  string `json:"link_url" validate:"omitempty,url,max=512"`
	GroupID  uint64 `json:"group_id"`
}

// PostDTO a post with its author and counters
type PostDTO struct {
	ID            uint64 `json:"id"`
	Content       string `json:"content"`
	MediaURL      string `json:"media_url,omitempty"`
	GroupID       uint64 `json:"group_id,omitempty"`
	LikesCount    int64  `json:"likes_count"`
	CommentsCount int64  `json:"comments_count"`
	Liked         bool   `json:"liked"`
	CreatedAt     string `json:"created_at"`

	LinkURL      string `json:"link_url,omitempty"`
	LinkTitle    string `json:"link_title,omitempty"`
	LinkExcerpt  string `json:"link_excerpt,omitempty"`
	LinkImageURL string `json:"link_image_url,omitempty"`

	Author *UserDTO `json:"author"`
}

// CommentBaseDTO create a comment
type CommentBaseDTO struct {
	PostID  uint64 `json:"post_id" binding:"required"`
	Content string `json:"content" binding:"required" validate:"min=1,max=1000"`
}

// CommentDTO a comment with its author
type CommentDTO struct {
	ID        uint64   `json:"id"`
	PostID    uint64   `json:"post_id"`
	Content   string   `json:"content"`
	Author    *UserDTO `json:"author"`
	CreatedAt string   `json:"created_at"`
}

// ClipBaseDTO publish a clip
type ClipBaseDTO struct {
	Title    string `json:"title" binding:"required" validate:"min=1,max=255"`
	VideoURL string `json:"video_url" binding:"required" validate:"max=512"`
	CoverURL string `json:"cover_url" validate:"max=512"`
	Duration int    `json:"duration" validate:"omitempty,min=1"`
}

// ClipDTO a clip with its author and counters
type ClipDTO struct {
	ID         uint64   `json:"id"`
	Title      string   `json:"title"`
	VideoURL   string   `json:"video_url"`
	CoverURL   string   `json:"cover_url,omitempty"`
	Duration   int      `json:"duration"`
	LikesCount int64    `json:"likes_count"`
	Liked      bool     `json:"liked"`
	Author     *UserDTO `json:"author"`
	CreatedAt  string   `json:"created_at"`
}
