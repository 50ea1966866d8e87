package dto

// NotificationDTO one in-app notification
type NotificationDTO struct {
	ID         string         `json:"id"`
	SenderID   uint64         `json:"sender_id,omitempty"`
	SenderName string         `json:"sender_name,omitempty"`
	AvatarURL  string         `json:"avatar_url,omitempty"`
	Type       string         `json:"type"`
	TargetID   uint64         `json:"target_id,omitempty"`
	Title      string         `json:"title"`
	Content    string         `json:"content"`
	Payload    map[string]any `json:"payload,omitempty"`
	IsRead     bool           `json:"is_read"`
	CreatedAt  string         `json:"created_at"`
}

// NotificationUnreadDTO unread counter
type NotificationUnreadDTO struct {
	UnreadCount int64 `json:"unread_count"`
}

// NotificationPrefDTO per-type email switch
type NotificationPrefDTO struct {
	Type         string `json:"type" binding:"required"`
	EmailEnabled bool   `json:"email_enabled"`
}
