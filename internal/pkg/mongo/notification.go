package mongo

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notification types
const (
	TypeConnectionRequest  = "connection_request"
	TypeConnectionAccepted = "connection_accepted"
	TypeMessage            = "message"
	TypePostLike           = "post_like"
	TypePostComment        = "post_comment"
	TypeGroupJoin          = "group_join"
	TypePledgeReceived     = "pledge_received"
	TypeWeeklyDigest       = "weekly_digest"
)

// NotificationModel in-app notification document
type NotificationModel struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	ReceiverID uint64             `bson:"receiver_id" json:"receiverId"`
	SenderID   uint64             `bson:"sender_id" json:"senderId"` // 0 means the system itself
	Type       string             `bson:"type" json:"type"`
	TargetID   uint64             `bson:"target_id" json:"targetId"` // linked entity: post, connection, campaign...
	Title      string             `bson:"title" json:"title"`
	Content    string             `bson:"content" json:"content"`
	Payload    map[string]any     `bson:"payload" json:"payload"` // free-form data used for client-side linking
	IsRead     bool               `bson:"is_read" json:"isRead"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
}
