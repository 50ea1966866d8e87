package mongo

import (
	"time"
)

// Message DM message document
type Message struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	ConversationID uint64    `bson:"conversation_id" json:"conversationId"` // Postgres conversation id
	SenderID       uint64    `bson:"sender_id" json:"senderId"`
	MsgType        int       `bson:"msg_type" json:"msgType"` // 1-text, 2-media, 3-recalled
	Content        string    `bson:"content" json:"content"`
	Seq            uint64    `bson:"seq" json:"seq"` // absolute per-conversation sequence, issued by Postgres
	CreatedAt      time.Time `bson:"created_at" json:"createdAt"`
}
