package dto

import "time"

// SendMessageReq send a direct message
type SendMessageReq struct {
	ConversationID uint64 `json:"conversation_id"`
	TargetUserID   uint64 `json:"target_user_id"`
	MsgType        int    `json:"msg_type" binding:"required"` // 1-text, 2-image
	Content        string `json:"content" binding:"required" validate:"max=2000"`
}

// MessageDTO one message
type MessageDTO struct {
	ID             string    `json:"id,omitempty"`
	ConversationID uint64    `json:"conversation_id"`
	SenderID       uint64    `json:"sender_id"`
	MsgType        int       `json:"msg_type"`
	Content        string    `json:"content"`
	Seq            uint64    `json:"seq"`
	CreatedAt      time.Time `json:"created_at"`
}

// ConversationDTO conversation list item
type ConversationDTO struct {
	ConversationID uint64    `json:"conversation_id"`
	Peer           *UserDTO  `json:"peer"`
	LastMsgContent string    `json:"last_msg_content"`
	LastSenderID   uint64    `json:"last_sender_id"`
	LastMessageAt  time.Time `json:"last_message_at"`
	UnreadCount    uint64    `json:"unread_count"`
}

// ReadReceiptDTO pushed to the peer channel when the other side reads
type ReadReceiptDTO struct {
	ConversationID uint64 `json:"conversation_id"`
	UserID         uint64 `json:"user_id"`
	ReadSeq        uint64 `json:"read_seq"`
	Type           string `json:"type"`
}

// MarkAsReadReq mark messages read up to a sequence
type MarkAsReadReq struct {
	ConversationID uint64 `json:"conversation_id" binding:"required"`
	Sequence       uint64 `json:"sequence" binding:"required"`
}
