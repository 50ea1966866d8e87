package repository

import (
	"circle/internal/model"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type ConversationRepo interface {
	GetByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error)
	GetByID(ctx context.Context, id uint64) (*model.Conversation, error)
	Create(ctx context.Context, conv *model.Conversation, members []*model.ConversationMember) error
	IncrMaxSeq(ctx context.Context, convID uint64, content string, senderID uint64) (uint64, error)
	GetMember(ctx context.Context, convID, userID uint64) (*model.ConversationMember, error)
	GetMembers(ctx context.Context, convID uint64) ([]*model.ConversationMember, error)
	UpdateReadSeq(ctx context.Context, convID, userID, seq uint64) error
	GetConversationList(ctx context.Context, userID uint64) ([]*model.ConversationMember, error)
}

type conversationRepoImpl struct {
	db *gorm.DB
}

func NewConversationRepo(db *gorm.DB) ConversationRepo {
	return &conversationRepoImpl{db: db}
}

func (s *conversationRepoImpl) GetByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error) {
	var conv model.Conversation
	result := s.db.WithContext(ctx).Where("peer_key = ?", peerKey).First(&conv)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &conv, nil
}

func (s *conversationRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Conversation, error) {
	var conv model.Conversation
	result := s.db.WithContext(ctx).First(&conv, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &conv, nil
}

// Create inserts the conversation head and both member rows atomically.
func (s *conversationRepoImpl) Create(ctx context.Context, conv *model.Conversation, members []*model.ConversationMember) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(conv).Error; err != nil {
			return err
		}
		for _, m := range members {
			m.ConversationID = conv.ID
		}
		return tx.Create(&members).Error
	})
}

// IncrMaxSeq allocates the next message sequence number and rolls the
// head's last-message fields. The UPDATE and the read-back run in one
// transaction so two senders never share a seq.
func (s *conversationRepoImpl) IncrMaxSeq(ctx context.Context, convID uint64, content string, senderID uint64) (uint64, error) {
	var seq uint64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Conversation{}).
			Where("id = ?", convID).
			Updates(map[string]interface{}{
				"max_msg_seq":      gorm.Expr("max_msg_seq + 1"),
				"last_msg_content": content,
				"last_sender_id":   senderID,
				"last_message_at":  time.Now(),
			}).Error; err != nil {
			return err
		}
		var conv model.Conversation
		if err := tx.Select("max_msg_seq").First(&conv, convID).Error; err != nil {
			return err
		}
		seq = conv.MaxMsgSeq
		return nil
	})
	if err != nil {
		return 0, err
	}
	return seq, nil
}

func (s *conversationRepoImpl) GetMember(ctx context.Context, convID, userID uint64) (*model.ConversationMember, error) {
	var member model.ConversationMember
	result := s.db.WithContext(ctx).
		Where("conversation_id = ? AND user_id = ?", convID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &member, nil
}

func (s *conversationRepoImpl) GetMembers(ctx context.Context, convID uint64) ([]*model.ConversationMember, error) {
	var members []*model.ConversationMember
	result := s.db.WithContext(ctx).
		Where("conversation_id = ?", convID).
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (s *conversationRepoImpl) UpdateReadSeq(ctx context.Context, convID, userID, seq uint64) error {
	return s.db.WithContext(ctx).Model(&model.ConversationMember{}).
		Where("conversation_id = ? AND user_id = ? AND read_msg_seq < ?", convID, userID, seq).
		Update("read_msg_seq", seq).Error
}

// GetConversationList returns the user's conversations with unread counts
// computed against the head's max sequence.
func (s *conversationRepoImpl) GetConversationList(ctx context.Context, userID uint64) ([]*model.ConversationMember, error) {
	var members []*model.ConversationMember
	result := s.db.WithContext(ctx).
		Table("conversation_members AS cm").
		Select("cm.*, c.max_msg_seq - cm.read_msg_seq AS unread_count").
		Joins("JOIN conversations AS c ON c.id = cm.conversation_id").
		Where("cm.user_id = ?", userID).
		Order("c.updated_at desc").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}
