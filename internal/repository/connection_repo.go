package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ConnectionRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Connection, error)
	GetByPair(ctx context.Context, userA, userB uint64) (*model.Connection, error)
	Create(ctx context.Context, conn *model.Connection) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	Delete(ctx context.Context, id uint64) error
	GetAcceptedByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error)
	GetPendingIncoming(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error)
	GetPendingOutgoing(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error)
	CountAcceptedByUser(ctx context.Context, userID uint64) (int64, error)
}

type connectionRepoImpl struct {
	db *gorm.DB
}

func NewConnectionRepo(db *gorm.DB) ConnectionRepo {
	return &connectionRepoImpl{db: db}
}

// GetByID fetches a connection row by primary key
func (s *connectionRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Connection, error) {
	var conn model.Connection
	result := s.db.WithContext(ctx).First(&conn, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &conn, nil
}

// GetByPair looks the unordered pair up in both directions. The pair
// uniqueness invariant rests on this query running before every insert.
func (s *connectionRepoImpl) GetByPair(ctx context.Context, userA, userB uint64) (*model.Connection, error) {
	var conn model.Connection
	result := s.db.WithContext(ctx).
		Where("(requester_id = ? AND addressee_id = ?) OR (requester_id = ? AND addressee_id = ?)",
			userA, userB, userB, userA).
		First(&conn)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &conn, nil
}

// Create inserts a new connection row
func (s *connectionRepoImpl) Create(ctx context.Context, conn *model.Connection) error {
	return s.db.WithContext(ctx).Create(conn).Error
}

// UpdateStatus mutates the status column only
func (s *connectionRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).Model(&model.Connection{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// Delete removes the row. Deleting an absent id is not an error.
func (s *connectionRepoImpl) Delete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Delete(&model.Connection{}, id).Error
}

// GetAcceptedByUser lists a user's accepted connections, newest first
func (s *connectionRepoImpl) GetAcceptedByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	var conns []*model.Connection
	result := s.db.WithContext(ctx).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, model.ConnectionStatusAccepted).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&conns)
	if result.Error != nil {
		return nil, result.Error
	}
	return conns, nil
}

// GetPendingIncoming lists pending requests addressed to the user
func (s *connectionRepoImpl) GetPendingIncoming(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	var conns []*model.Connection
	result := s.db.WithContext(ctx).
		Where("addressee_id = ? AND status = ?", userID, model.ConnectionStatusPending).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&conns)
	if result.Error != nil {
		return nil, result.Error
	}
	return conns, nil
}

// GetPendingOutgoing lists pending requests the user has sent
func (s *connectionRepoImpl) GetPendingOutgoing(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	var conns []*model.Connection
	result := s.db.WithContext(ctx).
		Where("requester_id = ? AND status = ?", userID, model.ConnectionStatusPending).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&conns)
	if result.Error != nil {
		return nil, result.Error
	}
	return conns, nil
}

// CountAcceptedByUser counts a user's accepted connections
func (s *connectionRepoImpl) CountAcceptedByUser(ctx context.Context, userID uint64) (int64, error) {
	var count int64
	result := s.db.WithContext(ctx).Model(&model.Connection{}).
		Where("(requester_id = ? OR addressee_id = ?) AND status = ?",
			userID, userID, model.ConnectionStatusAccepted).
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
