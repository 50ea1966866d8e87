package repository

import (
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

type LiveStreamRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.LiveStream, error)
	GetByRoomName(ctx context.Context, roomName string) (*model.LiveStream, error)
	Create(ctx context.Context, stream *model.LiveStream) error
	End(ctx context.Context, id uint64) error
	GetLive(ctx context.Context, limit, offset int) ([]*model.LiveStream, error)
}

type liveStreamRepoImpl struct {
	db *gorm.DB
}

func NewLiveStreamRepo(db *gorm.DB) LiveStreamRepo {
	return &liveStreamRepoImpl{db: db}
}

func (s *liveStreamRepoImpl) GetByID(ctx context.Context, id uint64) (*model.LiveStream, error) {
	var stream model.LiveStream
	result := s.db.WithContext(ctx).First(&stream, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &stream, nil
}

func (s *liveStreamRepoImpl) GetByRoomName(ctx context.Context, roomName string) (*model.LiveStream, error) {
	var stream model.LiveStream
	result := s.db.WithContext(ctx).Where("room_name = ?", roomName).First(&stream)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &stream, nil
}

func (s *liveStreamRepoImpl) Create(ctx context.Context, stream *model.LiveStream) error {
	return s.db.WithContext(ctx).Create(stream).Error
}

func (s *liveStreamRepoImpl) End(ctx context.Context, id uint64) error {
	now := time.Now()
	return s.db.WithContext(ctx).Model(&model.LiveStream{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":   consts.LiveStatusEnded,
			"ended_at": &now,
		}).Error
}

func (s *liveStreamRepoImpl) GetLive(ctx context.Context, limit, offset int) ([]*model.LiveStream, error) {
	var streams []*model.LiveStream
	result := s.db.WithContext(ctx).
		Where("status = ?", consts.LiveStatusLive).
		Order("started_at desc").
		Limit(limit).
		Offset(offset).
		Find(&streams)
	if result.Error != nil {
		return nil, result.Error
	}
	return streams, nil
}
