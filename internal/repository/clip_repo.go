package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ClipRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Clip, error)
	Create(ctx context.Context, clip *model.Clip) error
	GetLatest(ctx context.Context, limit, offset int) ([]*model.Clip, error)
	GetByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Clip, error)
}

type clipRepoImpl struct {
	db *gorm.DB
}

func NewClipRepo(db *gorm.DB) ClipRepo {
	return &clipRepoImpl{db: db}
}

func (s *clipRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Clip, error) {
	var clip model.Clip
	result := s.db.WithContext(ctx).First(&clip, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &clip, nil
}

func (s *clipRepoImpl) Create(ctx context.Context, clip *model.Clip) error {
	return s.db.WithContext(ctx).Create(clip).Error
}

func (s *clipRepoImpl) GetLatest(ctx context.Context, limit, offset int) ([]*model.Clip, error) {
	var clips []*model.Clip
	result := s.db.WithContext(ctx).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&clips)
	if result.Error != nil {
		return nil, result.Error
	}
	return clips, nil
}

func (s *clipRepoImpl) GetByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Clip, error) {
	var clips []*model.Clip
	result := s.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&clips)
	if result.Error != nil {
		return nil, result.Error
	}
	return clips, nil
}
