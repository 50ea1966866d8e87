package repository

import (
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Post, error)
	Create(ctx context.Context, post *model.Post) error
	Update(ctx context.Context, post *model.Post) error
	SoftDelete(ctx context.Context, id uint64) error
	GetByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error)
	GetByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error)
	GetLatest(ctx context.Context, limit, offset int) ([]*model.Post, error)
}

type postRepoImpl struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) PostRepo {
	return &postRepoImpl{db: db}
}

func (s *postRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	var post model.Post
	result := s.db.WithContext(ctx).
		Where("id = ? AND status = ?", id, consts.PostStatusNormal).
		First(&post)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &post, nil
}

func (s *postRepoImpl) Create(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Create(post).Error
}

func (s *postRepoImpl) Update(ctx context.Context, post *model.Post) error {
	return s.db.WithContext(ctx).Save(post).Error
}

// SoftDelete flips the status; the row stays for counter reconciliation.
func (s *postRepoImpl) SoftDelete(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", id).
		Update("status", consts.PostStatusDeleted).Error
}

// GetByAuthors powers the connection feed: posts from the given authors,
// newest first, group posts excluded.
func (s *postRepoImpl) GetByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("author_id IN ? AND group_id = 0 AND status = ?", authorIDs, consts.PostStatusNormal).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *postRepoImpl) GetByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("group_id = ? AND status = ?", groupID, consts.PostStatusNormal).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

func (s *postRepoImpl) GetLatest(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	var posts []*model.Post
	result := s.db.WithContext(ctx).
		Where("group_id = 0 AND status = ?", consts.PostStatusNormal).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}
