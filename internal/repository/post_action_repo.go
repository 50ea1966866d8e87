package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type PostActionRepo interface {
	GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error)
	GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error)
	CreateLike(ctx context.Context, like *model.Like) error
	DeleteLike(ctx context.Context, userID, postID uint64) error
	IncrLikesCount(ctx context.Context, postID uint64, delta int) error

	GetClipLike(ctx context.Context, userID, clipID uint64) (*model.ClipLike, error)
	CreateClipLike(ctx context.Context, like *model.ClipLike) error
	DeleteClipLike(ctx context.Context, userID, clipID uint64) error
	IncrClipLikesCount(ctx context.Context, clipID uint64, delta int) error

	GetComment(ctx context.Context, id uint64) (*model.PostComment, error)
	CreateComment(ctx context.Context, comment *model.PostComment) error
	SoftDeleteComment(ctx context.Context, id uint64) error
	IncrCommentsCount(ctx context.Context, postID uint64, delta int) error
	GetCommentsByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error)
}

type postActionRepoImpl struct {
	db *gorm.DB
}

func NewPostActionRepo(db *gorm.DB) PostActionRepo {
	return &postActionRepoImpl{db: db}
}

func (s *postActionRepoImpl) GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	var like model.Like
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &like, nil
}

// GetLikedPostIDs filters the given posts down to those the user liked
func (s *postActionRepoImpl) GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	if len(postIDs) == 0 {
		return nil, nil
	}
	var ids []uint64
	result := s.db.WithContext(ctx).Model(&model.Like{}).
		Select("post_id").
		Where("user_id = ? AND post_id IN ?", userID, postIDs).
		Find(&ids)
	if result.Error != nil {
		return nil, result.Error
	}
	return ids, nil
}

func (s *postActionRepoImpl) CreateLike(ctx context.Context, like *model.Like) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *postActionRepoImpl) DeleteLike(ctx context.Context, userID, postID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND post_id = ?", userID, postID).
		Delete(&model.Like{}).Error
}

// IncrLikesCount adjusts the denormalized counter in one UPDATE so
// concurrent likes never lose increments.
func (s *postActionRepoImpl) IncrLikesCount(ctx context.Context, postID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func (s *postActionRepoImpl) GetClipLike(ctx context.Context, userID, clipID uint64) (*model.ClipLike, error) {
	var like model.ClipLike
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND clip_id = ?", userID, clipID).
		First(&like)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &like, nil
}

func (s *postActionRepoImpl) CreateClipLike(ctx context.Context, like *model.ClipLike) error {
	return s.db.WithContext(ctx).Create(like).Error
}

func (s *postActionRepoImpl) DeleteClipLike(ctx context.Context, userID, clipID uint64) error {
	return s.db.WithContext(ctx).
		Where("user_id = ? AND clip_id = ?", userID, clipID).
		Delete(&model.ClipLike{}).Error
}

func (s *postActionRepoImpl) IncrClipLikesCount(ctx context.Context, clipID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Clip{}).
		Where("id = ?", clipID).
		Update("likes_count", gorm.Expr("likes_count + ?", delta)).Error
}

func (s *postActionRepoImpl) GetComment(ctx context.Context, id uint64) (*model.PostComment, error) {
	var comment model.PostComment
	result := s.db.WithContext(ctx).
		Where("id = ? AND is_deleted = ?", id, false).
		First(&comment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &comment, nil
}

func (s *postActionRepoImpl) CreateComment(ctx context.Context, comment *model.PostComment) error {
	return s.db.WithContext(ctx).Create(comment).Error
}

func (s *postActionRepoImpl) SoftDeleteComment(ctx context.Context, id uint64) error {
	return s.db.WithContext(ctx).Model(&model.PostComment{}).
		Where("id = ?", id).
		Update("is_deleted", true).Error
}

func (s *postActionRepoImpl) IncrCommentsCount(ctx context.Context, postID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Post{}).
		Where("id = ?", postID).
		Update("comments_count", gorm.Expr("comments_count + ?", delta)).Error
}

func (s *postActionRepoImpl) GetCommentsByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	var comments []*model.PostComment
	result := s.db.WithContext(ctx).
		Where("post_id = ? AND is_deleted = ?", postID, false).
		Order("created_at asc").
		Limit(limit).
		Offset(offset).
		Find(&comments)
	if result.Error != nil {
		return nil, result.Error
	}
	return comments, nil
}
