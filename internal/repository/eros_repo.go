package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type ErosRepo interface {
	GetByUserID(ctx context.Context, userID uint64) (*model.ErosProfile, error)
	Upsert(ctx context.Context, profile *model.ErosProfile) error
	Deactivate(ctx context.Context, userID uint64) error
	GetCandidates(ctx context.Context, seekerID uint64, gender string, limit int) ([]*model.ErosProfile, error)
}

type erosRepoImpl struct {
	db *gorm.DB
}

func NewErosRepo(db *gorm.DB) ErosRepo {
	return &erosRepoImpl{db: db}
}

func (s *erosRepoImpl) GetByUserID(ctx context.Context, userID uint64) (*model.ErosProfile, error) {
	var profile model.ErosProfile
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &profile, nil
}

func (s *erosRepoImpl) Upsert(ctx context.Context, profile *model.ErosProfile) error {
	return s.db.WithContext(ctx).Save(profile).Error
}

func (s *erosRepoImpl) Deactivate(ctx context.Context, userID uint64) error {
	return s.db.WithContext(ctx).Model(&model.ErosProfile{}).
		Where("user_id = ?", userID).
		Update("is_active", false).Error
}

// GetCandidates returns active profiles matching the seeker's preference,
// excluding the seeker's own profile.
func (s *erosRepoImpl) GetCandidates(ctx context.Context, seekerID uint64, gender string, limit int) ([]*model.ErosProfile, error) {
	var profiles []*model.ErosProfile
	query := s.db.WithContext(ctx).
		Where("user_id <> ? AND is_active = ?", seekerID, true)
	if gender != "" {
		query = query.Where("gender = ?", gender)
	}
	result := query.Order("updated_at desc").Limit(limit).Find(&profiles)
	if result.Error != nil {
		return nil, result.Error
	}
	return profiles, nil
}
