package repository

import (
	"circle/internal/model"
	"context"

	"gorm.io/gorm"
)

type PledgeRepo interface {
	Create(ctx context.Context, pledge *model.Pledge) error
	GetByCampaign(ctx context.Context, campaignID uint64, limit, offset int) ([]*model.Pledge, error)
	GetByBacker(ctx context.Context, backerID uint64, limit, offset int) ([]*model.Pledge, error)
	SumByCampaign(ctx context.Context, campaignID uint64) (int64, error)
}

type pledgeRepoImpl struct {
	db *gorm.DB
}

func NewPledgeRepo(db *gorm.DB) PledgeRepo {
	return &pledgeRepoImpl{db: db}
}

func (s *pledgeRepoImpl) Create(ctx context.Context, pledge *model.Pledge) error {
	return s.db.WithContext(ctx).Create(pledge).Error
}

func (s *pledgeRepoImpl) GetByCampaign(ctx context.Context, campaignID uint64, limit, offset int) ([]*model.Pledge, error) {
	var pledges []*model.Pledge
	result := s.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&pledges)
	if result.Error != nil {
		return nil, result.Error
	}
	return pledges, nil
}

func (s *pledgeRepoImpl) GetByBacker(ctx context.Context, backerID uint64, limit, offset int) ([]*model.Pledge, error) {
	var pledges []*model.Pledge
	result := s.db.WithContext(ctx).
		Where("backer_id = ?", backerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&pledges)
	if result.Error != nil {
		return nil, result.Error
	}
	return pledges, nil
}

// SumByCampaign recomputes the raised total from the pledge rows,
// used by the digest job to spot counter drift.
func (s *pledgeRepoImpl) SumByCampaign(ctx context.Context, campaignID uint64) (int64, error) {
	var total int64
	result := s.db.WithContext(ctx).Model(&model.Pledge{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("campaign_id = ?", campaignID).
		Scan(&total)
	if result.Error != nil {
		return 0, result.Error
	}
	return total, nil
}
