package repository

import (
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"context"
	"errors"

	"gorm.io/gorm"
)

type CampaignRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Campaign, error)
	Create(ctx context.Context, campaign *model.Campaign) error
	Update(ctx context.Context, campaign *model.Campaign) error
	UpdateStatus(ctx context.Context, id uint64, status string) error
	GetActive(ctx context.Context, limit, offset int) ([]*model.Campaign, error)
	GetByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Campaign, error)
	AddPledgeTotals(ctx context.Context, campaignID uint64, amount int64) error
	SetCurrentAmount(ctx context.Context, campaignID uint64, amount int64) error
}

type campaignRepoImpl struct {
	db *gorm.DB
}

func NewCampaignRepo(db *gorm.DB) CampaignRepo {
	return &campaignRepoImpl{db: db}
}

func (s *campaignRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Campaign, error) {
	var campaign model.Campaign
	result := s.db.WithContext(ctx).First(&campaign, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &campaign, nil
}

func (s *campaignRepoImpl) Create(ctx context.Context, campaign *model.Campaign) error {
	return s.db.WithContext(ctx).Create(campaign).Error
}

func (s *campaignRepoImpl) Update(ctx context.Context, campaign *model.Campaign) error {
	return s.db.WithContext(ctx).Save(campaign).Error
}

func (s *campaignRepoImpl) UpdateStatus(ctx context.Context, id uint64, status string) error {
	return s.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (s *campaignRepoImpl) GetActive(ctx context.Context, limit, offset int) ([]*model.Campaign, error) {
	var campaigns []*model.Campaign
	result := s.db.WithContext(ctx).
		Where("status = ?", consts.CampaignStatusActive).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

func (s *campaignRepoImpl) GetByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Campaign, error) {
	var campaigns []*model.Campaign
	result := s.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("created_at desc").
		Limit(limit).
		Offset(offset).
		Find(&campaigns)
	if result.Error != nil {
		return nil, result.Error
	}
	return campaigns, nil
}

// AddPledgeTotals bumps the raised amount and backer count together so
// the two never drift apart under concurrent pledges.
func (s *campaignRepoImpl) AddPledgeTotals(ctx context.Context, campaignID uint64, amount int64) error {
	return s.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", campaignID).
		Updates(map[string]interface{}{
			"current_amount": gorm.Expr("current_amount + ?", amount),
			"backers_count":  gorm.Expr("backers_count + ?", 1),
		}).Error
}

// SetCurrentAmount overwrites the cached total, used when a recount
// finds it drifted from the pledge rows.
func (s *campaignRepoImpl) SetCurrentAmount(ctx context.Context, campaignID uint64, amount int64) error {
	return s.db.WithContext(ctx).Model(&model.Campaign{}).
		Where("id = ?", campaignID).
		Update("current_amount", amount).Error
}
