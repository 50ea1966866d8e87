package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/util"
	"context"
	"fmt"
	"time"

	"circle/internal/repository"
)

type CampaignService interface {
	CreateCampaign(ctx context.Context, userID uint64, campaignDTO *dto.CampaignBaseDTO) (*dto.CampaignDTO, error)
	GetCampaign(ctx context.Context, campaignID uint64) (*dto.CampaignDTO, error)
	GetActiveCampaigns(ctx context.Context, page *dto.PageDTO) ([]*dto.CampaignDTO, error)
	CancelCampaign(ctx context.Context, userID, campaignID uint64) error
	Pledge(ctx context.Context, userID uint64, pledgeDTO *dto.PledgeBaseDTO) error
	GetPledges(ctx context.Context, campaignID uint64, page *dto.PageDTO) ([]*dto.PledgeDTO, error)
}

type CampaignServiceImpl struct {
	campaignRepo repository.CampaignRepo
	pledgeRepo   repository.PledgeRepo
	userRepo     repository.UserRepo
	notifier     NotificationService
}

func NewCampaignService(
	campaignRepo repository.CampaignRepo,
	pledgeRepo repository.PledgeRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) CampaignService {
	return &CampaignServiceImpl{
		campaignRepo: campaignRepo,
		pledgeRepo:   pledgeRepo,
		userRepo:     userRepo,
		notifier:     notifier,
	}
}

func (s *CampaignServiceImpl) CreateCampaign(ctx context.Context, userID uint64, campaignDTO *dto.CampaignBaseDTO) (*dto.CampaignDTO, error) {
	campaign := &model.Campaign{
		OwnerID:     userID,
		Title:       campaignDTO.Title,
		Description: campaignDTO.Description,
		CoverURL:    campaignDTO.CoverURL,
		GoalAmount:  campaignDTO.GoalAmount,
		Status:      consts.CampaignStatusActive,
	}
	if campaignDTO.Deadline != "" {
		deadline, err := time.Parse("2006-01-02", campaignDTO.Deadline)
		if err != nil {
			return nil, ErrParamInvalid
		}
		campaign.Deadline = deadline
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}
	return s.toCampaignDTO(ctx, campaign)
}

func (s *CampaignServiceImpl) GetCampaign(ctx context.Context, campaignID uint64) (*dto.CampaignDTO, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}
	return s.toCampaignDTO(ctx, campaign)
}

func (s *CampaignServiceImpl) GetActiveCampaigns(ctx context.Context, page *dto.PageDTO) ([]*dto.CampaignDTO, error) {
	page.Normalize()
	campaigns, err := s.campaignRepo.GetActive(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.CampaignDTO, 0, len(campaigns))
	for _, c := range campaigns {
		item, cErr := s.toCampaignDTO(ctx, c)
		if cErr != nil {
			return nil, cErr
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *CampaignServiceImpl) CancelCampaign(ctx context.Context, userID, campaignID uint64) error {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.Status != consts.CampaignStatusActive {
		return ErrCampaignNotFound
	}
	if campaign.OwnerID != userID {
		return ForbiddenError
	}
	return s.campaignRepo.UpdateStatus(ctx, campaignID, consts.CampaignStatusCancelled)
}

// Pledge records the pledge row, then rolls amount and backer count into
// the campaign with a single atomic update. Crossing the goal flips the
// campaign to completed.
func (s *CampaignServiceImpl) Pledge(ctx context.Context, userID uint64, pledgeDTO *dto.PledgeBaseDTO) error {
	if pledgeDTO.Amount <= 0 {
		return ErrPledgeAmountInvalid
	}

	campaign, err := s.campaignRepo.GetByID(ctx, pledgeDTO.CampaignID)
	if err != nil {
		return err
	}
	if campaign == nil || campaign.Status != consts.CampaignStatusActive {
		return ErrCampaignNotFound
	}

	pledge := &model.Pledge{
		CampaignID:    pledgeDTO.CampaignID,
		BackerID:      userID,
		Amount:        pledgeDTO.Amount,
		RewardTier:    pledgeDTO.RewardTier,
		Message:       pledgeDTO.Message,
		IsAnonymous:   pledgeDTO.IsAnonymous,
		PaymentStatus: model.PaymentStatusCompleted,
	}
	if err = s.pledgeRepo.Create(ctx, pledge); err != nil {
		return err
	}
	if err = s.campaignRepo.AddPledgeTotals(ctx, pledgeDTO.CampaignID, pledgeDTO.Amount); err != nil {
		return err
	}

	if campaign.CurrentAmount+pledgeDTO.Amount >= campaign.GoalAmount {
		if err = s.campaignRepo.UpdateStatus(ctx, campaign.ID, consts.CampaignStatusCompleted); err != nil {
			return err
		}
	}

	backerName := "An anonymous backer"
	if !pledgeDTO.IsAnonymous {
		backer, bErr := s.userRepo.GetByID(ctx, userID)
		if bErr == nil && backer != nil {
			backerName = backer.DisplayName
		}
	}
	s.notifier.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: campaign.OwnerID,
		SenderID:   userID,
		Type:       mongo.TypePledgeReceived,
		TargetID:   campaign.ID,
		Title:      "New pledge received",
		Content:    fmt.Sprintf("%s pledged %.2f to %s", backerName, float64(pledgeDTO.Amount)/100, campaign.Title),
	})
	return nil
}

func (s *CampaignServiceImpl) GetPledges(ctx context.Context, campaignID uint64, page *dto.PageDTO) ([]*dto.PledgeDTO, error) {
	page.Normalize()

	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, ErrCampaignNotFound
	}

	pledges, err := s.pledgeRepo.GetByCampaign(ctx, campaignID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	backerIDs := make([]uint64, 0, len(pledges))
	for _, p := range pledges {
		if !p.IsAnonymous {
			backerIDs = append(backerIDs, p.BackerID)
		}
	}
	backers := make(map[uint64]*model.User)
	if len(backerIDs) > 0 {
		users, uErr := s.userRepo.GetByIDs(ctx, backerIDs)
		if uErr != nil {
			return nil, uErr
		}
		for _, u := range users {
			backers[u.ID] = u
		}
	}

	result := make([]*dto.PledgeDTO, 0, len(pledges))
	for _, p := range pledges {
		item := &dto.PledgeDTO{
			ID:         p.ID,
			CampaignID: p.CampaignID,
			Amount:     p.Amount,
			RewardTier: p.RewardTier,
			Message:    p.Message,
			CreatedAt:  util.FormatTime(p.CreatedAt),
		}
		// anonymous pledges never expose the backer
		if !p.IsAnonymous {
			if backer, ok := backers[p.BackerID]; ok {
				item.Backer = toUserDTO(backer)
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *CampaignServiceImpl) toCampaignDTO(ctx context.Context, campaign *model.Campaign) (*dto.CampaignDTO, error) {
	item := &dto.CampaignDTO{
		ID:            campaign.ID,
		Title:         campaign.Title,
		Description:   campaign.Description,
		CoverURL:      campaign.CoverURL,
		GoalAmount:    campaign.GoalAmount,
		CurrentAmount: campaign.CurrentAmount,
		BackersCount:  campaign.BackersCount,
		Status:        campaign.Status,
		CreatedAt:     util.FormatTime(campaign.CreatedAt),
	}
	owner, err := s.userRepo.GetByID(ctx, campaign.OwnerID)
	if err != nil {
		return nil, err
	}
	if owner != nil {
		item.Owner = toUserDTO(owner)
	}
	return item, nil
}
