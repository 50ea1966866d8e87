package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type campaignFixture struct {
	campaignRepo *MockCampaignRepo
	pledgeRepo   *MockPledgeRepo
	userRepo     *MockUserRepo
	notifier     *MockNotificationService
	svc          CampaignService
}

func newCampaignFixture() *campaignFixture {
	f := &campaignFixture{
		campaignRepo: new(MockCampaignRepo),
		pledgeRepo:   new(MockPledgeRepo),
		userRepo:     new(MockUserRepo),
		notifier:     new(MockNotificationService),
	}
	f.svc = NewCampaignService(f.campaignRepo, f.pledgeRepo, f.userRepo, f.notifier)
	return f
}

func TestPledge_Success(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	campaign := &model.Campaign{
		ID: 1, OwnerID: 9, Title: "New roof",
		GoalAmount: 100000, CurrentAmount: 20000,
		Status: consts.CampaignStatusActive,
	}
	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(campaign, nil)
	f.pledgeRepo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)
	f.campaignRepo.On("AddPledgeTotals", ctx, uint64(1), int64(5000)).Return(nil)
	f.userRepo.On("GetByID", ctx, uint64(3)).Return(&model.User{ID: 3, DisplayName: "Charity"}, nil)
	f.notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := f.svc.Pledge(ctx, 3, &dto.PledgeBaseDTO{CampaignID: 1, Amount: 5000})

	assert.NoError(t, err)
	// still short of the goal, status untouched
	f.campaignRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	sent := f.notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Equal(t, mongo.TypePledgeReceived, sent.Type)
	assert.Equal(t, uint64(9), sent.ReceiverID)
	assert.Contains(t, sent.Content, "Charity")
	f.campaignRepo.AssertExpectations(t)
}

func TestPledge_CrossesGoal(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	campaign := &model.Campaign{
		ID: 1, OwnerID: 9, Title: "New roof",
		GoalAmount: 100000, CurrentAmount: 98000,
		Status: consts.CampaignStatusActive,
	}
	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(campaign, nil)
	f.pledgeRepo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)
	f.campaignRepo.On("AddPledgeTotals", ctx, uint64(1), int64(5000)).Return(nil)
	f.campaignRepo.On("UpdateStatus", ctx, uint64(1), consts.CampaignStatusCompleted).Return(nil)
	f.userRepo.On("GetByID", ctx, uint64(3)).Return(&model.User{ID: 3, DisplayName: "Charity"}, nil)
	f.notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := f.svc.Pledge(ctx, 3, &dto.PledgeBaseDTO{CampaignID: 1, Amount: 5000})

	assert.NoError(t, err)
	f.campaignRepo.AssertExpectations(t)
}

func TestPledge_InvalidAmount(t *testing.T) {
	f := newCampaignFixture()

	err := f.svc.Pledge(context.Background(), 3, &dto.PledgeBaseDTO{CampaignID: 1, Amount: 0})

	assert.Equal(t, ErrPledgeAmountInvalid, err)
	f.pledgeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPledge_CancelledCampaign(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	campaign := &model.Campaign{ID: 1, Status: consts.CampaignStatusCancelled}
	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(campaign, nil)

	err := f.svc.Pledge(ctx, 3, &dto.PledgeBaseDTO{CampaignID: 1, Amount: 5000})

	assert.Equal(t, ErrCampaignNotFound, err)
	f.pledgeRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

// An anonymous pledge never resolves the backer, and the owner sees a
// masked name.
func TestPledge_Anonymous(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	campaign := &model.Campaign{
		ID: 1, OwnerID: 9, Title: "New roof",
		GoalAmount: 100000, Status: consts.CampaignStatusActive,
	}
	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(campaign, nil)
	f.pledgeRepo.On("Create", ctx, mock.AnythingOfType("*model.Pledge")).Return(nil)
	f.campaignRepo.On("AddPledgeTotals", ctx, uint64(1), int64(5000)).Return(nil)
	f.notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := f.svc.Pledge(ctx, 3, &dto.PledgeBaseDTO{CampaignID: 1, Amount: 5000, IsAnonymous: true})

	assert.NoError(t, err)
	f.userRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	sent := f.notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Contains(t, sent.Content, "An anonymous backer")
}

func TestGetPledges_AnonymousMasked(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(&model.Campaign{ID: 1, Status: consts.CampaignStatusActive}, nil)
	pledges := []*model.Pledge{
		{ID: 1, CampaignID: 1, BackerID: 3, Amount: 5000},
		{ID: 2, CampaignID: 1, BackerID: 4, Amount: 2000, IsAnonymous: true},
	}
	f.pledgeRepo.On("GetByCampaign", ctx, uint64(1), 20, 0).Return(pledges, nil)
	f.userRepo.On("GetByIDs", ctx, []uint64{3}).Return([]*model.User{{ID: 3, DisplayName: "Charity"}}, nil)

	result, err := f.svc.GetPledges(ctx, 1, &dto.PageDTO{})

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.NotNil(t, result[0].Backer)
	assert.Equal(t, "Charity", result[0].Backer.DisplayName)
	assert.Nil(t, result[1].Backer)
}

func TestCancelCampaign_NotOwner(t *testing.T) {
	f := newCampaignFixture()
	ctx := context.Background()

	campaign := &model.Campaign{ID: 1, OwnerID: 9, Status: consts.CampaignStatusActive}
	f.campaignRepo.On("GetByID", ctx, uint64(1)).Return(campaign, nil)

	err := f.svc.CancelCampaign(ctx, 3, 1)

	assert.Equal(t, ForbiddenError, err)
	f.campaignRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateCampaign_BadDeadline(t *testing.T) {
	f := newCampaignFixture()

	_, err := f.svc.CreateCampaign(context.Background(), 1, &dto.CampaignBaseDTO{
		Title: "x", Description: "y", GoalAmount: 1000, Deadline: "next tuesday",
	})

	assert.Equal(t, ErrParamInvalid, err)
	f.campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
