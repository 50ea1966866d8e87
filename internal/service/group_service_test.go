package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mongo"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newGroupService() (*MockGroupRepo, *MockUserRepo, *MockNotificationService, GroupService) {
	groupRepo := new(MockGroupRepo)
	userRepo := new(MockUserRepo)
	notifier := new(MockNotificationService)
	svc := NewGroupService(groupRepo, userRepo, notifier)
	return groupRepo, userRepo, notifier, svc
}

// The creator becomes the first member, so the group is born with a
// member count of one and an owner-role membership row.
func TestCreateGroup(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("Create", ctx, mock.AnythingOfType("*model.Group")).Return(nil)
	groupRepo.On("CreateMember", ctx, mock.AnythingOfType("*model.GroupMember")).Return(nil)

	result, err := svc.CreateGroup(ctx, 1, &dto.GroupBaseDTO{Name: "Choir"})

	assert.NoError(t, err)
	assert.True(t, result.Joined)
	created := groupRepo.Calls[0].Arguments.Get(1).(*model.Group)
	assert.Equal(t, int64(1), created.MemberCount)
	member := groupRepo.Calls[1].Arguments.Get(1).(*model.GroupMember)
	assert.Equal(t, GroupRoleOwner, member.Role)
	assert.Equal(t, uint64(1), member.UserID)
}

func TestUpdateGroup_NotOwner(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(&model.Group{ID: 5, OwnerID: 9}, nil)

	err := svc.UpdateGroup(ctx, 1, &dto.GroupBaseDTO{ID: 5, Name: "Choir"})

	assert.Equal(t, ForbiddenError, err)
	groupRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestJoin_Success(t *testing.T) {
	groupRepo, userRepo, notifier, svc := newGroupService()
	ctx := context.Background()

	group := &model.Group{ID: 5, OwnerID: 9, Name: "Choir"}
	groupRepo.On("GetByID", ctx, uint64(5)).Return(group, nil)
	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(nil, nil)
	groupRepo.On("CreateMember", ctx, mock.AnythingOfType("*model.GroupMember")).Return(nil)
	groupRepo.On("IncrMemberCount", ctx, uint64(5), 1).Return(nil)
	userRepo.On("GetByID", ctx, uint64(1)).Return(&model.User{ID: 1, DisplayName: "Adam"}, nil)
	notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := svc.Join(ctx, 1, 5)

	assert.NoError(t, err)
	sent := notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Equal(t, mongo.TypeGroupJoin, sent.Type)
	assert.Equal(t, uint64(9), sent.ReceiverID)
	groupRepo.AssertExpectations(t)
}

func TestJoin_AlreadyMember(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(&model.Group{ID: 5}, nil)
	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(&model.GroupMember{GroupID: 5, UserID: 1}, nil)

	err := svc.Join(ctx, 1, 5)

	assert.Equal(t, ErrGroupMemberExist, err)
	groupRepo.AssertNotCalled(t, "CreateMember", mock.Anything, mock.Anything)
	groupRepo.AssertNotCalled(t, "IncrMemberCount", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeave_OwnerCannotLeave(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(&model.Group{ID: 5, OwnerID: 1}, nil)

	err := svc.Leave(ctx, 1, 5)

	assert.Equal(t, ForbiddenError, err)
	groupRepo.AssertNotCalled(t, "DeleteMember", mock.Anything, mock.Anything, mock.Anything)
}

func TestLeave_NotMember(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(&model.Group{ID: 5, OwnerID: 9}, nil)
	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(nil, nil)

	err := svc.Leave(ctx, 1, 5)

	assert.Equal(t, ErrGroupNotMember, err)
}

func TestLeave_Success(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(&model.Group{ID: 5, OwnerID: 9}, nil)
	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(&model.GroupMember{GroupID: 5, UserID: 1}, nil)
	groupRepo.On("DeleteMember", ctx, uint64(5), uint64(1)).Return(nil)
	groupRepo.On("IncrMemberCount", ctx, uint64(5), -1).Return(nil)

	err := svc.Leave(ctx, 1, 5)

	assert.NoError(t, err)
	groupRepo.AssertExpectations(t)
}

// Leaving removes the membership row, so a later join starts clean.
func TestRejoinAfterLeave(t *testing.T) {
	groupRepo, userRepo, notifier, svc := newGroupService()
	ctx := context.Background()

	group := &model.Group{ID: 5, OwnerID: 9, Name: "Choir"}
	groupRepo.On("GetByID", ctx, uint64(5)).Return(group, nil)
	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(&model.GroupMember{GroupID: 5, UserID: 1}, nil).Once()
	groupRepo.On("DeleteMember", ctx, uint64(5), uint64(1)).Return(nil)
	groupRepo.On("IncrMemberCount", ctx, uint64(5), -1).Return(nil)

	assert.NoError(t, svc.Leave(ctx, 1, 5))

	groupRepo.On("GetMember", ctx, uint64(5), uint64(1)).Return(nil, nil).Once()
	groupRepo.On("CreateMember", ctx, mock.AnythingOfType("*model.GroupMember")).Return(nil)
	groupRepo.On("IncrMemberCount", ctx, uint64(5), 1).Return(nil)
	userRepo.On("GetByID", ctx, uint64(1)).Return(&model.User{ID: 1, DisplayName: "Adam"}, nil)
	notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	assert.NoError(t, svc.Join(ctx, 1, 5))
	groupRepo.AssertExpectations(t)
}

func TestGetMembers_GroupMissing(t *testing.T) {
	groupRepo, _, _, svc := newGroupService()
	ctx := context.Background()

	groupRepo.On("GetByID", ctx, uint64(5)).Return(nil, nil)

	_, err := svc.GetMembers(ctx, 5, &dto.PageDTO{})

	assert.Equal(t, ErrGroupNotFound, err)
}
