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

func newConnectionService() (*MockConnectionRepo, *MockUserRepo, *MockNotificationService, ConnectionService) {
	connRepo := new(MockConnectionRepo)
	userRepo := new(MockUserRepo)
	notifier := new(MockNotificationService)
	svc := NewConnectionService(connRepo, userRepo, notifier)
	return connRepo, userRepo, notifier, svc
}

func TestSendRequest_Success(t *testing.T) {
	connRepo, userRepo, notifier, svc := newConnectionService()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2, DisplayName: "Beth"}, nil)
	userRepo.On("GetByID", ctx, uint64(1)).Return(&model.User{ID: 1, DisplayName: "Adam"}, nil)
	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).Return(nil, nil)
	connRepo.On("Create", ctx, mock.AnythingOfType("*model.Connection")).Return(nil)
	notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := svc.SendRequest(ctx, 1, &dto.ConnectionRequestDTO{AddresseeID: 2, Message: "hi"})

	assert.NoError(t, err)
	created := connRepo.Calls[1].Arguments.Get(1).(*model.Connection)
	assert.Equal(t, uint64(1), created.RequesterID)
	assert.Equal(t, uint64(2), created.AddresseeID)
	assert.Equal(t, model.ConnectionStatusPending, created.Status)
	sent := notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Equal(t, mongo.TypeConnectionRequest, sent.Type)
	assert.Equal(t, uint64(2), sent.ReceiverID)
	connRepo.AssertExpectations(t)
}

func TestSendRequest_Self(t *testing.T) {
	_, _, _, svc := newConnectionService()

	err := svc.SendRequest(context.Background(), 1, &dto.ConnectionRequestDTO{AddresseeID: 1})

	assert.Equal(t, ErrConnectionSelf, err)
}

func TestSendRequest_AddresseeMissing(t *testing.T) {
	_, userRepo, _, svc := newConnectionService()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint64(9)).Return(nil, nil)

	err := svc.SendRequest(ctx, 1, &dto.ConnectionRequestDTO{AddresseeID: 9})

	assert.Equal(t, ErrUserNotFound, err)
}

// The pair lookup is direction-agnostic: a request is rejected even
// when the existing edge runs the other way.
func TestSendRequest_DuplicateReversed(t *testing.T) {
	connRepo, userRepo, _, svc := newConnectionService()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2}, nil)
	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).
		Return(&model.Connection{ID: 7, RequesterID: 2, AddresseeID: 1, Status: model.ConnectionStatusPending}, nil)

	err := svc.SendRequest(ctx, 1, &dto.ConnectionRequestDTO{AddresseeID: 2})

	assert.Equal(t, ErrConnectionExist, err)
	connRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSendRequest_DuplicateSameDirection(t *testing.T) {
	connRepo, userRepo, _, svc := newConnectionService()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2}, nil)
	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).
		Return(&model.Connection{ID: 7, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusAccepted}, nil)

	err := svc.SendRequest(ctx, 1, &dto.ConnectionRequestDTO{AddresseeID: 2})

	assert.Equal(t, ErrConnectionExist, err)
}

// Once a request has been declined the edge is gone, so a fresh request
// goes through.
func TestDeclineThenReRequest(t *testing.T) {
	connRepo, userRepo, notifier, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusPending}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)
	connRepo.On("Delete", ctx, uint64(5)).Return(nil)

	assert.NoError(t, svc.Decline(ctx, 2, 5))

	userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2}, nil)
	userRepo.On("GetByID", ctx, uint64(1)).Return(&model.User{ID: 1, DisplayName: "Adam"}, nil)
	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).Return(nil, nil)
	connRepo.On("Create", ctx, mock.AnythingOfType("*model.Connection")).Return(nil)
	notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	assert.NoError(t, svc.SendRequest(ctx, 1, &dto.ConnectionRequestDTO{AddresseeID: 2}))
	connRepo.AssertExpectations(t)
}

func TestAccept_Success(t *testing.T) {
	connRepo, userRepo, notifier, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusPending}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)
	connRepo.On("UpdateStatus", ctx, uint64(5), model.ConnectionStatusAccepted).Return(nil)
	userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2, DisplayName: "Beth"}, nil)
	notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := svc.Accept(ctx, 2, 5)

	assert.NoError(t, err)
	sent := notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Equal(t, mongo.TypeConnectionAccepted, sent.Type)
	assert.Equal(t, uint64(1), sent.ReceiverID)
	connRepo.AssertExpectations(t)
}

func TestAccept_NotAddressee(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusPending}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)

	err := svc.Accept(ctx, 1, 5)

	assert.Equal(t, ErrNotConnectionParty, err)
	connRepo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestAccept_AlreadyAccepted(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusAccepted}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)

	err := svc.Accept(ctx, 2, 5)

	assert.Equal(t, ErrConnectionNotFound, err)
}

func TestCancel_OnlyRequester(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusPending}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)

	err := svc.Cancel(ctx, 2, 5)

	assert.Equal(t, ErrNotConnectionParty, err)
	connRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDecline_Success(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 5, RequesterID: 1, AddresseeID: 2, Status: model.ConnectionStatusPending}
	connRepo.On("GetByID", ctx, uint64(5)).Return(conn, nil)
	connRepo.On("Delete", ctx, uint64(5)).Return(nil)

	err := svc.Decline(ctx, 2, 5)

	assert.NoError(t, err)
	connRepo.AssertExpectations(t)
}

// Disconnecting an edge that does not exist is a quiet no-op.
func TestDisconnect_AbsentEdge(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).Return(nil, nil)

	err := svc.Disconnect(ctx, 1, 2)

	assert.NoError(t, err)
	connRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestDisconnect_Accepted(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conn := &model.Connection{ID: 9, RequesterID: 2, AddresseeID: 1, Status: model.ConnectionStatusAccepted}
	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).Return(conn, nil)
	connRepo.On("Delete", ctx, uint64(9)).Return(nil)

	err := svc.Disconnect(ctx, 1, 2)

	assert.NoError(t, err)
	connRepo.AssertExpectations(t)
}

func TestGetConnectedIDs_ReturnsPeers(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	conns := []*model.Connection{
		{ID: 1, RequesterID: 1, AddresseeID: 3, Status: model.ConnectionStatusAccepted},
		{ID: 2, RequesterID: 4, AddresseeID: 1, Status: model.ConnectionStatusAccepted},
	}
	connRepo.On("GetAcceptedByUser", ctx, uint64(1), maxConnectionFan, 0).Return(conns, nil)

	ids, err := svc.GetConnectedIDs(ctx, 1)

	assert.NoError(t, err)
	assert.Equal(t, []uint64{3, 4}, ids)
}

func TestAreConnected(t *testing.T) {
	connRepo, _, _, svc := newConnectionService()
	ctx := context.Background()

	connRepo.On("GetByPair", ctx, uint64(1), uint64(2)).
		Return(&model.Connection{Status: model.ConnectionStatusAccepted}, nil)
	connRepo.On("GetByPair", ctx, uint64(1), uint64(3)).
		Return(&model.Connection{Status: model.ConnectionStatusPending}, nil)

	ok, err := svc.AreConnected(ctx, 1, 2)
	assert.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.AreConnected(ctx, 1, 3)
	assert.NoError(t, err)
	assert.False(t, ok)
}
