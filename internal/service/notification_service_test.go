package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mongo"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type notificationFixture struct {
	notifRepo *MockNotificationRepo
	prefRepo  *MockNotificationPrefRepo
	userRepo  *MockUserRepo
	mail      *MockMailer
	svc       NotificationService
}

func newNotificationFixture() *notificationFixture {
	f := &notificationFixture{
		notifRepo: new(MockNotificationRepo),
		prefRepo:  new(MockNotificationPrefRepo),
		userRepo:  new(MockUserRepo),
		mail:      new(MockMailer),
	}
	f.svc = NewNotificationService(f.notifRepo, f.prefRepo, f.userRepo, f.mail)
	return f
}

// A user with no preference row gets email: absence means enabled.
func TestDispatch_DefaultEmailOn(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.notifRepo.On("CreateNotification", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return(nil)
	f.prefRepo.On("Get", ctx, uint64(2), mongo.TypePostLike).Return(nil, nil)
	f.userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2, Email: "beth@example.com"}, nil)
	f.mail.On("Send", ctx, "beth@example.com", "Your post was liked", mock.AnythingOfType("string")).Return(nil)

	f.svc.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: 2, SenderID: 1,
		Type:  mongo.TypePostLike,
		Title: "Your post was liked", Content: "Adam liked your post",
	})

	f.mail.AssertExpectations(t)
}

func TestDispatch_NoEmailAddressSkipsSend(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.notifRepo.On("CreateNotification", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return(nil)
	f.prefRepo.On("Get", ctx, uint64(2), mongo.TypePostLike).Return(nil, nil)
	f.userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2}, nil)

	f.svc.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: 2, SenderID: 1,
		Type:  mongo.TypePostLike,
		Title: "Your post was liked", Content: "Adam liked your post",
	})

	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatch_EmailDisabled(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.notifRepo.On("CreateNotification", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return(nil)
	f.prefRepo.On("Get", ctx, uint64(2), mongo.TypePostLike).
		Return(&model.NotificationPref{UserID: 2, Type: mongo.TypePostLike, EmailEnabled: false}, nil)

	f.svc.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: 2, Type: mongo.TypePostLike, Title: "t", Content: "c",
	})

	f.mail.AssertNotCalled(t, "Send", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	f.notifRepo.AssertExpectations(t)
}

// A failed record write must not stop the email leg; Dispatch swallows
// every error.
func TestDispatch_RecordFailureStillEmails(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.notifRepo.On("CreateNotification", ctx, mock.AnythingOfType("*mongo.NotificationModel")).
		Return(errors.New("mongo down"))
	f.prefRepo.On("Get", ctx, uint64(2), mongo.TypeMessage).Return(nil, nil)
	f.userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2, Email: "beth@example.com"}, nil)
	f.mail.On("Send", ctx, "beth@example.com", "New message", mock.AnythingOfType("string")).Return(nil)

	f.svc.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: 2, Type: mongo.TypeMessage, Title: "New message", Content: "hi",
	})

	f.mail.AssertExpectations(t)
}

func TestMarkAsRead_NotFound(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.notifRepo.On("MarkAsRead", ctx, uint64(2), "abc").Return(mongodriver.ErrNoDocuments)

	err := f.svc.MarkAsRead(ctx, 2, "abc")

	assert.Equal(t, ErrNotificationNotFound, err)
}

func TestGetPrefs(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	prefs := []*model.NotificationPref{
		{UserID: 2, Type: mongo.TypePostLike, EmailEnabled: false},
		{UserID: 2, Type: mongo.TypeWeeklyDigest, EmailEnabled: true},
	}
	f.prefRepo.On("GetByUser", ctx, uint64(2)).Return(prefs, nil)

	result, err := f.svc.GetPrefs(ctx, 2)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.False(t, result[0].EmailEnabled)
	assert.True(t, result[1].EmailEnabled)
}

func TestUpdatePref(t *testing.T) {
	f := newNotificationFixture()
	ctx := context.Background()

	f.prefRepo.On("Upsert", ctx, mock.AnythingOfType("*model.NotificationPref")).Return(nil)

	err := f.svc.UpdatePref(ctx, 2, &dto.NotificationPrefDTO{Type: mongo.TypePostLike, EmailEnabled: false})

	assert.NoError(t, err)
	saved := f.prefRepo.Calls[0].Arguments.Get(1).(*model.NotificationPref)
	assert.Equal(t, uint64(2), saved.UserID)
	assert.False(t, saved.EmailEnabled)
}
