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

type postActionFixture struct {
	postRepo   *MockPostRepo
	actionRepo *MockPostActionRepo
	clipRepo   *MockClipRepo
	userRepo   *MockUserRepo
	notifier   *MockNotificationService
	svc        PostActionService
}

func newPostActionFixture() *postActionFixture {
	f := &postActionFixture{
		postRepo:   new(MockPostRepo),
		actionRepo: new(MockPostActionRepo),
		clipRepo:   new(MockClipRepo),
		userRepo:   new(MockUserRepo),
		notifier:   new(MockNotificationService),
	}
	f.svc = NewPostActionService(f.postRepo, f.actionRepo, f.clipRepo, f.userRepo, f.notifier)
	return f
}

func TestLikePost_Success(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.postRepo.On("GetByID", ctx, uint64(10)).Return(&model.Post{ID: 10, AuthorID: 2}, nil)
	f.actionRepo.On("GetLike", ctx, uint64(1), uint64(10)).Return(nil, nil)
	f.actionRepo.On("CreateLike", ctx, mock.AnythingOfType("*model.Like")).Return(nil)
	f.actionRepo.On("IncrLikesCount", ctx, uint64(10), 1).Return(nil)
	f.userRepo.On("GetByID", ctx, uint64(1)).Return(&model.User{ID: 1, DisplayName: "Adam"}, nil)
	f.notifier.On("Dispatch", ctx, mock.AnythingOfType("*mongo.NotificationModel")).Return()

	err := f.svc.LikePost(ctx, 1, 10)

	assert.NoError(t, err)
	sent := f.notifier.Calls[0].Arguments.Get(1).(*mongo.NotificationModel)
	assert.Equal(t, mongo.TypePostLike, sent.Type)
	assert.Equal(t, uint64(2), sent.ReceiverID)
	f.actionRepo.AssertExpectations(t)
}

// Liking twice never touches the counter.
func TestLikePost_Duplicate(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.postRepo.On("GetByID", ctx, uint64(10)).Return(&model.Post{ID: 10, AuthorID: 2}, nil)
	f.actionRepo.On("GetLike", ctx, uint64(1), uint64(10)).Return(&model.Like{UserID: 1, PostID: 10}, nil)

	err := f.svc.LikePost(ctx, 1, 10)

	assert.Equal(t, ErrActionDuplicate, err)
	f.actionRepo.AssertNotCalled(t, "CreateLike", mock.Anything, mock.Anything)
	f.actionRepo.AssertNotCalled(t, "IncrLikesCount", mock.Anything, mock.Anything, mock.Anything)
}

// Liking your own post skips the notification.
func TestLikePost_OwnPost(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.postRepo.On("GetByID", ctx, uint64(10)).Return(&model.Post{ID: 10, AuthorID: 1}, nil)
	f.actionRepo.On("GetLike", ctx, uint64(1), uint64(10)).Return(nil, nil)
	f.actionRepo.On("CreateLike", ctx, mock.AnythingOfType("*model.Like")).Return(nil)
	f.actionRepo.On("IncrLikesCount", ctx, uint64(10), 1).Return(nil)

	err := f.svc.LikePost(ctx, 1, 10)

	assert.NoError(t, err)
	f.notifier.AssertNotCalled(t, "Dispatch", mock.Anything, mock.Anything)
}

func TestUnlikePost_NotLiked(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.actionRepo.On("GetLike", ctx, uint64(1), uint64(10)).Return(nil, nil)

	err := f.svc.UnlikePost(ctx, 1, 10)

	assert.Equal(t, ErrActionNotFound, err)
	f.actionRepo.AssertNotCalled(t, "DeleteLike", mock.Anything, mock.Anything, mock.Anything)
}

func TestUnlikePost_Success(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.actionRepo.On("GetLike", ctx, uint64(1), uint64(10)).Return(&model.Like{UserID: 1, PostID: 10}, nil)
	f.actionRepo.On("DeleteLike", ctx, uint64(1), uint64(10)).Return(nil)
	f.actionRepo.On("IncrLikesCount", ctx, uint64(10), -1).Return(nil)

	err := f.svc.UnlikePost(ctx, 1, 10)

	assert.NoError(t, err)
	f.actionRepo.AssertExpectations(t)
}

func TestCreateComment_PostMissing(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.postRepo.On("GetByID", ctx, uint64(99)).Return(nil, nil)

	_, err := f.svc.CreateComment(ctx, 1, &dto.CommentBaseDTO{PostID: 99, Content: "amen"})

	assert.Equal(t, ErrPostNotFound, err)
}

// The post author may remove any comment under their post.
func TestDeleteComment_PostAuthor(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	comment := &model.PostComment{ID: 3, PostID: 10, UserID: 5}
	f.actionRepo.On("GetComment", ctx, uint64(3)).Return(comment, nil)
	f.postRepo.On("GetByID", ctx, uint64(10)).Return(&model.Post{ID: 10, AuthorID: 1}, nil)
	f.actionRepo.On("SoftDeleteComment", ctx, uint64(3)).Return(nil)
	f.actionRepo.On("IncrCommentsCount", ctx, uint64(10), -1).Return(nil)

	err := f.svc.DeleteComment(ctx, 1, 3)

	assert.NoError(t, err)
	f.actionRepo.AssertExpectations(t)
}

func TestDeleteComment_Stranger(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	comment := &model.PostComment{ID: 3, PostID: 10, UserID: 5}
	f.actionRepo.On("GetComment", ctx, uint64(3)).Return(comment, nil)
	f.postRepo.On("GetByID", ctx, uint64(10)).Return(&model.Post{ID: 10, AuthorID: 2}, nil)

	err := f.svc.DeleteComment(ctx, 7, 3)

	assert.Equal(t, ForbiddenError, err)
	f.actionRepo.AssertNotCalled(t, "SoftDeleteComment", mock.Anything, mock.Anything)
}

func TestLikeClip_Duplicate(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.clipRepo.On("GetByID", ctx, uint64(4)).Return(&model.Clip{ID: 4, AuthorID: 2}, nil)
	f.actionRepo.On("GetClipLike", ctx, uint64(1), uint64(4)).Return(&model.ClipLike{UserID: 1, ClipID: 4}, nil)

	err := f.svc.LikeClip(ctx, 1, 4)

	assert.Equal(t, ErrActionDuplicate, err)
	f.actionRepo.AssertNotCalled(t, "CreateClipLike", mock.Anything, mock.Anything)
}

func TestGetUserClips_UnknownAuthor(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.userRepo.On("GetByID", ctx, uint64(9)).Return(nil, nil)

	_, err := f.svc.GetUserClips(ctx, 1, 9, &dto.PageDTO{})

	assert.Equal(t, ErrUserNotFound, err)
	f.clipRepo.AssertNotCalled(t, "GetByAuthor", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestGetUserClips_Success(t *testing.T) {
	f := newPostActionFixture()
	ctx := context.Background()

	f.userRepo.On("GetByID", ctx, uint64(2)).Return(&model.User{ID: 2, DisplayName: "Beth"}, nil)
	f.clipRepo.On("GetByAuthor", ctx, uint64(2), 10, 0).Return([]*model.Clip{
		{ID: 6, AuthorID: 2, Title: "testimony"},
		{ID: 5, AuthorID: 2, Title: "worship"},
	}, nil)
	f.userRepo.On("GetByIDs", ctx, []uint64{2, 2}).Return([]*model.User{{ID: 2, DisplayName: "Beth"}}, nil)
	f.actionRepo.On("GetClipLike", ctx, uint64(1), uint64(6)).Return(&model.ClipLike{UserID: 1, ClipID: 6}, nil)
	f.actionRepo.On("GetClipLike", ctx, uint64(1), uint64(5)).Return(nil, nil)

	clips, err := f.svc.GetUserClips(ctx, 1, 2, &dto.PageDTO{Page: 1, PageSize: 10})

	assert.NoError(t, err)
	assert.Len(t, clips, 2)
	assert.True(t, clips[0].Liked)
	assert.False(t, clips[1].Liked)
	assert.Equal(t, "Beth", clips[0].Author.DisplayName)
}
