package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/linkpreview"
	"circle/internal/pkg/mongo"
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Shared testify mocks for the repository and service interfaces the
// service layer depends on.

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByIDs(ctx context.Context, ids []uint64) ([]*model.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepo) GetIDsAfter(ctx context.Context, afterID uint64, limit int) ([]uint64, error) {
	args := m.Called(ctx, afterID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockUserRepo) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockConnectionRepo struct {
	mock.Mock
}

func (m *MockConnectionRepo) GetByID(ctx context.Context, id uint64) (*model.Connection, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Connection), args.Error(1)
}

func (m *MockConnectionRepo) GetByPair(ctx context.Context, userA, userB uint64) (*model.Connection, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Connection), args.Error(1)
}

func (m *MockConnectionRepo) Create(ctx context.Context, conn *model.Connection) error {
	args := m.Called(ctx, conn)
	return args.Error(0)
}

func (m *MockConnectionRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockConnectionRepo) Delete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockConnectionRepo) GetAcceptedByUser(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Connection), args.Error(1)
}

func (m *MockConnectionRepo) GetPendingIncoming(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Connection), args.Error(1)
}

func (m *MockConnectionRepo) GetPendingOutgoing(ctx context.Context, userID uint64, limit, offset int) ([]*model.Connection, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Connection), args.Error(1)
}

func (m *MockConnectionRepo) CountAcceptedByUser(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

type MockPostRepo struct {
	mock.Mock
}

func (m *MockPostRepo) GetByID(ctx context.Context, id uint64) (*model.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Post), args.Error(1)
}

func (m *MockPostRepo) Create(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) Update(ctx context.Context, post *model.Post) error {
	args := m.Called(ctx, post)
	return args.Error(0)
}

func (m *MockPostRepo) SoftDelete(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostRepo) GetByAuthors(ctx context.Context, authorIDs []uint64, limit, offset int) ([]*model.Post, error) {
	args := m.Called(ctx, authorIDs, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) GetByGroup(ctx context.Context, groupID uint64, limit, offset int) ([]*model.Post, error) {
	args := m.Called(ctx, groupID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

func (m *MockPostRepo) GetLatest(ctx context.Context, limit, offset int) ([]*model.Post, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Post), args.Error(1)
}

type MockPostActionRepo struct {
	mock.Mock
}

func (m *MockPostActionRepo) GetLike(ctx context.Context, userID, postID uint64) (*model.Like, error) {
	args := m.Called(ctx, userID, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Like), args.Error(1)
}

func (m *MockPostActionRepo) GetLikedPostIDs(ctx context.Context, userID uint64, postIDs []uint64) ([]uint64, error) {
	args := m.Called(ctx, userID, postIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockPostActionRepo) CreateLike(ctx context.Context, like *model.Like) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostActionRepo) DeleteLike(ctx context.Context, userID, postID uint64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *MockPostActionRepo) IncrLikesCount(ctx context.Context, postID uint64, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockPostActionRepo) GetClipLike(ctx context.Context, userID, clipID uint64) (*model.ClipLike, error) {
	args := m.Called(ctx, userID, clipID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ClipLike), args.Error(1)
}

func (m *MockPostActionRepo) CreateClipLike(ctx context.Context, like *model.ClipLike) error {
	args := m.Called(ctx, like)
	return args.Error(0)
}

func (m *MockPostActionRepo) DeleteClipLike(ctx context.Context, userID, clipID uint64) error {
	args := m.Called(ctx, userID, clipID)
	return args.Error(0)
}

func (m *MockPostActionRepo) IncrClipLikesCount(ctx context.Context, clipID uint64, delta int) error {
	args := m.Called(ctx, clipID, delta)
	return args.Error(0)
}

func (m *MockPostActionRepo) GetComment(ctx context.Context, id uint64) (*model.PostComment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.PostComment), args.Error(1)
}

func (m *MockPostActionRepo) CreateComment(ctx context.Context, comment *model.PostComment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockPostActionRepo) SoftDeleteComment(ctx context.Context, id uint64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPostActionRepo) IncrCommentsCount(ctx context.Context, postID uint64, delta int) error {
	args := m.Called(ctx, postID, delta)
	return args.Error(0)
}

func (m *MockPostActionRepo) GetCommentsByPost(ctx context.Context, postID uint64, limit, offset int) ([]*model.PostComment, error) {
	args := m.Called(ctx, postID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.PostComment), args.Error(1)
}

type MockClipRepo struct {
	mock.Mock
}

func (m *MockClipRepo) GetByID(ctx context.Context, id uint64) (*model.Clip, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Clip), args.Error(1)
}

func (m *MockClipRepo) Create(ctx context.Context, clip *model.Clip) error {
	args := m.Called(ctx, clip)
	return args.Error(0)
}

func (m *MockClipRepo) GetLatest(ctx context.Context, limit, offset int) ([]*model.Clip, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Clip), args.Error(1)
}

func (m *MockClipRepo) GetByAuthor(ctx context.Context, authorID uint64, limit, offset int) ([]*model.Clip, error) {
	args := m.Called(ctx, authorID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Clip), args.Error(1)
}

type MockGroupRepo struct {
	mock.Mock
}

func (m *MockGroupRepo) GetByID(ctx context.Context, id uint64) (*model.Group, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Group), args.Error(1)
}

func (m *MockGroupRepo) Create(ctx context.Context, group *model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepo) Update(ctx context.Context, group *model.Group) error {
	args := m.Called(ctx, group)
	return args.Error(0)
}

func (m *MockGroupRepo) GetList(ctx context.Context, limit, offset int) ([]*model.Group, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Group), args.Error(1)
}

func (m *MockGroupRepo) GetMember(ctx context.Context, groupID, userID uint64) (*model.GroupMember, error) {
	args := m.Called(ctx, groupID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.GroupMember), args.Error(1)
}

func (m *MockGroupRepo) CreateMember(ctx context.Context, member *model.GroupMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockGroupRepo) DeleteMember(ctx context.Context, groupID, userID uint64) error {
	args := m.Called(ctx, groupID, userID)
	return args.Error(0)
}

func (m *MockGroupRepo) IncrMemberCount(ctx context.Context, groupID uint64, delta int) error {
	args := m.Called(ctx, groupID, delta)
	return args.Error(0)
}

func (m *MockGroupRepo) GetMembers(ctx context.Context, groupID uint64, limit, offset int) ([]*model.GroupMember, error) {
	args := m.Called(ctx, groupID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GroupMember), args.Error(1)
}

func (m *MockGroupRepo) GetGroupsByUser(ctx context.Context, userID uint64) ([]*model.GroupMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.GroupMember), args.Error(1)
}

type MockCampaignRepo struct {
	mock.Mock
}

func (m *MockCampaignRepo) GetByID(ctx context.Context, id uint64) (*model.Campaign, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepo) Create(ctx context.Context, campaign *model.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepo) Update(ctx context.Context, campaign *model.Campaign) error {
	args := m.Called(ctx, campaign)
	return args.Error(0)
}

func (m *MockCampaignRepo) UpdateStatus(ctx context.Context, id uint64, status string) error {
	args := m.Called(ctx, id, status)
	return args.Error(0)
}

func (m *MockCampaignRepo) GetActive(ctx context.Context, limit, offset int) ([]*model.Campaign, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepo) GetByOwner(ctx context.Context, ownerID uint64, limit, offset int) ([]*model.Campaign, error) {
	args := m.Called(ctx, ownerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Campaign), args.Error(1)
}

func (m *MockCampaignRepo) AddPledgeTotals(ctx context.Context, campaignID uint64, amount int64) error {
	args := m.Called(ctx, campaignID, amount)
	return args.Error(0)
}

func (m *MockCampaignRepo) SetCurrentAmount(ctx context.Context, campaignID uint64, amount int64) error {
	args := m.Called(ctx, campaignID, amount)
	return args.Error(0)
}

type MockPledgeRepo struct {
	mock.Mock
}

func (m *MockPledgeRepo) Create(ctx context.Context, pledge *model.Pledge) error {
	args := m.Called(ctx, pledge)
	return args.Error(0)
}

func (m *MockPledgeRepo) GetByCampaign(ctx context.Context, campaignID uint64, limit, offset int) ([]*model.Pledge, error) {
	args := m.Called(ctx, campaignID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pledge), args.Error(1)
}

func (m *MockPledgeRepo) GetByBacker(ctx context.Context, backerID uint64, limit, offset int) ([]*model.Pledge, error) {
	args := m.Called(ctx, backerID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.Pledge), args.Error(1)
}

func (m *MockPledgeRepo) SumByCampaign(ctx context.Context, campaignID uint64) (int64, error) {
	args := m.Called(ctx, campaignID)
	return args.Get(0).(int64), args.Error(1)
}

type MockConversationRepo struct {
	mock.Mock
}

func (m *MockConversationRepo) GetByPeerKey(ctx context.Context, peerKey string) (*model.Conversation, error) {
	args := m.Called(ctx, peerKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepo) GetByID(ctx context.Context, id uint64) (*model.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Conversation), args.Error(1)
}

func (m *MockConversationRepo) Create(ctx context.Context, conv *model.Conversation, members []*model.ConversationMember) error {
	args := m.Called(ctx, conv, members)
	return args.Error(0)
}

func (m *MockConversationRepo) IncrMaxSeq(ctx context.Context, convID uint64, content string, senderID uint64) (uint64, error) {
	args := m.Called(ctx, convID, content, senderID)
	return args.Get(0).(uint64), args.Error(1)
}

func (m *MockConversationRepo) GetMember(ctx context.Context, convID, userID uint64) (*model.ConversationMember, error) {
	args := m.Called(ctx, convID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ConversationMember), args.Error(1)
}

func (m *MockConversationRepo) GetMembers(ctx context.Context, convID uint64) ([]*model.ConversationMember, error) {
	args := m.Called(ctx, convID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ConversationMember), args.Error(1)
}

func (m *MockConversationRepo) UpdateReadSeq(ctx context.Context, convID, userID, seq uint64) error {
	args := m.Called(ctx, convID, userID, seq)
	return args.Error(0)
}

func (m *MockConversationRepo) GetConversationList(ctx context.Context, userID uint64) ([]*model.ConversationMember, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ConversationMember), args.Error(1)
}

type MockErosRepo struct {
	mock.Mock
}

func (m *MockErosRepo) GetByUserID(ctx context.Context, userID uint64) (*model.ErosProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ErosProfile), args.Error(1)
}

func (m *MockErosRepo) Upsert(ctx context.Context, profile *model.ErosProfile) error {
	args := m.Called(ctx, profile)
	return args.Error(0)
}

func (m *MockErosRepo) Deactivate(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockErosRepo) GetCandidates(ctx context.Context, seekerID uint64, gender string, limit int) ([]*model.ErosProfile, error) {
	args := m.Called(ctx, seekerID, gender, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.ErosProfile), args.Error(1)
}

type MockNotificationPrefRepo struct {
	mock.Mock
}

func (m *MockNotificationPrefRepo) Get(ctx context.Context, userID uint64, notifType string) (*model.NotificationPref, error) {
	args := m.Called(ctx, userID, notifType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.NotificationPref), args.Error(1)
}

func (m *MockNotificationPrefRepo) GetByUser(ctx context.Context, userID uint64) ([]*model.NotificationPref, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.NotificationPref), args.Error(1)
}

func (m *MockNotificationPrefRepo) Upsert(ctx context.Context, pref *model.NotificationPref) error {
	args := m.Called(ctx, pref)
	return args.Error(0)
}

type MockNotificationRepo struct {
	mock.Mock
}

func (m *MockNotificationRepo) CreateNotification(ctx context.Context, msg *mongo.NotificationModel) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockNotificationRepo) GetNotificationList(ctx context.Context, userID uint64, limit, offset int64) ([]*mongo.NotificationModel, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.NotificationModel), args.Error(1)
}

func (m *MockNotificationRepo) MarkAsRead(ctx context.Context, userID uint64, msgID string) error {
	args := m.Called(ctx, userID, msgID)
	return args.Error(0)
}

func (m *MockNotificationRepo) MarkAllAsRead(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationRepo) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*mongo.NotificationModel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*mongo.NotificationModel), args.Error(1)
}

type MockMessageRepo struct {
	mock.Mock
}

func (m *MockMessageRepo) SaveMessage(ctx context.Context, msg *mongo.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *MockMessageRepo) GetHistory(ctx context.Context, convID uint64, lastSeq uint64, pageSize int) ([]*mongo.Message, error) {
	args := m.Called(ctx, convID, lastSeq, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Message), args.Error(1)
}

func (m *MockMessageRepo) GetNewMessages(ctx context.Context, convID uint64, afterSeq uint64, pageSize int) ([]*mongo.Message, error) {
	args := m.Called(ctx, convID, afterSeq, pageSize)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*mongo.Message), args.Error(1)
}

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, subject, html string) error {
	args := m.Called(ctx, to, subject, html)
	return args.Error(0)
}

type MockNotificationService struct {
	mock.Mock
}

func (m *MockNotificationService) Dispatch(ctx context.Context, n *mongo.NotificationModel) {
	m.Called(ctx, n)
}

func (m *MockNotificationService) GetList(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.NotificationDTO, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.NotificationDTO), args.Error(1)
}

func (m *MockNotificationService) MarkAsRead(ctx context.Context, userID uint64, notifID string) error {
	args := m.Called(ctx, userID, notifID)
	return args.Error(0)
}

func (m *MockNotificationService) MarkAllAsRead(ctx context.Context, userID uint64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockNotificationService) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockNotificationService) GetPrefs(ctx context.Context, userID uint64) ([]*dto.NotificationPrefDTO, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.NotificationPrefDTO), args.Error(1)
}

func (m *MockNotificationService) UpdatePref(ctx context.Context, userID uint64, prefDTO *dto.NotificationPrefDTO) error {
	args := m.Called(ctx, userID, prefDTO)
	return args.Error(0)
}

type MockConnectionService struct {
	mock.Mock
}

func (m *MockConnectionService) SendRequest(ctx context.Context, userID uint64, reqDTO *dto.ConnectionRequestDTO) error {
	args := m.Called(ctx, userID, reqDTO)
	return args.Error(0)
}

func (m *MockConnectionService) Accept(ctx context.Context, userID, connectionID uint64) error {
	args := m.Called(ctx, userID, connectionID)
	return args.Error(0)
}

func (m *MockConnectionService) Decline(ctx context.Context, userID, connectionID uint64) error {
	args := m.Called(ctx, userID, connectionID)
	return args.Error(0)
}

func (m *MockConnectionService) Cancel(ctx context.Context, userID, connectionID uint64) error {
	args := m.Called(ctx, userID, connectionID)
	return args.Error(0)
}

func (m *MockConnectionService) Disconnect(ctx context.Context, userID, peerID uint64) error {
	args := m.Called(ctx, userID, peerID)
	return args.Error(0)
}

func (m *MockConnectionService) GetConnections(ctx context.Context, userID uint64, page *dto.PageDTO) (*dto.ConnectionListDTO, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectionListDTO), args.Error(1)
}

func (m *MockConnectionService) GetPendingIncoming(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.ConnectionDTO), args.Error(1)
}

func (m *MockConnectionService) GetPendingOutgoing(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error) {
	args := m.Called(ctx, userID, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*dto.ConnectionDTO), args.Error(1)
}

func (m *MockConnectionService) GetConnectedIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]uint64), args.Error(1)
}

func (m *MockConnectionService) AreConnected(ctx context.Context, userA, userB uint64) (bool, error) {
	args := m.Called(ctx, userA, userB)
	return args.Bool(0), args.Error(1)
}

type MockLinkFetcher struct {
	mock.Mock
}

func (m *MockLinkFetcher) Fetch(ctx context.Context, rawURL string) (*linkpreview.Preview, error) {
	args := m.Called(ctx, rawURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*linkpreview.Preview), args.Error(1)
}
