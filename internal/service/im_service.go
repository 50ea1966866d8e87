package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/redis"
	"circle/internal/pkg/util"
	"circle/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
)

type IMService interface {
	SendMessage(ctx context.Context, senderID uint64, req *dto.SendMessageReq) (*dto.MessageDTO, error)
	GetOrCreateConversation(ctx context.Context, userID, targetUserID uint64) (uint64, error)
	GetChatHistory(ctx context.Context, userID, convID, lastSeq uint64, pageSize int) ([]*dto.MessageDTO, error)
	SyncMessages(ctx context.Context, userID, convID, afterSeq uint64, pageSize int) ([]*dto.MessageDTO, error)
	GetConversationList(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error)
	MarkAsRead(ctx context.Context, userID, convID, seq uint64) error
	Close()
}

type imServiceImpl struct {
	convRepo        repository.ConversationRepo
	connectionRepo  repository.ConnectionRepo
	userRepo        repository.UserRepo
	messageRepo     mongo.MessageRepo
	notificationSvc NotificationService
	retryChan       chan *mongo.Message
	wg              sync.WaitGroup
	stopChan        chan struct{}
}

// NewIMService starts the async calibration worker pool alongside the service.
func NewIMService(convRepo repository.ConversationRepo, connectionRepo repository.ConnectionRepo,
	userRepo repository.UserRepo, messageRepo mongo.MessageRepo, notificationSvc NotificationService) IMService {
	s := &imServiceImpl{
		convRepo:        convRepo,
		connectionRepo:  connectionRepo,
		userRepo:        userRepo,
		messageRepo:     messageRepo,
		notificationSvc: notificationSvc,
		retryChan:       make(chan *mongo.Message, 2048),
		stopChan:        make(chan struct{}),
	}

	workerCount := 5
	s.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go s.calibrationWorker()
	}

	return s
}

func (s *imServiceImpl) SendMessage(ctx context.Context, senderID uint64, req *dto.SendMessageReq) (*dto.MessageDTO, error) {
	var convID = req.ConversationID
	var targetID = req.TargetUserID

	if convID == 0 {
		if targetID == 0 || targetID == senderID {
			return nil, ErrTargetUserInvalid
		}
		id, err := s.GetOrCreateConversation(ctx, senderID, targetID)
		if err != nil {
			return nil, err
		}
		convID = id
	} else {
		conv, err := s.convRepo.GetByID(ctx, convID)
		if err != nil {
			return nil, err
		}
		if conv == nil {
			return nil, ErrConversation
		}
		member, err := s.convRepo.GetMember(ctx, convID, senderID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, UnauthorizedError
		}
		targetID, err = parsePeerID(conv.PeerKey, senderID)
		if err != nil {
			return nil, err
		}
	}

	// Postgres hands out the sequence; Mongo only stores the body. A lost
	// Mongo write leaves a hole the history read stitches back from the head.
	newSeq, err := s.convRepo.IncrMaxSeq(ctx, convID, util.TruncateRunes(req.Content, 255), senderID)
	if err != nil {
		return nil, err
	}

	msgModel := &mongo.Message{
		ConversationID: convID,
		SenderID:       senderID,
		MsgType:        req.MsgType,
		Content:        req.Content,
		Seq:            newSeq,
		CreatedAt:      time.Now(),
	}

	writeCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := s.messageRepo.SaveMessage(writeCtx, msgModel); err != nil {
		select {
		case s.retryChan <- msgModel:
		default:
			log.ErrorContext(ctx, "message retry queue full, dropping write", "conv_id", convID, "seq", newSeq)
		}
	}

	if err := s.publishMessage(context.Background(), msgModel, targetID); err != nil {
		log.WarnContext(ctx, "failed to publish message to peer channel", "err", err)
	}

	s.notificationSvc.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: targetID,
		SenderID:   senderID,
		Type:       mongo.TypeMessage,
		TargetID:   convID,
		Title:      "New message",
		Content:    util.TruncateRunes(req.Content, 80),
		CreatedAt:  time.Now(),
	})

	return toMessageDTO(msgModel), nil
}

// GetOrCreateConversation resolves the DM conversation for a user pair,
// creating the head and both member rows on first contact. DMs are only
// open between accepted connections.
func (s *imServiceImpl) GetOrCreateConversation(ctx context.Context, userID, targetUserID uint64) (uint64, error) {
	peerKey := util.PeerKey(userID, targetUserID)

	conv, err := s.convRepo.GetByPeerKey(ctx, peerKey)
	if err != nil {
		return 0, err
	}
	if conv != nil {
		return conv.ID, nil
	}

	connection, err := s.connectionRepo.GetByPair(ctx, userID, targetUserID)
	if err != nil {
		return 0, err
	}
	if connection == nil || connection.Status != model.ConnectionStatusAccepted {
		return 0, ErrConnectionNotFound
	}

	newConv := &model.Conversation{
		PeerKey:       peerKey,
		LastMessageAt: time.Now(),
	}
	members := []*model.ConversationMember{
		{UserID: userID, JoinedAt: time.Now()},
		{UserID: targetUserID, JoinedAt: time.Now()},
	}

	if err := s.convRepo.Create(ctx, newConv, members); err != nil {
		return 0, err
	}
	return newConv.ID, nil
}

// GetChatHistory pages backwards. When the newest page misses the head
// message (a Mongo write that never landed), a stub rebuilt from the
// conversation head fills the gap.
func (s *imServiceImpl) GetChatHistory(ctx context.Context, userID, convID, lastSeq uint64, pageSize int) ([]*dto.MessageDTO, error) {
	member, err := s.convRepo.GetMember(ctx, convID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, UnauthorizedError
	}

	messages, err := s.messageRepo.GetHistory(ctx, convID, lastSeq, pageSize)
	if err != nil {
		return nil, err
	}

	if lastSeq == 0 {
		conv, err := s.convRepo.GetByID(ctx, convID)
		if err == nil && conv != nil {
			hasGap := (len(messages) == 0 && conv.MaxMsgSeq > 0) ||
				(len(messages) > 0 && messages[0].Seq < conv.MaxMsgSeq)
			if hasGap {
				stub := &dto.MessageDTO{
					ConversationID: conv.ID,
					SenderID:       conv.LastSenderID,
					MsgType:        1,
					Content:        conv.LastMsgContent,
					Seq:            conv.MaxMsgSeq,
					CreatedAt:      conv.LastMessageAt,
				}
				res := make([]*dto.MessageDTO, 0, len(messages)+1)
				res = append(res, stub)
				for _, m := range messages {
					res = append(res, toMessageDTO(m))
				}
				return res, nil
			}
		}
	}

	res := make([]*dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageDTO(m))
	}
	return res, nil
}

// SyncMessages pages forwards past afterSeq, oldest first, for clients
// catching up after a reconnect.
func (s *imServiceImpl) SyncMessages(ctx context.Context, userID, convID, afterSeq uint64, pageSize int) ([]*dto.MessageDTO, error) {
	member, err := s.convRepo.GetMember(ctx, convID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, UnauthorizedError
	}

	messages, err := s.messageRepo.GetNewMessages(ctx, convID, afterSeq, pageSize)
	if err != nil {
		return nil, err
	}
	res := make([]*dto.MessageDTO, 0, len(messages))
	for _, m := range messages {
		res = append(res, toMessageDTO(m))
	}
	return res, nil
}

func (s *imServiceImpl) GetConversationList(ctx context.Context, userID uint64) ([]*dto.ConversationDTO, error) {
	members, err := s.convRepo.GetConversationList(ctx, userID)
	if err != nil {
		return nil, err
	}

	peerIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		if peerID, err := parsePeerID(m.Conversation.PeerKey, userID); err == nil {
			peerIDs = append(peerIDs, peerID)
		}
	}
	peers := make(map[uint64]*model.User, len(peerIDs))
	if len(peerIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, peerIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			peers[u.ID] = u
		}
	}

	res := make([]*dto.ConversationDTO, 0, len(members))
	for _, m := range members {
		d := &dto.ConversationDTO{
			ConversationID: m.ConversationID,
			LastMsgContent: m.Conversation.LastMsgContent,
			LastSenderID:   m.Conversation.LastSenderID,
			LastMessageAt:  m.Conversation.LastMessageAt,
			UnreadCount:    m.UnreadCount,
		}
		if peerID, err := parsePeerID(m.Conversation.PeerKey, userID); err == nil {
			if peer, ok := peers[peerID]; ok {
				d.Peer = toUserDTO(peer)
			}
		}
		res = append(res, d)
	}
	return res, nil
}

// MarkAsRead advances the member's read pointer, clamped to the head seq,
// and pushes a read receipt to the peer.
func (s *imServiceImpl) MarkAsRead(ctx context.Context, userID, convID, seq uint64) error {
	member, err := s.convRepo.GetMember(ctx, convID, userID)
	if err != nil {
		return err
	}
	if member == nil {
		return UnauthorizedError
	}

	conv, err := s.convRepo.GetByID(ctx, convID)
	if err != nil {
		return err
	}
	if conv == nil {
		return ErrConversation
	}

	targetSeq := seq
	if targetSeq > conv.MaxMsgSeq {
		targetSeq = conv.MaxMsgSeq
	}

	if err := s.convRepo.UpdateReadSeq(ctx, convID, userID, targetSeq); err != nil {
		return err
	}

	peerID, err := parsePeerID(conv.PeerKey, userID)
	if err != nil {
		return err
	}
	go func() {
		if err := s.publishReadReceipt(convID, userID, peerID, targetSeq); err != nil {
			log.Error("failed to publish read receipt", "err", err)
		}
	}()

	return nil
}

func (s *imServiceImpl) publishMessage(ctx context.Context, msg *mongo.Message, targetUserID uint64) error {
	data, err := json.Marshal(toMessageDTO(msg))
	if err != nil {
		return err
	}
	channel := consts.UserChannelKey + strconv.FormatUint(targetUserID, 10)
	return redis.Publish(ctx, channel, data)
}

func (s *imServiceImpl) publishReadReceipt(convID, fromUID, toPeerID, seq uint64) error {
	receipt := &dto.ReadReceiptDTO{
		ConversationID: convID,
		UserID:         fromUID,
		ReadSeq:        seq,
		Type:           "READ_RECEIPT",
	}
	data, err := json.Marshal(receipt)
	if err != nil {
		return err
	}
	channel := consts.UserChannelKey + strconv.FormatUint(toPeerID, 10)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return redis.Publish(ctx, channel, data)
}

func (s *imServiceImpl) Close() {
	close(s.stopChan)
	s.wg.Wait()
	log.Info("IM service shut down gracefully")
}

// calibrationWorker replays Mongo writes that timed out on the hot path.
func (s *imServiceImpl) calibrationWorker() {
	defer s.wg.Done()
	for {
		select {
		case msg := <-s.retryChan:
			backoff := time.Second
			for i := 0; i < 3; i++ {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				err := s.messageRepo.SaveMessage(ctx, msg)
				cancel()
				if err == nil {
					break
				}
				time.Sleep(backoff)
				backoff *= 2
			}
		case <-s.stopChan:
			return
		}
	}
}

func toMessageDTO(m *mongo.Message) *dto.MessageDTO {
	return &dto.MessageDTO{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		SenderID:       m.SenderID,
		MsgType:        m.MsgType,
		Content:        m.Content,
		Seq:            m.Seq,
		CreatedAt:      m.CreatedAt,
	}
}

// parsePeerID recovers the other party's id from a "uid1_uid2" peer key.
func parsePeerID(peerKey string, currentUserID uint64) (uint64, error) {
	parts := strings.SplitN(peerKey, "_", 2)
	if len(parts) != 2 {
		return 0, ErrConversation
	}
	u1, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return 0, ErrConversation
	}
	u2, err := strconv.ParseUint(parts[1], 10, 64)
	if err != nil {
		return 0, ErrConversation
	}
	if u1 == currentUserID {
		return u2, nil
	}
	if u2 == currentUserID {
		return u1, nil
	}
	return 0, ErrConversation
}
