package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mailer"
	"circle/internal/pkg/mongo"
	"circle/internal/repository"
	"context"
	"errors"
	"fmt"
	log "log/slog"

	mongodriver "go.mongodb.org/mongo-driver/mongo"
)

type NotificationService interface {
	// Dispatch records the notification and, when the receiver's email
	// preference allows, sends an email. It never returns an error: a
	// failed fan-out must not fail the action that caused it.
	Dispatch(ctx context.Context, n *mongo.NotificationModel)

	GetList(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.NotificationDTO, error)
	MarkAsRead(ctx context.Context, userID uint64, notifID string) error
	MarkAllAsRead(ctx context.Context, userID uint64) error
	GetUnreadCount(ctx context.Context, userID uint64) (int64, error)
	GetPrefs(ctx context.Context, userID uint64) ([]*dto.NotificationPrefDTO, error)
	UpdatePref(ctx context.Context, userID uint64, prefDTO *dto.NotificationPrefDTO) error
}

type NotificationServiceImpl struct {
	notificationRepo mongo.NotificationRepo
	prefRepo         repository.NotificationPrefRepo
	userRepo         repository.UserRepo
	mail             mailer.Mailer
}

func NewNotificationService(
	notificationRepo mongo.NotificationRepo,
	prefRepo repository.NotificationPrefRepo,
	userRepo repository.UserRepo,
	mail mailer.Mailer,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		prefRepo:         prefRepo,
		userRepo:         userRepo,
		mail:             mail,
	}
}

func (s *NotificationServiceImpl) Dispatch(ctx context.Context, n *mongo.NotificationModel) {
	if err := s.notificationRepo.CreateNotification(ctx, n); err != nil {
		log.ErrorContext(ctx, "notification record failed",
			"receiver", n.ReceiverID, "type", n.Type, "err", err)
	}

	pref, err := s.prefRepo.Get(ctx, n.ReceiverID, n.Type)
	if err != nil {
		log.ErrorContext(ctx, "notification pref lookup failed",
			"receiver", n.ReceiverID, "type", n.Type, "err", err)
		return
	}
	// absent row means email stays on
	if pref != nil && !pref.EmailEnabled {
		return
	}

	receiver, err := s.userRepo.GetByID(ctx, n.ReceiverID)
	if err != nil || receiver == nil {
		log.ErrorContext(ctx, "notification receiver lookup failed",
			"receiver", n.ReceiverID, "err", err)
		return
	}
	if receiver.Email == "" {
		return
	}

	html := fmt.Sprintf("<p>%s</p>", n.Content)
	if err = s.mail.Send(ctx, receiver.Email, n.Title, html); err != nil {
		log.ErrorContext(ctx, "notification email failed",
			"receiver", n.ReceiverID, "type", n.Type, "err", err)
	}
}

func (s *NotificationServiceImpl) GetList(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.NotificationDTO, error) {
	page.Normalize()
	notifs, err := s.notificationRepo.GetNotificationList(ctx, userID, int64(page.PageSize), int64(page.Offset()))
	if err != nil {
		return nil, err
	}

	senderIDs := make([]uint64, 0, len(notifs))
	for _, n := range notifs {
		if n.SenderID != 0 {
			senderIDs = append(senderIDs, n.SenderID)
		}
	}
	senders := make(map[uint64]*model.User)
	if len(senderIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, senderIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			senders[u.ID] = u
		}
	}

	result := make([]*dto.NotificationDTO, 0, len(notifs))
	for _, n := range notifs {
		item := &dto.NotificationDTO{
			ID:        n.ID.Hex(),
			SenderID:  n.SenderID,
			Type:      n.Type,
			TargetID:  n.TargetID,
			Title:     n.Title,
			Content:   n.Content,
			Payload:   n.Payload,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		if sender, ok := senders[n.SenderID]; ok {
			item.SenderName = sender.DisplayName
			item.AvatarURL = sender.AvatarURL
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *NotificationServiceImpl) MarkAsRead(ctx context.Context, userID uint64, notifID string) error {
	err := s.notificationRepo.MarkAsRead(ctx, userID, notifID)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return ErrNotificationNotFound
		}
		return err
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllAsRead(ctx context.Context, userID uint64) error {
	return s.notificationRepo.MarkAllAsRead(ctx, userID)
}

func (s *NotificationServiceImpl) GetUnreadCount(ctx context.Context, userID uint64) (int64, error) {
	return s.notificationRepo.GetUnreadCount(ctx, userID)
}

func (s *NotificationServiceImpl) GetPrefs(ctx context.Context, userID uint64) ([]*dto.NotificationPrefDTO, error) {
	prefs, err := s.prefRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.NotificationPrefDTO, 0, len(prefs))
	for _, p := range prefs {
		result = append(result, &dto.NotificationPrefDTO{
			Type:         p.Type,
			EmailEnabled: p.EmailEnabled,
		})
	}
	return result, nil
}

func (s *NotificationServiceImpl) UpdatePref(ctx context.Context, userID uint64, prefDTO *dto.NotificationPrefDTO) error {
	pref := &model.NotificationPref{
		UserID:       userID,
		Type:         prefDTO.Type,
		EmailEnabled: prefDTO.EmailEnabled,
	}
	return s.prefRepo.Upsert(ctx, pref)
}
