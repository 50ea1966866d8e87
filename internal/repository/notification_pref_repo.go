package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type NotificationPrefRepo interface {
	Get(ctx context.Context, userID uint64, notifType string) (*model.NotificationPref, error)
	GetByUser(ctx context.Context, userID uint64) ([]*model.NotificationPref, error)
	Upsert(ctx context.Context, pref *model.NotificationPref) error
}

type notificationPrefRepoImpl struct {
	db *gorm.DB
}

func NewNotificationPrefRepo(db *gorm.DB) NotificationPrefRepo {
	return &notificationPrefRepoImpl{db: db}
}

// Get returns nil when the user has no explicit row; the caller treats
// an absent row as email enabled.
func (s *notificationPrefRepoImpl) Get(ctx context.Context, userID uint64, notifType string) (*model.NotificationPref, error) {
	var pref model.NotificationPref
	result := s.db.WithContext(ctx).
		Where("user_id = ? AND type = ?", userID, notifType).
		First(&pref)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &pref, nil
}

func (s *notificationPrefRepoImpl) GetByUser(ctx context.Context, userID uint64) ([]*model.NotificationPref, error) {
	var prefs []*model.NotificationPref
	result := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&prefs)
	if result.Error != nil {
		return nil, result.Error
	}
	return prefs, nil
}

func (s *notificationPrefRepoImpl) Upsert(ctx context.Context, pref *model.NotificationPref) error {
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "type"}},
		DoUpdates: clause.AssignmentColumns([]string{"email_enabled"}),
	}).Create(pref).Error
}
