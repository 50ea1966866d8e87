package repository

import (
	"circle/internal/model"
	"context"
	"errors"

	"gorm.io/gorm"
)

type GroupRepo interface {
	GetByID(ctx context.Context, id uint64) (*model.Group, error)
	Create(ctx context.Context, group *model.Group) error
	Update(ctx context.Context, group *model.Group) error
	GetList(ctx context.Context, limit, offset int) ([]*model.Group, error)

	GetMember(ctx context.Context, groupID, userID uint64) (*model.GroupMember, error)
	CreateMember(ctx context.Context, member *model.GroupMember) error
	DeleteMember(ctx context.Context, groupID, userID uint64) error
	IncrMemberCount(ctx context.Context, groupID uint64, delta int) error
	GetMembers(ctx context.Context, groupID uint64, limit, offset int) ([]*model.GroupMember, error)
	GetGroupsByUser(ctx context.Context, userID uint64) ([]*model.GroupMember, error)
}

type groupRepoImpl struct {
	db *gorm.DB
}

func NewGroupRepo(db *gorm.DB) GroupRepo {
	return &groupRepoImpl{db: db}
}

func (s *groupRepoImpl) GetByID(ctx context.Context, id uint64) (*model.Group, error) {
	var group model.Group
	result := s.db.WithContext(ctx).First(&group, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &group, nil
}

func (s *groupRepoImpl) Create(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Create(group).Error
}

func (s *groupRepoImpl) Update(ctx context.Context, group *model.Group) error {
	return s.db.WithContext(ctx).Save(group).Error
}

func (s *groupRepoImpl) GetList(ctx context.Context, limit, offset int) ([]*model.Group, error) {
	var groups []*model.Group
	result := s.db.WithContext(ctx).
		Order("member_count desc").
		Limit(limit).
		Offset(offset).
		Find(&groups)
	if result.Error != nil {
		return nil, result.Error
	}
	return groups, nil
}

func (s *groupRepoImpl) GetMember(ctx context.Context, groupID, userID uint64) (*model.GroupMember, error) {
	var member model.GroupMember
	result := s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		First(&member)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &member, nil
}

func (s *groupRepoImpl) CreateMember(ctx context.Context, member *model.GroupMember) error {
	return s.db.WithContext(ctx).Create(member).Error
}

func (s *groupRepoImpl) DeleteMember(ctx context.Context, groupID, userID uint64) error {
	return s.db.WithContext(ctx).
		Where("group_id = ? AND user_id = ?", groupID, userID).
		Delete(&model.GroupMember{}).Error
}

// IncrMemberCount keeps the denormalized counter in step with the
// membership table without a read-modify-write cycle.
func (s *groupRepoImpl) IncrMemberCount(ctx context.Context, groupID uint64, delta int) error {
	return s.db.WithContext(ctx).Model(&model.Group{}).
		Where("id = ?", groupID).
		Update("member_count", gorm.Expr("member_count + ?", delta)).Error
}

func (s *groupRepoImpl) GetMembers(ctx context.Context, groupID uint64, limit, offset int) ([]*model.GroupMember, error) {
	var members []*model.GroupMember
	result := s.db.WithContext(ctx).
		Where("group_id = ?", groupID).
		Order("joined_at asc").
		Limit(limit).
		Offset(offset).
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}

func (s *groupRepoImpl) GetGroupsByUser(ctx context.Context, userID uint64) ([]*model.GroupMember, error) {
	var members []*model.GroupMember
	result := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("joined_at desc").
		Find(&members)
	if result.Error != nil {
		return nil, result.Error
	}
	return members, nil
}
