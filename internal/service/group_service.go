package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/util"
	"context"
	"fmt"
	"time"

	"circle/internal/repository"
)

const (
	GroupRoleOwner  = "owner"
	GroupRoleMember = "member"
)

type GroupService interface {
	CreateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupBaseDTO) (*dto.GroupDTO, error)
	UpdateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupBaseDTO) error
	GetGroup(ctx context.Context, viewerID, groupID uint64) (*dto.GroupDTO, error)
	GetGroups(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.GroupDTO, error)
	GetMyGroups(ctx context.Context, userID uint64) ([]*dto.GroupDTO, error)
	Join(ctx context.Context, userID, groupID uint64) error
	Leave(ctx context.Context, userID, groupID uint64) error
	GetMembers(ctx context.Context, groupID uint64, page *dto.PageDTO) ([]*dto.GroupMemberDTO, error)
}

type GroupServiceImpl struct {
	groupRepo repository.GroupRepo
	userRepo  repository.UserRepo
	notifier  NotificationService
}

func NewGroupService(
	groupRepo repository.GroupRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) GroupService {
	return &GroupServiceImpl{
		groupRepo: groupRepo,
		userRepo:  userRepo,
		notifier:  notifier,
	}
}

// CreateGroup creates the group with the creator as its first member,
// so MemberCount starts at one.
func (s *GroupServiceImpl) CreateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupBaseDTO) (*dto.GroupDTO, error) {
	group := &model.Group{
		OwnerID:     userID,
		Name:        groupDTO.Name,
		Description: groupDTO.Description,
		CoverURL:    groupDTO.CoverURL,
		MemberCount: 1,
	}
	if err := s.groupRepo.Create(ctx, group); err != nil {
		return nil, err
	}

	member := &model.GroupMember{
		GroupID:  group.ID,
		UserID:   userID,
		Role:     GroupRoleOwner,
		JoinedAt: time.Now(),
	}
	if err := s.groupRepo.CreateMember(ctx, member); err != nil {
		return nil, err
	}

	return s.toGroupDTO(group, true), nil
}

func (s *GroupServiceImpl) UpdateGroup(ctx context.Context, userID uint64, groupDTO *dto.GroupBaseDTO) error {
	group, err := s.groupRepo.GetByID(ctx, groupDTO.ID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	if group.OwnerID != userID {
		return ForbiddenError
	}

	group.Name = groupDTO.Name
	group.Description = groupDTO.Description
	group.CoverURL = groupDTO.CoverURL
	return s.groupRepo.Update(ctx, group)
}

func (s *GroupServiceImpl) GetGroup(ctx context.Context, viewerID, groupID uint64) (*dto.GroupDTO, error) {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	joined := false
	if viewerID != 0 {
		member, mErr := s.groupRepo.GetMember(ctx, groupID, viewerID)
		if mErr != nil {
			return nil, mErr
		}
		joined = member != nil
	}
	return s.toGroupDTO(group, joined), nil
}

func (s *GroupServiceImpl) GetGroups(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.GroupDTO, error) {
	page.Normalize()
	groups, err := s.groupRepo.GetList(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupDTO, 0, len(groups))
	for _, g := range groups {
		joined := false
		if viewerID != 0 {
			member, mErr := s.groupRepo.GetMember(ctx, g.ID, viewerID)
			if mErr != nil {
				return nil, mErr
			}
			joined = member != nil
		}
		result = append(result, s.toGroupDTO(g, joined))
	}
	return result, nil
}

func (s *GroupServiceImpl) GetMyGroups(ctx context.Context, userID uint64) ([]*dto.GroupDTO, error) {
	memberships, err := s.groupRepo.GetGroupsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]*dto.GroupDTO, 0, len(memberships))
	for _, m := range memberships {
		group, gErr := s.groupRepo.GetByID(ctx, m.GroupID)
		if gErr != nil {
			return nil, gErr
		}
		if group == nil {
			continue
		}
		result = append(result, s.toGroupDTO(group, true))
	}
	return result, nil
}

// Join inserts the membership row, then bumps the counter atomically.
// Joining twice is rejected before any write.
func (s *GroupServiceImpl) Join(ctx context.Context, userID, groupID uint64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}

	existing, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrGroupMemberExist
	}

	member := &model.GroupMember{
		GroupID:  groupID,
		UserID:   userID,
		Role:     GroupRoleMember,
		JoinedAt: time.Now(),
	}
	if err = s.groupRepo.CreateMember(ctx, member); err != nil {
		return err
	}
	if err = s.groupRepo.IncrMemberCount(ctx, groupID, 1); err != nil {
		return err
	}

	joiner, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || joiner == nil {
		return nil
	}
	s.notifier.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: group.OwnerID,
		SenderID:   userID,
		Type:       mongo.TypeGroupJoin,
		TargetID:   groupID,
		Title:      "New group member",
		Content:    fmt.Sprintf("%s joined %s", joiner.DisplayName, group.Name),
	})
	return nil
}

// Leave removes the membership and decrements. The owner cannot leave
// their own group.
func (s *GroupServiceImpl) Leave(ctx context.Context, userID, groupID uint64) error {
	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return err
	}
	if group == nil {
		return ErrGroupNotFound
	}
	if group.OwnerID == userID {
		return ForbiddenError
	}

	existing, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrGroupNotMember
	}

	if err = s.groupRepo.DeleteMember(ctx, groupID, userID); err != nil {
		return err
	}
	return s.groupRepo.IncrMemberCount(ctx, groupID, -1)
}

func (s *GroupServiceImpl) GetMembers(ctx context.Context, groupID uint64, page *dto.PageDTO) ([]*dto.GroupMemberDTO, error) {
	page.Normalize()

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}

	members, err := s.groupRepo.GetMembers(ctx, groupID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(members))
	for _, m := range members {
		userIDs = append(userIDs, m.UserID)
	}
	users := make(map[uint64]*model.User)
	if len(userIDs) > 0 {
		list, uErr := s.userRepo.GetByIDs(ctx, userIDs)
		if uErr != nil {
			return nil, uErr
		}
		for _, u := range list {
			users[u.ID] = u
		}
	}

	result := make([]*dto.GroupMemberDTO, 0, len(members))
	for _, m := range members {
		item := &dto.GroupMemberDTO{
			Role:     m.Role,
			JoinedAt: util.FormatTime(m.JoinedAt),
		}
		if u, ok := users[m.UserID]; ok {
			item.User = toUserDTO(u)
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *GroupServiceImpl) toGroupDTO(group *model.Group, joined bool) *dto.GroupDTO {
	return &dto.GroupDTO{
		ID:          group.ID,
		Name:        group.Name,
		Description: group.Description,
		CoverURL:    group.CoverURL,
		OwnerID:     group.OwnerID,
		MemberCount: group.MemberCount,
		Joined:      joined,
		CreatedAt:   util.FormatTime(group.CreatedAt),
	}
}
