package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/repository"
	"context"
	"math/rand"
)

// Eros is opt-in: nothing about a member is visible here until they
// create a profile, and deactivating pulls them from discovery.
type ErosService interface {
	UpsertProfile(ctx context.Context, userID uint64, req *dto.ErosProfileBaseDTO) (*dto.ErosProfileDTO, error)
	GetMyProfile(ctx context.Context, userID uint64) (*dto.ErosProfileDTO, error)
	GetProfile(ctx context.Context, viewerID, userID uint64) (*dto.ErosProfileDTO, error)
	Deactivate(ctx context.Context, userID uint64) error
	GetCandidates(ctx context.Context, userID uint64, limit int) ([]*dto.ErosProfileDTO, error)
}

type ErosServiceImpl struct {
	erosRepo       repository.ErosRepo
	userRepo       repository.UserRepo
	connectionRepo repository.ConnectionRepo
}

func NewErosService(erosRepo repository.ErosRepo, userRepo repository.UserRepo,
	connectionRepo repository.ConnectionRepo) ErosService {
	return &ErosServiceImpl{
		erosRepo:       erosRepo,
		userRepo:       userRepo,
		connectionRepo: connectionRepo,
	}
}

func (s *ErosServiceImpl) UpsertProfile(ctx context.Context, userID uint64, req *dto.ErosProfileBaseDTO) (*dto.ErosProfileDTO, error) {
	profile := &model.ErosProfile{
		UserID:        userID,
		Headline:      req.Headline,
		About:         req.About,
		BirthYear:     req.BirthYear,
		Gender:        req.Gender,
		SeekingGender: req.SeekingGender,
		City:          req.City,
		IsActive:      true,
	}
	if err := s.erosRepo.Upsert(ctx, profile); err != nil {
		return nil, err
	}
	return s.enrich(ctx, profile, true)
}

func (s *ErosServiceImpl) GetMyProfile(ctx context.Context, userID uint64) (*dto.ErosProfileDTO, error) {
	profile, err := s.erosRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrErosProfileNotFound
	}
	return s.enrich(ctx, profile, true)
}

// GetProfile shows another member's card. The viewer must have an active
// profile themselves, and deactivated profiles stay hidden.
func (s *ErosServiceImpl) GetProfile(ctx context.Context, viewerID, userID uint64) (*dto.ErosProfileDTO, error) {
	viewer, err := s.erosRepo.GetByUserID(ctx, viewerID)
	if err != nil {
		return nil, err
	}
	if viewer == nil || !viewer.IsActive {
		return nil, ForbiddenError
	}

	profile, err := s.erosRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || !profile.IsActive {
		return nil, ErrErosProfileNotFound
	}
	return s.enrich(ctx, profile, false)
}

func (s *ErosServiceImpl) Deactivate(ctx context.Context, userID uint64) error {
	profile, err := s.erosRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrErosProfileNotFound
	}
	return s.erosRepo.Deactivate(ctx, userID)
}

// GetCandidates lists active profiles matching the seeker's preference,
// most recently updated first. Members already connected to the seeker
// are filtered out. The compatibility score is random; the product has
// never pretended otherwise.
func (s *ErosServiceImpl) GetCandidates(ctx context.Context, userID uint64, limit int) ([]*dto.ErosProfileDTO, error) {
	seeker, err := s.erosRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if seeker == nil || !seeker.IsActive {
		return nil, ErrErosProfileNotFound
	}

	if limit <= 0 || limit > 50 {
		limit = 20
	}
	candidates, err := s.erosRepo.GetCandidates(ctx, userID, seeker.SeekingGender, limit)
	if err != nil {
		return nil, err
	}

	connected := make(map[uint64]struct{})
	connections, err := s.connectionRepo.GetAcceptedByUser(ctx, userID, maxConnectionFan, 0)
	if err != nil {
		return nil, err
	}
	for _, c := range connections {
		connected[c.RequesterID] = struct{}{}
		connected[c.AddresseeID] = struct{}{}
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if _, ok := connected[c.UserID]; ok {
			continue
		}
		filtered = append(filtered, c)
	}
	candidates = filtered

	userIDs := make([]uint64, 0, len(candidates))
	for _, c := range candidates {
		userIDs = append(userIDs, c.UserID)
	}
	users := make(map[uint64]*model.User, len(userIDs))
	if len(userIDs) > 0 {
		list, err := s.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range list {
			users[u.ID] = u
		}
	}

	res := make([]*dto.ErosProfileDTO, 0, len(candidates))
	for _, c := range candidates {
		item := toErosDTO(c, false)
		item.Compatibility = 50 + rand.Intn(50)
		if u, ok := users[c.UserID]; ok {
			item.DisplayName = u.DisplayName
			item.AvatarURL = u.AvatarURL
		}
		res = append(res, item)
	}
	return res, nil
}

func (s *ErosServiceImpl) enrich(ctx context.Context, profile *model.ErosProfile, owner bool) (*dto.ErosProfileDTO, error) {
	item := toErosDTO(profile, owner)
	user, err := s.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		item.DisplayName = user.DisplayName
		item.AvatarURL = user.AvatarURL
	}
	return item, nil
}

// toErosDTO hides the seeking preference from everyone but the owner
func toErosDTO(profile *model.ErosProfile, owner bool) *dto.ErosProfileDTO {
	item := &dto.ErosProfileDTO{
		UserID:    profile.UserID,
		Headline:  profile.Headline,
		About:     profile.About,
		BirthYear: profile.BirthYear,
		Gender:    profile.Gender,
		City:      profile.City,
	}
	if owner {
		item.SeekingGender = profile.SeekingGender
	}
	return item
}
