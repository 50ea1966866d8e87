package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/es"
	"circle/internal/pkg/redis"
	"circle/internal/pkg/security"
	"context"
	"time"

	"circle/internal/repository"

	"github.com/jinzhu/copier"
)

type UserService interface {
	Register(ctx context.Context, regDTO *dto.RegisterDTO) error
	Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error)
	Logout(ctx context.Context, token string) error
	GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error)
	GetUsersByIDs(ctx context.Context, ids []uint64) ([]*dto.UserDTO, error)
	UpdateProfile(ctx context.Context, id uint64, updateDTO *dto.UpdateProfileDTO) error
	SearchUsers(ctx context.Context, req *dto.SearchReq) ([]*dto.UserDTO, error)
}

type UserServiceImpl struct {
	userRepo   repository.UserRepo
	userESRepo es.UserRepo
}

func NewUserService(userRepo repository.UserRepo, userESRepo es.UserRepo) UserService {
	return &UserServiceImpl{
		userRepo:   userRepo,
		userESRepo: userESRepo,
	}
}

func (s *UserServiceImpl) Register(ctx context.Context, regDTO *dto.RegisterDTO) error {
	byName, err := s.userRepo.GetByUsername(ctx, regDTO.Username)
	if err != nil {
		return err
	}
	if byName != nil {
		return ErrUserExist
	}

	byEmail, err := s.userRepo.GetByEmail(ctx, regDTO.Email)
	if err != nil {
		return err
	}
	if byEmail != nil {
		return ErrUserEmailExist
	}

	passwordHash, err := security.HashPassword(regDTO.Password)
	if err != nil {
		return err
	}

	user := &model.User{
		Username:     regDTO.Username,
		Email:        regDTO.Email,
		PasswordHash: passwordHash,
		DisplayName:  regDTO.DisplayName,
		AvatarURL:    consts.DefaultAvatarURL,
	}
	return s.userRepo.Create(ctx, user)
}

func (s *UserServiceImpl) Login(ctx context.Context, credDTO *dto.CredentialDTO) (*dto.LoginResultDTO, error) {
	var user *model.User
	var err error

	switch {
	case credDTO.Username != nil:
		user, err = s.userRepo.GetByUsername(ctx, *credDTO.Username)
	case credDTO.Email != nil:
		user, err = s.userRepo.GetByEmail(ctx, *credDTO.Email)
	default:
		return nil, ErrMissingLoginCredentials
	}
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if security.CheckPasswordHash(credDTO.Password, user.PasswordHash) != nil {
		return nil, ErrPasswordIncorrect
	}

	token, err := security.GenerateToken(user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResultDTO{
		Token: token,
		User:  toUserDTO(user),
	}, nil
}

// Logout blacklists the token signature until its natural expiry
func (s *UserServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}
	key := consts.TokenBlacklistKey + signature
	return redis.SetWithExpiration(ctx, key, time.Now().Unix(), security.JWTExpirationTime)
}

func (s *UserServiceImpl) GetUserInfo(ctx context.Context, id uint64) (*dto.UserDTO, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}
	userDTO := toUserDTO(user)
	userDTO.CreatedAt = &user.CreatedAt
	return userDTO, nil
}

func (s *UserServiceImpl) GetUsersByIDs(ctx context.Context, ids []uint64) ([]*dto.UserDTO, error) {
	users, err := s.userRepo.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserDTO, 0, len(users))
	for _, u := range users {
		result = append(result, toUserDTO(u))
	}
	return result, nil
}

func (s *UserServiceImpl) UpdateProfile(ctx context.Context, id uint64, updateDTO *dto.UpdateProfileDTO) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	if err = copier.CopyWithOption(user, updateDTO, copier.Option{IgnoreEmpty: true}); err != nil {
		return err
	}
	return s.userRepo.Update(ctx, user)
}

func (s *UserServiceImpl) SearchUsers(ctx context.Context, req *dto.SearchReq) ([]*dto.UserDTO, error) {
	req.Normalize()
	hits, err := s.userESRepo.SearchUsers(ctx, req.Keyword, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}
	result := make([]*dto.UserDTO, 0, len(hits))
	for _, h := range hits {
		result = append(result, &dto.UserDTO{
			UserID:      h.ID,
			Username:    h.Username,
			DisplayName: h.DisplayName,
			AvatarURL:   h.AvatarURL,
			Bio:         h.Bio,
			Church:      h.Church,
		})
	}
	return result, nil
}

func toUserDTO(user *model.User) *dto.UserDTO {
	return &dto.UserDTO{
		UserID:      user.ID,
		Username:    user.Username,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Bio:         user.Bio,
		Church:      user.Church,
	}
}
