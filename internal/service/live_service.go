package service

import (
	"circle/internal/api/config"
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/live"
	"circle/internal/pkg/util"
	"circle/internal/repository"
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
)

type LiveService interface {
	StartStream(ctx context.Context, hostID uint64, req *dto.LiveStartDTO) (*dto.LiveStreamDTO, error)
	EndStream(ctx context.Context, userID, streamID uint64) error
	GetLiveStreams(ctx context.Context, page *dto.PageDTO) ([]*dto.LiveStreamDTO, error)
	JoinToken(ctx context.Context, userID, streamID uint64) (*dto.LiveTokenDTO, error)
}

type LiveServiceImpl struct {
	liveRepo repository.LiveStreamRepo
	userRepo repository.UserRepo
}

func NewLiveService(liveRepo repository.LiveStreamRepo, userRepo repository.UserRepo) LiveService {
	return &LiveServiceImpl{
		liveRepo: liveRepo,
		userRepo: userRepo,
	}
}

// StartStream opens a room on the SFU side by allocating a unique room
// name; the media session itself only starts once the host joins.
func (s *LiveServiceImpl) StartStream(ctx context.Context, hostID uint64, req *dto.LiveStartDTO) (*dto.LiveStreamDTO, error) {
	stream := &model.LiveStream{
		HostID:    hostID,
		RoomName:  uuid.NewString(),
		Title:     req.Title,
		Status:    consts.LiveStatusLive,
		StartedAt: time.Now(),
	}
	if err := s.liveRepo.Create(ctx, stream); err != nil {
		return nil, err
	}
	return s.toLiveStreamDTO(ctx, stream), nil
}

func (s *LiveServiceImpl) EndStream(ctx context.Context, userID, streamID uint64) error {
	stream, err := s.liveRepo.GetByID(ctx, streamID)
	if err != nil {
		return err
	}
	if stream == nil {
		return ErrStreamNotFound
	}
	if stream.HostID != userID {
		return ForbiddenError
	}
	if stream.Status == consts.LiveStatusEnded {
		return ErrStreamEnded
	}
	return s.liveRepo.End(ctx, streamID)
}

func (s *LiveServiceImpl) GetLiveStreams(ctx context.Context, page *dto.PageDTO) ([]*dto.LiveStreamDTO, error) {
	page.Normalize()
	streams, err := s.liveRepo.GetLive(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	hostIDs := make([]uint64, 0, len(streams))
	for _, stream := range streams {
		hostIDs = append(hostIDs, stream.HostID)
	}
	hosts := make(map[uint64]*model.User, len(hostIDs))
	if len(hostIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, hostIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			hosts[u.ID] = u
		}
	}

	res := make([]*dto.LiveStreamDTO, 0, len(streams))
	for _, stream := range streams {
		item := &dto.LiveStreamDTO{
			ID:        stream.ID,
			Title:     stream.Title,
			RoomName:  stream.RoomName,
			Status:    stream.Status,
			CreatedAt: util.FormatTime(stream.StartedAt),
		}
		if host, ok := hosts[stream.HostID]; ok {
			item.Host = toUserDTO(host)
		}
		res = append(res, item)
	}
	return res, nil
}

// JoinToken signs a room credential. Only the host gets publish rights;
// everyone else joins as a subscriber.
func (s *LiveServiceImpl) JoinToken(ctx context.Context, userID, streamID uint64) (*dto.LiveTokenDTO, error) {
	stream, err := s.liveRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}
	if stream == nil {
		return nil, ErrStreamNotFound
	}
	if stream.Status != consts.LiveStatusLive {
		return nil, ErrStreamEnded
	}

	canPublish := stream.HostID == userID
	token, err := live.BuildJoinToken(stream.RoomName, strconv.FormatUint(userID, 10), canPublish)
	if err != nil {
		return nil, err
	}

	return &dto.LiveTokenDTO{
		Token:    token,
		WSURL:    config.Cfg.Live.WSURL,
		RoomName: stream.RoomName,
	}, nil
}

func (s *LiveServiceImpl) toLiveStreamDTO(ctx context.Context, stream *model.LiveStream) *dto.LiveStreamDTO {
	item := &dto.LiveStreamDTO{
		ID:        stream.ID,
		Title:     stream.Title,
		RoomName:  stream.RoomName,
		Status:    stream.Status,
		CreatedAt: util.FormatTime(stream.StartedAt),
	}
	if host, err := s.userRepo.GetByID(ctx, stream.HostID); err == nil && host != nil {
		item.Host = toUserDTO(host)
	}
	return item
}
