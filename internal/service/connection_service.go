package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/util"
	"context"
	"fmt"

	"circle/internal/repository"
)

type ConnectionService interface {
	SendRequest(ctx context.Context, userID uint64, reqDTO *dto.ConnectionRequestDTO) error
	Accept(ctx context.Context, userID, connectionID uint64) error
	Decline(ctx context.Context, userID, connectionID uint64) error
	Cancel(ctx context.Context, userID, connectionID uint64) error
	Disconnect(ctx context.Context, userID, peerID uint64) error
	GetConnections(ctx context.Context, userID uint64, page *dto.PageDTO) (*dto.ConnectionListDTO, error)
	GetPendingIncoming(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error)
	GetPendingOutgoing(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error)
	GetConnectedIDs(ctx context.Context, userID uint64) ([]uint64, error)
	AreConnected(ctx context.Context, userA, userB uint64) (bool, error)
}

type ConnectionServiceImpl struct {
	connectionRepo repository.ConnectionRepo
	userRepo       repository.UserRepo
	notifier       NotificationService
}

func NewConnectionService(
	connectionRepo repository.ConnectionRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) ConnectionService {
	return &ConnectionServiceImpl{
		connectionRepo: connectionRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// SendRequest creates a pending edge toward the addressee. One edge per
// pair, regardless of direction or state.
func (s *ConnectionServiceImpl) SendRequest(ctx context.Context, userID uint64, reqDTO *dto.ConnectionRequestDTO) error {
	if reqDTO.AddresseeID == userID {
		return ErrConnectionSelf
	}

	addressee, err := s.userRepo.GetByID(ctx, reqDTO.AddresseeID)
	if err != nil {
		return err
	}
	if addressee == nil {
		return ErrUserNotFound
	}

	existing, err := s.connectionRepo.GetByPair(ctx, userID, reqDTO.AddresseeID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrConnectionExist
	}

	conn := &model.Connection{
		RequesterID: userID,
		AddresseeID: reqDTO.AddresseeID,
		Status:      model.ConnectionStatusPending,
		Message:     reqDTO.Message,
	}
	if err = s.connectionRepo.Create(ctx, conn); err != nil {
		return err
	}

	requester, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || requester == nil {
		return nil
	}
	s.notifier.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: reqDTO.AddresseeID,
		SenderID:   userID,
		Type:       mongo.TypeConnectionRequest,
		TargetID:   conn.ID,
		Title:      "New connection request",
		Content:    fmt.Sprintf("%s wants to connect with you", requester.DisplayName),
	})
	return nil
}

// Accept moves a pending request to accepted. Only the addressee may
// accept; accepting anything but a pending request is a not-found.
func (s *ConnectionServiceImpl) Accept(ctx context.Context, userID, connectionID uint64) error {
	conn, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != model.ConnectionStatusPending {
		return ErrConnectionNotFound
	}
	if conn.AddresseeID != userID {
		return ErrNotConnectionParty
	}

	if err = s.connectionRepo.UpdateStatus(ctx, connectionID, model.ConnectionStatusAccepted); err != nil {
		return err
	}

	accepter, err := s.userRepo.GetByID(ctx, userID)
	if err != nil || accepter == nil {
		return nil
	}
	s.notifier.Dispatch(ctx, &mongo.NotificationModel{
		ReceiverID: conn.RequesterID,
		SenderID:   userID,
		Type:       mongo.TypeConnectionAccepted,
		TargetID:   conn.ID,
		Title:      "Connection accepted",
		Content:    fmt.Sprintf("%s accepted your connection request", accepter.DisplayName),
	})
	return nil
}

// Decline removes a pending request addressed to the user. The requester
// is not notified.
func (s *ConnectionServiceImpl) Decline(ctx context.Context, userID, connectionID uint64) error {
	conn, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != model.ConnectionStatusPending {
		return ErrConnectionNotFound
	}
	if conn.AddresseeID != userID {
		return ErrNotConnectionParty
	}
	return s.connectionRepo.Delete(ctx, connectionID)
}

// Cancel withdraws a pending request the user sent
func (s *ConnectionServiceImpl) Cancel(ctx context.Context, userID, connectionID uint64) error {
	conn, err := s.connectionRepo.GetByID(ctx, connectionID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != model.ConnectionStatusPending {
		return ErrConnectionNotFound
	}
	if conn.RequesterID != userID {
		return ErrNotConnectionParty
	}
	return s.connectionRepo.Delete(ctx, connectionID)
}

// Disconnect severs an accepted connection with the peer. Either side
// may disconnect; disconnecting an absent edge succeeds quietly.
func (s *ConnectionServiceImpl) Disconnect(ctx context.Context, userID, peerID uint64) error {
	conn, err := s.connectionRepo.GetByPair(ctx, userID, peerID)
	if err != nil {
		return err
	}
	if conn == nil || conn.Status != model.ConnectionStatusAccepted {
		return nil
	}
	return s.connectionRepo.Delete(ctx, conn.ID)
}

func (s *ConnectionServiceImpl) GetConnections(ctx context.Context, userID uint64, page *dto.PageDTO) (*dto.ConnectionListDTO, error) {
	page.Normalize()
	conns, err := s.connectionRepo.GetAcceptedByUser(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	total, err := s.connectionRepo.CountAcceptedByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := s.toConnectionDTOs(ctx, userID, conns)
	if err != nil {
		return nil, err
	}
	return &dto.ConnectionListDTO{Connections: items, Total: total}, nil
}

func (s *ConnectionServiceImpl) GetPendingIncoming(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error) {
	page.Normalize()
	conns, err := s.connectionRepo.GetPendingIncoming(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toConnectionDTOs(ctx, userID, conns)
}

func (s *ConnectionServiceImpl) GetPendingOutgoing(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.ConnectionDTO, error) {
	page.Normalize()
	conns, err := s.connectionRepo.GetPendingOutgoing(ctx, userID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toConnectionDTOs(ctx, userID, conns)
}

// GetConnectedIDs returns the ids of every accepted peer, for feed
// assembly and access checks.
func (s *ConnectionServiceImpl) GetConnectedIDs(ctx context.Context, userID uint64) ([]uint64, error) {
	conns, err := s.connectionRepo.GetAcceptedByUser(ctx, userID, maxConnectionFan, 0)
	if err != nil {
		return nil, err
	}
	ids := make([]uint64, 0, len(conns))
	for _, c := range conns {
		ids = append(ids, c.PeerOf(userID))
	}
	return ids, nil
}

func (s *ConnectionServiceImpl) AreConnected(ctx context.Context, userA, userB uint64) (bool, error) {
	conn, err := s.connectionRepo.GetByPair(ctx, userA, userB)
	if err != nil {
		return false, err
	}
	return conn != nil && conn.Status == model.ConnectionStatusAccepted, nil
}

const maxConnectionFan = 5000

func (s *ConnectionServiceImpl) toConnectionDTOs(ctx context.Context, userID uint64, conns []*model.Connection) ([]*dto.ConnectionDTO, error) {
	peerIDs := make([]uint64, 0, len(conns))
	for _, c := range conns {
		peerIDs = append(peerIDs, c.PeerOf(userID))
	}

	peers := make(map[uint64]*model.User)
	if len(peerIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, peerIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			peers[u.ID] = u
		}
	}

	result := make([]*dto.ConnectionDTO, 0, len(conns))
	for _, c := range conns {
		item := &dto.ConnectionDTO{
			ID:        c.ID,
			Status:    c.Status,
			Message:   c.Message,
			Outgoing:  c.RequesterID == userID,
			CreatedAt: util.FormatTime(c.CreatedAt),
		}
		if peer, ok := peers[c.PeerOf(userID)]; ok {
			item.Peer = toUserDTO(peer)
		}
		result = append(result, item)
	}
	return result, nil
}
