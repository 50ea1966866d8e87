package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ConnectionHandler struct {
	connectionSvc service.ConnectionService
}

func NewConnectionHandler(connectionSvc service.ConnectionService) *ConnectionHandler {
	return &ConnectionHandler{connectionSvc: connectionSvc}
}

func (s *ConnectionHandler) SendRequest(c *gin.Context) {
	var req dto.ConnectionRequestDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.connectionSvc.SendRequest(c.Request.Context(), userID, &req); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConnectionHandler) Accept(c *gin.Context) {
	connectionID, err := strconv.ParseUint(c.Param("connection_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.connectionSvc.Accept(c.Request.Context(), userID, connectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConnectionHandler) Decline(c *gin.Context) {
	connectionID, err := strconv.ParseUint(c.Param("connection_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.connectionSvc.Decline(c.Request.Context(), userID, connectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConnectionHandler) Cancel(c *gin.Context) {
	connectionID, err := strconv.ParseUint(c.Param("connection_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.connectionSvc.Cancel(c.Request.Context(), userID, connectionID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConnectionHandler) Disconnect(c *gin.Context) {
	peerID, err := strconv.ParseUint(c.Param("peer_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.connectionSvc.Disconnect(c.Request.Context(), userID, peerID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ConnectionHandler) GetConnections(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.connectionSvc.GetConnections(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ConnectionHandler) GetPendingIncoming(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.connectionSvc.GetPendingIncoming(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *ConnectionHandler) GetPendingOutgoing(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.connectionSvc.GetPendingOutgoing(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}
