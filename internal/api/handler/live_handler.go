package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type LiveHandler struct {
	liveSvc service.LiveService
}

func NewLiveHandler(liveSvc service.LiveService) *LiveHandler {
	return &LiveHandler{liveSvc: liveSvc}
}

func (s *LiveHandler) StartStream(c *gin.Context) {
	var req dto.LiveStartDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	stream, err := s.liveSvc.StartStream(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, stream)
}

func (s *LiveHandler) EndStream(c *gin.Context) {
	streamID, err := strconv.ParseUint(c.Param("stream_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.liveSvc.EndStream(c.Request.Context(), userID, streamID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *LiveHandler) GetLiveStreams(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	streams, err := s.liveSvc.GetLiveStreams(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, streams)
}

// JoinToken issues the SFU room credential for the caller
func (s *LiveHandler) JoinToken(c *gin.Context) {
	streamID, err := strconv.ParseUint(c.Param("stream_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	token, err := s.liveSvc.JoinToken(c.Request.Context(), userID, streamID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, token)
}
