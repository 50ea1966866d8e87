package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ErosHandler struct {
	erosSvc service.ErosService
}

func NewErosHandler(erosSvc service.ErosService) *ErosHandler {
	return &ErosHandler{erosSvc: erosSvc}
}

func (s *ErosHandler) UpsertProfile(c *gin.Context) {
	var req dto.ErosProfileBaseDTO
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&req); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	profile, err := s.erosSvc.UpsertProfile(c.Request.Context(), userID, &req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *ErosHandler) GetMyProfile(c *gin.Context) {
	userID := c.GetUint64("user_id")
	profile, err := s.erosSvc.GetMyProfile(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *ErosHandler) GetProfile(c *gin.Context) {
	targetID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")
	profile, err := s.erosSvc.GetProfile(c.Request.Context(), viewerID, targetID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, profile)
}

func (s *ErosHandler) Deactivate(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.erosSvc.Deactivate(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *ErosHandler) GetCandidates(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	userID := c.GetUint64("user_id")
	candidates, err := s.erosSvc.GetCandidates(c.Request.Context(), userID, limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, candidates)
}
