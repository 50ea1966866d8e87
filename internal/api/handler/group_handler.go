package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type GroupHandler struct {
	groupSvc service.GroupService
}

func NewGroupHandler(groupSvc service.GroupService) *GroupHandler {
	return &GroupHandler{groupSvc: groupSvc}
}

func (s *GroupHandler) CreateGroup(c *gin.Context) {
	var groupDTO dto.GroupBaseDTO
	if err := c.ShouldBindJSON(&groupDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&groupDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	group, err := s.groupSvc.CreateGroup(c.Request.Context(), userID, &groupDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) UpdateGroup(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var groupDTO dto.GroupBaseDTO
	if err := c.ShouldBindJSON(&groupDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&groupDTO); err != nil {
		response.Error(c, err)
		return
	}
	groupDTO.ID = groupID
	userID := c.GetUint64("user_id")
	if err := s.groupSvc.UpdateGroup(c.Request.Context(), userID, &groupDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GroupHandler) GetGroup(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	viewerID := c.GetUint64("user_id")
	group, err := s.groupSvc.GetGroup(c.Request.Context(), viewerID, groupID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, group)
}

func (s *GroupHandler) GetGroups(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	viewerID := c.GetUint64("user_id")
	groups, err := s.groupSvc.GetGroups(c.Request.Context(), viewerID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) GetMyGroups(c *gin.Context) {
	userID := c.GetUint64("user_id")
	groups, err := s.groupSvc.GetMyGroups(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, groups)
}

func (s *GroupHandler) Join(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.groupSvc.Join(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GroupHandler) Leave(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.groupSvc.Leave(c.Request.Context(), userID, groupID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *GroupHandler) GetMembers(c *gin.Context) {
	groupID, err := strconv.ParseUint(c.Param("group_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	members, err := s.groupSvc.GetMembers(c.Request.Context(), groupID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, members)
}
