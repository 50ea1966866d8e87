package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type PostActionHandler struct {
	postActionSvc service.PostActionService
}

func NewPostActionHandler(postActionSvc service.PostActionService) *PostActionHandler {
	return &PostActionHandler{postActionSvc: postActionSvc}
}

func (s *PostActionHandler) LikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postActionSvc.LikePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) UnlikePost(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postActionSvc.UnlikePost(c.Request.Context(), userID, postID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) CreateComment(c *gin.Context) {
	var commentDTO dto.CommentBaseDTO
	if err := c.ShouldBindJSON(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&commentDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	comment, err := s.postActionSvc.CreateComment(c.Request.Context(), userID, &commentDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comment)
}

func (s *PostActionHandler) DeleteComment(c *gin.Context) {
	commentID, err := strconv.ParseUint(c.Param("comment_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postActionSvc.DeleteComment(c.Request.Context(), userID, commentID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) GetComments(c *gin.Context) {
	postID, err := strconv.ParseUint(c.Param("post_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	comments, err := s.postActionSvc.GetComments(c.Request.Context(), postID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, comments)
}

func (s *PostActionHandler) CreateClip(c *gin.Context) {
	var clipDTO dto.ClipBaseDTO
	if err := c.ShouldBindJSON(&clipDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&clipDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	clip, err := s.postActionSvc.CreateClip(c.Request.Context(), userID, &clipDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, clip)
}

func (s *PostActionHandler) GetClips(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	viewerID := c.GetUint64("user_id")
	clips, err := s.postActionSvc.GetClips(c.Request.Context(), viewerID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, clips)
}

func (s *PostActionHandler) GetUserClips(c *gin.Context) {
	authorID, err := strconv.ParseUint(c.Param("user_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	viewerID := c.GetUint64("user_id")
	clips, err := s.postActionSvc.GetUserClips(c.Request.Context(), viewerID, authorID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, clips)
}

func (s *PostActionHandler) LikeClip(c *gin.Context) {
	clipID, err := strconv.ParseUint(c.Param("clip_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postActionSvc.LikeClip(c.Request.Context(), userID, clipID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *PostActionHandler) UnlikeClip(c *gin.Context) {
	clipID, err := strconv.ParseUint(c.Param("clip_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.postActionSvc.UnlikeClip(c.Request.Context(), userID, clipID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
