package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

func (s *NotificationHandler) GetList(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	list, err := s.notificationSvc.GetList(c.Request.Context(), userID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, list)
}

func (s *NotificationHandler) GetUnreadCount(c *gin.Context) {
	userID := c.GetUint64("user_id")
	count, err := s.notificationSvc.GetUnreadCount(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, &dto.NotificationUnreadDTO{UnreadCount: count})
}

func (s *NotificationHandler) MarkAsRead(c *gin.Context) {
	var req struct {
		NotificationID string `json:"notification_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAsRead(c.Request.Context(), userID, req.NotificationID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.MarkAllAsRead(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *NotificationHandler) GetPrefs(c *gin.Context) {
	userID := c.GetUint64("user_id")
	prefs, err := s.notificationSvc.GetPrefs(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, prefs)
}

func (s *NotificationHandler) UpdatePref(c *gin.Context) {
	var prefDTO dto.NotificationPrefDTO
	if err := c.ShouldBindJSON(&prefDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.notificationSvc.UpdatePref(c.Request.Context(), userID, &prefDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}
