package handler

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/response"
	"circle/internal/pkg/util"
	"circle/internal/service"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CampaignHandler struct {
	campaignSvc service.CampaignService
}

func NewCampaignHandler(campaignSvc service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignSvc: campaignSvc}
}

func (s *CampaignHandler) CreateCampaign(c *gin.Context) {
	var campaignDTO dto.CampaignBaseDTO
	if err := c.ShouldBindJSON(&campaignDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&campaignDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	campaign, err := s.campaignSvc.CreateCampaign(c.Request.Context(), userID, &campaignDTO)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) GetCampaign(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("campaign_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	campaign, err := s.campaignSvc.GetCampaign(c.Request.Context(), campaignID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaign)
}

func (s *CampaignHandler) GetActiveCampaigns(c *gin.Context) {
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	campaigns, err := s.campaignSvc.GetActiveCampaigns(c.Request.Context(), &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, campaigns)
}

func (s *CampaignHandler) CancelCampaign(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("campaign_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.campaignSvc.CancelCampaign(c.Request.Context(), userID, campaignID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) Pledge(c *gin.Context) {
	var pledgeDTO dto.PledgeBaseDTO
	if err := c.ShouldBindJSON(&pledgeDTO); err != nil {
		response.Error(c, err)
		return
	}
	if err := util.ValidateDTO(&pledgeDTO); err != nil {
		response.Error(c, err)
		return
	}
	userID := c.GetUint64("user_id")
	if err := s.campaignSvc.Pledge(c.Request.Context(), userID, &pledgeDTO); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, nil)
}

func (s *CampaignHandler) GetPledges(c *gin.Context) {
	campaignID, err := strconv.ParseUint(c.Param("campaign_id"), 10, 64)
	if err != nil {
		response.Error(c, service.ErrParamInvalid)
		return
	}
	var page dto.PageDTO
	if err := c.ShouldBindQuery(&page); err != nil {
		response.Error(c, err)
		return
	}
	pledges, err := s.campaignSvc.GetPledges(c.Request.Context(), campaignID, &page)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, pledges)
}
