package model

import "time"

const (
	PaymentStatusCompleted = "completed"
	PaymentStatusRefunded  = "refunded"
)

type Pledge struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	CampaignID    uint64    `gorm:"not null;index:idx_pledge_campaign" json:"campaignId"`
	BackerID      uint64    `gorm:"not null;index:idx_pledge_backer" json:"backerId"`
	Amount        int64     `gorm:"not null" json:"amount"` // cents
	RewardTier    string    `gorm:"type:varchar(64)" json:"rewardTier"`
	Message       string    `gorm:"type:varchar(500)" json:"message"`
	IsAnonymous   bool      `gorm:"not null;default:false" json:"isAnonymous"`
	PaymentStatus string    `gorm:"type:varchar(16);not null;default:completed" json:"paymentStatus"`
	CreatedAt     time.Time `json:"createdAt"`
}

func (Pledge) TableName() string {
	return "pledges"
}
