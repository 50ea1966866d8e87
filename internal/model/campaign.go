package model

import "time"

// Campaign is a crowdfunding drive. CurrentAmount and BackersCount are
// accumulated with atomic column updates when pledges land.
type Campaign struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID       uint64    `gorm:"not null;index:idx_campaign_owner" json:"ownerId"`
	Title         string    `gorm:"type:varchar(255);not null" json:"title"`
	Description   string    `gorm:"type:text" json:"description"`
	CoverURL      string    `gorm:"type:varchar(255)" json:"coverUrl"`
	GoalAmount    int64     `gorm:"not null" json:"goalAmount"` // cents
	CurrentAmount int64     `gorm:"not null;default:0" json:"currentAmount"`
	BackersCount  int64     `gorm:"not null;default:0" json:"backersCount"`
	Status        string    `gorm:"type:varchar(16);not null;default:active;index" json:"status"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (Campaign) TableName() string {
	return "campaigns"
}
