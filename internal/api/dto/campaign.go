package dto

// CampaignBaseDTO create a campaign; amounts are cents
type CampaignBaseDTO struct {
	Title       string `json:"title" binding:"required" validate:"min=1,max=255"`
	Description string `json:"description" binding:"required" validate:"min=1,max=5000"`
	CoverURL    string `json:"cover_url" validate:"max=512"`
	GoalAmount  int64  `json:"goal_amount" binding:"required" validate:"min=100"`
	Deadline    string `json:"deadline" validate:"omitempty,datetime=2006-01-02"`
}

// CampaignDTO a campaign with its running totals
type CampaignDTO struct {
	ID            uint64   `json:"id"`
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	CoverURL      string   `json:"cover_url,omitempty"`
	GoalAmount    int64    `json:"goal_amount"`
	CurrentAmount int64    `json:"current_amount"`
	BackersCount  int64    `json:"backers_count"`
	Status        string   `json:"status"`
	Owner         *UserDTO `json:"owner"`
	CreatedAt     string   `json:"created_at"`
}

// PledgeBaseDTO back a campaign; amount is cents
type PledgeBaseDTO struct {
	CampaignID  uint64 `json:"campaign_id" binding:"required"`
	Amount      int64  `json:"amount" binding:"required" validate:"min=100"`
	RewardTier  string `json:"reward_tier" validate:"max=100"`
	Message     string `json:"message" validate:"max=500"`
	IsAnonymous bool   `json:"is_anonymous"`
}

// PledgeDTO one pledge; backer is nil when anonymous
type PledgeDTO struct {
	ID         uint64   `json:"id"`
	CampaignID uint64   `json:"campaign_id"`
	Amount     int64    `json:"amount"`
	RewardTier string   `json:"reward_tier,omitempty"`
	Message    string   `json:"message,omitempty"`
	Backer     *UserDTO `json:"backer,omitempty"`
	CreatedAt  string   `json:"created_at"`
}
