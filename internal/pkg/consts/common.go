package consts

const (
	PostStatusNormal  = 1
	PostStatusDeleted = 2
)

const (
	CampaignStatusActive    = "active"
	CampaignStatusCompleted = "completed"
	CampaignStatusCancelled = "cancelled"
)

const (
	LiveStatusLive  = "live"
	LiveStatusEnded = "ended"
)

const (
	DefaultAvatarURL = "default_avatar.png"
)
