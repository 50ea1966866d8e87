package consts

const (
	TokenBlacklistKey   = "token:blacklist:"
	PostLikeKey         = "post:like:"
	PostCommentKey      = "post:comment:"
	ClipLikeKey         = "clip:like:"
	GroupMemberKey      = "group:member:"
	CampaignProgressKey = "campaign:progress:"
	UserConnectionsKey  = "user:connections:"
	UserChannelKey      = "user:channel:"
	LinkPreviewKey      = "link:preview:"
	SuggestCooldownKey  = "suggest:cooldown:"
)

const (
	DigestLock = "lock:digest:weekly"
)
