package dto

// GroupBaseDTO create or edit a group
type GroupBaseDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name" binding:"required" validate:"min=1,max=100"`
	Description string `json:"description" validate:"max=1000"`
	CoverURL    string `json:"cover_url" validate:"max=512"`
}

// GroupDTO a group with its counters
type GroupDTO struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CoverURL    string `json:"cover_url,omitempty"`
	OwnerID     uint64 `json:"owner_id"`
	MemberCount int64  `json:"member_count"`
	Joined      bool   `json:"joined"`
	CreatedAt   string `json:"created_at"`
}

// GroupMemberDTO one membership row
type GroupMemberDTO struct {
	User     *UserDTO `json:"user"`
	Role     string   `json:"role"`
	JoinedAt string   `json:"joined_at"`
}
