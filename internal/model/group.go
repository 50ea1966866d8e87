package model

import "time"

// Group is a community circle. MemberCount mirrors the group_members rows.
type Group struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID     uint64    `gorm:"not null;index:idx_group_owner" json:"ownerId"`
	Name        string    `gorm:"type:varchar(128);not null" json:"name"`
	Description string    `gorm:"type:varchar(1000)" json:"description"`
	CoverURL    string    `gorm:"type:varchar(255)" json:"coverUrl"`
	MemberCount int64     `gorm:"not null;default:0" json:"memberCount"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func (Group) TableName() string {
	return "groups"
}

type GroupMember struct {
	GroupID  uint64    `gorm:"primaryKey" json:"groupId"`
	UserID   uint64    `gorm:"primaryKey;index:idx_member_user" json:"userId"`
	Role     string    `gorm:"type:varchar(16);not null;default:member" json:"role"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (GroupMember) TableName() string {
	return "group_members"
}
