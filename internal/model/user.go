package model

import "time"

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Username     string    `gorm:"uniqueIndex;type:varchar(32);not null" json:"username"`
	Email        string    `gorm:"uniqueIndex;type:varchar(255)" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	DisplayName  string    `gorm:"type:varchar(64)" json:"displayName"`
	AvatarURL    string    `gorm:"type:varchar(255)" json:"avatarUrl"`
	Bio          string    `gorm:"type:varchar(500)" json:"bio"`
	Church       string    `gorm:"type:varchar(128)" json:"church"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}
