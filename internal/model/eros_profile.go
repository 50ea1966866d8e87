package model

import "time"

// ErosProfile is the opt-in dating profile for the Eros sub-product
type ErosProfile struct {
	UserID        uint64    `gorm:"primaryKey" json:"userId"`
	Headline      string    `gorm:"type:varchar(128)" json:"headline"`
	About         string    `gorm:"type:varchar(2000)" json:"about"`
	BirthYear     int       `gorm:"not null" json:"birthYear"`
	Gender        string    `gorm:"type:varchar(16)" json:"gender"`
	SeekingGender string    `gorm:"type:varchar(16)" json:"seekingGender"`
	City          string    `gorm:"type:varchar(64)" json:"city"`
	IsActive      bool      `gorm:"not null;default:true;index" json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

func (ErosProfile) TableName() string {
	return "eros_profiles"
}
