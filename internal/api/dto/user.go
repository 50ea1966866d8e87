package dto

import "time"

// RegisterDTO new account
type RegisterDTO struct {
	Username    string `json:"username" binding:"required" validate:"min=3,max=30"`
	Email       string `json:"email" binding:"required" validate:"email"`
	Password    string `json:"password" binding:"required" validate:"min=8,max=64"`
	DisplayName string `json:"display_name" binding:"required" validate:"min=1,max=50"`
}

// CredentialDTO login credential, username or email
type CredentialDTO struct {
	Username *string `json:"username,omitempty"`
	Email    *string `json:"email,omitempty"`
	Password string  `json:"password" binding:"required"`
}

// UserDTO public profile
type UserDTO struct {
	UserID      uint64     `json:"user_id"`
	Username    string     `json:"username"`
	DisplayName string     `json:"display_name"`
	AvatarURL   string     `json:"avatar_url"`
	Bio         string     `json:"bio"`
	Church      string     `json:"church"`
	CreatedAt   *time.Time `json:"created_at,omitempty"`
}

// UpdateProfileDTO partial profile update
type UpdateProfileDTO struct {
	DisplayName *string `json:"display_name,omitempty" validate:"omitempty,min=1,max=50"`
	AvatarURL   *string `json:"avatar_url,omitempty" validate:"omitempty,max=512"`
	Bio         *string `json:"bio,omitempty" validate:"omitempty,max=500"`
	Church      *string `json:"church,omitempty" validate:"omitempty,max=100"`
}

// LoginResultDTO token plus profile
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}
