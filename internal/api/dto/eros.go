package dto

// ErosProfileBaseDTO create or replace the dating profile
type ErosProfileBaseDTO struct {
	Headline      string `json:"headline" binding:"required" validate:"min=1,max=100"`
	About         string `json:"about" validate:"max=2000"`
	BirthYear     int    `json:"birth_year" binding:"required" validate:"min=1900,max=2010"`
	Gender        string `json:"gender" binding:"required" validate:"oneof=male female"`
	SeekingGender string `json:"seeking_gender" binding:"required" validate:"oneof=male female"`
	City          string `json:"city" validate:"max=100"`
}

// ErosProfileDTO a dating profile card
type ErosProfileDTO struct {
	UserID        uint64 `json:"user_id"`
	DisplayName   string `json:"display_name"`
	AvatarURL     string `json:"avatar_url"`
	Headline      string `json:"headline"`
	About         string `json:"about,omitempty"`
	BirthYear     int    `json:"birth_year"`
	Gender        string `json:"gender"`
	SeekingGender string `json:"seeking_gender,omitempty"`
	City          string `json:"city,omitempty"`
	Compatibility int    `json:"compatibility,omitempty"`
}
