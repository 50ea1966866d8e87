package dto

// SearchReq full-text query
type SearchReq struct {
	Keyword string `form:"q" json:"q" binding:"required" validate:"min=1,max=100"`
	PageDTO
}

// SuggestDTO model-generated reply suggestions for a post
type SuggestDTO struct {
	PostID      uint64   `json:"post_id"`
	Suggestions []string `json:"suggestions"`
}
