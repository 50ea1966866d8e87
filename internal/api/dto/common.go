package dto

// Response is the envelope every endpoint returns
type Response struct {
	Code    int         `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// PageDTO standard pagination query
type PageDTO struct {
	Page     int `form:"page" json:"page" validate:"omitempty,min=1"`
	PageSize int `form:"page_size" json:"page_size" validate:"omitempty,min=1,max=50"`
}

// Normalize fills defaults for unset pagination fields
func (p *PageDTO) Normalize() {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 || p.PageSize > 50 {
		p.PageSize = 20
	}
}

// Offset converts page/page_size into a row offset
func (p *PageDTO) Offset() int {
	return (p.Page - 1) * p.PageSize
}
