package dto

// ConnectionRequestDTO send a connection request
type ConnectionRequestDTO struct {
	AddresseeID uint64 `json:"addressee_id" binding:"required"`
	Message     string `json:"message" validate:"max=300"`
}

// ConnectionDTO one edge as seen by one of its parties
type ConnectionDTO struct {
	ID        uint64   `json:"id"`
	Status    string   `json:"status"`
	Message   string   `json:"message,omitempty"`
	Outgoing  bool     `json:"outgoing"`
	Peer      *UserDTO `json:"peer"`
	CreatedAt string   `json:"created_at"`
}

// ConnectionListDTO paged connection list
type ConnectionListDTO struct {
	Connections []*ConnectionDTO `json:"connections"`
	Total       int64            `json:"total"`
}
