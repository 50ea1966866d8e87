package model

import "time"

const (
	ConnectionStatusPending  = "pending"
	ConnectionStatusAccepted = "accepted"
)

// Connection is a directed request between two users that becomes a
// symmetric relationship once accepted. Decline and cancel delete the row;
// no terminal record is retained.
type Connection struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	RequesterID uint64    `gorm:"not null;index:idx_requester" json:"requesterId"`
	AddresseeID uint64    `gorm:"not null;index:idx_addressee" json:"addresseeId"`
	Status      string    `gorm:"type:varchar(16);not null;default:pending" json:"status"`
	Message     string    `gorm:"type:varchar(500)" json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (Connection) TableName() string {
	return "connections"
}

// IsParty reports whether the user is on either side of the connection
func (c *Connection) IsParty(userID uint64) bool {
	return c.RequesterID == userID || c.AddresseeID == userID
}

// PeerOf returns the other side of the connection for the given user
func (c *Connection) PeerOf(userID uint64) uint64 {
	if c.RequesterID == userID {
		return c.AddresseeID
	}
	return c.RequesterID
}
