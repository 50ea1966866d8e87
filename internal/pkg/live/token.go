package live

import (
	"circle/internal/api/config"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// VideoGrant is the room permission block embedded in a join token
type VideoGrant struct {
	Room       string `json:"room"`
	RoomJoin   bool   `json:"roomJoin"`
	CanPublish bool   `json:"canPublish"`
}

type joinClaims struct {
	Video VideoGrant `json:"video"`
	jwt.RegisteredClaims
}

// BuildJoinToken signs a join token for the SFU. The identity goes in
// the subject; the grant controls publish rights in the room.
func BuildJoinToken(roomName, identity string, canPublish bool) (string, error) {
	cfg := config.Cfg.Live

	ttl := time.Duration(cfg.TokenTTL) * time.Second
	if ttl <= 0 {
		ttl = 6 * time.Hour
	}

	now := time.Now()
	claims := joinClaims{
		Video: VideoGrant{
			Room:       roomName,
			RoomJoin:   true,
			CanPublish: canPublish,
		},
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.APIKey,
			Subject:   identity,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.APISecret))
}
