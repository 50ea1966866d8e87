package handler

import (
	"circle/internal/pkg/consts"
	"circle/internal/pkg/redis"
	"circle/internal/pkg/response"
	"circle/internal/pkg/security"
	"circle/internal/service"
	"context"
	log "log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WSHandler bridges the user's personal redis channel onto a websocket,
// delivering messages and read receipts in real time.
type WSHandler struct{}

func NewWSHandler() *WSHandler {
	return &WSHandler{}
}

func (s *WSHandler) Connect(c *gin.Context) {
	// browsers cannot set headers on a websocket dial, so the token
	// rides in the query string
	token := c.Query("token")
	if token == "" {
		response.Error(c, service.UnauthorizedError)
		return
	}
	claims, err := security.ValidateToken(token)
	if err != nil {
		log.Warn("ws auth failed", "err", err)
		response.Error(c, service.UnauthorizedError)
		return
	}
	userID := claims.UserID

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Error("ws upgrade failed", "err", err)
		return
	}
	defer func() {
		_ = conn.Close()
	}()

	channel := consts.UserChannelKey + strconv.FormatUint(userID, 10)
	pubsub := redis.Subscribe(context.Background(), channel)
	defer func() {
		_ = pubsub.Close()
	}()

	log.Info("ws connection established", "user_id", userID)

	stopChan := make(chan struct{})

	// read loop only watches for the client hanging up
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				close(stopChan)
				return
			}
		}
	}()

	redisCh := pubsub.Channel()
	for {
		select {
		case msg := <-redisCh:
			_ = conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := conn.WriteMessage(websocket.TextMessage, []byte(msg.Payload)); err != nil {
				log.Error("ws push failed", "user_id", userID, "err", err)
				return
			}
		case <-stopChan:
			log.Info("ws connection closed", "user_id", userID)
			return
		}
	}
}
