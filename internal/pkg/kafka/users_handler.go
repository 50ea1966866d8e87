package kafka

import (
	"circle/internal/pkg/es"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
)

// UsersHandler mirrors user row changes into the search index and keeps
// the denormalized author fields on post documents current.
type UsersHandler struct {
	userESRepo es.UserRepo
	postESRepo es.PostRepo
}

func NewUsersHandler(userESRepo es.UserRepo, postESRepo es.PostRepo) *UsersHandler {
	return &UsersHandler{
		userESRepo: userESRepo,
		postESRepo: postESRepo,
	}
}

func (s *UsersHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer setup")
	return nil
}

func (s *UsersHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("user consumer cleanup")
	return nil
}

func (s *UsersHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-user consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-user process batch error", "err", err)
		return err
	}
	log.Info("topic-user consume claim end")
	return nil
}

func (s *UsersHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "users")
	if err != nil {
		return err
	}

	row := canalMsg.Data[0]

	if canalMsg.Type == "DELETE" {
		return s.userESRepo.DeleteUser(ctx, StrToUint64(row["id"]))
	}

	user := &es.UserES{
		ID:          StrToUint64(row["id"]),
		Username:    StrToString(row["username"]),
		DisplayName: StrToString(row["display_name"]),
		AvatarURL:   StrToString(row["avatar_url"]),
		Bio:         StrToString(row["bio"]),
		Church:      StrToString(row["church"]),
	}

	if err = s.userESRepo.IndexUser(ctx, user, canalMsg.TS); err != nil {
		return err
	}

	if s.profileChanged(canalMsg) {
		return s.postESRepo.UpdatePostAuthorDetail(ctx, user.ID, user.DisplayName, user.AvatarURL)
	}
	return nil
}

// profileChanged reports whether the display fields embedded in post
// documents moved in this change.
func (s *UsersHandler) profileChanged(msg *CanalMessage) bool {
	if msg.Type != "UPDATE" || len(msg.Old) == 0 {
		return false
	}
	old := msg.Old[0]
	_, nameChanged := old["display_name"]
	_, avatarChanged := old["avatar_url"]
	return nameChanged || avatarChanged
}
