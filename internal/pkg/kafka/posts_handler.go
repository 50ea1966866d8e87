package kafka

import (
	"circle/internal/pkg/consts"
	"circle/internal/pkg/es"
	"circle/internal/repository"
	"context"
	log "log/slog"

	"github.com/IBM/sarama"
	"github.com/pkg/errors"
)

// PostsHandler mirrors post row changes into the search index
type PostsHandler struct {
	userDBRepo repository.UserRepo
	postESRepo es.PostRepo
}

func NewPostsHandler(userDBRepo repository.UserRepo, postESRepo es.PostRepo) *PostsHandler {
	return &PostsHandler{
		userDBRepo: userDBRepo,
		postESRepo: postESRepo,
	}
}

func (s *PostsHandler) Setup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer setup")
	return nil
}

func (s *PostsHandler) Cleanup(sarama.ConsumerGroupSession) error {
	log.Info("post consumer cleanup")
	return nil
}

func (s *PostsHandler) ConsumeClaim(session sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	log.Info("topic-post consume claim")
	err := pullMessageBatch(session, claim, s.logic)
	if err != nil {
		log.Error("topic-post process batch error", "err", err)
		return err
	}
	log.Info("topic-post consume claim end")
	return nil
}

func (s *PostsHandler) logic(ctx context.Context, msg *sarama.ConsumerMessage) error {
	canalMsg, err := ToCanalMessage(msg, "posts")
	if err != nil {
		return err
	}

	if canalMsg.Type == "DELETE" {
		return s.postESRepo.DeletePost(ctx, StrToUint64(canalMsg.Data[0]["id"]))
	}

	post := s.toESModel(canalMsg)

	// Deleted posts leave the index entirely
	if post.Status != consts.PostStatusNormal {
		return s.postESRepo.DeletePost(ctx, post.ID)
	}

	user, err := s.userDBRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		return err
	}
	if user == nil {
		return errors.New("post author not found")
	}
	post.AuthorName = user.DisplayName
	post.AuthorAvatar = user.AvatarURL

	// canal TS doubles as the external version; replays never go backwards
	return s.postESRepo.IndexPost(ctx, post, canalMsg.TS)
}

func (s *PostsHandler) toESModel(message *CanalMessage) *es.PostES {
	row := message.Data[0]

	return &es.PostES{
		ID:            StrToUint64(row["id"]),
		AuthorID:      StrToUint64(row["author_id"]),
		GroupID:       StrToUint64(row["group_id"]),
		Status:        StrToInt(row["status"]),
		Content:       StrToString(row["content"]),
		LinkTitle:     StrToString(row["link_title"]),
		LikesCount:    StrToInt64(row["likes_count"]),
		CommentsCount: StrToInt64(row["comments_count"]),
		CreatedAt:     StrToDateTime(row["created_at"]),
		UpdatedAt:     StrToDateTime(row["updated_at"]),
	}
}
