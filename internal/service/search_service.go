package service

import (
	"circle/internal/api/dto"
	"circle/internal/pkg/consts"
	"circle/internal/pkg/es"
	"circle/internal/pkg/llm"
	"circle/internal/pkg/redis"
	"circle/internal/pkg/util"
	"circle/internal/repository"
	"context"
	log "log/slog"
	"strconv"
	"time"
)

// suggestCooldown throttles reply suggestions per user, the model call
// being the expensive part.
const suggestCooldown = 30 * time.Second

type SearchService interface {
	SearchPosts(ctx context.Context, req *dto.SearchReq) ([]*dto.PostDTO, error)
	SearchUsers(ctx context.Context, req *dto.SearchReq) ([]*dto.UserDTO, error)
	SuggestReplies(ctx context.Context, userID, postID uint64) (*dto.SuggestDTO, error)
}

type SearchServiceImpl struct {
	postESRepo es.PostRepo
	userESRepo es.UserRepo
	postRepo   repository.PostRepo
}

func NewSearchService(postESRepo es.PostRepo, userESRepo es.UserRepo, postRepo repository.PostRepo) SearchService {
	return &SearchServiceImpl{
		postESRepo: postESRepo,
		userESRepo: userESRepo,
		postRepo:   postRepo,
	}
}

// SearchPosts serves results straight off the index. Counters may lag the
// database by the CDC pipeline's delay.
func (s *SearchServiceImpl) SearchPosts(ctx context.Context, req *dto.SearchReq) ([]*dto.PostDTO, error) {
	req.Normalize()
	hits, err := s.postESRepo.SearchPosts(ctx, req.Keyword, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.PostDTO, 0, len(hits))
	for _, h := range hits {
		res = append(res, toPostDTOFromES(h))
	}
	return res, nil
}

func (s *SearchServiceImpl) SearchUsers(ctx context.Context, req *dto.SearchReq) ([]*dto.UserDTO, error) {
	req.Normalize()
	hits, err := s.userESRepo.SearchUsers(ctx, req.Keyword, req.Offset(), req.PageSize)
	if err != nil {
		return nil, err
	}

	res := make([]*dto.UserDTO, 0, len(hits))
	for _, h := range hits {
		res = append(res, &dto.UserDTO{
			UserID:      h.ID,
			Username:    h.Username,
			DisplayName: h.DisplayName,
			AvatarURL:   h.AvatarURL,
			Bio:         h.Bio,
			Church:      h.Church,
		})
	}
	return res, nil
}

// SuggestReplies asks the model for short reply drafts for a post. A
// per-user redis cooldown keeps one member from hammering the model.
func (s *SearchServiceImpl) SuggestReplies(ctx context.Context, userID, postID uint64) (*dto.SuggestDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	cooldownKey := consts.SuggestCooldownKey + strconv.FormatUint(userID, 10)
	ok, err := redis.SetNX(ctx, cooldownKey, 1, suggestCooldown)
	if err != nil {
		log.WarnContext(ctx, "suggest cooldown check failed, allowing request", "err", err)
	} else if !ok {
		return nil, ErrSuggestCooldown
	}

	suggestions, err := llm.SuggestReplies(ctx, util.TruncateRunes(post.Content, 1000))
	if err != nil {
		return nil, ErrSuggestUnavailable
	}

	return &dto.SuggestDTO{
		PostID:      postID,
		Suggestions: suggestions,
	}, nil
}

func toPostDTOFromES(h *es.PostES) *dto.PostDTO {
	return &dto.PostDTO{
		ID:            h.ID,
		Content:       h.Content,
		GroupID:       h.GroupID,
		LikesCount:    h.LikesCount,
		CommentsCount: h.CommentsCount,
		LinkTitle:     h.LinkTitle,
		CreatedAt:     util.FormatTime(h.CreatedAt),
		Author: &dto.UserDTO{
			UserID:      h.AuthorID,
			DisplayName: h.AuthorName,
			AvatarURL:   h.AuthorAvatar,
		},
	}
}
