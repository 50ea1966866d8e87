package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/mongo"
	"circle/internal/pkg/util"
	"context"
	"fmt"

	"circle/internal/repository"
)

type PostActionService interface {
	LikePost(ctx context.Context, userID, postID uint64) error
	UnlikePost(ctx context.Context, userID, postID uint64) error
	CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error)
	DeleteComment(ctx context.Context, userID, commentID uint64) error
	GetComments(ctx context.Context, postID uint64, page *dto.PageDTO) ([]*dto.CommentDTO, error)

	CreateClip(ctx context.Context, userID uint64, clipDTO *dto.ClipBaseDTO) (*dto.ClipDTO, error)
	GetClips(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.ClipDTO, error)
	GetUserClips(ctx context.Context, viewerID, authorID uint64, page *dto.PageDTO) ([]*dto.ClipDTO, error)
	LikeClip(ctx context.Context, userID, clipID uint64) error
	UnlikeClip(ctx context.Context, userID, clipID uint64) error
}

type PostActionServiceImpl struct {
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
	clipRepo       repository.ClipRepo
	userRepo       repository.UserRepo
	notifier       NotificationService
}

func NewPostActionService(
	postRepo repository.PostRepo,
	postActionRepo repository.PostActionRepo,
	clipRepo repository.ClipRepo,
	userRepo repository.UserRepo,
	notifier NotificationService,
) PostActionService {
	return &PostActionServiceImpl{
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
		clipRepo:       clipRepo,
		userRepo:       userRepo,
		notifier:       notifier,
	}
}

// LikePost records the like row, then bumps the post counter with an
// atomic column update. A duplicate like is rejected before any write.
func (s *PostActionServiceImpl) LikePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}

	existing, err := s.postActionRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrActionDuplicate
	}

	if err = s.postActionRepo.CreateLike(ctx, &model.Like{UserID: userID, PostID: postID}); err != nil {
		return err
	}
	if err = s.postActionRepo.IncrLikesCount(ctx, postID, 1); err != nil {
		return err
	}

	if post.AuthorID != userID {
		liker, lErr := s.userRepo.GetByID(ctx, userID)
		if lErr != nil || liker == nil {
			return nil
		}
		s.notifier.Dispatch(ctx, &mongo.NotificationModel{
			ReceiverID: post.AuthorID,
			SenderID:   userID,
			Type:       mongo.TypePostLike,
			TargetID:   postID,
			Title:      "Your post was liked",
			Content:    fmt.Sprintf("%s liked your post", liker.DisplayName),
		})
	}
	return nil
}

func (s *PostActionServiceImpl) UnlikePost(ctx context.Context, userID, postID uint64) error {
	existing, err := s.postActionRepo.GetLike(ctx, userID, postID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrActionNotFound
	}

	if err = s.postActionRepo.DeleteLike(ctx, userID, postID); err != nil {
		return err
	}
	return s.postActionRepo.IncrLikesCount(ctx, postID, -1)
}

func (s *PostActionServiceImpl) CreateComment(ctx context.Context, userID uint64, commentDTO *dto.CommentBaseDTO) (*dto.CommentDTO, error) {
	post, err := s.postRepo.GetByID(ctx, commentDTO.PostID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	comment := &model.PostComment{
		PostID:  commentDTO.PostID,
		UserID:  userID,
		Content: commentDTO.Content,
	}
	if err = s.postActionRepo.CreateComment(ctx, comment); err != nil {
		return nil, err
	}
	if err = s.postActionRepo.IncrCommentsCount(ctx, commentDTO.PostID, 1); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if post.AuthorID != userID && author != nil {
		s.notifier.Dispatch(ctx, &mongo.NotificationModel{
			ReceiverID: post.AuthorID,
			SenderID:   userID,
			Type:       mongo.TypePostComment,
			TargetID:   post.ID,
			Title:      "New comment on your post",
			Content:    fmt.Sprintf("%s commented: %s", author.DisplayName, util.TruncateRunes(commentDTO.Content, 80)),
		})
	}

	result := &dto.CommentDTO{
		ID:        comment.ID,
		PostID:    comment.PostID,
		Content:   comment.Content,
		CreatedAt: util.FormatTime(comment.CreatedAt),
	}
	if author != nil {
		result.Author = toUserDTO(author)
	}
	return result, nil
}

// DeleteComment soft-deletes and decrements. Only the comment author or
// the post author may remove a comment.
func (s *PostActionServiceImpl) DeleteComment(ctx context.Context, userID, commentID uint64) error {
	comment, err := s.postActionRepo.GetComment(ctx, commentID)
	if err != nil {
		return err
	}
	if comment == nil {
		return ErrCommentNotFound
	}

	if comment.UserID != userID {
		post, pErr := s.postRepo.GetByID(ctx, comment.PostID)
		if pErr != nil {
			return pErr
		}
		if post == nil || post.AuthorID != userID {
			return ForbiddenError
		}
	}

	if err = s.postActionRepo.SoftDeleteComment(ctx, commentID); err != nil {
		return err
	}
	return s.postActionRepo.IncrCommentsCount(ctx, comment.PostID, -1)
}

func (s *PostActionServiceImpl) GetComments(ctx context.Context, postID uint64, page *dto.PageDTO) ([]*dto.CommentDTO, error) {
	page.Normalize()
	comments, err := s.postActionRepo.GetCommentsByPost(ctx, postID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}

	userIDs := make([]uint64, 0, len(comments))
	for _, c := range comments {
		userIDs = append(userIDs, c.UserID)
	}
	authors := make(map[uint64]*model.User)
	if len(userIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			authors[u.ID] = u
		}
	}

	result := make([]*dto.CommentDTO, 0, len(comments))
	for _, c := range comments {
		item := &dto.CommentDTO{
			ID:        c.ID,
			PostID:    c.PostID,
			Content:   c.Content,
			CreatedAt: util.FormatTime(c.CreatedAt),
		}
		if author, ok := authors[c.UserID]; ok {
			item.Author = toUserDTO(author)
		}
		result = append(result, item)
	}
	return result, nil
}

func (s *PostActionServiceImpl) CreateClip(ctx context.Context, userID uint64, clipDTO *dto.ClipBaseDTO) (*dto.ClipDTO, error) {
	clip := &model.Clip{
		AuthorID: userID,
		Title:    clipDTO.Title,
		VideoURL: clipDTO.VideoURL,
		CoverURL: clipDTO.CoverURL,
		Duration: clipDTO.Duration,
	}
	if err := s.clipRepo.Create(ctx, clip); err != nil {
		return nil, err
	}

	author, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := s.toClipDTO(clip, false)
	if author != nil {
		result.Author = toUserDTO(author)
	}
	return result, nil
}

func (s *PostActionServiceImpl) GetClips(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.ClipDTO, error) {
	page.Normalize()
	clips, err := s.clipRepo.GetLatest(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toClipDTOs(ctx, viewerID, clips)
}

// GetUserClips lists one author's clips, newest first.
func (s *PostActionServiceImpl) GetUserClips(ctx context.Context, viewerID, authorID uint64, page *dto.PageDTO) ([]*dto.ClipDTO, error) {
	page.Normalize()

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	clips, err := s.clipRepo.GetByAuthor(ctx, authorID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toClipDTOs(ctx, viewerID, clips)
}

func (s *PostActionServiceImpl) toClipDTOs(ctx context.Context, viewerID uint64, clips []*model.Clip) ([]*dto.ClipDTO, error) {
	authorIDs := make([]uint64, 0, len(clips))
	for _, c := range clips {
		authorIDs = append(authorIDs, c.AuthorID)
	}
	authors := make(map[uint64]*model.User)
	if len(authorIDs) > 0 {
		users, err := s.userRepo.GetByIDs(ctx, authorIDs)
		if err != nil {
			return nil, err
		}
		for _, u := range users {
			authors[u.ID] = u
		}
	}

	result := make([]*dto.ClipDTO, 0, len(clips))
	for _, c := range clips {
		liked := false
		if viewerID != 0 {
			like, lErr := s.postActionRepo.GetClipLike(ctx, viewerID, c.ID)
			if lErr != nil {
				return nil, lErr
			}
			liked = like != nil
		}
		item := s.toClipDTO(c, liked)
		if author, ok := authors[c.AuthorID]; ok {
			item.Author = toUserDTO(author)
		}
		result = append(result, item)
	}
	return result, nil
}

// LikeClip follows the same accounting order as post likes
func (s *PostActionServiceImpl) LikeClip(ctx context.Context, userID, clipID uint64) error {
	clip, err := s.clipRepo.GetByID(ctx, clipID)
	if err != nil {
		return err
	}
	if clip == nil {
		return ErrClipNotFound
	}

	existing, err := s.postActionRepo.GetClipLike(ctx, userID, clipID)
	if err != nil {
		return err
	}
	if existing != nil {
		return ErrActionDuplicate
	}

	if err = s.postActionRepo.CreateClipLike(ctx, &model.ClipLike{UserID: userID, ClipID: clipID}); err != nil {
		return err
	}
	return s.postActionRepo.IncrClipLikesCount(ctx, clipID, 1)
}

func (s *PostActionServiceImpl) UnlikeClip(ctx context.Context, userID, clipID uint64) error {
	existing, err := s.postActionRepo.GetClipLike(ctx, userID, clipID)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrActionNotFound
	}

	if err = s.postActionRepo.DeleteClipLike(ctx, userID, clipID); err != nil {
		return err
	}
	return s.postActionRepo.IncrClipLikesCount(ctx, clipID, -1)
}

func (s *PostActionServiceImpl) toClipDTO(clip *model.Clip, liked bool) *dto.ClipDTO {
	return &dto.ClipDTO{
		ID:         clip.ID,
		Title:      clip.Title,
		VideoURL:   clip.VideoURL,
		CoverURL:   clip.CoverURL,
		Duration:   clip.Duration,
		LikesCount: clip.LikesCount,
		Liked:      liked,
		CreatedAt:  util.FormatTime(clip.CreatedAt),
	}
}
