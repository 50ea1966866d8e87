package service

import (
	"circle/internal/api/dto"
	"circle/internal/model"
	"circle/internal/pkg/linkpreview"
	"circle/internal/pkg/util"
	"context"
	log "log/slog"

	"circle/internal/repository"
)

type PostService interface {
	CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error)
	GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error)
	DeletePost(ctx context.Context, userID, postID uint64) error
	GetFeed(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error)
	GetUserPosts(ctx context.Context, viewerID, authorID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error)
	GetGroupFeed(ctx context.Context, userID, groupID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error)
	GetLatest(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error)
}

type PostServiceImpl struct {
	postRepo       repository.PostRepo
	postActionRepo repository.PostActionRepo
	userRepo       repository.UserRepo
	groupRepo      repository.GroupRepo
	connections    ConnectionService
	previews       linkpreview.Fetcher
}

func NewPostService(
	postRepo repository.PostRepo,
	postActionRepo repository.PostActionRepo,
	userRepo repository.UserRepo,
	groupRepo repository.GroupRepo,
	connections ConnectionService,
	previews linkpreview.Fetcher,
) PostService {
	return &PostServiceImpl{
		postRepo:       postRepo,
		postActionRepo: postActionRepo,
		userRepo:       userRepo,
		groupRepo:      groupRepo,
		connections:    connections,
		previews:       previews,
	}
}

func (s *PostServiceImpl) CreatePost(ctx context.Context, userID uint64, postDTO *dto.PostBaseDTO) (*dto.PostDTO, error) {
	if postDTO.GroupID != 0 {
		member, err := s.groupRepo.GetMember(ctx, postDTO.GroupID, userID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, ErrGroupNotMember
		}
	}

	post := &model.Post{
		AuthorID: userID,
		GroupID:  postDTO.GroupID,
		Content:  postDTO.Content,
		MediaURL: postDTO.MediaURL,
		LinkURL:  postDTO.LinkURL,
	}

	// the post goes through even when the preview does not
	if postDTO.LinkURL != "" {
		preview, err := s.previews.Fetch(ctx, postDTO.LinkURL)
		if err != nil {
			log.WarnContext(ctx, "link preview fetch failed", "url", postDTO.LinkURL, "err", err)
		} else {
			post.LinkTitle = preview.Title
			post.LinkExcerpt = preview.Excerpt
			post.LinkImageURL = preview.ImageURL
		}
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	dtos, err := s.toPostDTOs(ctx, userID, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

func (s *PostServiceImpl) GetPost(ctx context.Context, viewerID, postID uint64) (*dto.PostDTO, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, ErrPostNotFound
	}

	// group posts stay inside the group
	if post.GroupID != 0 {
		member, err := s.groupRepo.GetMember(ctx, post.GroupID, viewerID)
		if err != nil {
			return nil, err
		}
		if member == nil {
			return nil, ErrGroupNotMember
		}
	}

	dtos, err := s.toPostDTOs(ctx, viewerID, []*model.Post{post})
	if err != nil {
		return nil, err
	}
	return dtos[0], nil
}

func (s *PostServiceImpl) DeletePost(ctx context.Context, userID, postID uint64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post == nil {
		return ErrPostNotFound
	}
	if post.AuthorID != userID {
		return ForbiddenError
	}
	return s.postRepo.SoftDelete(ctx, postID)
}

// GetFeed assembles the home feed: the user's own posts plus posts from
// accepted connections, newest first.
func (s *PostServiceImpl) GetFeed(ctx context.Context, userID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error) {
	page.Normalize()

	peerIDs, err := s.connections.GetConnectedIDs(ctx, userID)
	if err != nil {
		return nil, err
	}
	authorIDs := append(peerIDs, userID)

	posts, err := s.postRepo.GetByAuthors(ctx, authorIDs, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, userID, posts)
}

// GetUserPosts lists one author's non-group posts, newest first.
func (s *PostServiceImpl) GetUserPosts(ctx context.Context, viewerID, authorID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error) {
	page.Normalize()

	author, err := s.userRepo.GetByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if author == nil {
		return nil, ErrUserNotFound
	}

	posts, err := s.postRepo.GetByAuthors(ctx, []uint64{authorID}, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, viewerID, posts)
}

func (s *PostServiceImpl) GetGroupFeed(ctx context.Context, userID, groupID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error) {
	page.Normalize()

	group, err := s.groupRepo.GetByID(ctx, groupID)
	if err != nil {
		return nil, err
	}
	if group == nil {
		return nil, ErrGroupNotFound
	}
	member, err := s.groupRepo.GetMember(ctx, groupID, userID)
	if err != nil {
		return nil, err
	}
	if member == nil {
		return nil, ErrGroupNotMember
	}

	posts, err := s.postRepo.GetByGroup(ctx, groupID, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, userID, posts)
}

func (s *PostServiceImpl) GetLatest(ctx context.Context, viewerID uint64, page *dto.PageDTO) ([]*dto.PostDTO, error) {
	page.Normalize()
	posts, err := s.postRepo.GetLatest(ctx, page.PageSize, page.Offset())
	if err != nil {
		return nil, err
	}
	return s.toPostDTOs(ctx, viewerID, posts)
}

func (s *PostServiceImpl) toPostDTOs(ctx context.Context, viewerID uint64, posts []*model.Post) ([]*dto.PostDTO, error) {
	authorIDs := make([]uint64, 0, len(posts))
	postIDs := make([]uint64, 0, len(posts))
	for _, p := range posts {
		authorIDs = append(authorIDs, p.AuthorID)
		postIDs = append(postIDs, p.ID)
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

	liked := make(map[uint64]bool)
	if viewerID != 0 {
		likedIDs, err := s.postActionRepo.GetLikedPostIDs(ctx, viewerID, postIDs)
		if err != nil {
			return nil, err
		}
		for _, id := range likedIDs {
			liked[id] = true
		}
	}

	result := make([]*dto.PostDTO, 0, len(posts))
	for _, p := range posts {
		item := &dto.PostDTO{
			ID:            p.ID,
			Content:       p.Content,
			MediaURL:      p.MediaURL,
			GroupID:       p.GroupID,
			LikesCount:    p.LikesCount,
			CommentsCount: p.CommentsCount,
			Liked:         liked[p.ID],
			CreatedAt:     util.FormatTime(p.CreatedAt),
			LinkURL:       p.LinkURL,
			LinkTitle:     p.LinkTitle,
			LinkExcerpt:   p.LinkExcerpt,
			LinkImageURL:  p.LinkImageURL,
		}
		if author, ok := authors[p.AuthorID]; ok {
			item.Author = toUserDTO(author)
		}
		result = append(result, item)
	}
	return result, nil
}
