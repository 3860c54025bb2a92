package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// PostStore is the post persistence surface the service needs
type PostStore interface {
	GetFeed(ctx context.Context, viewerID int64, page, pageSize int) ([]repositories.PostListItem, int64, error)
	Create(ctx context.Context, post *models.Post) error
	GetByID(ctx context.Context, id int64) (*models.Post, error)
	Delete(ctx context.Context, id int64) error
}

// CommentStore is the comment persistence surface the service needs
type CommentStore interface {
	GetByPost(ctx context.Context, postID int64, page, pageSize int) ([]models.Comment, int64, error)
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	Delete(ctx context.Context, id int64) error
}

// UserChecker verifies that an acting user exists
type UserChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
	GetByID(ctx context.Context, id int64) (*models.User, error)
}

// FeedService defines the interface for feed, post and comment operations
type FeedService interface {
	GetFeed(ctx context.Context, viewerID int64, page, limit int) (*dto.FeedResponse, error)
	CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error)
	DeletePost(ctx context.Context, postID, userID int64) error
	ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeToggleResponse, error)
	GetComments(ctx context.Context, postID int64, page, limit int) (*dto.CommentListResponse, error)
	AddComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error)
	DeleteComment(ctx context.Context, postID, commentID, userID int64) error
}

type feedServiceImpl struct {
	postRepo     PostStore
	commentRepo  CommentStore
	userRepo     UserChecker
	relationRepo RelationStore
	logger       zerolog.Logger
}

// NewFeedService creates a new FeedService
func NewFeedService(postRepo PostStore, commentRepo CommentStore, userRepo UserChecker, relationRepo RelationStore, logger zerolog.Logger) FeedService {
	return &feedServiceImpl{
		postRepo:     postRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		relationRepo: relationRepo,
		logger:       logger,
	}
}

// GetFeed lists posts from the viewer's member communities, newest first
func (s *feedServiceImpl) GetFeed(ctx context.Context, viewerID int64, page, limit int) (*dto.FeedResponse, error) {
	items, total, err := s.postRepo.GetFeed(ctx, viewerID, page, limit)
	if err != nil {
		return nil, err
	}

	posts := make([]dto.PostResponse, 0, len(items))
	for _, item := range items {
		posts = append(posts, toPostResponse(&item))
	}

	return &dto.FeedResponse{
		Posts:      posts,
		Pagination: paginate(page, limit, total),
	}, nil
}

func toPostResponse(item *repositories.PostListItem) dto.PostResponse {
	resp := dto.PostResponse{
		ID:        helpers.FormatID(item.Post.ID),
		Type:      item.Post.Type,
		Author:    dto.PostAuthor{Name: item.AuthorName, Avatar: item.AuthorAvatar},
		Content:   item.Post.Content,
		Timestamp: formatTime(item.Post.CreatedAt),
		Likes:     item.Likes,
		IsLiked:   item.IsLiked,
		MediaType: item.Post.MediaType,
		MediaURL:  item.Post.MediaURL,
	}
	if item.Post.CommunityID != nil && item.CommunityName != nil {
		resp.Community = &dto.PostCommunityRef{
			ID:     helpers.FormatID(*item.Post.CommunityID),
			Name:   *item.CommunityName,
			Avatar: item.CommunityAvatar,
		}
	}
	if item.Post.EventID != nil && item.EventTitle != nil {
		ref := &dto.PostEventRef{
			ID:    helpers.FormatID(*item.Post.EventID),
			Title: *item.EventTitle,
			Image: item.EventImage,
		}
		if item.EventDate != nil {
			ref.Date = *item.EventDate
		}
		resp.Event = ref
	}
	return resp
}

// CreatePost stores a new post authored by the requesting user
func (s *feedServiceImpl) CreatePost(ctx context.Context, req *dto.CreatePostRequest) (*dto.CreatePostResponse, error) {
	author, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	postType := req.Type
	if postType == "" {
		postType = models.PostTypeText
	}

	post := &models.Post{
		UserID:      req.UserID,
		CommunityID: req.CommunityID,
		EventID:     req.EventID,
		Content:     req.Content,
		Type:        postType,
		MediaType:   req.MediaType,
		MediaURL:    req.MediaURL,
	}
	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("post_id", post.ID).Int64("user_id", req.UserID).Msg("Post created")

	return &dto.CreatePostResponse{
		Message: "Post created successfully",
		Post: dto.PostResponse{
			ID:        helpers.FormatID(post.ID),
			Type:      post.Type,
			Author:    dto.PostAuthor{Name: author.Name, Avatar: author.Avatar},
			Content:   post.Content,
			Timestamp: formatTime(post.CreatedAt),
			Likes:     0,
			IsLiked:   false,
			MediaType: post.MediaType,
			MediaURL:  post.MediaURL,
		},
	}, nil
}

// DeletePost removes a post after verifying ownership
func (s *feedServiceImpl) DeletePost(ctx context.Context, postID, userID int64) error {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return err
	}
	if post.UserID != userID {
		return apperrors.NewForbiddenError("You can only delete your own posts")
	}
	return s.postRepo.Delete(ctx, postID)
}

// ToggleLike flips the viewer's like on a post and reports the new state with
// the like count.
func (s *feedServiceImpl) ToggleLike(ctx context.Context, postID, userID int64) (*dto.LikeToggleResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	if err := ensureUserExists(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	liked, count, err := s.relationRepo.Toggle(ctx, repositories.PostLikes, userID, postID)
	if err != nil {
		return nil, err
	}

	return &dto.LikeToggleResponse{Likes: count, IsLiked: liked}, nil
}

// GetComments lists a post's comments newest first
func (s *feedServiceImpl) GetComments(ctx context.Context, postID int64, page, limit int) (*dto.CommentListResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}

	comments, total, err := s.commentRepo.GetByPost(ctx, postID, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommentResponse, 0, len(comments))
	for _, comment := range comments {
		items = append(items, toCommentResponse(&comment))
	}

	return &dto.CommentListResponse{
		Comments:   items,
		Pagination: paginate(page, limit, total),
	}, nil
}

func toCommentResponse(comment *models.Comment) dto.CommentResponse {
	resp := dto.CommentResponse{
		ID:        helpers.FormatID(comment.ID),
		Content:   comment.Content,
		Timestamp: formatTime(comment.CreatedAt),
	}
	if comment.Author != nil {
		resp.Author = dto.CommentAuthor{
			ID:     helpers.FormatID(comment.Author.ID),
			Name:   comment.Author.Name,
			Avatar: comment.Author.Avatar,
		}
	}
	return resp
}

// AddComment stores a new comment on a post
func (s *feedServiceImpl) AddComment(ctx context.Context, postID int64, req *dto.CreateCommentRequest) (*dto.CreateCommentResponse, error) {
	if _, err := s.postRepo.GetByID(ctx, postID); err != nil {
		return nil, err
	}
	author, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	comment := &models.Comment{
		PostID:  postID,
		UserID:  req.UserID,
		Content: req.Content,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}
	comment.Author = author

	return &dto.CreateCommentResponse{
		Message: "Comment added successfully",
		Comment: toCommentResponse(comment),
	}, nil
}

// DeleteComment removes a comment after verifying that it belongs to the post
// and to the requesting user.
func (s *feedServiceImpl) DeleteComment(ctx context.Context, postID, commentID, userID int64) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		return err
	}
	if comment.PostID != postID {
		return apperrors.NewBadRequestError("Comment does not belong to this post")
	}
	if comment.UserID != userID {
		return apperrors.NewForbiddenError("You can only delete your own comments")
	}
	return s.commentRepo.Delete(ctx, commentID)
}
