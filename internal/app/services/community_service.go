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

// categoryAll is the listing value that disables the category filter
const categoryAll = "Tümü"

// embeddedRefLimit caps the upcoming events and recent posts embedded in a
// community listing item.
const embeddedRefLimit = 5

// CommunityStore is the community persistence surface the service needs
type CommunityStore interface {
	GetAll(ctx context.Context, category, search *string, page, pageSize int) ([]models.Community, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
	GetTags(ctx context.Context, communityID int64) ([]string, error)
	GetUpcomingEvents(ctx context.Context, communityID int64, limit int) ([]models.Event, error)
	GetRecentPosts(ctx context.Context, communityID int64, limit int) ([]models.Post, error)
}

// RelationStore is the toggle-relation surface shared by the follow, interest
// and like features.
type RelationStore interface {
	Toggle(ctx context.Context, rel repositories.Relation, subjectID, objectID int64) (bool, int64, error)
	Exists(ctx context.Context, rel repositories.Relation, subjectID, objectID int64) (bool, error)
	Count(ctx context.Context, rel repositories.Relation, objectID int64) (int64, error)
}

// CommunityService defines the interface for community operations
type CommunityService interface {
	GetCommunities(ctx context.Context, viewerID int64, category, search *string, page, limit int) (*dto.CommunityListResponse, error)
	ToggleFollow(ctx context.Context, communityID, userID int64) (*dto.FollowToggleResponse, error)
}

type communityServiceImpl struct {
	communityRepo CommunityStore
	relationRepo  RelationStore
	userRepo      UserChecker
	logger        zerolog.Logger
}

// NewCommunityService creates a new CommunityService
func NewCommunityService(communityRepo CommunityStore, relationRepo RelationStore, userRepo UserChecker, logger zerolog.Logger) CommunityService {
	return &communityServiceImpl{
		communityRepo: communityRepo,
		relationRepo:  relationRepo,
		userRepo:      userRepo,
		logger:        logger,
	}
}

// GetCommunities lists communities for the viewer with tags, follower counts
// and embedded upcoming events and recent posts.
func (s *communityServiceImpl) GetCommunities(ctx context.Context, viewerID int64, category, search *string, page, limit int) (*dto.CommunityListResponse, error) {
	if category != nil && (*category == "" || *category == categoryAll) {
		category = nil
	}

	communities, total, err := s.communityRepo.GetAll(ctx, category, search, page, limit)
	if err != nil {
		return nil, err
	}

	items := make([]dto.CommunityResponse, 0, len(communities))
	for _, comm := range communities {
		item, err := s.buildCommunityResponse(ctx, &comm, viewerID)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}

	return &dto.CommunityListResponse{
		Communities: items,
		Pagination:  paginate(page, limit, total),
	}, nil
}

func (s *communityServiceImpl) buildCommunityResponse(ctx context.Context, comm *models.Community, viewerID int64) (*dto.CommunityResponse, error) {
	tags, err := s.communityRepo.GetTags(ctx, comm.ID)
	if err != nil {
		return nil, err
	}

	isFollowing, err := s.relationRepo.Exists(ctx, repositories.CommunityFollowers, viewerID, comm.ID)
	if err != nil {
		return nil, err
	}

	events, err := s.communityRepo.GetUpcomingEvents(ctx, comm.ID, embeddedRefLimit)
	if err != nil {
		return nil, err
	}
	eventRefs := make([]dto.CommunityEventRef, 0, len(events))
	for _, ev := range events {
		eventRefs = append(eventRefs, dto.CommunityEventRef{
			ID:    helpers.FormatID(ev.ID),
			Title: ev.Title,
			Date:  formatDate(ev.Date),
		})
	}

	posts, err := s.communityRepo.GetRecentPosts(ctx, comm.ID, embeddedRefLimit)
	if err != nil {
		return nil, err
	}
	postRefs := make([]dto.CommunityPostRef, 0, len(posts))
	for _, post := range posts {
		likes, err := s.relationRepo.Count(ctx, repositories.PostLikes, post.ID)
		if err != nil {
			return nil, err
		}
		postRefs = append(postRefs, dto.CommunityPostRef{
			ID:        helpers.FormatID(post.ID),
			Content:   post.Content,
			Timestamp: formatTime(post.CreatedAt),
			Likes:     likes,
		})
	}

	return &dto.CommunityResponse{
		ID:             helpers.FormatID(comm.ID),
		Name:           comm.Name,
		Avatar:         comm.Avatar,
		Members:        comm.FollowerCount,
		IsFollowing:    isFollowing,
		Category:       comm.Category,
		Description:    comm.Description,
		Established:    comm.Established,
		Tags:           tags,
		UpcomingEvents: eventRefs,
		RecentPosts:    postRefs,
	}, nil
}

// ToggleFollow flips the viewer's follow link on a community and reports the
// new state with the follower count.
func (s *communityServiceImpl) ToggleFollow(ctx context.Context, communityID, userID int64) (*dto.FollowToggleResponse, error) {
	exists, err := s.communityRepo.Exists(ctx, communityID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError("community not found")
	}
	if err := ensureUserExists(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	following, count, err := s.relationRepo.Toggle(ctx, repositories.CommunityFollowers, userID, communityID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("community_id", communityID).
		Int64("user_id", userID).
		Bool("following", following).
		Msg("Community follow toggled")

	return &dto.FollowToggleResponse{IsFollowing: following, Members: count}, nil
}
