package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// MentorStore is the mentor persistence surface the service needs
type MentorStore interface {
	GetAll(ctx context.Context, viewerID int64, filter string, page, pageSize int) ([]repositories.MentorListItem, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// MentorService defines the interface for mentor operations
type MentorService interface {
	GetMentors(ctx context.Context, viewerID int64, filter string, page, limit int) (*dto.MentorListResponse, error)
	ToggleFollow(ctx context.Context, mentorID, userID int64) (*dto.MentorFollowToggleResponse, error)
}

type mentorServiceImpl struct {
	mentorRepo   MentorStore
	relationRepo RelationStore
	userRepo     UserChecker
	logger       zerolog.Logger
}

// NewMentorService creates a new MentorService
func NewMentorService(mentorRepo MentorStore, relationRepo RelationStore, userRepo UserChecker, logger zerolog.Logger) MentorService {
	return &mentorServiceImpl{
		mentorRepo:   mentorRepo,
		relationRepo: relationRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetMentors lists mentors for the viewer, best rated first
func (s *mentorServiceImpl) GetMentors(ctx context.Context, viewerID int64, filter string, page, limit int) (*dto.MentorListResponse, error) {
	if err := ensureUserExists(ctx, s.userRepo, viewerID); err != nil {
		return nil, err
	}

	items, total, err := s.mentorRepo.GetAll(ctx, viewerID, filter, page, limit)
	if err != nil {
		return nil, err
	}

	mentors := make([]dto.MentorResponse, 0, len(items))
	for _, item := range items {
		resp := dto.MentorResponse{
			ID:                helpers.FormatID(item.Mentor.ID),
			Title:             item.Mentor.Title,
			Company:           item.Mentor.Company,
			Expertise:         item.Mentor.Expertise,
			Availability:      item.Mentor.Availability,
			Rating:            item.Mentor.Rating,
			SessionsCompleted: item.Mentor.SessionsCompleted,
			Bio:               item.Mentor.Bio,
			ResponseTime:      item.Mentor.ResponseTime,
			IsFollowing:       item.IsFollowing,
		}
		if item.Mentor.User != nil {
			resp.Name = item.Mentor.User.Name
			resp.Avatar = item.Mentor.User.Avatar
		}
		if resp.Expertise == nil {
			resp.Expertise = []string{}
		}
		mentors = append(mentors, resp)
	}

	return &dto.MentorListResponse{
		Mentors:    mentors,
		Pagination: paginate(page, limit, total),
	}, nil
}

// ToggleFollow flips the viewer's follow link on a mentor
func (s *mentorServiceImpl) ToggleFollow(ctx context.Context, mentorID, userID int64) (*dto.MentorFollowToggleResponse, error) {
	exists, err := s.mentorRepo.Exists(ctx, mentorID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError("mentor not found")
	}
	if err := ensureUserExists(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	following, _, err := s.relationRepo.Toggle(ctx, repositories.MentorFollowers, userID, mentorID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("mentor_id", mentorID).
		Int64("user_id", userID).
		Bool("following", following).
		Msg("Mentor follow toggled")

	return &dto.MentorFollowToggleResponse{IsFollowing: following}, nil
}
