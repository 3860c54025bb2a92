package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// Event listing filters
const (
	EventFilterAll        = "all"
	EventFilterInterested = "interested"
)

// EventStore is the event persistence surface the service needs
type EventStore interface {
	GetAll(ctx context.Context, viewerID int64, interestedOnly bool, search *string, page, pageSize int) ([]repositories.EventListItem, int64, error)
	Exists(ctx context.Context, id int64) (bool, error)
}

// EventService defines the interface for event operations
type EventService interface {
	GetEvents(ctx context.Context, viewerID int64, filter string, search *string, page, limit int) (*dto.EventListResponse, error)
	ToggleInterest(ctx context.Context, eventID, userID int64) (*dto.InterestToggleResponse, error)
}

type eventServiceImpl struct {
	eventRepo    EventStore
	relationRepo RelationStore
	userRepo     UserChecker
	logger       zerolog.Logger
}

// NewEventService creates a new EventService
func NewEventService(eventRepo EventStore, relationRepo RelationStore, userRepo UserChecker, logger zerolog.Logger) EventService {
	return &eventServiceImpl{
		eventRepo:    eventRepo,
		relationRepo: relationRepo,
		userRepo:     userRepo,
		logger:       logger,
	}
}

// GetEvents lists events for the viewer, soonest first
func (s *eventServiceImpl) GetEvents(ctx context.Context, viewerID int64, filter string, search *string, page, limit int) (*dto.EventListResponse, error) {
	if err := ensureUserExists(ctx, s.userRepo, viewerID); err != nil {
		return nil, err
	}

	interestedOnly := filter == EventFilterInterested

	items, total, err := s.eventRepo.GetAll(ctx, viewerID, interestedOnly, search, page, limit)
	if err != nil {
		return nil, err
	}

	events := make([]dto.EventResponse, 0, len(items))
	for _, item := range items {
		events = append(events, dto.EventResponse{
			ID:              helpers.FormatID(item.Event.ID),
			Title:           item.Event.Title,
			Community:       item.CommunityName,
			CommunityAvatar: item.CommunityAvatar,
			Date:            formatDate(item.Event.Date),
			Time:            item.Event.Time,
			Location:        item.Event.Location,
			Image:           item.Event.Image,
			Interested:      item.Interested,
			IsInterested:    item.IsInterested,
			Description:     item.Event.Description,
			Capacity:        item.Event.Capacity,
		})
	}

	return &dto.EventListResponse{
		Events:     events,
		Pagination: paginate(page, limit, total),
	}, nil
}

// ToggleInterest flips the viewer's interest link on an event and reports the
// new state with the interest count.
func (s *eventServiceImpl) ToggleInterest(ctx context.Context, eventID, userID int64) (*dto.InterestToggleResponse, error) {
	exists, err := s.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.NewResourceNotFoundError("event not found")
	}
	if err := ensureUserExists(ctx, s.userRepo, userID); err != nil {
		return nil, err
	}

	interested, count, err := s.relationRepo.Toggle(ctx, repositories.EventInterests, userID, eventID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int64("event_id", eventID).
		Int64("user_id", userID).
		Bool("interested", interested).
		Msg("Event interest toggled")

	return &dto.InterestToggleResponse{IsInterested: interested, Interested: count}, nil
}
