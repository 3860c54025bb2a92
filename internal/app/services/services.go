package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/auth"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// Services bundles all service instances
type Services struct {
	AuthService      AuthService
	CommunityService CommunityService
	EventService     EventService
	MentorService    MentorService
	FeedService      FeedService
	MessageService   MessageService
	DiscoverService  DiscoverService
}

// NewServices wires all services to the shared repositories
func NewServices(
	repos *repositories.Repositories,
	pool *pgxpool.Pool,
	jwtService *auth.JWTService,
	logger zerolog.Logger,
) *Services {
	return &Services{
		AuthService: NewAuthService(repos.UserRepository, jwtService,
			logger.With().Str("service", "auth").Logger()),
		CommunityService: NewCommunityService(repos.CommunityRepository, repos.RelationRepository,
			repos.UserRepository,
			logger.With().Str("service", "community").Logger()),
		EventService: NewEventService(repos.EventRepository, repos.RelationRepository,
			repos.UserRepository,
			logger.With().Str("service", "event").Logger()),
		MentorService: NewMentorService(repos.MentorRepository, repos.RelationRepository,
			repos.UserRepository,
			logger.With().Str("service", "mentor").Logger()),
		FeedService: NewFeedService(repos.PostRepository, repos.CommentRepository,
			repos.UserRepository, repos.RelationRepository,
			logger.With().Str("service", "feed").Logger()),
		MessageService: NewMessageService(repos.ConversationRepository, repos.MessageRepository,
			repos.UserRepository, pool,
			logger.With().Str("service", "message").Logger()),
		DiscoverService: NewDiscoverService(repos.UserRepository,
			logger.With().Str("service", "discover").Logger()),
	}
}

// formatTime renders timestamps the way the API serializes them
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// formatDate renders date-only values
func formatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ensureUserExists resolves the acting user, treating an unknown id the same
// as any other missing resource.
func ensureUserExists(ctx context.Context, users UserChecker, id int64) error {
	exists, err := users.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// paginate builds the shared listing envelope
func paginate(page, limit int, totalItems int64) dto.Pagination {
	return dto.Pagination{
		Page:       page,
		TotalPages: helpers.TotalPages(totalItems, limit),
		TotalItems: totalItems,
	}
}
