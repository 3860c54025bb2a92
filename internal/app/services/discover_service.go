package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/campushub/backend/internal/app/models/dto"
)

// UserCounter exposes the aggregate the discover stats derive from
type UserCounter interface {
	Count(ctx context.Context) (int64, error)
}

// DiscoverService defines the interface for discover-screen statistics
type DiscoverService interface {
	GetStats(ctx context.Context) (*dto.DiscoverStatsResponse, error)
}

type discoverServiceImpl struct {
	userRepo UserCounter
	logger   zerolog.Logger
}

// NewDiscoverService creates a new DiscoverService
func NewDiscoverService(userRepo UserCounter, logger zerolog.Logger) DiscoverService {
	return &discoverServiceImpl{userRepo: userRepo, logger: logger}
}

// GetStats derives headline numbers from the registered user count.
// onlineToday and newMatches are fixed fractions floored at one.
func (s *discoverServiceImpl) GetStats(ctx context.Context) (*dto.DiscoverStatsResponse, error) {
	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.DiscoverStatsResponse{
		Stats: dto.DiscoverStats{
			ActiveUsers: total,
			OnlineToday: atLeastOne(total * 35 / 100),
			NewMatches:  atLeastOne(total * 7 / 100),
		},
	}, nil
}

func atLeastOne(n int64) int64 {
	if n < 1 {
		return 1
	}
	return n
}
