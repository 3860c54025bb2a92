package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
)

type fixedUserCounter int64

func (f fixedUserCounter) Count(ctx context.Context) (int64, error) {
	return int64(f), nil
}

func TestGetStats(t *testing.T) {
	tests := []struct {
		name        string
		total       int64
		activeUsers int64
		onlineToday int64
		newMatches  int64
	}{
		{"no users", 0, 0, 1, 1},
		{"small population floors at one", 10, 10, 3, 1},
		{"round numbers", 100, 100, 35, 7},
		{"large population", 1234, 1234, 431, 86},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewDiscoverService(fixedUserCounter(tt.total), zerolog.Nop())

			resp, err := svc.GetStats(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.activeUsers, resp.Stats.ActiveUsers)
			assert.Equal(t, tt.onlineToday, resp.Stats.OnlineToday)
			assert.Equal(t, tt.newMatches, resp.Stats.NewMatches)
		})
	}
}

func TestGetStatsFromUserStore(t *testing.T) {
	users := newFakeUserStore(
		&models.User{ID: 1, Name: "Ayşe", Email: "ayse@campus.edu"},
		&models.User{ID: 2, Name: "Can", Email: "can@campus.edu"},
	)
	svc := NewDiscoverService(users, zerolog.Nop())

	resp, err := svc.GetStats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), resp.Stats.ActiveUsers)
	assert.Equal(t, int64(1), resp.Stats.OnlineToday)
	assert.Equal(t, int64(1), resp.Stats.NewMatches)
}
