package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func TestGetEventsFilter(t *testing.T) {
	tests := []struct {
		name           string
		filter         string
		interestedOnly bool
	}{
		{"all", EventFilterAll, false},
		{"interested", EventFilterInterested, true},
		{"unknown falls back to all", "whatever", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := &fakeEventStore{}
			svc := NewEventService(events, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

			_, err := svc.GetEvents(context.Background(), 1, tt.filter, nil, 1, 10)
			require.NoError(t, err)
			assert.Equal(t, tt.interestedOnly, events.lastInterestedOnly)
		})
	}
}

func TestGetEventsBuildsResponse(t *testing.T) {
	events := &fakeEventStore{
		items: []repositories.EventListItem{{
			Event: models.Event{
				ID:    9,
				Title: "Bahar Şenliği",
				Date:  time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC),
				Time:  strPtr("18:00"),
			},
			CommunityName: strPtr("Müzik Kulübü"),
			Interested:    42,
			IsInterested:  true,
		}},
		total: 1,
	}
	svc := NewEventService(events, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	resp, err := svc.GetEvents(context.Background(), 1, EventFilterAll, nil, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Events, 1)
	item := resp.Events[0]
	assert.Equal(t, "9", item.ID)
	assert.Equal(t, "2026-05-10", item.Date)
	assert.Equal(t, int64(42), item.Interested)
	assert.True(t, item.IsInterested)
}

func TestGetEventsUnknownViewer(t *testing.T) {
	events := &fakeEventStore{}
	svc := NewEventService(events, &fakeRelationStore{}, newFakeUserStore(), zerolog.Nop())

	_, err := svc.GetEvents(context.Background(), 99, EventFilterAll, nil, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestToggleInterestUnknownUser(t *testing.T) {
	rels := &fakeRelationStore{}
	svc := NewEventService(&fakeEventStore{exists: true}, rels, newFakeUserStore(), zerolog.Nop())

	_, err := svc.ToggleInterest(context.Background(), 9, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, rels.lastToggle)
}

func TestToggleInterestUnknownEvent(t *testing.T) {
	svc := NewEventService(&fakeEventStore{exists: false}, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	_, err := svc.ToggleInterest(context.Background(), 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestToggleInterest(t *testing.T) {
	rels := &fakeRelationStore{toggleLinked: true, toggleCount: 43}
	svc := NewEventService(&fakeEventStore{exists: true}, rels, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	resp, err := svc.ToggleInterest(context.Background(), 9, 1)
	require.NoError(t, err)

	assert.True(t, resp.IsInterested)
	assert.Equal(t, int64(43), resp.Interested)

	require.NotNil(t, rels.lastToggle)
	assert.Equal(t, repositories.EventInterests, rels.lastToggle.rel)
}
