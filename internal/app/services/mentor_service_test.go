package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func TestGetMentorsPassesFilter(t *testing.T) {
	mentors := &fakeMentorStore{}
	svc := NewMentorService(mentors, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	_, err := svc.GetMentors(context.Background(), 1, repositories.MentorFilterFollowing, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, repositories.MentorFilterFollowing, mentors.lastFilter)
}

func TestGetMentorsBuildsResponse(t *testing.T) {
	avatar := "https://example.com/a.png"
	mentors := &fakeMentorStore{
		items: []repositories.MentorListItem{{
			Mentor: models.Mentor{
				ID:                2,
				Title:             "Senior Engineer",
				Company:           "Acme",
				Rating:            4.8,
				SessionsCompleted: 31,
				Availability:      models.MentorAvailable,
				Expertise:         []string{"Go", "Postgres"},
				User:              &models.User{ID: 7, Name: "Zeynep Demir", Avatar: &avatar},
			},
			IsFollowing: true,
		}},
		total: 1,
	}
	svc := NewMentorService(mentors, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	resp, err := svc.GetMentors(context.Background(), 1, repositories.MentorFilterAll, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Mentors, 1)
	item := resp.Mentors[0]
	assert.Equal(t, "2", item.ID)
	assert.Equal(t, "Zeynep Demir", item.Name)
	assert.Equal(t, &avatar, item.Avatar)
	assert.Equal(t, []string{"Go", "Postgres"}, item.Expertise)
	assert.True(t, item.IsFollowing)
}

func TestGetMentorsNilUserAndExpertise(t *testing.T) {
	mentors := &fakeMentorStore{
		items: []repositories.MentorListItem{{
			Mentor: models.Mentor{ID: 2, Title: "Senior Engineer", Company: "Acme"},
		}},
		total: 1,
	}
	svc := NewMentorService(mentors, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	resp, err := svc.GetMentors(context.Background(), 1, repositories.MentorFilterAll, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Mentors, 1)
	assert.Empty(t, resp.Mentors[0].Name)
	assert.NotNil(t, resp.Mentors[0].Expertise)
	assert.Empty(t, resp.Mentors[0].Expertise)
}

func TestGetMentorsUnknownViewer(t *testing.T) {
	svc := NewMentorService(&fakeMentorStore{}, &fakeRelationStore{}, newFakeUserStore(), zerolog.Nop())

	_, err := svc.GetMentors(context.Background(), 99, repositories.MentorFilterAll, 1, 10)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestToggleMentorFollowUnknownUser(t *testing.T) {
	rels := &fakeRelationStore{}
	svc := NewMentorService(&fakeMentorStore{exists: true}, rels, newFakeUserStore(), zerolog.Nop())

	_, err := svc.ToggleFollow(context.Background(), 2, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, rels.lastToggle)
}

func TestToggleMentorFollowUnknownMentor(t *testing.T) {
	svc := NewMentorService(&fakeMentorStore{exists: false}, &fakeRelationStore{}, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	_, err := svc.ToggleFollow(context.Background(), 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestToggleMentorFollow(t *testing.T) {
	rels := &fakeRelationStore{toggleLinked: true, toggleCount: 12}
	svc := NewMentorService(&fakeMentorStore{exists: true}, rels, newFakeUserStore(testUser(1, "ayse")), zerolog.Nop())

	resp, err := svc.ToggleFollow(context.Background(), 2, 1)
	require.NoError(t, err)

	assert.True(t, resp.IsFollowing)
	require.NotNil(t, rels.lastToggle)
	assert.Equal(t, repositories.MentorFollowers, rels.lastToggle.rel)
	assert.Equal(t, int64(1), rels.lastToggle.subjectID)
	assert.Equal(t, int64(2), rels.lastToggle.objectID)
}
