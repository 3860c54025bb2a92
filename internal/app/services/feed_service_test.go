package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/models/dto"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

func newTestFeedService(posts *fakePostStore, comments *fakeCommentStore, users *fakeUserStore, rels *fakeRelationStore) FeedService {
	return NewFeedService(posts, comments, users, rels, zerolog.Nop())
}

func TestGetFeedBuildsResponse(t *testing.T) {
	now := time.Now()
	communityID := int64(4)
	posts := newFakePostStore()
	posts.feed = []repositories.PostListItem{{
		Post: models.Post{
			ID:          15,
			UserID:      1,
			CommunityID: &communityID,
			Content:     "Hackathon kayıtları açıldı",
			Type:        models.PostTypeCommunity,
			CreatedAt:   now,
		},
		AuthorName:    "Ayşe Kaya",
		Likes:         7,
		IsLiked:       true,
		CommunityName: strPtr("Yazılım Kulübü"),
	}}
	posts.total = 1
	svc := newTestFeedService(posts, newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	resp, err := svc.GetFeed(context.Background(), 1, 1, 10)
	require.NoError(t, err)

	require.Len(t, resp.Posts, 1)
	post := resp.Posts[0]
	assert.Equal(t, "15", post.ID)
	assert.Equal(t, "Ayşe Kaya", post.Author.Name)
	assert.Equal(t, int64(7), post.Likes)
	assert.True(t, post.IsLiked)
	require.NotNil(t, post.Community)
	assert.Equal(t, "4", post.Community.ID)
	assert.Equal(t, "Yazılım Kulübü", post.Community.Name)
	assert.Nil(t, post.Event)
}

func TestCreatePostDefaultsToTextType(t *testing.T) {
	posts := newFakePostStore()
	users := newFakeUserStore(testUser(1, "ayse"))
	svc := newTestFeedService(posts, newFakeCommentStore(), users, &fakeRelationStore{})

	resp, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{
		UserID:  1,
		Content: "merhaba",
	})
	require.NoError(t, err)

	require.NotNil(t, posts.created)
	assert.Equal(t, models.PostTypeText, posts.created.Type)
	assert.Equal(t, models.PostTypeText, resp.Post.Type)
	assert.Equal(t, "ayse", resp.Post.Author.Name)
	assert.Equal(t, int64(0), resp.Post.Likes)
}

func TestCreatePostUnknownAuthor(t *testing.T) {
	svc := newTestFeedService(newFakePostStore(), newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	_, err := svc.CreatePost(context.Background(), &dto.CreatePostRequest{UserID: 99, Content: "merhaba"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeletePostNotOwner(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1, Content: "benim"})
	svc := newTestFeedService(posts, newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	err := svc.DeletePost(context.Background(), 15, 2)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
	assert.Contains(t, posts.posts, int64(15))
}

func TestDeletePost(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1, Content: "benim"})
	svc := newTestFeedService(posts, newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	require.NoError(t, svc.DeletePost(context.Background(), 15, 1))
	assert.Equal(t, int64(15), posts.deletedID)
}

func TestToggleLikeUnknownPost(t *testing.T) {
	svc := newTestFeedService(newFakePostStore(), newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	_, err := svc.ToggleLike(context.Background(), 99, 1)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestToggleLikeUnknownUser(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1})
	rels := &fakeRelationStore{}
	svc := newTestFeedService(posts, newFakeCommentStore(), newFakeUserStore(), rels)

	_, err := svc.ToggleLike(context.Background(), 15, 99)
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Nil(t, rels.lastToggle)
}

func TestToggleLike(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1})
	rels := &fakeRelationStore{toggleLinked: true, toggleCount: 8}
	svc := newTestFeedService(posts, newFakeCommentStore(), newFakeUserStore(testUser(2, "can")), rels)

	resp, err := svc.ToggleLike(context.Background(), 15, 2)
	require.NoError(t, err)

	assert.True(t, resp.IsLiked)
	assert.Equal(t, int64(8), resp.Likes)

	require.NotNil(t, rels.lastToggle)
	assert.Equal(t, repositories.PostLikes, rels.lastToggle.rel)
	assert.Equal(t, int64(2), rels.lastToggle.subjectID)
	assert.Equal(t, int64(15), rels.lastToggle.objectID)
}

func TestGetCommentsUnknownPost(t *testing.T) {
	svc := newTestFeedService(newFakePostStore(), newFakeCommentStore(), newFakeUserStore(), &fakeRelationStore{})

	_, err := svc.GetComments(context.Background(), 99, 1, 20)
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestGetComments(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1})
	comments := newFakeCommentStore()
	comments.page = []models.Comment{{
		ID:      3,
		PostID:  15,
		UserID:  2,
		Content: "Harika!",
		Author:  testUser(2, "can"),
	}}
	comments.total = 1
	svc := newTestFeedService(posts, comments, newFakeUserStore(), &fakeRelationStore{})

	resp, err := svc.GetComments(context.Background(), 15, 1, 20)
	require.NoError(t, err)

	require.Len(t, resp.Comments, 1)
	assert.Equal(t, "3", resp.Comments[0].ID)
	assert.Equal(t, "can", resp.Comments[0].Author.Name)
	assert.Equal(t, int64(1), resp.Pagination.TotalItems)
}

func TestAddComment(t *testing.T) {
	posts := newFakePostStore(&models.Post{ID: 15, UserID: 1})
	comments := newFakeCommentStore()
	users := newFakeUserStore(testUser(2, "can"))
	svc := newTestFeedService(posts, comments, users, &fakeRelationStore{})

	resp, err := svc.AddComment(context.Background(), 15, &dto.CreateCommentRequest{UserID: 2, Content: "Harika!"})
	require.NoError(t, err)

	require.NotNil(t, comments.created)
	assert.Equal(t, int64(15), comments.created.PostID)
	assert.Equal(t, "Comment added successfully", resp.Message)
	assert.Equal(t, "can", resp.Comment.Author.Name)
}

func TestDeleteCommentWrongPost(t *testing.T) {
	comments := newFakeCommentStore(&models.Comment{ID: 3, PostID: 15, UserID: 2})
	svc := newTestFeedService(newFakePostStore(), comments, newFakeUserStore(), &fakeRelationStore{})

	err := svc.DeleteComment(context.Background(), 16, 3, 2)
	assert.ErrorIs(t, err, apperrors.ErrBadRequest)
}

func TestDeleteCommentNotOwner(t *testing.T) {
	comments := newFakeCommentStore(&models.Comment{ID: 3, PostID: 15, UserID: 2})
	svc := newTestFeedService(newFakePostStore(), comments, newFakeUserStore(), &fakeRelationStore{})

	err := svc.DeleteComment(context.Background(), 15, 3, 1)
	assert.ErrorIs(t, err, apperrors.ErrPermissionDenied)
}

func TestDeleteComment(t *testing.T) {
	comments := newFakeCommentStore(&models.Comment{ID: 3, PostID: 15, UserID: 2})
	svc := newTestFeedService(newFakePostStore(), comments, newFakeUserStore(), &fakeRelationStore{})

	require.NoError(t, svc.DeleteComment(context.Background(), 15, 3, 2))
	assert.Equal(t, int64(3), comments.deletedID)
}
