package services

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/app/repositories"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// In-memory store fakes used across the service tests.

type fakeUserStore struct {
	users       map[int64]*models.User
	nextID      int64
	createErr   error
	lastCreated *models.User
	lastFields  map[string]interface{}
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	store := &fakeUserStore{users: map[int64]*models.User{}, nextID: 1}
	for _, user := range users {
		store.users[user.ID] = user
		if user.ID >= store.nextID {
			store.nextID = user.ID + 1
		}
	}
	return store
}

func (f *fakeUserStore) Create(ctx context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	user.CreatedAt = time.Now()
	f.users[user.ID] = user
	f.lastCreated = user
	return nil
}

func (f *fakeUserStore) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserStore) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, apperrors.ErrUserNotFound
}

func (f *fakeUserStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := f.GetByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (f *fakeUserStore) Exists(ctx context.Context, id int64) (bool, error) {
	_, ok := f.users[id]
	return ok, nil
}

func (f *fakeUserStore) UpdateProfile(ctx context.Context, id int64, fields map[string]interface{}) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	f.lastFields = fields
	if name, ok := fields["name"].(string); ok {
		user.Name = name
	}
	if avatar, ok := fields["avatar"].(string); ok {
		user.Avatar = &avatar
	}
	return user, nil
}

func (f *fakeUserStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.users)), nil
}

type toggleCall struct {
	rel       repositories.Relation
	subjectID int64
	objectID  int64
}

type fakeRelationStore struct {
	toggleLinked bool
	toggleCount  int64
	toggleErr    error
	lastToggle   *toggleCall

	existsResult bool
	countResult  int64
}

func (f *fakeRelationStore) Toggle(ctx context.Context, rel repositories.Relation, subjectID, objectID int64) (bool, int64, error) {
	if f.toggleErr != nil {
		return false, 0, f.toggleErr
	}
	f.lastToggle = &toggleCall{rel: rel, subjectID: subjectID, objectID: objectID}
	return f.toggleLinked, f.toggleCount, nil
}

func (f *fakeRelationStore) Exists(ctx context.Context, rel repositories.Relation, subjectID, objectID int64) (bool, error) {
	return f.existsResult, nil
}

func (f *fakeRelationStore) Count(ctx context.Context, rel repositories.Relation, objectID int64) (int64, error) {
	return f.countResult, nil
}

type fakeCommunityStore struct {
	communities []models.Community
	total       int64
	exists      bool
	tags        []string
	events      []models.Event
	posts       []models.Post

	lastCategory *string
	lastSearch   *string
}

func (f *fakeCommunityStore) GetAll(ctx context.Context, category, search *string, page, pageSize int) ([]models.Community, int64, error) {
	f.lastCategory = category
	f.lastSearch = search
	return f.communities, f.total, nil
}

func (f *fakeCommunityStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

func (f *fakeCommunityStore) GetTags(ctx context.Context, communityID int64) ([]string, error) {
	return f.tags, nil
}

func (f *fakeCommunityStore) GetUpcomingEvents(ctx context.Context, communityID int64, limit int) ([]models.Event, error) {
	return f.events, nil
}

func (f *fakeCommunityStore) GetRecentPosts(ctx context.Context, communityID int64, limit int) ([]models.Post, error) {
	return f.posts, nil
}

type fakeEventStore struct {
	items  []repositories.EventListItem
	total  int64
	exists bool

	lastInterestedOnly bool
	lastSearch         *string
}

func (f *fakeEventStore) GetAll(ctx context.Context, viewerID int64, interestedOnly bool, search *string, page, pageSize int) ([]repositories.EventListItem, int64, error) {
	f.lastInterestedOnly = interestedOnly
	f.lastSearch = search
	return f.items, f.total, nil
}

func (f *fakeEventStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

type fakeMentorStore struct {
	items  []repositories.MentorListItem
	total  int64
	exists bool

	lastFilter string
}

func (f *fakeMentorStore) GetAll(ctx context.Context, viewerID int64, filter string, page, pageSize int) ([]repositories.MentorListItem, int64, error) {
	f.lastFilter = filter
	return f.items, f.total, nil
}

func (f *fakeMentorStore) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

type fakePostStore struct {
	feed  []repositories.PostListItem
	total int64
	posts map[int64]*models.Post

	nextID    int64
	created   *models.Post
	deletedID int64
}

func newFakePostStore(posts ...*models.Post) *fakePostStore {
	store := &fakePostStore{posts: map[int64]*models.Post{}, nextID: 1}
	for _, post := range posts {
		store.posts[post.ID] = post
		if post.ID >= store.nextID {
			store.nextID = post.ID + 1
		}
	}
	return store
}

func (f *fakePostStore) GetFeed(ctx context.Context, viewerID int64, page, pageSize int) ([]repositories.PostListItem, int64, error) {
	return f.feed, f.total, nil
}

func (f *fakePostStore) Create(ctx context.Context, post *models.Post) error {
	post.ID = f.nextID
	f.nextID++
	post.CreatedAt = time.Now()
	f.posts[post.ID] = post
	f.created = post
	return nil
}

func (f *fakePostStore) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	post, ok := f.posts[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("post not found")
	}
	return post, nil
}

func (f *fakePostStore) Delete(ctx context.Context, id int64) error {
	delete(f.posts, id)
	f.deletedID = id
	return nil
}

type fakeCommentStore struct {
	comments map[int64]*models.Comment
	page     []models.Comment
	total    int64

	nextID    int64
	created   *models.Comment
	deletedID int64
}

func newFakeCommentStore(comments ...*models.Comment) *fakeCommentStore {
	store := &fakeCommentStore{comments: map[int64]*models.Comment{}, nextID: 1}
	for _, comment := range comments {
		store.comments[comment.ID] = comment
		if comment.ID >= store.nextID {
			store.nextID = comment.ID + 1
		}
	}
	return store
}

func (f *fakeCommentStore) GetByPost(ctx context.Context, postID int64, page, pageSize int) ([]models.Comment, int64, error) {
	return f.page, f.total, nil
}

func (f *fakeCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	comment.ID = f.nextID
	f.nextID++
	comment.CreatedAt = time.Now()
	f.comments[comment.ID] = comment
	f.created = comment
	return nil
}

func (f *fakeCommentStore) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment, ok := f.comments[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("comment not found")
	}
	return comment, nil
}

func (f *fakeCommentStore) Delete(ctx context.Context, id int64) error {
	delete(f.comments, id)
	f.deletedID = id
	return nil
}

type fakeConversationStore struct {
	conversations map[int64]*models.Conversation
	listItems     []repositories.ConversationListItem

	nextID      int64
	created     *models.Conversation
	deletedID   int64
	touchedID   int64
	touchedAt   time.Time
	findByPairs [][2]int64
}

func newFakeConversationStore(conversations ...*models.Conversation) *fakeConversationStore {
	store := &fakeConversationStore{conversations: map[int64]*models.Conversation{}, nextID: 1}
	for _, conv := range conversations {
		store.conversations[conv.ID] = conv
		if conv.ID >= store.nextID {
			store.nextID = conv.ID + 1
		}
	}
	return store
}

func (f *fakeConversationStore) FindByPair(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error) {
	f.findByPairs = append(f.findByPairs, [2]int64{user1ID, user2ID})
	for _, conv := range f.conversations {
		if (conv.User1ID == user1ID && conv.User2ID == user2ID) ||
			(conv.User1ID == user2ID && conv.User2ID == user1ID) {
			return conv, nil
		}
	}
	return nil, apperrors.NewResourceNotFoundError("conversation not found")
}

func (f *fakeConversationStore) Create(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error) {
	conv := &models.Conversation{
		ID:            f.nextID,
		User1ID:       user1ID,
		User2ID:       user2ID,
		LastMessageAt: time.Now(),
		CreatedAt:     time.Now(),
	}
	f.nextID++
	f.conversations[conv.ID] = conv
	f.created = conv
	return conv, nil
}

func (f *fakeConversationStore) GetByID(ctx context.Context, id int64) (*models.Conversation, error) {
	conv, ok := f.conversations[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("conversation not found")
	}
	return conv, nil
}

func (f *fakeConversationStore) GetAllForUser(ctx context.Context, userID int64) ([]repositories.ConversationListItem, error) {
	return f.listItems, nil
}

func (f *fakeConversationStore) TouchLastMessageInTx(ctx context.Context, tx pgx.Tx, conversationID int64, at time.Time) error {
	f.touchedID = conversationID
	f.touchedAt = at
	return nil
}

func (f *fakeConversationStore) Delete(ctx context.Context, id int64) error {
	delete(f.conversations, id)
	f.deletedID = id
	return nil
}

type markReadCall struct {
	conversationID int64
	readerID       int64
}

type fakeMessageStore struct {
	messages map[int64]*models.Message
	page     []models.Message
	total    int64

	nextID       int64
	created      *models.Message
	markedReadID int64
	convRead     *markReadCall
}

func newFakeMessageStore(messages ...*models.Message) *fakeMessageStore {
	store := &fakeMessageStore{messages: map[int64]*models.Message{}, nextID: 1}
	for _, msg := range messages {
		store.messages[msg.ID] = msg
		if msg.ID >= store.nextID {
			store.nextID = msg.ID + 1
		}
	}
	return store
}

func (f *fakeMessageStore) GetPage(ctx context.Context, conversationID int64, page, pageSize int) ([]models.Message, int64, error) {
	return f.page, f.total, nil
}

func (f *fakeMessageStore) CreateInTx(ctx context.Context, tx pgx.Tx, msg *models.Message) error {
	msg.ID = f.nextID
	f.nextID++
	msg.CreatedAt = time.Now()
	f.messages[msg.ID] = msg
	f.created = msg
	return nil
}

func (f *fakeMessageStore) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	msg, ok := f.messages[id]
	if !ok {
		return nil, apperrors.NewResourceNotFoundError("message not found")
	}
	return msg, nil
}

func (f *fakeMessageStore) MarkRead(ctx context.Context, id int64) error {
	f.markedReadID = id
	if msg, ok := f.messages[id]; ok {
		msg.IsRead = true
	}
	return nil
}

func (f *fakeMessageStore) MarkConversationRead(ctx context.Context, conversationID, readerID int64) (int64, error) {
	f.convRead = &markReadCall{conversationID: conversationID, readerID: readerID}
	return 0, nil
}
