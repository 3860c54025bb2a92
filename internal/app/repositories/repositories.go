package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories bundles all repository instances sharing one connection pool
type Repositories struct {
	UserRepository         *UserRepository
	CommunityRepository    *CommunityRepository
	EventRepository        *EventRepository
	MentorRepository       *MentorRepository
	PostRepository         *PostRepository
	CommentRepository      *CommentRepository
	ConversationRepository *ConversationRepository
	MessageRepository      *MessageRepository
	RelationRepository     *RelationRepository
}

// NewRepositories creates all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		CommunityRepository:    NewCommunityRepository(db),
		EventRepository:        NewEventRepository(db),
		MentorRepository:       NewMentorRepository(db),
		PostRepository:         NewPostRepository(db),
		CommentRepository:      NewCommentRepository(db),
		ConversationRepository: NewConversationRepository(db),
		MessageRepository:      NewMessageRepository(db),
		RelationRepository:     NewRelationRepository(db),
	}
}
