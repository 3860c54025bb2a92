package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
)

// ConversationListItem is a conversation row enriched with the counterpart
// user, the latest message and the viewer's unread count.
type ConversationListItem struct {
	Conversation models.Conversation
	OtherUser    models.User
	LastMessage  *models.Message
	UnreadCount  int64
}

// ConversationRepository handles database operations for conversations
type ConversationRepository struct {
	db *pgxpool.Pool
}

// NewConversationRepository creates a new ConversationRepository
func NewConversationRepository(db *pgxpool.Pool) *ConversationRepository {
	return &ConversationRepository{db: db}
}

// FindByPair looks up the conversation between two users, checking both
// orderings. Returns ErrResourceNotFound when none exists.
func (r *ConversationRepository) FindByPair(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error) {
	query := `
		SELECT id, user1_id, user2_id, last_message_at, created_at
		FROM conversations
		WHERE (user1_id = $1 AND user2_id = $2) OR (user1_id = $2 AND user2_id = $1)
	`

	var conv models.Conversation
	err := r.db.QueryRow(ctx, query, user1ID, user2ID).Scan(
		&conv.ID, &conv.User1ID, &conv.User2ID, &conv.LastMessageAt, &conv.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("conversation not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &conv, nil
}

// Create inserts a new conversation between two users
func (r *ConversationRepository) Create(ctx context.Context, user1ID, user2ID int64) (*models.Conversation, error) {
	query := `
		INSERT INTO conversations (user1_id, user2_id)
		VALUES ($1, $2)
		RETURNING id, user1_id, user2_id, last_message_at, created_at
	`

	var conv models.Conversation
	err := r.db.QueryRow(ctx, query, user1ID, user2ID).Scan(
		&conv.ID, &conv.User1ID, &conv.User2ID, &conv.LastMessageAt, &conv.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("error creating conversation: %w", err)
	}
	return &conv, nil
}

// GetByID retrieves a conversation by ID
func (r *ConversationRepository) GetByID(ctx context.Context, id int64) (*models.Conversation, error) {
	query := `
		SELECT id, user1_id, user2_id, last_message_at, created_at
		FROM conversations
		WHERE id = $1
	`

	var conv models.Conversation
	err := r.db.QueryRow(ctx, query, id).Scan(
		&conv.ID, &conv.User1ID, &conv.User2ID, &conv.LastMessageAt, &conv.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("conversation not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &conv, nil
}

// GetAllForUser retrieves the conversations the user participates in, most
// recently active first, each with counterpart info, last message and the
// user's unread count.
func (r *ConversationRepository) GetAllForUser(ctx context.Context, userID int64) ([]ConversationListItem, error) {
	query := `
		SELECT
			cv.id, cv.user1_id, cv.user2_id, cv.last_message_at, cv.created_at,
			ou.id, ou.name, ou.avatar,
			(SELECT COUNT(*) FROM messages ms
				WHERE ms.conversation_id = cv.id AND ms.sender_id <> $1 AND ms.is_read = FALSE) AS unread
		FROM conversations cv
		JOIN users ou ON ou.id = CASE WHEN cv.user1_id = $1 THEN cv.user2_id ELSE cv.user1_id END
		WHERE cv.user1_id = $1 OR cv.user2_id = $1
		ORDER BY cv.last_message_at DESC, cv.id DESC
	`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []ConversationListItem{}
	for rows.Next() {
		var item ConversationListItem
		err := rows.Scan(
			&item.Conversation.ID, &item.Conversation.User1ID, &item.Conversation.User2ID,
			&item.Conversation.LastMessageAt, &item.Conversation.CreatedAt,
			&item.OtherUser.ID, &item.OtherUser.Name, &item.OtherUser.Avatar,
			&item.UnreadCount,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	// Last messages fetched per conversation; the list is small and unpaged
	for i := range items {
		last, err := r.getLastMessage(ctx, items[i].Conversation.ID)
		if err != nil {
			return nil, err
		}
		items[i].LastMessage = last
	}

	return items, nil
}

func (r *ConversationRepository) getLastMessage(ctx context.Context, conversationID int64) (*models.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, content, is_read, created_at
		FROM messages
		WHERE conversation_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT 1
	`

	var msg models.Message
	err := r.db.QueryRow(ctx, query, conversationID).Scan(
		&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Content, &msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &msg, nil
}

// TouchLastMessageInTx sets the conversation's last_message_at inside an
// ongoing transaction.
func (r *ConversationRepository) TouchLastMessageInTx(ctx context.Context, tx pgx.Tx, conversationID int64, at time.Time) error {
	result, err := tx.Exec(ctx,
		"UPDATE conversations SET last_message_at = $1 WHERE id = $2", at, conversationID)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("conversation not found")
	}
	return nil
}

// Delete removes a conversation. Messages cascade via FK.
func (r *ConversationRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM conversations WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("conversation not found")
	}
	return nil
}
