package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// MessageRepository handles database operations for messages
type MessageRepository struct {
	db *pgxpool.Pool
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *pgxpool.Pool) *MessageRepository {
	return &MessageRepository{db: db}
}

// GetPage retrieves one page of a conversation's messages with their senders,
// newest first. Callers reverse the slice when they need chronological order
// within the page.
func (r *MessageRepository) GetPage(ctx context.Context, conversationID int64, page, pageSize int) ([]models.Message, int64, error) {
	query := `
		SELECT
			ms.id, ms.conversation_id, ms.sender_id, ms.content, ms.is_read, ms.created_at,
			u.name, u.avatar,
			COUNT(*) OVER() AS total_count
		FROM messages ms
		JOIN users u ON u.id = ms.sender_id
		WHERE ms.conversation_id = $1
		ORDER BY ms.created_at DESC, ms.id DESC
		LIMIT $2 OFFSET $3
	`

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	rows, err := r.db.Query(ctx, query, conversationID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	messages := []models.Message{}
	var total int64
	for rows.Next() {
		var msg models.Message
		var sender models.User
		err := rows.Scan(
			&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Content, &msg.IsRead, &msg.CreatedAt,
			&sender.Name, &sender.Avatar,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		sender.ID = msg.SenderID
		msg.Sender = &sender
		messages = append(messages, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return messages, total, nil
}

// CreateInTx inserts a message inside an ongoing transaction and fills in the
// generated fields.
func (r *MessageRepository) CreateInTx(ctx context.Context, tx pgx.Tx, msg *models.Message) error {
	query := `
		INSERT INTO messages (conversation_id, sender_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, is_read, created_at
	`

	err := tx.QueryRow(ctx, query, msg.ConversationID, msg.SenderID, msg.Content).
		Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating message: %w", err)
	}
	return nil
}

// GetByID retrieves a message by ID
func (r *MessageRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	query := `
		SELECT id, conversation_id, sender_id, content, is_read, created_at
		FROM messages
		WHERE id = $1
	`

	var msg models.Message
	err := r.db.QueryRow(ctx, query, id).Scan(
		&msg.ID, &msg.ConversationID, &msg.SenderID, &msg.Content, &msg.IsRead, &msg.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("message not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &msg, nil
}

// MarkRead flags a single message as read
func (r *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "UPDATE messages SET is_read = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("message not found")
	}
	return nil
}

// MarkConversationRead flags every unread message in the conversation that was
// not sent by the reader. Returns the number of messages flipped.
func (r *MessageRepository) MarkConversationRead(ctx context.Context, conversationID, readerID int64) (int64, error) {
	result, err := r.db.Exec(ctx,
		"UPDATE messages SET is_read = TRUE WHERE conversation_id = $1 AND sender_id <> $2 AND is_read = FALSE",
		conversationID, readerID)
	if err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return result.RowsAffected(), nil
}
