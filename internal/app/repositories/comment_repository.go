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

// CommentRepository handles database operations for post comments
type CommentRepository struct {
	db *pgxpool.Pool
}

// NewCommentRepository creates a new CommentRepository
func NewCommentRepository(db *pgxpool.Pool) *CommentRepository {
	return &CommentRepository{db: db}
}

// GetByPost retrieves the comments of a post newest first, with their authors
func (r *CommentRepository) GetByPost(ctx context.Context, postID int64, page, pageSize int) ([]models.Comment, int64, error) {
	query := `
		SELECT
			cm.id, cm.post_id, cm.user_id, cm.content, cm.created_at,
			u.name, u.avatar,
			COUNT(*) OVER() AS total_count
		FROM comments cm
		JOIN users u ON u.id = cm.user_id
		WHERE cm.post_id = $1
		ORDER BY cm.created_at DESC, cm.id DESC
		LIMIT $2 OFFSET $3
	`

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	rows, err := r.db.Query(ctx, query, postID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	comments := []models.Comment{}
	var total int64
	for rows.Next() {
		var comment models.Comment
		var author models.User
		err := rows.Scan(
			&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt,
			&author.Name, &author.Avatar,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		author.ID = comment.UserID
		comment.Author = &author
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return comments, total, nil
}

// Create inserts a new comment and fills in the generated fields
func (r *CommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (post_id, user_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		comment.PostID, comment.UserID, comment.Content,
	).Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating comment: %w", err)
	}
	return nil
}

// GetByID retrieves a comment by ID
func (r *CommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := `
		SELECT id, post_id, user_id, content, created_at
		FROM comments
		WHERE id = $1
	`

	var comment models.Comment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comment.ID, &comment.PostID, &comment.UserID, &comment.Content, &comment.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("comment not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &comment, nil
}

// Delete removes a comment
func (r *CommentRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM comments WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("comment not found")
	}
	return nil
}
