package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/app/models"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
	"github.com/campushub/backend/internal/pkg/helpers"
)

// PostListItem is a post row enriched with author, like and reference data
type PostListItem struct {
	Post            models.Post
	AuthorName      string
	AuthorAvatar    *string
	Likes           int64
	IsLiked         bool
	CommunityName   *string
	CommunityAvatar *string
	EventTitle      *string
	EventDate       *string
	EventImage      *string
}

// PostRepository handles database operations for posts
type PostRepository struct {
	db *pgxpool.Pool
}

// NewPostRepository creates a new PostRepository
func NewPostRepository(db *pgxpool.Pool) *PostRepository {
	return &PostRepository{db: db}
}

// GetFeed retrieves posts from communities the viewer is a member of, newest
// first, with like counts and the viewer's like flag.
func (r *PostRepository) GetFeed(ctx context.Context, viewerID int64, page, pageSize int) ([]PostListItem, int64, error) {
	query := `
		SELECT
			p.id, p.user_id, p.community_id, p.event_id, p.content, p.type,
			p.media_type, p.media_url, p.created_at,
			u.name, u.avatar,
			(SELECT COUNT(*) FROM post_likes pl WHERE pl.post_id = p.id) AS likes,
			EXISTS (SELECT 1 FROM post_likes pl WHERE pl.post_id = p.id AND pl.user_id = $1) AS is_liked,
			c.name, c.avatar,
			e.title, to_char(e.date, 'YYYY-MM-DD'), e.image,
			COUNT(*) OVER() AS total_count
		FROM posts p
		JOIN users u ON u.id = p.user_id
		LEFT JOIN communities c ON c.id = p.community_id
		LEFT JOIN events e ON e.id = p.event_id
		WHERE p.community_id IN (
			SELECT cm.community_id FROM community_members cm WHERE cm.user_id = $1
		)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3
	`

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	rows, err := r.db.Query(ctx, query, viewerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []PostListItem{}
	var total int64
	for rows.Next() {
		var item PostListItem
		err := rows.Scan(
			&item.Post.ID, &item.Post.UserID, &item.Post.CommunityID, &item.Post.EventID,
			&item.Post.Content, &item.Post.Type, &item.Post.MediaType, &item.Post.MediaURL,
			&item.Post.CreatedAt,
			&item.AuthorName, &item.AuthorAvatar,
			&item.Likes, &item.IsLiked,
			&item.CommunityName, &item.CommunityAvatar,
			&item.EventTitle, &item.EventDate, &item.EventImage,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return items, total, nil
}

// Create inserts a new post and fills in the generated fields
func (r *PostRepository) Create(ctx context.Context, post *models.Post) error {
	query := `
		INSERT INTO posts (user_id, community_id, event_id, content, type, media_type, media_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		post.UserID, post.CommunityID, post.EventID, post.Content,
		post.Type, post.MediaType, post.MediaURL,
	).Scan(&post.ID, &post.CreatedAt)
	if err != nil {
		if dberrors.IsForeignKeyViolation(err) {
			return apperrors.NewBadRequestError("Referenced community or event does not exist")
		}
		return fmt.Errorf("error creating post: %w", err)
	}
	return nil
}

// GetByID retrieves a post by ID
func (r *PostRepository) GetByID(ctx context.Context, id int64) (*models.Post, error) {
	query := `
		SELECT id, user_id, community_id, event_id, content, type, media_type, media_url, created_at
		FROM posts
		WHERE id = $1
	`

	var post models.Post
	err := r.db.QueryRow(ctx, query, id).Scan(
		&post.ID, &post.UserID, &post.CommunityID, &post.EventID,
		&post.Content, &post.Type, &post.MediaType, &post.MediaURL, &post.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("post not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &post, nil
}

// Delete removes a post. Likes and comments go with it via FK cascade.
func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Exec(ctx, "DELETE FROM posts WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("error executing query: %w", err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewResourceNotFoundError("post not found")
	}
	return nil
}
