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

// CommunityRepository handles database operations for communities
type CommunityRepository struct {
	db *pgxpool.Pool
}

// NewCommunityRepository creates a new CommunityRepository
func NewCommunityRepository(db *pgxpool.Pool) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// GetAll retrieves communities with filtering, pagination and per-community
// follower counts. Categories compare exactly; "all" disables the filter
// upstream.
func (r *CommunityRepository) GetAll(ctx context.Context, category, search *string, page, pageSize int) ([]models.Community, int64, error) {
	query := `
		SELECT
			c.id, c.name, c.avatar, c.description, c.category, c.established, c.created_at,
			(SELECT COUNT(*) FROM community_followers cf WHERE cf.community_id = c.id) AS followers,
			COUNT(*) OVER() AS total_count
		FROM communities c
		WHERE 1=1
	`

	args := []interface{}{}
	argIndex := 1

	if category != nil && *category != "" {
		query += fmt.Sprintf(" AND c.category = $%d", argIndex)
		args = append(args, *category)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (c.name ILIKE $%d OR c.description ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query += " ORDER BY c.created_at DESC, c.id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	communities := []models.Community{}
	var total int64
	for rows.Next() {
		var comm models.Community
		err := rows.Scan(
			&comm.ID,
			&comm.Name,
			&comm.Avatar,
			&comm.Description,
			&comm.Category,
			&comm.Established,
			&comm.CreatedAt,
			&comm.FollowerCount,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		communities = append(communities, comm)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	return communities, total, nil
}

// GetByID retrieves a community by ID together with its follower count
func (r *CommunityRepository) GetByID(ctx context.Context, id int64) (*models.Community, error) {
	query := `
		SELECT
			c.id, c.name, c.avatar, c.description, c.category, c.established, c.created_at,
			(SELECT COUNT(*) FROM community_followers cf WHERE cf.community_id = c.id) AS followers
		FROM communities c
		WHERE c.id = $1
	`

	var comm models.Community
	err := r.db.QueryRow(ctx, query, id).Scan(
		&comm.ID,
		&comm.Name,
		&comm.Avatar,
		&comm.Description,
		&comm.Category,
		&comm.Established,
		&comm.CreatedAt,
		&comm.FollowerCount,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("community not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}

	return &comm, nil
}

// Exists checks whether a community with the given ID exists
func (r *CommunityRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, "SELECT 1 FROM communities WHERE id = $1", id).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}

// GetTags retrieves the tag labels for a community, in insertion order
func (r *CommunityRepository) GetTags(ctx context.Context, communityID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT tag FROM community_tags WHERE community_id = $1 ORDER BY id", communityID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	tags := []string{}
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		tags = append(tags, tag)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return tags, nil
}

// GetUpcomingEvents retrieves the next events of a community starting today,
// soonest first.
func (r *CommunityRepository) GetUpcomingEvents(ctx context.Context, communityID int64, limit int) ([]models.Event, error) {
	query := `
		SELECT id, community_id, title, date, time, location, image, description, capacity, created_at
		FROM events
		WHERE community_id = $1 AND date >= CURRENT_DATE
		ORDER BY date ASC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var ev models.Event
		err := rows.Scan(
			&ev.ID, &ev.CommunityID, &ev.Title, &ev.Date, &ev.Time,
			&ev.Location, &ev.Image, &ev.Description, &ev.Capacity, &ev.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		events = append(events, ev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return events, nil
}

// GetRecentPosts retrieves the latest posts of a community, newest first
func (r *CommunityRepository) GetRecentPosts(ctx context.Context, communityID int64, limit int) ([]models.Post, error) {
	query := `
		SELECT
			p.id, p.user_id, p.community_id, p.event_id, p.content, p.type,
			p.media_type, p.media_url, p.created_at,
			u.name
		FROM posts p
		JOIN users u ON u.id = p.user_id
		WHERE p.community_id = $1
		ORDER BY p.created_at DESC
		LIMIT $2
	`

	rows, err := r.db.Query(ctx, query, communityID, limit)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	posts := []models.Post{}
	for rows.Next() {
		var post models.Post
		var authorName string
		err := rows.Scan(
			&post.ID, &post.UserID, &post.CommunityID, &post.EventID,
			&post.Content, &post.Type, &post.MediaType, &post.MediaURL, &post.CreatedAt,
			&authorName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		post.Author = &models.User{ID: post.UserID, Name: authorName}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return posts, nil
}
