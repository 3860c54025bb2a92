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

// EventListItem is an event row enriched with viewer-dependent fields
type EventListItem struct {
	Event           models.Event
	CommunityName   *string
	CommunityAvatar *string
	Interested      int64
	IsInterested    bool
}

// EventRepository handles database operations for events
type EventRepository struct {
	db *pgxpool.Pool
}

// NewEventRepository creates a new EventRepository
func NewEventRepository(db *pgxpool.Pool) *EventRepository {
	return &EventRepository{db: db}
}

// GetAll retrieves events soonest first, with interest counts and the
// viewer's own interest flag. viewerID 0 means an anonymous listing.
// interestedOnly narrows to events the viewer marked interest in.
func (r *EventRepository) GetAll(ctx context.Context, viewerID int64, interestedOnly bool, search *string, page, pageSize int) ([]EventListItem, int64, error) {
	query := `
		SELECT
			e.id, e.community_id, e.title, e.date, e.time, e.location, e.image,
			e.description, e.capacity, e.created_at,
			c.name, c.avatar,
			(SELECT COUNT(*) FROM event_interests ei WHERE ei.event_id = e.id) AS interested,
			EXISTS (SELECT 1 FROM event_interests ei WHERE ei.event_id = e.id AND ei.user_id = $1) AS is_interested,
			COUNT(*) OVER() AS total_count
		FROM events e
		LEFT JOIN communities c ON c.id = e.community_id
		WHERE 1=1
	`

	args := []interface{}{viewerID}
	argIndex := 2

	if interestedOnly {
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM event_interests ei WHERE ei.event_id = e.id AND ei.user_id = $%d)", argIndex)
		args = append(args, viewerID)
		argIndex++
	}

	if search != nil && *search != "" {
		pattern := "%" + *search + "%"
		query += fmt.Sprintf(" AND (e.title ILIKE $%d OR c.name ILIKE $%d)", argIndex, argIndex+1)
		args = append(args, pattern, pattern)
		argIndex += 2
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query += " ORDER BY e.date ASC, e.id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []EventListItem{}
	var total int64
	for rows.Next() {
		var item EventListItem
		err := rows.Scan(
			&item.Event.ID, &item.Event.CommunityID, &item.Event.Title, &item.Event.Date,
			&item.Event.Time, &item.Event.Location, &item.Event.Image,
			&item.Event.Description, &item.Event.Capacity, &item.Event.CreatedAt,
			&item.CommunityName, &item.CommunityAvatar,
			&item.Interested, &item.IsInterested,
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

// GetByID retrieves an event by ID
func (r *EventRepository) GetByID(ctx context.Context, id int64) (*models.Event, error) {
	query := `
		SELECT id, community_id, title, date, time, location, image, description, capacity, created_at
		FROM events
		WHERE id = $1
	`

	var ev models.Event
	err := r.db.QueryRow(ctx, query, id).Scan(
		&ev.ID, &ev.CommunityID, &ev.Title, &ev.Date, &ev.Time,
		&ev.Location, &ev.Image, &ev.Description, &ev.Capacity, &ev.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("event not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &ev, nil
}

// Exists checks whether an event with the given ID exists
func (r *EventRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, "SELECT 1 FROM events WHERE id = $1", id).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}
