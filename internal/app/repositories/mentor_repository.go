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

// MentorListItem is a mentor row enriched with viewer-dependent fields
type MentorListItem struct {
	Mentor      models.Mentor
	IsFollowing bool
}

// MentorRepository handles database operations for mentors
type MentorRepository struct {
	db *pgxpool.Pool
}

// NewMentorRepository creates a new MentorRepository
func NewMentorRepository(db *pgxpool.Pool) *MentorRepository {
	return &MentorRepository{db: db}
}

// Mentor listing filters
const (
	MentorFilterAll       = "all"
	MentorFilterAvailable = "available"
	MentorFilterFollowing = "following"
)

// GetAll retrieves mentors with their backing user, expertise labels and the
// viewer's follow flag, best rated first. filter narrows to available mentors
// or to mentors the viewer follows.
func (r *MentorRepository) GetAll(ctx context.Context, viewerID int64, filter string, page, pageSize int) ([]MentorListItem, int64, error) {
	query := `
		SELECT
			m.id, m.user_id, m.title, m.company, m.bio, m.availability,
			m.rating, m.sessions_completed, m.response_time, m.created_at,
			u.name, u.avatar, u.department,
			EXISTS (SELECT 1 FROM mentor_followers mf WHERE mf.mentor_id = m.id AND mf.user_id = $1) AS is_following,
			COUNT(*) OVER() AS total_count
		FROM mentors m
		JOIN users u ON u.id = m.user_id
		WHERE 1=1
	`

	args := []interface{}{viewerID}
	argIndex := 2

	switch filter {
	case MentorFilterAvailable:
		query += " AND m.availability = 'available'"
	case MentorFilterFollowing:
		query += fmt.Sprintf(" AND EXISTS (SELECT 1 FROM mentor_followers mf WHERE mf.mentor_id = m.id AND mf.user_id = $%d)", argIndex)
		args = append(args, viewerID)
		argIndex++
	}

	offset, limit := helpers.CalculateOffsetLimit(page, pageSize)
	query += " ORDER BY m.rating DESC, m.id"
	query += fmt.Sprintf(" LIMIT $%d OFFSET $%d", argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	items := []MentorListItem{}
	var total int64
	for rows.Next() {
		var item MentorListItem
		var user models.User
		err := rows.Scan(
			&item.Mentor.ID, &item.Mentor.UserID, &item.Mentor.Title, &item.Mentor.Company,
			&item.Mentor.Bio, &item.Mentor.Availability, &item.Mentor.Rating,
			&item.Mentor.SessionsCompleted, &item.Mentor.ResponseTime, &item.Mentor.CreatedAt,
			&user.Name, &user.Avatar, &user.Department,
			&item.IsFollowing,
			&total,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning row: %w", err)
		}
		user.ID = item.Mentor.UserID
		item.Mentor.User = &user
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating rows: %w", err)
	}

	// Expertise labels come in a second pass to keep the listing query flat
	for i := range items {
		expertise, err := r.GetExpertise(ctx, items[i].Mentor.ID)
		if err != nil {
			return nil, 0, err
		}
		items[i].Mentor.Expertise = expertise
	}

	return items, total, nil
}

// GetExpertise retrieves the expertise labels of a mentor, in insertion order
func (r *MentorRepository) GetExpertise(ctx context.Context, mentorID int64) ([]string, error) {
	rows, err := r.db.Query(ctx,
		"SELECT skill FROM mentor_expertise WHERE mentor_id = $1 ORDER BY id", mentorID)
	if err != nil {
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	defer rows.Close()

	labels := []string{}
	for rows.Next() {
		var label string
		if err := rows.Scan(&label); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		labels = append(labels, label)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}
	return labels, nil
}

// GetByID retrieves a mentor by ID
func (r *MentorRepository) GetByID(ctx context.Context, id int64) (*models.Mentor, error) {
	query := `
		SELECT id, user_id, title, company, bio, availability, rating,
			sessions_completed, response_time, created_at
		FROM mentors
		WHERE id = $1
	`

	var mentor models.Mentor
	err := r.db.QueryRow(ctx, query, id).Scan(
		&mentor.ID, &mentor.UserID, &mentor.Title, &mentor.Company, &mentor.Bio,
		&mentor.Availability, &mentor.Rating, &mentor.SessionsCompleted,
		&mentor.ResponseTime, &mentor.CreatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, apperrors.NewResourceNotFoundError("mentor not found")
		}
		return nil, fmt.Errorf("error executing query: %w", err)
	}
	return &mentor, nil
}

// Exists checks whether a mentor with the given ID exists
func (r *MentorRepository) Exists(ctx context.Context, id int64) (bool, error) {
	var one int
	err := r.db.QueryRow(ctx, "SELECT 1 FROM mentors WHERE id = $1", id).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}
