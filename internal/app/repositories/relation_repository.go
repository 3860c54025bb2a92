package repositories

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campushub/backend/internal/db"
	"github.com/campushub/backend/internal/pkg/apperrors"
	"github.com/campushub/backend/internal/pkg/dberrors"
)

// Relation describes a user-to-resource join table with a unique
// (subject, object) pair constraint.
type Relation struct {
	Table      string
	SubjectCol string
	ObjectCol  string
}

var (
	CommunityMembers   = Relation{Table: "community_members", SubjectCol: "user_id", ObjectCol: "community_id"}
	CommunityFollowers = Relation{Table: "community_followers", SubjectCol: "user_id", ObjectCol: "community_id"}
	EventInterests     = Relation{Table: "event_interests", SubjectCol: "user_id", ObjectCol: "event_id"}
	MentorFollowers    = Relation{Table: "mentor_followers", SubjectCol: "user_id", ObjectCol: "mentor_id"}
	PostLikes          = Relation{Table: "post_likes", SubjectCol: "user_id", ObjectCol: "post_id"}
)

// RelationRepository handles membership-style join tables shared by
// communities, events, mentors and post likes.
type RelationRepository struct {
	db *pgxpool.Pool
}

// NewRelationRepository creates a new RelationRepository
func NewRelationRepository(db *pgxpool.Pool) *RelationRepository {
	return &RelationRepository{db: db}
}

// Toggle flips the (subject, object) pair: inserts it when absent, removes it
// when present. The insert relies on the table's unique pair constraint, so
// two concurrent toggles settle on insert-then-delete rather than a duplicate
// row. Returns whether the pair exists after the call and the remaining count
// of subjects linked to the object.
func (r *RelationRepository) Toggle(ctx context.Context, rel Relation, subjectID, objectID int64) (bool, int64, error) {
	var linked bool
	var count int64

	err := db.WithTransaction(ctx, r.db, func(ctx context.Context, tx pgx.Tx) error {
		insert := fmt.Sprintf(
			"INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT (%s, %s) DO NOTHING",
			rel.Table, rel.SubjectCol, rel.ObjectCol, rel.SubjectCol, rel.ObjectCol,
		)
		tag, err := tx.Exec(ctx, insert, subjectID, objectID)
		if err != nil {
			if dberrors.IsForeignKeyViolation(err) {
				return apperrors.NewBadRequestError("Referenced user or resource does not exist")
			}
			return fmt.Errorf("error inserting relation: %w", err)
		}

		if tag.RowsAffected() > 0 {
			linked = true
		} else {
			del := fmt.Sprintf(
				"DELETE FROM %s WHERE %s = $1 AND %s = $2",
				rel.Table, rel.SubjectCol, rel.ObjectCol,
			)
			if _, err := tx.Exec(ctx, del, subjectID, objectID); err != nil {
				return fmt.Errorf("error deleting relation: %w", err)
			}
			linked = false
		}

		countQuery := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", rel.Table, rel.ObjectCol)
		if err := tx.QueryRow(ctx, countQuery, objectID).Scan(&count); err != nil {
			return fmt.Errorf("error counting relations: %w", err)
		}
		return nil
	})
	if err != nil {
		return false, 0, err
	}

	return linked, count, nil
}

// Exists reports whether the (subject, object) pair is present.
func (r *RelationRepository) Exists(ctx context.Context, rel Relation, subjectID, objectID int64) (bool, error) {
	query := squirrel.Select("1").
		From(rel.Table).
		Where(rel.SubjectCol+" = ?", subjectID).
		Where(rel.ObjectCol+" = ?", objectID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return false, fmt.Errorf("error building SQL: %w", err)
	}

	var one int
	err = r.db.QueryRow(ctx, sql, args...).Scan(&one)
	if err != nil {
		if err == pgx.ErrNoRows {
			return false, nil
		}
		return false, fmt.Errorf("error executing query: %w", err)
	}
	return true, nil
}

// Count returns how many subjects are linked to the object.
func (r *RelationRepository) Count(ctx context.Context, rel Relation, objectID int64) (int64, error) {
	query := squirrel.Select("COUNT(*)").
		From(rel.Table).
		Where(rel.ObjectCol+" = ?", objectID).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, fmt.Errorf("error building SQL: %w", err)
	}

	var count int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("error executing query: %w", err)
	}
	return count, nil
}
