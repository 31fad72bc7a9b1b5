package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/lmoretto/wanderlust/internal/domain/activity"
)

// ActivityRepository implements repository.ActivityRepository for SQLite
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Log appends an activity entry
func (r *ActivityRepository) Log(ctx context.Context, entry *activity.Entry) error {
	query := `
		INSERT INTO activity_log (session_id, landmark_id, activity_type, summary, details, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	createdAt := entry.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	result, err := r.db.ExecContext(ctx, query,
		nullIfEmpty(entry.SessionID),
		nullIfEmpty(entry.LandmarkID),
		entry.Type,
		entry.Summary,
		nullIfEmpty(entry.Details),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}
	return nil
}

// List returns activity entries matching the options, newest first
func (r *ActivityRepository) List(ctx context.Context, opts activity.ListOptions) ([]activity.Entry, error) {
	query := `
		SELECT id, session_id, landmark_id, activity_type, summary, details, created_at
		FROM activity_log
		WHERE 1=1
	`
	var args []any

	if opts.SessionID != "" {
		query += " AND session_id = ?"
		args = append(args, opts.SessionID)
	}
	if opts.LandmarkID != "" {
		query += " AND landmark_id = ?"
		args = append(args, opts.LandmarkID)
	}
	if opts.Type != nil {
		query += " AND activity_type = ?"
		args = append(args, *opts.Type)
	}

	query += " ORDER BY created_at DESC, id DESC"
	if opts.Limit > 0 || opts.Offset > 0 {
		// SQLite requires LIMIT before OFFSET; -1 means unbounded
		limit := opts.Limit
		if limit <= 0 {
			limit = -1
		}
		query += " LIMIT ? OFFSET ?"
		args = append(args, limit, opts.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity: %w", err)
	}
	defer rows.Close()

	var entries []activity.Entry
	for rows.Next() {
		var entry activity.Entry
		var sessionID, landmarkID, details sql.NullString
		if err := rows.Scan(&entry.ID, &sessionID, &landmarkID, &entry.Type, &entry.Summary, &details, &entry.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity entry: %w", err)
		}
		entry.SessionID = sessionID.String
		entry.LandmarkID = landmarkID.String
		entry.Details = details.String
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity: %w", err)
	}

	return entries, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
