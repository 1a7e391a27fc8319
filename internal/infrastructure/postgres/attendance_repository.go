package postgres

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
)

type AttendanceRepository struct {
	db Querier
}

func NewAttendanceRepository(db Querier) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Add records that the user attends the event. A second Add for the same
// pair violates the composite primary key and surfaces as a constraint
// error.
func (r *AttendanceRepository) Add(ctx context.Context, userID, eventID string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO event_attendees (user_id, event_id)
		VALUES ($1, $2)
	`, userID, eventID)
	return err
}

// Remove deletes the attendance row for the pair. Removing a pair that was
// never recorded affects zero rows and is not an error.
func (r *AttendanceRepository) Remove(ctx context.Context, userID, eventID string) error {
	_, err := r.db.Exec(ctx, `
		DELETE FROM event_attendees
		WHERE user_id = $1 AND event_id = $2
	`, userID, eventID)
	return err
}

func (r *AttendanceRepository) ListEventsForUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT e.id, e.name, e.date, e.location, e.creator_id, e.created_at, e.updated_at
		FROM events e
		JOIN event_attendees a ON a.event_id = e.id
		WHERE a.user_id = $1
		ORDER BY e.created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *AttendanceRepository) ListUsersForEvent(ctx context.Context, eventID string) ([]*entity.User, error) {
	rows, err := r.db.Query(ctx, `
		SELECT u.id, u.username, u.password_hash, u.created_at, u.updated_at
		FROM users u
		JOIN event_attendees a ON a.user_id = u.id
		WHERE a.event_id = $1
		ORDER BY u.created_at
	`, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.User
	for rows.Next() {
		u := &entity.User{}
		if err := rows.Scan(&u.ID, &u.Username, &u.Password, &u.CreatedAt, &u.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

var _ repository.AttendanceRepository = (*AttendanceRepository)(nil)
