package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
)

type EventRepository struct {
	db Querier
}

func NewEventRepository(db Querier) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(ctx context.Context, e *entity.Event) error {
	row := r.db.QueryRow(ctx, `
		INSERT INTO events (name, date, location, creator_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`, e.Name, e.Date, e.Location, e.CreatorID)

	return row.Scan(&e.ID, &e.CreatedAt, &e.UpdatedAt)
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	e := &entity.Event{}

	row := r.db.QueryRow(ctx, `
		SELECT id, name, date, location, creator_id, created_at, updated_at
		FROM events
		WHERE id = $1
	`, id)

	if err := row.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.CreatorID,
		&e.CreatedAt, &e.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, date, location, creator_id, created_at, updated_at
		FROM events
		ORDER BY created_at
	`)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

func (r *EventRepository) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Event, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, date, location, creator_id, created_at, updated_at
		FROM events
		WHERE creator_id = $1
		ORDER BY created_at
	`, creatorID)
	if err != nil {
		return nil, err
	}
	return scanEvents(rows)
}

// Update rewrites the mutable fields of an event. Updating a missing event
// affects zero rows and is not an error.
func (r *EventRepository) Update(ctx context.Context, e *entity.Event) error {
	_, err := r.db.Exec(ctx, `
		UPDATE events
		SET name = $1, date = $2, location = $3, updated_at = now()
		WHERE id = $4
	`, e.Name, e.Date, e.Location, e.ID)
	return err
}

// Delete removes an event. Deleting a missing event affects zero rows and is
// not an error; attendance rows go with it via the cascade constraint.
func (r *EventRepository) Delete(ctx context.Context, id string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	return err
}

func scanEvents(rows pgx.Rows) ([]*entity.Event, error) {
	defer rows.Close()
	var out []*entity.Event
	for rows.Next() {
		e := &entity.Event{}
		if err := rows.Scan(&e.ID, &e.Name, &e.Date, &e.Location, &e.CreatorID,
			&e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

var _ repository.EventRepository = (*EventRepository)(nil)
