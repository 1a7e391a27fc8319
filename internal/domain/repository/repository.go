package repository

import (
	"context"

	"github.com/gatherly/gatherly/internal/domain/entity"
)

// UserRepository defines user persistence operations. Lookups return a nil
// user (and nil error) when no row matches.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
}

// EventRepository defines event persistence operations. Update and Delete of
// a missing event succeed with zero rows affected; GetByID returns nil when
// no row matches.
type EventRepository interface {
	Create(ctx context.Context, e *entity.Event) error
	GetByID(ctx context.Context, id string) (*entity.Event, error)
	List(ctx context.Context) ([]*entity.Event, error)
	ListByCreator(ctx context.Context, creatorID string) ([]*entity.Event, error)
	Update(ctx context.Context, e *entity.Event) error
	Delete(ctx context.Context, id string) error
}

// AttendanceRepository manages the user/event join relation. Add of an
// existing pair fails on the composite uniqueness constraint; Remove of a
// missing pair succeeds with nothing to do.
type AttendanceRepository interface {
	Add(ctx context.Context, userID, eventID string) error
	Remove(ctx context.Context, userID, eventID string) error
	ListEventsForUser(ctx context.Context, userID string) ([]*entity.Event, error)
	ListUsersForEvent(ctx context.Context, eventID string) ([]*entity.User, error)
}

// Repos bundles the repositories bound to one unit of work.
type Repos struct {
	Users      UserRepository
	Events     EventRepository
	Attendance AttendanceRepository
}

// TxRunner runs fn inside a single atomic unit of work. The Repos handed to
// fn are bound to that unit and must not escape it.
type TxRunner interface {
	InTx(ctx context.Context, fn func(r *Repos) error) error
}
