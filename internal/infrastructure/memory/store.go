// Package memory provides an in-process implementation of the persistence
// contracts. It backs tests and local experiments; units of work are
// serialized under a single mutex and there is no rollback, so callers that
// need real transactional semantics use the Postgres store.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
)

var (
	// ErrDuplicateUsername mirrors the unique(username) constraint.
	ErrDuplicateUsername = errors.New("duplicate username")
	// ErrDuplicateAttendance mirrors the composite primary key on the join
	// relation.
	ErrDuplicateAttendance = errors.New("duplicate attendance")
)

type attKey struct {
	userID  string
	eventID string
}

// Store keeps all state in maps guarded by one mutex.
type Store struct {
	mu         sync.Mutex
	users      map[string]*entity.User
	events     map[string]*entity.Event
	attendance map[attKey]time.Time
}

func NewStore() *Store {
	return &Store{
		users:      make(map[string]*entity.User),
		events:     make(map[string]*entity.Event),
		attendance: make(map[attKey]time.Time),
	}
}

// InTx serializes fn against all other units of work.
func (s *Store) InTx(ctx context.Context, fn func(r *repository.Repos) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r := &repository.Repos{
		Users:      &userRepo{s: s},
		Events:     &eventRepo{s: s},
		Attendance: &attendanceRepo{s: s},
	}
	return fn(r)
}

var _ repository.TxRunner = (*Store)(nil)

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, u *entity.User) error {
	for _, existing := range r.s.users {
		if existing.Username == u.Username {
			return ErrDuplicateUsername
		}
	}
	now := time.Now()
	u.ID = uuid.NewString()
	u.CreatedAt = now
	u.UpdatedAt = now
	stored := *u
	r.s.users[u.ID] = &stored
	return nil
}

func (r *userRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, nil
	}
	out := *u
	return &out, nil
}

func (r *userRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	for _, u := range r.s.users {
		if u.Username == username {
			out := *u
			return &out, nil
		}
	}
	return nil, nil
}

type eventRepo struct {
	s *Store
}

func (r *eventRepo) Create(ctx context.Context, e *entity.Event) error {
	now := time.Now()
	e.ID = uuid.NewString()
	e.CreatedAt = now
	e.UpdatedAt = now
	stored := *e
	r.s.events[e.ID] = &stored
	return nil
}

func (r *eventRepo) GetByID(ctx context.Context, id string) (*entity.Event, error) {
	e, ok := r.s.events[id]
	if !ok {
		return nil, nil
	}
	out := *e
	return &out, nil
}

func (r *eventRepo) List(ctx context.Context) ([]*entity.Event, error) {
	return sortedEvents(r.s.events, func(*entity.Event) bool { return true }), nil
}

func (r *eventRepo) ListByCreator(ctx context.Context, creatorID string) ([]*entity.Event, error) {
	return sortedEvents(r.s.events, func(e *entity.Event) bool { return e.CreatorID == creatorID }), nil
}

// Update is a no-op for an unknown id, like a zero-row SQL update.
func (r *eventRepo) Update(ctx context.Context, e *entity.Event) error {
	stored, ok := r.s.events[e.ID]
	if !ok {
		return nil
	}
	stored.Name = e.Name
	stored.Date = e.Date
	stored.Location = e.Location
	stored.UpdatedAt = time.Now()
	return nil
}

// Delete also removes attendance rows for the event, mirroring the cascade
// constraint in the SQL schema.
func (r *eventRepo) Delete(ctx context.Context, id string) error {
	delete(r.s.events, id)
	for k := range r.s.attendance {
		if k.eventID == id {
			delete(r.s.attendance, k)
		}
	}
	return nil
}

type attendanceRepo struct {
	s *Store
}

func (r *attendanceRepo) Add(ctx context.Context, userID, eventID string) error {
	k := attKey{userID: userID, eventID: eventID}
	if _, ok := r.s.attendance[k]; ok {
		return ErrDuplicateAttendance
	}
	r.s.attendance[k] = time.Now()
	return nil
}

func (r *attendanceRepo) Remove(ctx context.Context, userID, eventID string) error {
	delete(r.s.attendance, attKey{userID: userID, eventID: eventID})
	return nil
}

func (r *attendanceRepo) ListEventsForUser(ctx context.Context, userID string) ([]*entity.Event, error) {
	attending := make(map[string]bool)
	for k := range r.s.attendance {
		if k.userID == userID {
			attending[k.eventID] = true
		}
	}
	return sortedEvents(r.s.events, func(e *entity.Event) bool { return attending[e.ID] }), nil
}

func (r *attendanceRepo) ListUsersForEvent(ctx context.Context, eventID string) ([]*entity.User, error) {
	var out []*entity.User
	for k := range r.s.attendance {
		if k.eventID != eventID {
			continue
		}
		if u, ok := r.s.users[k.userID]; ok {
			cp := *u
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func sortedEvents(events map[string]*entity.Event, keep func(*entity.Event) bool) []*entity.Event {
	var out []*entity.Event
	for _, e := range events {
		if keep(e) {
			cp := *e
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out
}
