package application

import (
	"context"
	"errors"

	"github.com/sirupsen/logrus"

	"github.com/gatherly/gatherly/internal/domain/entity"
	"github.com/gatherly/gatherly/internal/domain/repository"
	"github.com/gatherly/gatherly/pkg/helpers"
	"github.com/gatherly/gatherly/pkg/validation"
)

// ErrInvalidCredentials is returned for every failed login. An unknown
// username and a wrong password are indistinguishable to the caller.
var ErrInvalidCredentials = errors.New("invalid login credentials")

// StatusAttend is the one attendance status that opts a user in. Any other
// status string opts the user out.
const StatusAttend = "ATTEND"

// Service implements every API operation as a single all-or-nothing unit of
// work against the persistence layer. Sibling operations within one GraphQL
// query each get their own transaction; there is no atomicity across them.
type Service struct {
	Store  repository.TxRunner
	Tokens *helpers.TokenManager
	Auth   *Authorizer
	Logger *logrus.Logger
}

func NewService(store repository.TxRunner, tokens *helpers.TokenManager, logger *logrus.Logger) *Service {
	return &Service{
		Store:  store,
		Tokens: tokens,
		Auth:   NewAuthorizer(tokens),
		Logger: logger,
	}
}

type registration struct {
	Username string `validate:"required"`
	Password string `validate:"required"`
}

// Events lists all events.
func (s *Service) Events(ctx context.Context, token string) ([]*entity.Event, error) {
	var events []*entity.Event
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		var err error
		events, err = r.Events.List(ctx)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// Event fetches a single event; the result is nil when no event has the id.
func (s *Service) Event(ctx context.Context, token, id string) (*entity.Event, error) {
	var event *entity.Event
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		var err error
		event, err = r.Events.GetByID(ctx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// CurrentUser resolves the caller's token to their account.
func (s *Service) CurrentUser(ctx context.Context, token string) (*entity.User, error) {
	var user *entity.User
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		claims, err := s.Tokens.Verify(token)
		if err != nil {
			return err
		}
		user, err = r.Users.GetByID(ctx, claims.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// Register creates an account and returns a token for it. This is the
// bootstrap operation: no authorization is required. A taken username
// surfaces as the persistence layer's uniqueness error.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	if err := validation.Struct(registration{Username: username, Password: password}); err != nil {
		return "", err
	}
	var token string
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		hash, err := helpers.HashPassword(password)
		if err != nil {
			return err
		}
		u := &entity.User{Username: username, Password: hash}
		if err := r.Users.Create(ctx, u); err != nil {
			return err
		}
		token, err = s.Tokens.Issue(u.ID)
		return err
	})
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Warn("registration failed")
		}
		return "", err
	}
	return token, nil
}

// Login checks a username/password pair and returns a token. A missing user
// and a wrong password both fail with ErrInvalidCredentials so callers
// cannot enumerate accounts.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	var token string
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		u, err := r.Users.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if u == nil || !helpers.CheckPassword(u.Password, password) {
			return ErrInvalidCredentials
		}
		token, err = s.Tokens.Issue(u.ID)
		return err
	})
	if err != nil {
		return "", err
	}
	return token, nil
}

// CreateEvent creates an event owned by the token's user.
func (s *Service) CreateEvent(ctx context.Context, token, name, date, location string) (*entity.Event, error) {
	var event *entity.Event
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		claims, err := s.Tokens.Verify(token)
		if err != nil {
			return err
		}
		event = &entity.Event{Name: name, Date: date, Location: location, CreatorID: claims.UserID}
		return r.Events.Create(ctx, event)
	})
	if err != nil {
		return nil, err
	}
	return event, nil
}

// UpdateEvent rewrites an event's fields. Any authenticated user may update
// any event; updating an unknown id silently affects zero rows.
func (s *Service) UpdateEvent(ctx context.Context, token, id, name, date, location string) error {
	return s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		return r.Events.Update(ctx, &entity.Event{ID: id, Name: name, Date: date, Location: location})
	})
}

// DeleteEvent removes an event. Any authenticated user may delete any event;
// deleting an unknown id silently affects zero rows.
func (s *Service) DeleteEvent(ctx context.Context, token, id string) error {
	return s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		return r.Events.Delete(ctx, id)
	})
}

// UpdateAttendance opts the token's user in or out of an event. Status
// StatusAttend records attendance; any other status removes it, whether or
// not it was ever recorded.
func (s *Service) UpdateAttendance(ctx context.Context, token, eventID, status string) error {
	return s.Store.InTx(ctx, func(r *repository.Repos) error {
		if err := s.Auth.Authorize(token); err != nil {
			return err
		}
		claims, err := s.Tokens.Verify(token)
		if err != nil {
			return err
		}
		if status == StatusAttend {
			return r.Attendance.Add(ctx, claims.UserID, eventID)
		}
		return r.Attendance.Remove(ctx, claims.UserID, eventID)
	})
}

// CreatedEvents lists events created by a user. Relationship reads each run
// in their own transaction.
func (s *Service) CreatedEvents(ctx context.Context, userID string) ([]*entity.Event, error) {
	var events []*entity.Event
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		var err error
		events, err = r.Events.ListByCreator(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// AttendedEvents lists events a user attends.
func (s *Service) AttendedEvents(ctx context.Context, userID string) ([]*entity.Event, error) {
	var events []*entity.Event
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		var err error
		events, err = r.Attendance.ListEventsForUser(ctx, userID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return events, nil
}

// EventCreator fetches the user behind an event's creator reference.
func (s *Service) EventCreator(ctx context.Context, creatorID string) (*entity.User, error) {
	var user *entity.User
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		var err error
		user, err = r.Users.GetByID(ctx, creatorID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// EventAttendees lists the users attending an event.
func (s *Service) EventAttendees(ctx context.Context, eventID string) ([]*entity.User, error) {
	var users []*entity.User
	err := s.Store.InTx(ctx, func(r *repository.Repos) error {
		var err error
		users, err = r.Attendance.ListUsersForEvent(ctx, eventID)
		return err
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}
