package graph

import (
	"context"
	"errors"

	graphql "github.com/graph-gophers/graphql-go"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/domain/entity"
)

// Resolver is the root resolver. Every operation delegates to the
// application service, which runs it in its own transaction; the token is
// read from the request context placed there by the transport layer.
type Resolver struct {
	Svc *application.Service
}

// NewSchema parses the SDL against the root resolver. The SDL is a compile
// time constant, so a parse failure is a programming error and panics.
func NewSchema(svc *application.Service) *graphql.Schema {
	return graphql.MustParseSchema(Schema, &Resolver{Svc: svc})
}

func (r *Resolver) Events(ctx context.Context) ([]*EventResolver, error) {
	events, err := r.Svc.Events(ctx, TokenFrom(ctx))
	if err != nil {
		return nil, err
	}
	return wrapEvents(r.Svc, events), nil
}

func (r *Resolver) Event(ctx context.Context, args struct{ ID graphql.ID }) (*EventResolver, error) {
	event, err := r.Svc.Event(ctx, TokenFrom(ctx), string(args.ID))
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, nil
	}
	return &EventResolver{svc: r.Svc, event: event}, nil
}

func (r *Resolver) User(ctx context.Context) (*UserResolver, error) {
	user, err := r.Svc.CurrentUser(ctx, TokenFrom(ctx))
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}
	return &UserResolver{svc: r.Svc, user: user}, nil
}

func (r *Resolver) RegisterUser(ctx context.Context, args struct{ Username, Password string }) (*string, error) {
	token, err := r.Svc.Register(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *Resolver) LoginUser(ctx context.Context, args struct{ Username, Password string }) (*string, error) {
	token, err := r.Svc.Login(ctx, args.Username, args.Password)
	if err != nil {
		return nil, err
	}
	return &token, nil
}

func (r *Resolver) CreateEvent(ctx context.Context, args struct{ Name, Date, Location string }) (*EventResolver, error) {
	event, err := r.Svc.CreateEvent(ctx, TokenFrom(ctx), args.Name, args.Date, args.Location)
	if err != nil {
		return nil, err
	}
	return &EventResolver{svc: r.Svc, event: event}, nil
}

func (r *Resolver) UpdateEvent(ctx context.Context, args struct {
	ID                   graphql.ID
	Name, Date, Location string
}) (*EventResolver, error) {
	if err := r.Svc.UpdateEvent(ctx, TokenFrom(ctx), string(args.ID), args.Name, args.Date, args.Location); err != nil {
		return nil, err
	}
	// Resolves to null on success; clients re-query for the updated event.
	return nil, nil
}

func (r *Resolver) DeleteEvent(ctx context.Context, args struct{ ID graphql.ID }) (*EventResolver, error) {
	if err := r.Svc.DeleteEvent(ctx, TokenFrom(ctx), string(args.ID)); err != nil {
		return nil, err
	}
	return nil, nil
}

func (r *Resolver) UpdateEventAttendance(ctx context.Context, args struct {
	EventID graphql.ID
	Status  string
}) (*EventResolver, error) {
	if err := r.Svc.UpdateAttendance(ctx, TokenFrom(ctx), string(args.EventID), args.Status); err != nil {
		return nil, err
	}
	return nil, nil
}

// UserResolver resolves User fields. Each relationship field opens its own
// transaction; there is no batching across siblings.
type UserResolver struct {
	svc  *application.Service
	user *entity.User
}

func (r *UserResolver) ID() graphql.ID { return graphql.ID(r.user.ID) }

func (r *UserResolver) Username() string { return r.user.Username }

// Password resolves to the stored digest; the plaintext never leaves the
// hasher.
func (r *UserResolver) Password() string { return r.user.Password }

func (r *UserResolver) CreatedEvents(ctx context.Context) ([]*EventResolver, error) {
	events, err := r.svc.CreatedEvents(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return wrapEvents(r.svc, events), nil
}

func (r *UserResolver) AttendedEvents(ctx context.Context) ([]*EventResolver, error) {
	events, err := r.svc.AttendedEvents(ctx, r.user.ID)
	if err != nil {
		return nil, err
	}
	return wrapEvents(r.svc, events), nil
}

// EventResolver resolves Event fields.
type EventResolver struct {
	svc   *application.Service
	event *entity.Event
}

func (r *EventResolver) ID() graphql.ID { return graphql.ID(r.event.ID) }

func (r *EventResolver) Name() string { return r.event.Name }

func (r *EventResolver) Date() string { return r.event.Date }

func (r *EventResolver) Location() string { return r.event.Location }

func (r *EventResolver) Creator(ctx context.Context) (*UserResolver, error) {
	user, err := r.svc.EventCreator(ctx, r.event.CreatorID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		// The schema promises a non-null creator; a dangling reference can
		// only mean the referential constraints were bypassed.
		return nil, errors.New("event creator not found")
	}
	return &UserResolver{svc: r.svc, user: user}, nil
}

func (r *EventResolver) Attendees(ctx context.Context) ([]*UserResolver, error) {
	users, err := r.svc.EventAttendees(ctx, r.event.ID)
	if err != nil {
		return nil, err
	}
	out := make([]*UserResolver, 0, len(users))
	for _, u := range users {
		out = append(out, &UserResolver{svc: r.svc, user: u})
	}
	return out, nil
}

func wrapEvents(svc *application.Service, events []*entity.Event) []*EventResolver {
	out := make([]*EventResolver, 0, len(events))
	for _, e := range events {
		out = append(out, &EventResolver{svc: svc, event: e})
	}
	return out
}
