package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/infrastructure/memory"
	"github.com/gatherly/gatherly/pkg/helpers"
)

func newTestService() *application.Service {
	return application.NewService(memory.NewStore(), helpers.NewTokenManager("test-secret"), nil)
}

// exec runs one operation and either decodes data into out or returns the
// first error message.
func exec(t *testing.T, svc *application.Service, ctx context.Context, query string, vars map[string]any, out any) string {
	t.Helper()
	schema := NewSchema(svc)
	res := schema.Exec(ctx, query, "", vars)
	if len(res.Errors) > 0 {
		return res.Errors[0].Message
	}
	if out != nil {
		require.NoError(t, json.Unmarshal(res.Data, out))
	}
	return ""
}

func register(t *testing.T, svc *application.Service, username, password string) string {
	t.Helper()
	var data struct {
		RegisterUser string `json:"registerUser"`
	}
	errMsg := exec(t, svc, context.Background(), fmt.Sprintf(`
		mutation { registerUser(username: %q, password: %q) }
	`, username, password), nil, &data)
	require.Empty(t, errMsg)
	require.NotEmpty(t, data.RegisterUser)
	return data.RegisterUser
}

func TestRegisterAndLoginMutations(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token := register(t, svc, "alice", "pw1")
	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	require.NotEmpty(t, claims.UserID)

	var data struct {
		LoginUser string `json:"loginUser"`
	}
	errMsg := exec(t, svc, context.Background(), `
		mutation { loginUser(username: "alice", password: "pw1") }
	`, nil, &data)
	require.Empty(t, errMsg)
	loginClaims, err := svc.Tokens.Verify(data.LoginUser)
	require.NoError(t, err)
	require.Equal(t, claims.UserID, loginClaims.UserID)

	errMsg = exec(t, svc, context.Background(), `
		mutation { loginUser(username: "alice", password: "wrong") }
	`, nil, nil)
	require.Equal(t, "invalid login credentials", errMsg)

	errMsg = exec(t, svc, context.Background(), `
		mutation { loginUser(username: "nobody", password: "x") }
	`, nil, nil)
	require.Equal(t, "invalid login credentials", errMsg)
}

func TestCreateEventAndCreatorRoundTrip(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token := register(t, svc, "alice", "pw1")
	claims, err := svc.Tokens.Verify(token)
	require.NoError(t, err)
	ctx := WithToken(context.Background(), token)

	var data struct {
		CreateEvent struct {
			ID      string `json:"id"`
			Name    string `json:"name"`
			Creator struct {
				ID       string `json:"id"`
				Username string `json:"username"`
			} `json:"creator"`
		} `json:"createEvent"`
	}
	errMsg := exec(t, svc, ctx, `
		mutation {
			createEvent(name: "GopherCon", date: "2026-10-01", location: "Berlin") {
				id
				name
				creator { id username }
			}
		}
	`, nil, &data)
	require.Empty(t, errMsg)
	require.Equal(t, "GopherCon", data.CreateEvent.Name)
	require.Equal(t, claims.UserID, data.CreateEvent.Creator.ID)
	require.Equal(t, "alice", data.CreateEvent.Creator.Username)

	var q struct {
		Events []struct {
			ID string `json:"id"`
		} `json:"events"`
	}
	errMsg = exec(t, svc, ctx, `query { events { id } }`, nil, &q)
	require.Empty(t, errMsg)
	require.Len(t, q.Events, 1)
	require.Equal(t, data.CreateEvent.ID, q.Events[0].ID)
}

func TestUserQueryWithRelationships(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token := register(t, svc, "alice", "pw1")
	ctx := WithToken(context.Background(), token)

	errMsg := exec(t, svc, ctx, `
		mutation { createEvent(name: "E", date: "2026-01-01", location: "L") { id } }
	`, nil, nil)
	require.Empty(t, errMsg)

	var data struct {
		User struct {
			Username       string `json:"username"`
			CreatedEvents  []struct{ Name string }
			AttendedEvents []struct{ Name string }
		} `json:"user"`
	}
	errMsg = exec(t, svc, ctx, `
		query {
			user {
				username
				createdEvents { name }
				attendedEvents { name }
			}
		}
	`, nil, &data)
	require.Empty(t, errMsg)
	require.Equal(t, "alice", data.User.Username)
	require.Len(t, data.User.CreatedEvents, 1)
	require.Empty(t, data.User.AttendedEvents)
}

func TestAttendanceFlow(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token := register(t, svc, "alice", "pw1")
	ctx := WithToken(context.Background(), token)

	var created struct {
		CreateEvent struct {
			ID string `json:"id"`
		} `json:"createEvent"`
	}
	errMsg := exec(t, svc, ctx, `
		mutation { createEvent(name: "E", date: "2026-01-01", location: "L") { id } }
	`, nil, &created)
	require.Empty(t, errMsg)
	eventID := created.CreateEvent.ID

	errMsg = exec(t, svc, ctx, `
		mutation($id: ID!) { updateEventAttendance(eventId: $id, status: "ATTEND") { id } }
	`, map[string]any{"id": eventID}, nil)
	require.Empty(t, errMsg)

	var withAttendees struct {
		Event struct {
			Attendees []struct {
				Username string `json:"username"`
			} `json:"attendees"`
		} `json:"event"`
	}
	errMsg = exec(t, svc, ctx, `
		query($id: ID!) { event(id: $id) { attendees { username } } }
	`, map[string]any{"id": eventID}, &withAttendees)
	require.Empty(t, errMsg)
	require.Len(t, withAttendees.Event.Attendees, 1)
	require.Equal(t, "alice", withAttendees.Event.Attendees[0].Username)

	errMsg = exec(t, svc, ctx, `
		mutation($id: ID!) { updateEventAttendance(eventId: $id, status: "UNATTEND") { id } }
	`, map[string]any{"id": eventID}, nil)
	require.Empty(t, errMsg)

	errMsg = exec(t, svc, ctx, `
		query($id: ID!) { event(id: $id) { attendees { username } } }
	`, map[string]any{"id": eventID}, &withAttendees)
	require.Empty(t, errMsg)
	require.Empty(t, withAttendees.Event.Attendees)
}

func TestEventQuery_UnknownIDIsNull(t *testing.T) {
	t.Parallel()
	svc := newTestService()

	token := register(t, svc, "alice", "pw1")
	ctx := WithToken(context.Background(), token)

	var data struct {
		Event *struct {
			ID string `json:"id"`
		} `json:"event"`
	}
	errMsg := exec(t, svc, ctx, `query { event(id: "missing") { id } }`, nil, &data)
	require.Empty(t, errMsg)
	require.Nil(t, data.Event)
}

func TestMutationsWithoutTokenFail(t *testing.T) {
	t.Parallel()
	svc := newTestService()
	ctx := context.Background() // no token in context

	cases := []struct {
		name  string
		query string
	}{
		{"createEvent", `mutation { createEvent(name: "E", date: "d", location: "l") { id } }`},
		{"updateEvent", `mutation { updateEvent(id: "x", name: "E", date: "d", location: "l") { id } }`},
		{"deleteEvent", `mutation { deleteEvent(id: "x") { id } }`},
		{"updateEventAttendance", `mutation { updateEventAttendance(eventId: "x", status: "ATTEND") { id } }`},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			errMsg := exec(t, svc, ctx, tc.query, nil, nil)
			require.Equal(t, "no token", errMsg)
		})
	}

	// queries are gated too
	errMsg := exec(t, svc, ctx, `query { events { id } }`, nil, nil)
	require.Equal(t, "no token", errMsg)
}
