package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/graph"
	"github.com/gatherly/gatherly/internal/infrastructure/memory"
	"github.com/gatherly/gatherly/internal/interface/middleware"
	"github.com/gatherly/gatherly/pkg/helpers"
)

func newTestRouter() (*gin.Engine, *application.Service) {
	gin.SetMode(gin.TestMode)
	svc := application.NewService(memory.NewStore(), helpers.NewTokenManager("test-secret"), nil)
	h := NewGraphQLHandler(graph.NewSchema(svc), nil)

	r := gin.New()
	r.POST("/graphql", middleware.BearerToken(), h.Serve)
	return r, svc
}

func post(t *testing.T, r *gin.Engine, token, query string) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(map[string]any{"query": query})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader(string(body)))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestServe_RegisterThenAuthorizedQuery(t *testing.T) {
	r, svc := newTestRouter()

	w := post(t, r, "", `mutation { registerUser(username: "alice", password: "pw1") }`)
	require.Equal(t, http.StatusOK, w.Code)

	var reg struct {
		Data struct {
			RegisterUser string `json:"registerUser"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &reg))
	require.Empty(t, reg.Errors)
	token := reg.Data.RegisterUser
	_, err := svc.Tokens.Verify(token)
	require.NoError(t, err)

	// the Authorization header is forwarded verbatim as the token
	w = post(t, r, token, `query { events { id } }`)
	require.Equal(t, http.StatusOK, w.Code)

	var q struct {
		Data struct {
			Events []any `json:"events"`
		} `json:"data"`
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &q))
	require.Empty(t, q.Errors)
	require.Empty(t, q.Data.Events)
}

func TestServe_MissingHeaderFailsGate(t *testing.T) {
	r, _ := newTestRouter()

	w := post(t, r, "", `query { events { id } }`)
	require.Equal(t, http.StatusOK, w.Code)

	var res struct {
		Errors []struct {
			Message string `json:"message"`
		} `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Errors)
	require.Equal(t, "no token", res.Errors[0].Message)
}

func TestServe_MalformedEnvelope(t *testing.T) {
	r, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/graphql", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
