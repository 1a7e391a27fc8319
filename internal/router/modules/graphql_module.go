package modules

import (
	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/gatherly/gatherly/internal/container"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/interface/middleware"
)

// GraphQLModule mounts the single GraphQL endpoint. Every query and mutation
// goes through POST /graphql; per-operation authorization happens inside the
// resolvers, not here.
type GraphQLModule struct {
	Handler *handlers.GraphQLHandler
}

func NewGraphQLModule(h *handlers.GraphQLHandler) *GraphQLModule {
	return &GraphQLModule{Handler: h}
}

func (m *GraphQLModule) Register(rg *gin.RouterGroup) {
	cfg := container.GetConfig()
	rl := middleware.RateLimit(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst, middleware.KeyByIP())
	rg.POST("/graphql", rl, middleware.BearerToken(), m.Handler.Serve)
}
