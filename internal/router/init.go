package router

import (
	"github.com/gatherly/gatherly/internal/application"
	"github.com/gatherly/gatherly/internal/container"
	"github.com/gatherly/gatherly/internal/graph"
	pginfra "github.com/gatherly/gatherly/internal/infrastructure/postgres"
	handlers "github.com/gatherly/gatherly/internal/interface/http"
	"github.com/gatherly/gatherly/internal/router/modules"
)

// InitModules wires the application modules from container singletons and
// registers them with the router registry. Called once during startup.
func InitModules(r *Registry) {
	store := pginfra.NewStore(container.GetPGPool())
	svc := application.NewService(store, container.GetTokens(), container.GetLogger())
	schema := graph.NewSchema(svc)
	handler := handlers.NewGraphQLHandler(schema, container.GetLogger())

	r.Add(modules.NewGraphQLModule(handler))
	if container.GetConfig().DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
}
