package router

import (
	"github.com/warungkode/accounts-backend/internal/application"
	"github.com/warungkode/accounts-backend/internal/container"
	handlers "github.com/warungkode/accounts-backend/internal/interface/http"
	"github.com/warungkode/accounts-backend/internal/router/modules"
)

// InitModules builds the handlers from the container's dependencies
// and registers every feature module with the registry. Called once
// during startup.
func InitModules(r *Registry, c *container.Container) {
	svc := application.NewService(c.Users, c.Logger)

	r.Add(modules.NewAccountModule(handlers.NewAuthHandler(svc, c.Logger)))

	var pub handlers.Publisher
	if c.Pub != nil {
		pub = c.Pub
	}
	r.Add(modules.NewContactModule(handlers.NewContactHandler(pub, c.Logger, c.Cfg)))

	r.Add(modules.NewOpsModule(handlers.NewOpsHandler(c.Pool, c.Logger), c.Cfg.DebugMetricsEnabled))
}
