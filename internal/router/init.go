package router

import (
	userapp "github.com/minimarket/user-service/internal/application"
	"github.com/minimarket/user-service/internal/container"
	"github.com/minimarket/user-service/internal/infrastructure/mongodb"
	handlers "github.com/minimarket/user-service/internal/interface/http"
	"github.com/minimarket/user-service/internal/router/modules"
)

// InitModules wires the application modules from the container singletons
// and registers them with the router registry. Called once at startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()

	repo := mongodb.NewUserRepository(container.GetMongoDB(), cfg.MongoCollection, container.GetLogger())
	service := userapp.NewService(
		repo,
		container.GetLogger(),
		container.GetRabbitPub(),
		container.GetES(),
		cfg.ESAuditIndex,
		cfg.PBKDF2Iterations,
	)

	r.Add(modules.NewUserModule(handlers.NewUserHandler(service, container.GetLogger())))
	r.Add(modules.NewVersionModule(handlers.NewVersionHandler(cfg.AppName, cfg.Version)))
}
