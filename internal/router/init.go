package router

import (
	"github.com/roni9843/sonakanda-backend/internal/application"
	"github.com/roni9843/sonakanda-backend/internal/container"
	pginfra "github.com/roni9843/sonakanda-backend/internal/infrastructure/postgres"
	handlers "github.com/roni9843/sonakanda-backend/internal/interface/http"
	"github.com/roni9843/sonakanda-backend/internal/router/modules"
)

func buildAuthModule() *modules.AuthModule {
	repo := pginfra.NewUserRepository(container.GetPGPool())
	svc := application.NewService(
		repo,
		container.GetJWT(),
		container.GetLogger(),
		container.GetConfig().BcryptCost,
	)
	handler := handlers.NewAuthHandler(svc, container.GetLogger())
	return modules.NewAuthModule(handler, container.GetJWT())
}

// InitModules initializes all application modules and registers them with the
// router registry. Called once during startup after the container is filled.
func InitModules(r *Registry) {
	r.Add(modules.NewHealthModule(handlers.NewHealthHandler()))
	r.Add(buildAuthModule())
}
