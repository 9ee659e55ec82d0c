package router

import (
	"github.com/adityarmn/go-todo-app/internal/application"
	"github.com/adityarmn/go-todo-app/internal/container"
	"github.com/adityarmn/go-todo-app/internal/infrastructure/mongodb"
	handlers "github.com/adityarmn/go-todo-app/internal/interface/http"
	"github.com/adityarmn/go-todo-app/internal/router/modules"
	"github.com/adityarmn/go-todo-app/web"
)

func buildAuthHandler() *handlers.AuthHandler {
	cfg := container.GetConfig()
	users := mongodb.NewUserRepository(container.GetMongoDB(), cfg.UsersColl)
	svc := application.NewAuthService(users, container.GetJWT(), container.GetLogger(), cfg.BcryptCost)
	return handlers.NewAuthHandler(svc, container.GetLogger(), cfg.CookieDomain, cfg.CookieSecure)
}

func buildTaskHandler() *handlers.TaskHandler {
	cfg := container.GetConfig()
	tasks := mongodb.NewTaskRepository(container.GetMongoDB(), cfg.TasksColl)
	svc := application.NewTaskService(tasks, container.GetLogger())
	return handlers.NewTaskHandler(svc, container.GetLogger())
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	r.Add(modules.NewAuthModule(buildAuthHandler()))
	r.Add(modules.NewTaskModule(buildTaskHandler(), container.GetJWT()))
	r.Add(modules.NewWebModule(web.NewHandler(r.Engine)))
}
