package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/adityarmn/go-todo-app/web"
)

// WebModule serves the browser client under /app, away from the API paths.

type WebModule struct {
	Handler *web.Handler
}

func NewWebModule(h *web.Handler) *WebModule {
	return &WebModule{Handler: h}
}

func (m *WebModule) Register(rg *gin.RouterGroup) {
	rg.StaticFS("/static", m.Handler.StaticFS())

	app := rg.Group("/app")
	{
		app.GET("", m.Handler.Tasks)
		app.GET("/add-task", m.Handler.AddTask)
		app.GET("/update-task/:id", m.Handler.UpdateTask)
		app.GET("/sign-up", m.Handler.SignUp)
		app.GET("/log-in", m.Handler.LogIn)
	}
}
