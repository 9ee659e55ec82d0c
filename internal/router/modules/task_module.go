package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adityarmn/go-todo-app/internal/interface/http"
	"github.com/adityarmn/go-todo-app/internal/interface/middleware"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
)

// TaskModule wires the task CRUD routes behind the session verifier.
// Protected: GET /, POST /add-task, GET|PUT /update-task/:id, DELETE /delete-task/:id

type TaskModule struct {
	Handler *handlers.TaskHandler
	JWT     *helpers.JWTManager
}

func NewTaskModule(h *handlers.TaskHandler, jwt *helpers.JWTManager) *TaskModule {
	return &TaskModule{Handler: h, JWT: jwt}
}

func (m *TaskModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/", m.Handler.List)
		auth.POST("/add-task", m.Handler.Create)
		auth.GET("/update-task/:id", m.Handler.GetByID)
		auth.PUT("/update-task/:id", m.Handler.Update)
		auth.DELETE("/delete-task/:id", m.Handler.Delete)
	}
}
