package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/adityarmn/go-todo-app/internal/interface/http"
)

// AuthModule wires the public session routes.
// Public: POST /sign-up, POST /log-in, POST /log-out

type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/sign-up", m.Handler.SignUp)
	rg.POST("/log-in", m.Handler.LogIn)
	rg.POST("/log-out", m.Handler.LogOut)
}
