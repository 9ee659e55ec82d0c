package web

import (
	"html/template"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Handler serves the embedded browser client: form-bound pages that call the
// JSON API with credentials included. Navigation is gated client-side on
// cookie presence only; the server-side verifier stays the authority.
type Handler struct{}

// NewHandler parses the embedded templates into the engine's HTML renderer.
func NewHandler(engine *gin.Engine) *Handler {
	tmpl := template.Must(template.ParseFS(content, "templates/*.html"))
	engine.SetHTMLTemplate(tmpl)
	return &Handler{}
}

// StaticFS exposes the embedded static assets rooted at static/.
func (h *Handler) StaticFS() http.FileSystem {
	sub, err := fs.Sub(content, "static")
	if err != nil {
		panic(err)
	}
	return http.FS(sub)
}

func (h *Handler) Tasks(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{"Active": "tasks"})
}

func (h *Handler) AddTask(c *gin.Context) {
	c.HTML(http.StatusOK, "add_task.html", gin.H{"Active": "add"})
}

func (h *Handler) UpdateTask(c *gin.Context) {
	c.HTML(http.StatusOK, "update_task.html", gin.H{"Active": "tasks", "TaskID": c.Param("id")})
}

func (h *Handler) SignUp(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{"Active": "signup"})
}

func (h *Handler) LogIn(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{"Active": "login"})
}
