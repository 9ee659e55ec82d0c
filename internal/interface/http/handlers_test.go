package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adityarmn/go-todo-app/internal/application"
	"github.com/adityarmn/go-todo-app/internal/domain/entity"
	repo "github.com/adityarmn/go-todo-app/internal/domain/repository"
	"github.com/adityarmn/go-todo-app/internal/interface/middleware"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
	"github.com/adityarmn/go-todo-app/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
	validation.Init()
}

// In-memory repositories mirroring the Mongo impls: hex id validation,
// owner-scoped filters, insertion-ordered listing.

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *memUserRepo) Insert(_ context.Context, u *entity.User) error {
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

type memTaskRepo struct {
	tasks []entity.Task
}

func (f *memTaskRepo) Insert(_ context.Context, t *entity.Task) error {
	t.ID = primitive.NewObjectID()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = time.Now().UTC()
	}
	f.tasks = append(f.tasks, *t)
	return nil
}

func (f *memTaskRepo) ListByOwner(_ context.Context, ownerID string) ([]entity.Task, error) {
	out := make([]entity.Task, 0)
	for _, t := range f.tasks {
		if t.UserID == ownerID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *memTaskRepo) FindByIDAndOwner(_ context.Context, id, ownerID string) (*entity.Task, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	for _, t := range f.tasks {
		if t.ID == oid && t.UserID == ownerID {
			cp := t
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (f *memTaskRepo) UpdateFields(_ context.Context, id, ownerID, title, description string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == oid && f.tasks[i].UserID == ownerID {
			f.tasks[i].Title = title
			f.tasks[i].Description = description
		}
	}
	return nil
}

func (f *memTaskRepo) DeleteByIDAndOwner(_ context.Context, id, ownerID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, err
	}
	for i := range f.tasks {
		if f.tasks[i].ID == oid && f.tasks[i].UserID == ownerID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

var (
	_ repo.UserRepository = (*memUserRepo)(nil)
	_ repo.TaskRepository = (*memTaskRepo)(nil)
)

type testEnv struct {
	router *gin.Engine
	jwt    *helpers.JWTManager
	users  *memUserRepo
	tasks  *memTaskRepo
}

// newTestEnv wires handlers and routes exactly like the router modules do.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	jwt := helpers.NewJWTManager("testsecret", 24*time.Hour)
	users := newMemUserRepo()
	tasks := &memTaskRepo{}

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	authSvc := application.NewAuthService(users, jwt, logger, 4)
	authH := NewAuthHandler(authSvc, logger, "", true)
	taskSvc := application.NewTaskService(tasks, logger)
	taskH := NewTaskHandler(taskSvc, logger)

	r := gin.New()
	r.POST("/sign-up", authH.SignUp)
	r.POST("/log-in", authH.LogIn)
	r.POST("/log-out", authH.LogOut)

	auth := r.Group("")
	auth.Use(middleware.Auth(jwt))
	auth.GET("/", taskH.List)
	auth.POST("/add-task", taskH.Create)
	auth.GET("/update-task/:id", taskH.GetByID)
	auth.PUT("/update-task/:id", taskH.Update)
	auth.DELETE("/delete-task/:id", taskH.Delete)

	return &testEnv{router: r, jwt: jwt, users: users, tasks: tasks}
}

func (e *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.AddCookie(&http.Cookie{Name: helpers.TokenCookieName, Value: token})
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

// signUpUser registers a user and returns its id and a session token.
func (e *testEnv) signUpUser(t *testing.T, email string) (string, string) {
	t.Helper()

	w := e.do(t, http.MethodPost, "/sign-up", "", map[string]string{
		"name": "Al", "email": email, "address": "1 Rd", "phoneNo": "555", "password": "pw",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("signup failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		User struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode signup response: %v", err)
	}
	tok, _, err := e.jwt.GenerateToken(resp.User.ID, email)
	if err != nil {
		t.Fatalf("generate token: %v", err)
	}
	return resp.User.ID, tok
}
