package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
	repo "github.com/adityarmn/go-todo-app/internal/domain/repository"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
)

type fakeUserRepo struct {
	byEmail map[string]*entity.User
	failing error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: make(map[string]*entity.User)}
}

func (f *fakeUserRepo) Insert(_ context.Context, u *entity.User) error {
	if f.failing != nil {
		return f.failing
	}
	u.ID = primitive.NewObjectID()
	u.CreatedAt = time.Now().UTC()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	if f.failing != nil {
		return nil, f.failing
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, repo.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func newAuthService(users repo.UserRepository) *AuthService {
	jwt := helpers.NewJWTManager("testsecret", 24*time.Hour)
	return NewAuthService(users, jwt, nil, 4)
}

func validSignUp() SignUpInput {
	return SignUpInput{Name: "Al", Email: "a@x.com", Address: "1 Rd", PhoneNo: "555", Password: "pw"}
}

func TestSignUp_CreatesUserAndToken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	pub, tok, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)
	require.NotNil(t, pub)
	assert.NotEmpty(t, pub.ID)
	assert.Equal(t, "a@x.com", pub.Email)
	assert.NotEmpty(t, tok.Token)
	assert.True(t, tok.Expiry.After(time.Now()))

	claims, err := svc.JWT.ParseToken(tok.Token)
	require.NoError(t, err)
	assert.Equal(t, pub.ID, claims.UserID)
	assert.Equal(t, "a@x.com", claims.Email)

	// Password stored hashed, never plain.
	stored := users.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "pw", stored.Password)
	assert.True(t, helpers.CompareHashAndPassword(stored.Password, "pw"))
}

func TestSignUp_DuplicateEmail(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, _, err = svc.SignUp(context.Background(), validSignUp())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogIn_Success(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	pub, tok, err := svc.LogIn(context.Background(), "a@x.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", pub.Email)
	assert.NotEmpty(t, tok.Token)
}

func TestLogIn_UnknownEmailAndWrongPasswordIndistinguishable(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, _, err := svc.SignUp(context.Background(), validSignUp())
	require.NoError(t, err)

	_, _, errUnknown := svc.LogIn(context.Background(), "nobody@x.com", "pw")
	_, _, errWrongPw := svc.LogIn(context.Background(), "a@x.com", "nope")

	assert.ErrorIs(t, errUnknown, ErrInvalidCredentials)
	assert.ErrorIs(t, errWrongPw, ErrInvalidCredentials)
	assert.Equal(t, errUnknown, errWrongPw)
}

func TestLogIn_StoreErrorPropagates(t *testing.T) {
	boom := errors.New("connection reset")
	users := newFakeUserRepo()
	users.failing = boom
	svc := newAuthService(users)

	_, _, err := svc.LogIn(context.Background(), "a@x.com", "pw")
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
