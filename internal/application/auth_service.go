package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/adityarmn/go-todo-app/internal/domain/entity"
	repo "github.com/adityarmn/go-todo-app/internal/domain/repository"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type AuthService struct {
	Users      repo.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

type SignUpInput struct {
	Name     string
	Email    string
	Address  string
	PhoneNo  string
	Password string
}

// PublicUser is the client-visible projection of a user; no password hash.
type PublicUser struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	PhoneNo string `json:"phoneNo,omitempty"`
	Address string `json:"address,omitempty"`
}

// SessionToken is a freshly signed token with its expiry, ready to be set as
// a cookie by the handler.
type SessionToken struct {
	Token  string
	Expiry time.Time
}

// SignUp hashes the password, persists the user, and issues a session token.
// Returns ErrEmailTaken when the email is already registered.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (*PublicUser, SessionToken, error) {
	existing, err := s.Users.FindByEmail(ctx, in.Email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, SessionToken{}, err
	}
	if existing != nil {
		return nil, SessionToken{}, ErrEmailTaken
	}

	hash, err := helpers.HashPassword(in.Password, s.BcryptCost)
	if err != nil {
		return nil, SessionToken{}, err
	}
	u := &entity.User{
		Name:     in.Name,
		Email:    in.Email,
		Address:  in.Address,
		PhoneNo:  in.PhoneNo,
		Password: hash,
	}
	if err := s.Users.Insert(ctx, u); err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("email", in.Email).Error("insert user failed")
		}
		return nil, SessionToken{}, err
	}

	tok, exp, err := s.JWT.GenerateToken(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, SessionToken{}, err
	}
	pub := &PublicUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email, PhoneNo: u.PhoneNo, Address: u.Address}
	return pub, SessionToken{Token: tok, Expiry: exp}, nil
}

// LogIn verifies credentials and issues a session token. Unknown email and
// wrong password both map to ErrInvalidCredentials so the responses are
// indistinguishable.
func (s *AuthService) LogIn(ctx context.Context, email, password string) (*PublicUser, SessionToken, error) {
	u, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, SessionToken{}, ErrInvalidCredentials
		}
		return nil, SessionToken{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, SessionToken{}, ErrInvalidCredentials
	}

	tok, exp, err := s.JWT.GenerateToken(u.ID.Hex(), u.Email)
	if err != nil {
		return nil, SessionToken{}, err
	}
	pub := &PublicUser{ID: u.ID.Hex(), Name: u.Name, Email: u.Email}
	return pub, SessionToken{Token: tok, Expiry: exp}, nil
}
