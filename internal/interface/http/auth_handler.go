package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adityarmn/go-todo-app/internal/application"
	"github.com/adityarmn/go-todo-app/pkg/helpers"
	"github.com/adityarmn/go-todo-app/pkg/response"
	"github.com/adityarmn/go-todo-app/pkg/validation"
)

type AuthHandler struct {
	Svc     *application.AuthService
	Logger  *logrus.Logger
	Cookies *helpers.CookieManager
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger, cookieDomain string, cookieSecure bool) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger, Cookies: helpers.NewCookie(cookieDomain, cookieSecure)}
}

type signUpRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Address  string `json:"address" binding:"required"`
	PhoneNo  string `json:"phoneNo" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// logInRequest deliberately has no binding rules: a missing email or
// password falls through to credential matching and comes back as the
// same generic 401 as a wrong password.
type logInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignUp POST /sign-up
func (h *AuthHandler) SignUp(c *gin.Context) {
	var req signUpRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "All fields are required", validation.ToDetails(err))
		return
	}

	user, tok, err := h.Svc.SignUp(c.Request.Context(), application.SignUpInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		PhoneNo:  req.PhoneNo,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusConflict, "Email already registered! Kindly Login.", nil)
			return
		}
		helpers.LogError(h.Logger, "signup failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	h.Cookies.SetToken(c, tok.Token, tok.Expiry)
	response.Success(c, http.StatusOK, "User registered successfully!", gin.H{"user": user})
}

// LogIn POST /log-in
func (h *AuthHandler) LogIn(c *gin.Context) {
	var req logInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	user, tok, err := h.Svc.LogIn(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "Invalid credentials!", nil)
			return
		}
		helpers.LogError(h.Logger, "login failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Fail(c, http.StatusInternalServerError, "Server error", nil)
		return
	}

	h.Cookies.SetToken(c, tok.Token, tok.Expiry)
	response.Success(c, http.StatusOK, "Login successful!", gin.H{"user": user})
}

// LogOut POST /log-out
// Expires the session cookie; there is no server-side state to revoke.
func (h *AuthHandler) LogOut(c *gin.Context) {
	h.Cookies.Clear(c)
	response.Success(c, http.StatusOK, "Logged out!", nil)
}
