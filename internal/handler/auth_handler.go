package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"complaintdesk/internal/auth"
	apperrors "complaintdesk/internal/errors"
	"complaintdesk/internal/model"
	"complaintdesk/internal/service"
)

// Context keys set by the authentication middleware chain.
const (
	ContextKeyClaims = "claims"
	ContextKeyUser   = "current_user"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	log         *zap.Logger
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, log *zap.Logger) *AuthHandler {
	return &AuthHandler{authService: authService, log: log}
}

// RegisterRequest represents a user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,max=72"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login. The user's password hash is
// never serialized.
type LoginResponse struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RegisterRequest true "Registration data"
// @Success 201 {object} MessageResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	_, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     model.Role(req.Role),
	})
	if err != nil {
		return respondError(c, h.log, "register", err)
	}

	return c.JSON(http.StatusCreated, MessageResponse{Message: "User created successfully"})
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} LoginResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return invalidBody()
	}
	if err := c.Validate(&req); err != nil {
		return validationFailed(err)
	}

	token, user, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return respondError(c, h.log, "login", err)
	}

	return c.JSON(http.StatusOK, LoginResponse{Token: token, User: user})
}

// Authenticate loads the user named by the verified token claims. It must
// run after the JWT middleware.
func (h *AuthHandler) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(ContextKeyClaims).(*auth.Claims)
		if !ok {
			return respondError(c, h.log, "authenticate", apperrors.ErrInvalidToken)
		}

		user, err := h.authService.ResolveUser(c.Request().Context(), claims.Subject)
		if err != nil {
			return respondError(c, h.log, "authenticate", err)
		}

		c.Set(ContextKeyUser, user)
		return next(c)
	}
}

// currentUser returns the user stored by Authenticate.
func currentUser(c echo.Context) (*model.User, error) {
	user, ok := c.Get(ContextKeyUser).(*model.User)
	if !ok || user == nil {
		return nil, apperrors.ErrInvalidToken
	}
	return user, nil
}
