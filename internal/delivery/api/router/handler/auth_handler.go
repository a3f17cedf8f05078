// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"
	"time"

	"authgate/internal/delivery/api/middleware"
	"authgate/internal/delivery/api/response"
	domainerrors "authgate/internal/domain/errors"
	"authgate/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	Validator usecase.InputValidator
}

// AuthHandler serves signup, login and the authenticated status endpoints.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	validator usecase.InputValidator
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		validator: params.Validator,
	}
}

// SignupResponse is the body of a successful signup.
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"userId"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token     string    `json:"token"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// StatusResponse is the body of a status read.
type StatusResponse struct {
	Message string `json:"message"`
	Status  string `json:"status"`
}

// MessageResponse carries a confirmation message only.
type MessageResponse struct {
	Message string `json:"message"`
}

// Signup handles PUT /auth/signup.
func (h *AuthHandler) Signup(c echo.Context) error {
	var input usecase.SignupInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid signup input")
	}

	ctx := c.Request().Context()
	validated, err := h.validator.ValidateSignup(ctx, input)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.authUC.Signup(ctx, validated)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, SignupResponse{
		Message: "User created",
		UserID:  output.UserID.String(),
	})
}

// Login handles POST /auth/login.
func (h *AuthHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}

	output, err := h.authUC.Login(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, LoginResponse{
		Token:     output.Token,
		UserID:    output.UserID.String(),
		ExpiresAt: output.ExpiresAt,
	})
}

// GetStatus handles GET /auth/user/status.
func (h *AuthHandler) GetStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	status, err := h.authUC.GetStatus(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, StatusResponse{
		Message: "Success!",
		Status:  status,
	})
}

// UpdateStatus handles PUT /auth/user/status.
func (h *AuthHandler) UpdateStatus(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthorized)
	}

	var input usecase.StatusInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	ctx := c.Request().Context()
	if err := h.authUC.UpdateStatus(ctx, userID, h.validator.ValidateStatus(ctx, input)); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, MessageResponse{
		Message: "Successfully updated user status.",
	})
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
