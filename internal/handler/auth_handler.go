package handler

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"

	"kanban/internal/auth"
	apperrors "kanban/internal/errors"
	"kanban/internal/logger"
	"kanban/internal/middleware"
	"kanban/internal/response"
	"kanban/internal/service"
)

// AuthHandler handles authentication endpoints.
type AuthHandler struct {
	authService service.AuthService
	provider    auth.OAuthProvider // nil when Google sign-in is not configured
	states      auth.StateStore
	frontendURL string
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, provider auth.OAuthProvider, states auth.StateStore, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		provider:    provider,
		states:      states,
		frontendURL: strings.TrimRight(frontendURL, "/"),
	}
}

// SignupRequest represents a user registration request.
type SignupRequest struct {
	Username        string `json:"username" validate:"required,min=3,max=255"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=6,max=255"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,min=6,max=255"`
}

// LoginRequest represents a user login request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=255"`
}

// RefreshRequest represents a token refresh request.
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Signup godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Registration data"
// @Success 200 {object} response.Envelope{data=service.AuthResult}
// @Failure 400 {object} response.Envelope
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Register(c.Request().Context(), service.RegisterInput{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	})
	if err != nil {
		return err
	}
	return response.OK(c, result)
}

// Login godoc
// @Summary Login user
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} response.Envelope{data=service.AuthResult}
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return response.OK(c, result)
}

// RefreshToken godoc
// @Summary Exchange a refresh token for a new token pair
// @Tags auth
// @Accept json
// @Produce json
// @Param request body RefreshRequest true "Refresh token"
// @Success 200 {object} response.Envelope{data=service.AuthResult}
// @Failure 401 {object} response.Envelope
// @Failure 498 {object} response.Envelope
// @Router /auth/refresh-token [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req RefreshRequest
	if err := c.Bind(&req); err != nil {
		return err
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	result, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}
	return response.OK(c, result)
}

// Logout godoc
// @Summary Invalidate every token of the current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=string}
// @Failure 401 {object} response.Envelope
// @Failure 498 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authService.Logout(c.Request().Context(), middleware.UserID(c)); err != nil {
		return err
	}
	return response.OK(c, "Logged out successfully")
}

// GoogleLogin godoc
// @Summary Start Google sign-in
// @Tags auth
// @Success 307
// @Failure 404 {object} response.Envelope
// @Router /auth/login/google [get]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	if h.provider == nil {
		return apperrors.NotFound("Google sign-in is not configured")
	}
	state, err := h.states.Issue(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusTemporaryRedirect, h.provider.AuthCodeURL(state))
}

// GoogleRedirect godoc
// @Summary Google OAuth callback
// @Description Redirects to the frontend with the token pair in the URL fragment, or to its login page on failure.
// @Tags auth
// @Param state query string true "OAuth state"
// @Param code query string true "Authorization code"
// @Success 307
// @Router /auth/googleRedirect [get]
func (h *AuthHandler) GoogleRedirect(c echo.Context) error {
	failed := h.frontendURL + "/login"
	if h.provider == nil {
		return c.Redirect(http.StatusTemporaryRedirect, failed)
	}
	ctx := c.Request().Context()

	ok, err := h.states.Consume(ctx, c.QueryParam("state"))
	if err != nil {
		logger.Error().Err(err).Msg("oauth state store unavailable")
		return c.Redirect(http.StatusTemporaryRedirect, failed)
	}
	if !ok {
		logger.Warn().Msg("google callback with unknown state")
		return c.Redirect(http.StatusTemporaryRedirect, failed)
	}

	profile, err := h.provider.Exchange(ctx, c.QueryParam("code"))
	if err != nil {
		logger.Warn().Err(err).Msg("google code exchange failed")
		return c.Redirect(http.StatusTemporaryRedirect, failed)
	}

	result, err := h.authService.OAuthLogin(ctx, profile.Email, profile.Name, profile.Picture)
	if err != nil {
		logger.Error().Err(err).Str("email", profile.Email).Msg("google login failed")
		return c.Redirect(http.StatusTemporaryRedirect, failed)
	}

	fragment := url.Values{}
	fragment.Set("accessToken", result.AccessToken)
	fragment.Set("refreshToken", result.RefreshToken)
	return c.Redirect(http.StatusTemporaryRedirect, h.frontendURL+"/auth/google-redirect#"+fragment.Encode())
}
