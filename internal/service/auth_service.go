package service

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"kanban/internal/auth"
	apperrors "kanban/internal/errors"
	"kanban/internal/model"
	"kanban/internal/repository"
)

const (
	bcryptCost = 10
	// maxRotateAttempts bounds retries when concurrent logins race on the
	// session pointer of the same user.
	maxRotateAttempts = 3
)

const msgSessionExpired = "Session expired. Refresh token using /auth/refresh-token"

// AuthResult is returned by every successful sign-in.
type AuthResult struct {
	AccessToken  string           `json:"accessToken"`
	RefreshToken string           `json:"refreshToken"`
	User         model.PublicUser `json:"user"`
}

// RegisterInput carries the signup form.
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// AuthService handles credentials and the per-user session pointer.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	OAuthLogin(ctx context.Context, email, username, profileImg string) (*AuthResult, error)
	Refresh(ctx context.Context, refreshToken string) (*AuthResult, error)
	Logout(ctx context.Context, userID uint) error
	// Authenticate resolves an access token to its user.
	Authenticate(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	repos      *repository.Repositories
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(repos *repository.Repositories, jwtService *auth.JWTService) AuthService {
	return &authService{
		repos:      repos,
		jwtService: jwtService,
	}
}

// Register creates a user with a hashed password and a fresh session.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	existing, err := s.repos.Users.FindByEmail(ctx, in.Email)
	if err == nil && existing != nil {
		return nil, apperrors.Conflict("User already exists")
	}
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	if in.Password != in.ConfirmPassword {
		return nil, apperrors.Validation("Passwords do not match")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashedPassword),
		SessionID:    auth.NewSessionID(),
	}
	if err := s.repos.Users.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.Conflict("User already exists")
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	return s.issue(user)
}

// Login verifies credentials and starts a new session lineage.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.NotFound("User does not exist")
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthenticated("Invalid credentials")
	}

	if err := s.rotate(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// OAuthLogin upserts the user by email and always rotates the session.
func (s *authService) OAuthLogin(ctx context.Context, email, username, profileImg string) (*AuthResult, error) {
	if email == "" {
		return nil, apperrors.Validation("Google login failed")
	}

	user, err := s.repos.Users.FindByEmail(ctx, email)
	if err != nil && !isNotFound(err) {
		return nil, fmt.Errorf("find user: %w", err)
	}

	if user == nil {
		// placeholder secret nobody knows, so password login stays closed
		placeholder, err := bcrypt.GenerateFromPassword([]byte(auth.NewSessionID()), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("hash placeholder password: %w", err)
		}
		user = &model.User{
			Username:     username,
			Email:        email,
			PasswordHash: string(placeholder),
			ProfileImg:   profileImg,
			SessionID:    auth.NewSessionID(),
		}
		err = s.repos.Users.Create(ctx, user)
		if err == nil {
			return s.issue(user)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, fmt.Errorf("create user: %w", err)
		}
		// lost a race with a parallel first login; fall through to rotation
		if user, err = s.repos.Users.FindByEmail(ctx, email); err != nil {
			return nil, fmt.Errorf("find user: %w", err)
		}
	}

	if err := s.rotate(ctx, user); err != nil {
		return nil, err
	}
	return s.issue(user)
}

// Refresh exchanges a valid refresh token for a new pair. The old lineage is
// closed, so each refresh token works once.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*AuthResult, error) {
	claims, err := s.jwtService.Parse(refreshToken, auth.TypeRefresh)
	if err != nil {
		return nil, err
	}

	user, err := s.currentUser(ctx, claims)
	if err != nil {
		return nil, err
	}

	next := auth.NewSessionID()
	swapped, err := s.repos.Users.SwapSession(ctx, user.ID, claims.SessionID, next)
	if err != nil {
		return nil, fmt.Errorf("rotate session: %w", err)
	}
	if !swapped {
		return nil, apperrors.SessionExpired(msgSessionExpired)
	}
	user.SessionID = next
	return s.issue(user)
}

// Logout invalidates every token issued to the user.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	user, err := s.repos.Users.FindByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return apperrors.SessionExpired(msgSessionExpired)
		}
		return fmt.Errorf("find user: %w", err)
	}
	return s.rotate(ctx, user)
}

func (s *authService) Authenticate(ctx context.Context, accessToken string) (*model.User, error) {
	if accessToken == "" {
		return nil, apperrors.Unauthenticated("Unauthorized: No token provided")
	}
	claims, err := s.jwtService.Parse(accessToken, auth.TypeAccess)
	if err != nil {
		return nil, err
	}
	return s.currentUser(ctx, claims)
}

// currentUser loads the token owner and checks the session pointer.
func (s *authService) currentUser(ctx context.Context, claims *auth.Claims) (*model.User, error) {
	user, err := s.repos.Users.FindByEmail(ctx, claims.Email)
	if err != nil {
		if isNotFound(err) {
			return nil, apperrors.SessionExpired(msgSessionExpired)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user.SessionID != claims.SessionID {
		return nil, apperrors.SessionExpired(msgSessionExpired)
	}
	return user, nil
}

// rotate moves user to a fresh session id with compare-and-swap, re-reading
// the pointer when a concurrent login wins.
func (s *authService) rotate(ctx context.Context, user *model.User) error {
	for attempt := 0; attempt < maxRotateAttempts; attempt++ {
		next := auth.NewSessionID()
		swapped, err := s.repos.Users.SwapSession(ctx, user.ID, user.SessionID, next)
		if err != nil {
			return fmt.Errorf("rotate session: %w", err)
		}
		if swapped {
			user.SessionID = next
			return nil
		}

		fresh, err := s.repos.Users.FindByID(ctx, user.ID)
		if err != nil {
			return fmt.Errorf("reload user: %w", err)
		}
		user.SessionID = fresh.SessionID
	}
	return apperrors.Conflict("Concurrent sign-in detected, please retry")
}

func (s *authService) issue(user *model.User) (*AuthResult, error) {
	pair, err := s.jwtService.IssuePair(user.Email, user.SessionID)
	if err != nil {
		return nil, fmt.Errorf("issue tokens: %w", err)
	}
	return &AuthResult{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		User:         user.Public(),
	}, nil
}
