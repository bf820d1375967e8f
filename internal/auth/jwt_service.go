package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	apperrors "kanban/internal/errors"
)

const (
	// AccessTokenExpiry is the default lifetime of access tokens.
	AccessTokenExpiry = 24 * time.Hour
	// RefreshTokenExpiry is the default lifetime of refresh tokens.
	RefreshTokenExpiry = 30 * 24 * time.Hour
)

// TokenType distinguishes access tokens from refresh tokens.
type TokenType string

const (
	TypeAccess  TokenType = "access"
	TypeRefresh TokenType = "refresh"
)

// Claims represents JWT claims. SessionID must equal the owner's current
// session id for the token to be accepted.
type Claims struct {
	Email     string    `json:"email"`
	SessionID string    `json:"sid"`
	Type      TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// TokenPair is what every successful login returns.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// JWTService handles JWT token generation and validation.
type JWTService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService creates a new JWT service. Zero TTLs fall back to the defaults.
func NewJWTService(secret string, accessTTL, refreshTTL time.Duration) *JWTService {
	if accessTTL == 0 {
		accessTTL = AccessTokenExpiry
	}
	if refreshTTL == 0 {
		refreshTTL = RefreshTokenExpiry
	}
	return &JWTService{
		secret:     []byte(secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}
}

// NewSessionID returns a fresh opaque session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// IssuePair signs an access and a refresh token bound to sessionID.
func (s *JWTService) IssuePair(email, sessionID string) (TokenPair, error) {
	access, err := s.generate(email, sessionID, TypeAccess, s.accessTTL)
	if err != nil {
		return TokenPair{}, err
	}
	refresh, err := s.generate(email, sessionID, TypeRefresh, s.refreshTTL)
	if err != nil {
		return TokenPair{}, err
	}
	return TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *JWTService) generate(email, sessionID string, typ TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Email:     email,
		SessionID: sessionID,
		Type:      typ,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Parse verifies signature, expiry and token type. It does not check the
// session pointer; that needs the user record.
func (s *JWTService) Parse(tokenString string, typ TokenType) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.Unauthenticated("Token expired. Refresh token using /auth/refresh-token")
		}
		return nil, apperrors.Unauthenticated("Unauthorized: Invalid token")
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.Email == "" || claims.SessionID == "" {
		return nil, apperrors.Unauthenticated("Unauthorized: Invalid token")
	}
	if claims.Type != typ {
		return nil, apperrors.Unauthenticated("Unauthorized: Invalid token type")
	}
	return claims, nil
}
