package jwt

import (
	"clockwise/config"
	"clockwise/shared/timezone"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token has expired")
	ErrInvalidClaim = errors.New("invalid token claim")
)

// Claims carries the browser session identity. Subject holds the session id.
type Claims struct {
	SessionID string `json:"sid"`
	jwt.RegisteredClaims
}

// JWT signs and verifies session cookies.
type JWT interface {
	GenerateSessionToken(sessionID string) (string, error)
	ValidateSessionToken(tokenString string) (*Claims, error)
	ShouldRenew(claims *Claims) bool
}

// Service handles JWT operations
type Service struct {
	config *config.Config
	secret []byte
	now    func() time.Time
}

// New creates a new JWT service. Without a configured secret a random one is generated,
// so tokens do not survive a restart.
func New(cfg *config.Config) JWT {
	secret := cfg.Session.Secret
	if secret == "" {
		log.Warn().Msg("SESSION_SECRET is not set, generating an ephemeral signing secret")

		secret = uuid.NewString() + uuid.NewString()
	}

	return &Service{
		config: cfg,
		secret: []byte(secret),
		now:    timezone.Now,
	}
}

// GenerateSessionToken issues a signed token for sessionID.
func (s *Service) GenerateSessionToken(sessionID string) (string, error) {
	if sessionID == "" {
		return "", ErrInvalidClaim
	}

	issuedAt := s.now()

	claims := Claims{
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
			Issuer:    s.config.App.Name,
			Subject:   sessionID,
			ID:        uuid.New().String(),
		},
	}

	if ttl := s.config.SessionTTLSeconds(); ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(issuedAt.Add(time.Duration(ttl) * time.Second))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedToken, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signedToken, nil
}

// ValidateSessionToken validates and parses a session token
func (s *Service) ValidateSessionToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithIssuer(s.config.App.Name))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.SessionID == "" || claims.SessionID != claims.Subject {
		return nil, ErrInvalidClaim
	}

	if _, err := uuid.Parse(claims.SessionID); err != nil {
		return nil, ErrInvalidClaim
	}

	return claims, nil
}

// ShouldRenew reports whether claims have used up half of their lifetime. Renewing on
// activity keeps a cookie alive for as long as the browser keeps using it.
func (s *Service) ShouldRenew(claims *Claims) bool {
	if claims == nil || claims.ExpiresAt == nil || claims.IssuedAt == nil {
		return false
	}

	lifetime := claims.ExpiresAt.Sub(claims.IssuedAt.Time)

	return claims.ExpiresAt.Sub(s.now()) < lifetime/2
}
