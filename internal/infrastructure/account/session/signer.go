package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

type Kind = usecase.TokenKind

const (
	KindAccess  = usecase.TokenAccess
	KindRefresh = usecase.TokenRefresh
)

const minSecretLength = 16

type claims struct {
	TeamID   string    `json:"teamId"`
	TeamName string    `json:"teamName"`
	Role     user.Role `json:"role"`
	Kind     Kind      `json:"kind"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 session tokens carrying a user.Principal.
type Signer struct {
	secret []byte
	now    func() time.Time
}

func NewSigner(secret string) (*Signer, error) {
	secret = strings.TrimSpace(secret)
	if len(secret) < minSecretLength {
		return nil, fmt.Errorf("session secret must be at least %d characters", minSecretLength)
	}
	return &Signer{secret: []byte(secret), now: time.Now}, nil
}

// Issue returns a token of the given kind valid for ttl, and its expiry.
func (s *Signer) Issue(principal user.Principal, kind Kind, ttl time.Duration) (string, time.Time, error) {
	if strings.TrimSpace(principal.TeamID) == "" {
		return "", time.Time{}, fmt.Errorf("%w: team id is required", usecase.ErrInvalidInput)
	}
	if ttl <= 0 {
		return "", time.Time{}, fmt.Errorf("%w: ttl must be positive", usecase.ErrInvalidInput)
	}

	now := s.now().UTC()
	expiresAt := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		TeamID:   principal.TeamID,
		TeamName: principal.TeamName,
		Role:     principal.Role,
		Kind:     kind,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   principal.TeamID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign session token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, kind and expiry and returns the carried principal.
// Every rejection wraps usecase.ErrUnauthorized.
func (s *Signer) Verify(_ context.Context, token string, kind Kind) (user.Principal, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return user.Principal{}, fmt.Errorf("%w: token is required", usecase.ErrUnauthorized)
	}

	var decoded claims
	_, err := jwt.ParseWithClaims(token, &decoded,
		func(*jwt.Token) (any, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(s.now),
	)
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return user.Principal{}, fmt.Errorf("%w: token expired", usecase.ErrUnauthorized)
	case err != nil:
		return user.Principal{}, fmt.Errorf("%w: %v", usecase.ErrUnauthorized, err)
	}

	if decoded.Kind != kind {
		return user.Principal{}, fmt.Errorf("%w: unexpected token kind %q", usecase.ErrUnauthorized, decoded.Kind)
	}
	if strings.TrimSpace(decoded.TeamID) == "" {
		return user.Principal{}, fmt.Errorf("%w: token carries no team", usecase.ErrUnauthorized)
	}

	return user.Principal{
		TeamID:   decoded.TeamID,
		TeamName: decoded.TeamName,
		Role:     decoded.Role,
	}, nil
}
