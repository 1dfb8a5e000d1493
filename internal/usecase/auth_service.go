package usecase

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
)

type TokenKind string

const (
	TokenAccess  TokenKind = "access"
	TokenRefresh TokenKind = "refresh"
)

// SessionTokens signs and verifies the session tokens carried in cookies.
type SessionTokens interface {
	Issue(principal user.Principal, kind TokenKind, ttl time.Duration) (string, time.Time, error)
	Verify(ctx context.Context, token string, kind TokenKind) (user.Principal, error)
}

// DefaultCommissionerTeamID owns league administration unless configured
// otherwise.
const DefaultCommissionerTeamID = "T014"

type AuthConfig struct {
	CommissionerTeamID string
	AccessTTL          time.Duration
	RefreshTTL         time.Duration
	RememberTTL        time.Duration
}

func (c AuthConfig) withDefaults() AuthConfig {
	if strings.TrimSpace(c.CommissionerTeamID) == "" {
		c.CommissionerTeamID = DefaultCommissionerTeamID
	}
	if c.AccessTTL <= 0 {
		c.AccessTTL = time.Hour
	}
	if c.RefreshTTL <= 0 {
		c.RefreshTTL = 7 * 24 * time.Hour
	}
	if c.RememberTTL <= 0 {
		c.RememberTTL = 60 * 24 * time.Hour
	}
	return c
}

type LoginInput struct {
	Email    string
	Password string
	Remember bool
}

// IssuedToken is a signed token and the moment it stops being valid.
type IssuedToken struct {
	Value     string
	ExpiresAt time.Time
	TTL       time.Duration
}

type Session struct {
	Principal user.Principal
	Access    IssuedToken
	// Refresh is zero when the session was resumed without a new refresh token.
	Refresh IssuedToken
}

type AuthService struct {
	teamRepo team.Repository
	tokens   SessionTokens
	cfg      AuthConfig
	logger   *logging.Logger
}

func NewAuthService(teamRepo team.Repository, tokens SessionTokens, cfg AuthConfig, logger *logging.Logger) *AuthService {
	if logger == nil {
		logger = logging.Default()
	}
	return &AuthService{
		teamRepo: teamRepo,
		tokens:   tokens,
		cfg:      cfg.withDefaults(),
		logger:   logger,
	}
}

func (s *AuthService) CommissionerTeamID() string {
	return s.cfg.CommissionerTeamID
}

// Login matches the team by email and compares the stored password in
// constant time.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Login")
	defer span.End()

	email := strings.TrimSpace(input.Email)
	password := strings.TrimSpace(input.Password)
	if email == "" || password == "" {
		return Session{}, fmt.Errorf("%w: Missing credentials", ErrInvalidInput)
	}

	teams, err := s.teamRepo.List(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("list teams: %w", err)
	}

	var match *team.Team
	for i := range teams {
		if teams[i].MatchesEmail(email) {
			match = &teams[i]
			break
		}
	}
	if match == nil {
		return Session{}, fmt.Errorf("%w: Invalid credentials", ErrUnauthorized)
	}

	stored := strings.TrimSpace(match.Password)
	if subtle.ConstantTimeCompare([]byte(stored), []byte(password)) != 1 {
		s.logger.WarnContext(ctx, "login password mismatch", "team_id", match.ID)
		return Session{}, fmt.Errorf("%w: Invalid credentials", ErrUnauthorized)
	}

	principal := user.Principal{
		TeamID:   match.ID,
		TeamName: match.Name,
		Role:     s.roleFor(match.ID),
	}

	access, err := s.issue(principal, TokenAccess, s.cfg.AccessTTL)
	if err != nil {
		return Session{}, err
	}
	refreshTTL := s.cfg.RefreshTTL
	if input.Remember {
		refreshTTL = s.cfg.RememberTTL
	}
	refresh, err := s.issue(principal, TokenRefresh, refreshTTL)
	if err != nil {
		return Session{}, err
	}

	s.logger.InfoContext(ctx, "team logged in", "team_id", principal.TeamID, "remember", input.Remember)
	return Session{Principal: principal, Access: access, Refresh: refresh}, nil
}

// Authenticate verifies an access token.
func (s *AuthService) Authenticate(ctx context.Context, accessToken string) (user.Principal, error) {
	principal, err := s.tokens.Verify(ctx, accessToken, TokenAccess)
	if err != nil {
		return user.Principal{}, err
	}
	principal.Role = s.roleFor(principal.TeamID)
	return principal, nil
}

// Resume accepts a valid access token, or falls back to the refresh token and
// mints a new access token. The returned session carries a zero Access token
// when the access token was still valid.
func (s *AuthService) Resume(ctx context.Context, accessToken, refreshToken string) (Session, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AuthService.Resume")
	defer span.End()

	if principal, err := s.Authenticate(ctx, accessToken); err == nil {
		return Session{Principal: principal}, nil
	}

	principal, err := s.tokens.Verify(ctx, refreshToken, TokenRefresh)
	if err != nil {
		return Session{}, fmt.Errorf("%w: no valid session", ErrUnauthorized)
	}
	principal.Role = s.roleFor(principal.TeamID)

	access, err := s.issue(principal, TokenAccess, s.cfg.AccessTTL)
	if err != nil {
		return Session{}, err
	}
	return Session{Principal: principal, Access: access}, nil
}

// RequireCommissioner fails with ErrUnauthorized for an anonymous caller and
// ErrForbidden for any team other than the commissioner.
func (s *AuthService) RequireCommissioner(principal user.Principal, ok bool) error {
	return requireCommissioner(principal, ok, s.cfg.CommissionerTeamID)
}

func requireCommissioner(principal user.Principal, ok bool, commissionerTeamID string) error {
	if !ok || strings.TrimSpace(principal.TeamID) == "" {
		return fmt.Errorf("%w: Unauthorized", ErrUnauthorized)
	}
	if principal.TeamID != commissionerTeamID {
		return fmt.Errorf("%w: Commissioner access required", ErrForbidden)
	}
	return nil
}

func (s *AuthService) roleFor(teamID string) user.Role {
	if teamID == s.cfg.CommissionerTeamID {
		return user.RoleCommissioner
	}
	return user.RoleTeam
}

func (s *AuthService) issue(principal user.Principal, kind TokenKind, ttl time.Duration) (IssuedToken, error) {
	value, expiresAt, err := s.tokens.Issue(principal, kind, ttl)
	if err != nil {
		return IssuedToken{}, fmt.Errorf("issue %s token: %w", kind, err)
	}
	return IssuedToken{Value: value, ExpiresAt: expiresAt, TTL: ttl}, nil
}
