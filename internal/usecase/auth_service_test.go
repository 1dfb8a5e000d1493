package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/domain/user"
	teammock "github.com/riskibarqy/dynasty-league/internal/mocks/domain/team"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/stretchr/testify/mock"
)

// fakeTokens hands out opaque sequential tokens and remembers what they carry.
type fakeTokens struct {
	mu     sync.Mutex
	seq    int
	issued map[string]fakeToken
}

type fakeToken struct {
	principal user.Principal
	kind      TokenKind
	ttl       time.Duration
}

func newFakeTokens() *fakeTokens {
	return &fakeTokens{issued: make(map[string]fakeToken)}
}

func (f *fakeTokens) Issue(principal user.Principal, kind TokenKind, ttl time.Duration) (string, time.Time, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	value := fmt.Sprintf("%s-%d", kind, f.seq)
	f.issued[value] = fakeToken{principal: principal, kind: kind, ttl: ttl}
	return value, fixedNow.Add(ttl), nil
}

func (f *fakeTokens) Verify(_ context.Context, token string, kind TokenKind) (user.Principal, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	got, ok := f.issued[token]
	if !ok || got.kind != kind {
		return user.Principal{}, fmt.Errorf("%w: bad token", ErrUnauthorized)
	}
	return got.principal, nil
}

var seededTeams = []team.Team{
	{ID: "T001", Name: "Harbour Hawks", Email: "hawks@example.com", Password: "hawks"},
	{ID: "T014", Name: "League Office", Email: "office@example.com", Password: " office "},
}

func newAuthService(t *testing.T, tokens *fakeTokens) *AuthService {
	t.Helper()

	repo := teammock.NewRepository(t)
	repo.On("List", mock.Anything).Return(seededTeams, nil).Maybe()
	return NewAuthService(repo, tokens, AuthConfig{}, logging.NewNop())
}

func TestAuthService_Login(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    LoginInput
		wantErr  error
		wantRole user.Role
	}{
		{name: "team", input: LoginInput{Email: "HAWKS@example.com", Password: "hawks"}, wantRole: user.RoleTeam},
		{name: "commissioner with padded stored password", input: LoginInput{Email: "office@example.com", Password: "office"}, wantRole: user.RoleCommissioner},
		{name: "missing password", input: LoginInput{Email: "hawks@example.com"}, wantErr: ErrInvalidInput},
		{name: "unknown email", input: LoginInput{Email: "nobody@example.com", Password: "x"}, wantErr: ErrUnauthorized},
		{name: "wrong password", input: LoginInput{Email: "hawks@example.com", Password: "goats"}, wantErr: ErrUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			svc := newAuthService(t, newFakeTokens())
			sess, err := svc.Login(context.Background(), tc.input)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Login: %v", err)
			}
			if sess.Principal.Role != tc.wantRole {
				t.Fatalf("role = %q, want %q", sess.Principal.Role, tc.wantRole)
			}
			if sess.Access.Value == "" || sess.Refresh.Value == "" {
				t.Fatalf("expected both tokens, got %+v", sess)
			}
			if sess.Access.TTL != time.Hour || sess.Refresh.TTL != 7*24*time.Hour {
				t.Fatalf("unexpected ttls access=%v refresh=%v", sess.Access.TTL, sess.Refresh.TTL)
			}
		})
	}
}

func TestAuthService_LoginRememberExtendsRefresh(t *testing.T) {
	t.Parallel()

	svc := newAuthService(t, newFakeTokens())
	sess, err := svc.Login(context.Background(), LoginInput{Email: "hawks@example.com", Password: "hawks", Remember: true})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.Refresh.TTL != 60*24*time.Hour {
		t.Fatalf("refresh ttl = %v", sess.Refresh.TTL)
	}
}

func TestAuthService_Resume(t *testing.T) {
	t.Parallel()

	tokens := newFakeTokens()
	svc := newAuthService(t, tokens)
	ctx := context.Background()

	sess, err := svc.Login(ctx, LoginInput{Email: "hawks@example.com", Password: "hawks"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}

	t.Run("valid access token", func(t *testing.T) {
		got, err := svc.Resume(ctx, sess.Access.Value, "")
		if err != nil {
			t.Fatalf("Resume: %v", err)
		}
		if got.Principal.TeamID != "T001" || got.Access.Value != "" {
			t.Fatalf("unexpected session: %+v", got)
		}
	})

	t.Run("refresh fallback mints access", func(t *testing.T) {
		got, err := svc.Resume(ctx, "expired", sess.Refresh.Value)
		if err != nil {
			t.Fatalf("Resume: %v", err)
		}
		if got.Access.Value == "" || got.Refresh.Value != "" {
			t.Fatalf("expected a fresh access token only, got %+v", got)
		}
		if _, err := svc.Authenticate(ctx, got.Access.Value); err != nil {
			t.Fatalf("minted access token rejected: %v", err)
		}
	})

	t.Run("refresh token is not an access token", func(t *testing.T) {
		if _, err := svc.Authenticate(ctx, sess.Refresh.Value); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})

	t.Run("no valid token", func(t *testing.T) {
		if _, err := svc.Resume(ctx, "", ""); !errors.Is(err, ErrUnauthorized) {
			t.Fatalf("expected ErrUnauthorized, got %v", err)
		}
	})
}

func TestAuthService_RequireCommissioner(t *testing.T) {
	t.Parallel()

	svc := NewAuthService(nil, newFakeTokens(), AuthConfig{CommissionerTeamID: "T099"}, logging.NewNop())

	if err := svc.RequireCommissioner(user.Principal{}, false); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
	if err := svc.RequireCommissioner(user.Principal{TeamID: DefaultCommissionerTeamID}, true); !errors.Is(err, ErrForbidden) {
		t.Fatalf("configured commissioner must replace the default, got %v", err)
	}
	if err := svc.RequireCommissioner(user.Principal{TeamID: "T099"}, true); err != nil {
		t.Fatalf("expected commissioner to pass, got %v", err)
	}
}
