package httpapi

import (
	"net/http"
	"strings"
	"time"

	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

const (
	accessCookieName  = "dl_access"
	refreshCookieName = "dl_refresh"
)

// CookieConfig controls the session cookie attributes. Secure should be on
// everywhere except plain-http local development.
type CookieConfig struct {
	Secure bool
	Domain string
}

func cookieValue(r *http.Request, name string) string {
	c, err := r.Cookie(name)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(c.Value)
}

func (c CookieConfig) session(name string, token usecase.IssuedToken) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    token.Value,
		Path:     "/",
		Domain:   c.Domain,
		Expires:  token.ExpiresAt,
		MaxAge:   int(token.TTL / time.Second),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c CookieConfig) expired(name string) *http.Cookie {
	return &http.Cookie{
		Name:     name,
		Value:    "",
		Path:     "/",
		Domain:   c.Domain,
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteLaxMode,
	}
}

func (c CookieConfig) setSession(w http.ResponseWriter, session usecase.Session) {
	if session.Access.Value != "" {
		http.SetCookie(w, c.session(accessCookieName, session.Access))
	}
	if session.Refresh.Value != "" {
		http.SetCookie(w, c.session(refreshCookieName, session.Refresh))
	}
}

func (c CookieConfig) clearSession(w http.ResponseWriter) {
	http.SetCookie(w, c.expired(accessCookieName))
	http.SetCookie(w, c.expired(refreshCookieName))
}
