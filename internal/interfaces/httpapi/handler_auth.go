package httpapi

import (
	"net/http"

	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Login")
	defer span.End()

	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	session, err := h.authService.Login(ctx, usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Remember: req.Remember,
	})
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.cookies.setSession(w, session)
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session.Principal))
}

// Me reports the session. An expired access cookie is renewed from the
// refresh cookie.
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Me")
	defer span.End()

	if p, ok := principalFromContext(ctx); ok {
		writeSuccess(ctx, w, http.StatusOK, sessionToDTO(p))
		return
	}

	session, err := h.authService.Resume(ctx, cookieValue(r, accessCookieName), cookieValue(r, refreshCookieName))
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	h.cookies.setSession(w, session)
	writeSuccess(ctx, w, http.StatusOK, sessionToDTO(session.Principal))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Logout")
	defer span.End()

	h.cookies.clearSession(w)
	writeSuccess(ctx, w, http.StatusOK, map[string]bool{"ok": true})
}
