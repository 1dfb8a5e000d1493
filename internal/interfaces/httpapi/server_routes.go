package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	mux.HandleFunc("GET /v1/health/sheets", handler.SheetsHealth)
	mux.HandleFunc("GET /v1/image", handler.ProxyImage)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerLeagueRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{teamID}/cap", handler.GetTeamCap)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/matchups", handler.ListMatchups)
	mux.HandleFunc("GET /v1/weekdates", handler.ListWeekDates)
	mux.HandleFunc("GET /v1/schedule", handler.ListSchedule)
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/draft-picks", handler.GetDraftPicks)
	mux.HandleFunc("GET /v1/current-time", handler.GetCurrentTime)
	mux.HandleFunc("GET /v1/current-week", handler.GetCurrentWeek)
}

func registerSelectionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/selections", handler.ListSelections)
	mux.HandleFunc("POST /v1/selections/submit", handler.SubmitSelections)
	mux.HandleFunc("POST /v1/selections/edit", handler.EditSelection)
	mux.HandleFunc("GET /v1/selections/audit", handler.ListSelectionAudit)
	mux.HandleFunc("GET /v1/selection-board", handler.GetSelectionBoard)
	mux.HandleFunc("GET /v1/lineup/options", handler.GetLineupOptions)
	mux.HandleFunc("POST /v1/lineup/check", handler.CheckLineup)
}

func registerAuthRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/auth/login", handler.Login)
	mux.HandleFunc("GET /v1/auth/me", handler.Me)
	mux.HandleFunc("GET /v1/auth/logout", handler.Logout)
	mux.HandleFunc("POST /v1/auth/logout", handler.Logout)
}
