package httpapi

import (
	"net/http"
)

func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListTeams")
	defer span.End()

	teams, err := h.leagueService.ListTeams(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list teams failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]teamDTO, 0, len(teams))
	for _, t := range teams {
		items = append(items, teamToDTO(t))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListMatchups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchups")
	defer span.End()

	matchups, err := h.leagueService.ListMatchups(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list matchups failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]matchupDTO, 0, len(matchups))
	for _, m := range matchups {
		items = append(items, matchupToDTO(m))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListWeekDates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListWeekDates")
	defer span.End()

	weeks, err := h.leagueService.ListWeekDates(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list week dates failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]weekDateDTO, 0, len(weeks))
	for _, wk := range weeks {
		items = append(items, weekDateToDTO(wk))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSchedule")
	defer span.End()

	week, err := optionalWeek(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	games, err := h.leagueService.ListSchedule(ctx, week)
	if err != nil {
		h.logger.WarnContext(ctx, "list schedule failed", "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]gameDTO, 0, len(games))
	for _, g := range games {
		items = append(items, gameToDTO(g))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	rows, err := h.leagueService.ListStandings(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]standingDTO, 0, len(rows))
	for _, s := range rows {
		items = append(items, standingToDTO(s))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDraftPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftPicks")
	defer span.End()

	teamID := queryValue(r, "teamId")
	holding, err := h.leagueService.GetDraftPicks(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft picks failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftPicksToDTO(holding))
}

func (h *Handler) GetCurrentTime(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentTime")
	defer span.End()

	today, err := h.leagueService.CurrentTime(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get current time failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, todayDTO{Date: today.Date, Time: today.Time})
}

func (h *Handler) GetCurrentWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCurrentWeek")
	defer span.End()

	current, err := h.weekService.CurrentWeek(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "resolve current week failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, currentWeekDTO{
		Week:  current.Week,
		Today: todayDTO{Date: current.Today.Date, Time: current.Today.Time},
	})
}
