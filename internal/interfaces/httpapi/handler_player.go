package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	teamID := queryValue(r, "teamId")
	status := queryValue(r, "status")
	players, err := h.playerService.ListPlayers(ctx, teamID, status)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "team_id", teamID, "status", status, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetTeamCap(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetTeamCap", leagueAttrs("", r.PathValue("teamID"), "")...)
	defer span.End()

	teamID := strings.TrimSpace(r.PathValue("teamID"))
	summaries, err := h.capService.TeamCap(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "team cap failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, capToDTO(teamID, summaries))
}
