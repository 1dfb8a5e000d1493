package httpapi

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/dynasty-league/internal/domain/audit"
	"github.com/riskibarqy/dynasty-league/internal/domain/selection"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

func (h *Handler) ListSelections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSelections",
		leagueAttrs(queryValue(r, "week"), queryValue(r, "teamId"), queryValue(r, "matchupId"))...)
	defer span.End()

	filter := selection.Filter{
		Week:      queryValue(r, "week"),
		TeamID:    queryValue(r, "teamId"),
		MatchupID: queryValue(r, "matchupId"),
	}
	items, err := h.selectionService.List(ctx, filter)
	if err != nil {
		h.logger.WarnContext(ctx, "list selections failed",
			"week", filter.Week,
			"team_id", filter.TeamID,
			"matchup_id", filter.MatchupID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, selectionsToDTO(items))
}

func (h *Handler) SubmitSelections(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitSelections")
	defer span.End()

	var req submitSelectionsRequest
	if err := decodeJSONLenient(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	actor, _ := principalFromContext(ctx)
	result, err := h.selectionService.Submit(ctx, actor, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "submit selections failed", "team_id", req.TeamID, "week", req.Week.String(), "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, submitSelectionsResponse{
		Success:  true,
		Message:  "Selections submitted successfully",
		Written:  result.Written,
		Replaced: result.Replaced,
	})
}

func (h *Handler) EditSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.EditSelection")
	defer span.End()

	actor, ok := principalFromContext(ctx)
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: Unauthorized", usecase.ErrUnauthorized))
		return
	}

	var req editSelectionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.selectionService.Edit(ctx, actor, ok, req.toInput())
	if err != nil {
		h.logger.WarnContext(ctx, "edit selection failed",
			"actor_team_id", actor.TeamID,
			"week", req.Week.String(),
			"matchup_id", req.MatchupID,
			"error", err,
		)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, editSelectionResponse{
		Success:   true,
		Message:   "Selection updated successfully",
		Week:      weekNumber(result.Week),
		MatchupID: result.MatchupID,
		TeamName:  result.TeamName,
		Position:  result.Position,
		Changes:   result.Changes,
	})
}

func (h *Handler) ListSelectionAudit(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSelectionAudit")
	defer span.End()

	filter := audit.Filter{
		Week:   queryValue(r, "week"),
		TeamID: queryValue(r, "teamId"),
	}
	if raw := queryValue(r, "limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			writeError(ctx, w, fmt.Errorf("%w: limit must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		filter.Limit = limit
	}

	actor, ok := principalFromContext(ctx)
	entries, err := h.selectionService.ListAudit(ctx, actor, ok, filter)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	items := make([]auditEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, auditEntryToDTO(e))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetSelectionBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSelectionBoard",
		leagueAttrs(queryValue(r, "week"), queryValue(r, "teamId"), "")...)
	defer span.End()

	week, err := optionalWeek(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	teamID := queryValue(r, "teamId")
	if teamID == "" {
		if p, ok := principalFromContext(ctx); ok {
			teamID = p.TeamID
		}
	}

	board, err := h.boardService.Load(ctx, teamID, week)
	if err != nil {
		h.logger.WarnContext(ctx, "load selection board failed", "team_id", teamID, "week", week, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, boardToDTO(board))
}
