package httpapi

import (
	"net/http"

	"github.com/riskibarqy/dynasty-league/internal/domain/lineup"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

func (h *Handler) GetLineupOptions(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLineupOptions")
	defer span.End()

	teamID := queryValue(r, "teamId")
	options, err := h.lineupService.Options(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "lineup options failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]slotOptionDTO, 0, len(options))
	for _, opt := range options {
		items = append(items, slotOptionDTO{
			Slot:    slotToDTO(opt.Slot),
			Players: playersToDTO(opt.Players),
		})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) CheckLineup(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CheckLineup")
	defer span.End()

	var req lineupCheckRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	draft := usecase.LineupDraft{
		TeamID: req.TeamID,
		Week:   req.Week,
		Slots:  make([]usecase.LineupDraftSlot, 0, len(req.Slots)),
	}
	for _, s := range req.Slots {
		draft.Slots = append(draft.Slots, usecase.LineupDraftSlot{
			SlotID:   lineup.SlotID(s.SlotID),
			PlayerID: s.PlayerID,
			GameID:   s.GameID,
		})
	}

	check, err := h.lineupService.Check(ctx, draft)
	if err != nil {
		h.logger.WarnContext(ctx, "lineup check failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupCheckToDTO(check))
}
