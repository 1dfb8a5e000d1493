package httpapi

import "net/http"

// SheetsHealth reports which spreadsheet credentials are configured and
// whether a header read succeeds. A failed probe answers 500 with the same
// body so operators can see what is missing.
func (h *Handler) SheetsHealth(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SheetsHealth")
	defer span.End()

	result, ok := h.healthService.Sheets(ctx)
	status := http.StatusOK
	if !ok {
		status = http.StatusInternalServerError
		h.logger.WarnContext(ctx, "sheets health probe failed", "error", result.Error)
	}

	writeSuccess(ctx, w, status, sheetsHealthToDTO(result))
}
