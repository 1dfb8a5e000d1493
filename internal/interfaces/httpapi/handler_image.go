package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/riskibarqy/dynasty-league/external/imageproxy"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

const imageCacheControl = "public, max-age=3600"

// ProxyImage streams a remote image through the API so the client can load
// player photos and logos from hosts without CORS headers.
func (h *Handler) ProxyImage(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ProxyImage")
	defer span.End()

	rawURL := queryValue(r, "url")
	if rawURL == "" {
		writeError(ctx, w, fmt.Errorf("%w: Missing url", usecase.ErrInvalidInput))
		return
	}
	if h.images == nil {
		writeError(ctx, w, fmt.Errorf("%w: image proxy is not configured", usecase.ErrDependencyUnavailable))
		return
	}

	img, err := h.images.Fetch(ctx, rawURL)
	switch {
	case errors.Is(err, imageproxy.ErrInvalidURL):
		writeError(ctx, w, fmt.Errorf("%w: %v", usecase.ErrInvalidInput, err))
		return
	case err != nil:
		h.logger.WarnContext(ctx, "image proxy fetch failed", "error", err)
		writeStatusError(ctx, w, http.StatusInternalServerError, "INTERNAL", "imageFetchFailed", "Error fetching image")
		return
	case !img.OK():
		writeStatusError(ctx, w, upstreamFailureStatus(img.Status), "UPSTREAM_ERROR", "upstreamStatus", "Failed to fetch image")
		return
	}

	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", imageCacheControl)
	w.Header().Set("Content-Length", strconv.Itoa(len(img.Body)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(img.Body)
}

// upstreamFailureStatus passes client and server errors through. Anything
// else that is not a 200 is reported as a bad gateway.
func upstreamFailureStatus(status int) int {
	if status >= http.StatusBadRequest && status <= 599 {
		return status
	}
	return http.StatusBadGateway
}
