package httpapi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	jsoniter "github.com/json-iterator/go"
	"github.com/riskibarqy/dynasty-league/external/imageproxy"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
)

// maxBodyBytes caps JSON request bodies. A full lineup submit is a few KB.
const maxBodyBytes = 1 << 20

// ImageFetcher loads a remote image for the proxy endpoint.
type ImageFetcher interface {
	Fetch(ctx context.Context, rawURL string) (imageproxy.Image, error)
}

// Services groups the usecases the handlers call.
type Services struct {
	League    *usecase.LeagueService
	Players   *usecase.PlayerService
	Cap       *usecase.CapService
	Weeks     *usecase.WeekService
	Selection *usecase.SelectionService
	Lineup    *usecase.LineupService
	Board     *usecase.BoardService
	Auth      *usecase.AuthService
	Health    *usecase.HealthService
}

type Handler struct {
	leagueService    *usecase.LeagueService
	playerService    *usecase.PlayerService
	capService       *usecase.CapService
	weekService      *usecase.WeekService
	selectionService *usecase.SelectionService
	lineupService    *usecase.LineupService
	boardService     *usecase.BoardService
	authService      *usecase.AuthService
	healthService    *usecase.HealthService
	images           ImageFetcher
	cookies          CookieConfig
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(services Services, images ImageFetcher, cookies CookieConfig, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		leagueService:    services.League,
		playerService:    services.Players,
		capService:       services.Cap,
		weekService:      services.Weeks,
		selectionService: services.Selection,
		lineupService:    services.Lineup,
		boardService:     services.Board,
		authService:      services.Auth,
		healthService:    services.Health,
		images:           images,
		cookies:          cookies,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

// decodeJSON reads a strict JSON body: unknown fields are rejected.
func decodeJSON(r *http.Request, dst any) error {
	return decodeBody(r, dst, true)
}

// decodeJSONLenient ignores fields the server does not read. The selection
// page posts whole client-side selection objects.
func decodeJSONLenient(r *http.Request, dst any) error {
	return decodeBody(r, dst, false)
}

func decodeBody(r *http.Request, dst any, strict bool) error {
	decoder := jsoniter.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if strict {
		decoder.DisallowUnknownFields()
	}
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return nil
}

func queryValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// optionalWeek parses an optional week query parameter. Absent means 0.
func optionalWeek(r *http.Request) (int, error) {
	raw := queryValue(r, "week")
	if raw == "" {
		return 0, nil
	}
	week, err := strconv.Atoi(raw)
	if err != nil || week < 0 {
		return 0, fmt.Errorf("%w: week must be a non-negative integer, got %q", usecase.ErrInvalidInput, raw)
	}
	return week, nil
}
