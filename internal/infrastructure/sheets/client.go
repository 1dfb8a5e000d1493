// Package sheets implements sheet.Store on top of the Google Sheets v4 API
// using a service account.
package sheets

import (
	"context"
	stderrors "errors"
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/dynasty-league/internal/domain/sheet"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/riskibarqy/dynasty-league/internal/platform/resilience"
	"github.com/riskibarqy/dynasty-league/internal/usecase"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"golang.org/x/oauth2/jwt"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	gsheets "google.golang.org/api/sheets/v4"
)

const (
	defaultTimeout   = 15 * time.Second
	valueInputOption = "RAW"
)

var errSheetsTransient = crerr.New("sheets transient failure")

type ClientConfig struct {
	SpreadsheetID string
	ClientEmail   string
	PrivateKey    string
	Timeout       time.Duration
	MaxRetries    int
	Logger        *logging.Logger

	CircuitBreaker resilience.CircuitBreakerConfig

	// HTTPClient skips service-account auth when set. Endpoint overrides the
	// API base URL. Both exist for tests against a local server.
	HTTPClient *http.Client
	Endpoint   string
}

type Client struct {
	svc           *gsheets.Service
	spreadsheetID string
	secrets       []string
	maxRetries    int
	logger        *logging.Logger
	breaker       *resilience.CircuitBreaker
	flight        resilience.SingleFlight
	backoff       func(attempt int) time.Duration
}

func NewClient(ctx context.Context, cfg ClientConfig) (*Client, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	spreadsheetID := strings.TrimSpace(cfg.SpreadsheetID)
	if spreadsheetID == "" {
		return nil, crerr.New("sheets: spreadsheet id is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		if strings.TrimSpace(cfg.ClientEmail) == "" || strings.TrimSpace(cfg.PrivateKey) == "" {
			return nil, crerr.New("sheets: client email and private key are required")
		}
		jwtCfg := &jwt.Config{
			Email:      strings.TrimSpace(cfg.ClientEmail),
			PrivateKey: []byte(cfg.PrivateKey),
			Scopes:     []string{gsheets.SpreadsheetsScope},
			TokenURL:   google.JWTTokenURL,
		}
		httpClient = &http.Client{
			Timeout: timeout,
			Transport: &oauth2.Transport{
				Source: jwtCfg.TokenSource(context.WithoutCancel(ctx)),
				Base:   otelhttp.NewTransport(http.DefaultTransport),
			},
		}
	} else if httpClient.Timeout <= 0 {
		httpClient.Timeout = timeout
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if endpoint := strings.TrimSpace(cfg.Endpoint); endpoint != "" {
		opts = append(opts, option.WithEndpoint(strings.TrimRight(endpoint, "/")+"/"))
	}
	svc, err := gsheets.NewService(ctx, opts...)
	if err != nil {
		return nil, crerr.Wrap(err, "sheets: build service")
	}

	return &Client{
		svc:           svc,
		spreadsheetID: spreadsheetID,
		secrets:       secretsOf(cfg),
		maxRetries:    max(cfg.MaxRetries, 0),
		logger:        logger,
		breaker:       resilience.NewBreaker(cfg.CircuitBreaker),
		backoff:       func(attempt int) time.Duration { return time.Duration(attempt+1) * time.Second },
	}, nil
}

// Get reads rng and returns its cells as text. Reads are coalesced per range,
// retried on transient failures, and fail with sheet.ErrTabNotFound when the
// tab does not exist.
func (c *Client) Get(ctx context.Context, rng string) ([][]string, error) {
	if err := c.allow(ctx, "get", rng); err != nil {
		return nil, err
	}

	out, err, _ := c.flight.Do("get:"+rng, func() (any, error) {
		rows, getErr := c.getWithRetry(ctx, rng)
		c.breaker.Record(getErr, isTransient)
		return rows, getErr
	})
	if err != nil {
		return nil, err
	}

	rows, ok := out.([][]string)
	if !ok {
		return nil, crerr.Newf("sheets: unexpected payload type %T", out)
	}
	return rows, nil
}

// Clear blanks every cell in rng. Writes are never retried.
func (c *Client) Clear(ctx context.Context, rng string) error {
	if err := c.allow(ctx, "clear", rng); err != nil {
		return err
	}

	_, err := c.svc.Spreadsheets.Values.
		Clear(c.spreadsheetID, rng, &gsheets.ClearValuesRequest{}).
		Context(ctx).
		Do()
	err = c.classify("clear", rng, err)
	c.breaker.Record(err, isTransient)
	if err != nil {
		c.logger.WarnContext(ctx, "sheets clear failed", "range", rng, "error", err)
	}
	return err
}

// Update writes rows starting at the top-left cell of rng. Writes are never
// retried.
func (c *Client) Update(ctx context.Context, rng string, rows [][]string) error {
	if err := c.allow(ctx, "update", rng); err != nil {
		return err
	}

	body := &gsheets.ValueRange{
		Range:          rng,
		MajorDimension: "ROWS",
		Values:         toValues(rows),
	}
	_, err := c.svc.Spreadsheets.Values.
		Update(c.spreadsheetID, rng, body).
		ValueInputOption(valueInputOption).
		Context(ctx).
		Do()
	err = c.classify("update", rng, err)
	c.breaker.Record(err, isTransient)
	if err != nil {
		c.logger.WarnContext(ctx, "sheets update failed", "range", rng, "rows", len(rows), "error", err)
	}
	return err
}

func (c *Client) allow(ctx context.Context, op, rng string) error {
	if err := c.breaker.Allow(); err != nil {
		c.logger.WarnContext(ctx, "sheets circuit breaker rejected request",
			"op", op,
			"range", rng,
			"state", c.breaker.State(),
		)
		return fmt.Errorf("%w: spreadsheet is temporarily unavailable", usecase.ErrDependencyUnavailable)
	}
	return nil
}

func (c *Client) getWithRetry(ctx context.Context, rng string) ([][]string, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		resp, err := c.svc.Spreadsheets.Values.
			Get(c.spreadsheetID, rng).
			Context(ctx).
			Do()
		if err == nil {
			return toRows(resp.Values), nil
		}

		lastErr = c.classify("get", rng, err)
		if !isTransient(lastErr) {
			return nil, lastErr
		}
		if attempt == c.maxRetries {
			break
		}

		timer := time.NewTimer(c.backoff(attempt))
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "sheets read failed", "range", rng, "error", lastErr)
	return nil, lastErr
}

// classify turns an API error into one whose text carries no credentials and
// which matches sheet.ErrTabNotFound or errSheetsTransient where appropriate.
func (c *Client) classify(op, rng string, err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apiErr *googleapi.Error
	if stderrors.As(err, &apiErr) {
		msg := c.redact(apiErr.Message)
		switch {
		case apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "Unable to parse range"):
			return fmt.Errorf("%w: sheets %s %s: %s", sheet.ErrTabNotFound, op, rng, msg)
		case isRetryableStatus(apiErr.Code):
			return fmt.Errorf("%w: sheets %s %s status=%d: %s", errSheetsTransient, op, rng, apiErr.Code, msg)
		default:
			return crerr.Newf("sheets %s %s status=%d: %s", op, rng, apiErr.Code, msg)
		}
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) || isTransportFailure(err) {
		return fmt.Errorf("%w: sheets %s %s: %s", errSheetsTransient, op, rng, c.redact(err.Error()))
	}
	return crerr.Newf("sheets %s %s: %s", op, rng, c.redact(err.Error()))
}

func (c *Client) redact(value string) string {
	return sanitizeSensitiveText(value, c.secrets...)
}

func sanitizeSensitiveText(value string, secrets ...string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return value
	}
	for _, secret := range secrets {
		if secret != "" {
			value = strings.ReplaceAll(value, secret, "REDACTED")
		}
	}
	return value
}

func secretsOf(cfg ClientConfig) []string {
	out := make([]string, 0, 3)
	if key := strings.TrimSpace(cfg.PrivateKey); key != "" {
		out = append(out, key)
	}
	if email := strings.TrimSpace(cfg.ClientEmail); email != "" {
		out = append(out, email)
	}
	return out
}

func isTransient(err error) bool {
	return stderrors.Is(err, errSheetsTransient)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= http.StatusInternalServerError
}

func isTransportFailure(err error) bool {
	var opErr *net.OpError
	if stderrors.As(err, &opErr) {
		return true
	}
	var tokenErr *oauth2.RetrieveError
	if stderrors.As(err, &tokenErr) {
		return tokenErr.Response != nil && isRetryableStatus(tokenErr.Response.StatusCode)
	}
	return false
}

func toRows(values [][]interface{}) [][]string {
	out := make([][]string, len(values))
	for i, row := range values {
		cells := make([]string, len(row))
		for j, cell := range row {
			switch v := cell.(type) {
			case nil:
			case string:
				cells[j] = v
			default:
				cells[j] = fmt.Sprint(v)
			}
		}
		out[i] = cells
	}
	return out
}

func toValues(rows [][]string) [][]interface{} {
	out := make([][]interface{}, len(rows))
	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		out[i] = cells
	}
	return out
}
