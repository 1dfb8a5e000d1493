// Package imageproxy fetches remote player and team images for clients that
// cannot load them cross-origin.
package imageproxy

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/dynasty-league/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const (
	defaultTimeout     = 10 * time.Second
	defaultMaxBytes    = 5 << 20
	defaultUserAgent   = "DynastyLeagueApp/1.0"
	defaultContentType = "image/png"
	maxRedirects       = 5
)

// ErrInvalidURL reports a target that is not an absolute http(s) URL.
var ErrInvalidURL = crerr.New("invalid image url")

type Config struct {
	Timeout   time.Duration
	MaxBytes  int
	UserAgent string
}

// Image is the upstream answer. Body is only set when Status is 200.
type Image struct {
	Status      int
	ContentType string
	Body        []byte
}

func (i Image) OK() bool {
	return i.Status == fasthttp.StatusOK
}

type Client struct {
	client    *fasthttp.Client
	userAgent string
	logger    *logging.Logger
}

func NewClient(cfg Config, logger *logging.Logger) *Client {
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBytes := cfg.MaxBytes
	if maxBytes <= 0 {
		maxBytes = defaultMaxBytes
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}

	return &Client{
		client: &fasthttp.Client{
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxBytes,
			MaxConnsPerHost:     64,
			MaxIdleConnDuration: time.Minute,
		},
		userAgent: userAgent,
		logger:    logger,
	}
}

// Fetch downloads rawURL, following redirects. A non-200 upstream status is
// returned in Image rather than as an error.
func (c *Client) Fetch(ctx context.Context, rawURL string) (Image, error) {
	target, err := validateImageURL(rawURL)
	if err != nil {
		return Image{}, err
	}
	if err := ctx.Err(); err != nil {
		return Image{}, err
	}

	span := trace.SpanFromContext(ctx)
	if span.IsRecording() {
		span.SetAttributes(attribute.String("imageproxy.host", target.Host))
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(target.String())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.SetUserAgent(c.userAgent)

	start := time.Now()
	if err := c.client.DoRedirects(req, resp, maxRedirects); err != nil {
		c.logger.WarnContext(ctx, "image fetch failed",
			"host", target.Host,
			"duration_ms", time.Since(start).Milliseconds(),
			"error", err,
		)
		return Image{}, crerr.Wrapf(err, "fetch image from %s", target.Host)
	}

	out := Image{Status: resp.StatusCode()}
	if !out.OK() {
		c.logger.InfoContext(ctx, "image upstream returned non-ok status",
			"host", target.Host,
			"status", out.Status,
		)
		return out, nil
	}

	out.ContentType = strings.TrimSpace(string(resp.Header.ContentType()))
	if out.ContentType == "" {
		out.ContentType = defaultContentType
	}

	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)
	if err := resp.BodyWriteTo(buf); err != nil {
		return Image{}, crerr.Wrapf(err, "read image body from %s", target.Host)
	}
	out.Body = append([]byte(nil), buf.B...)
	return out, nil
}

func validateImageURL(raw string) (*url.URL, error) {
	candidate := strings.TrimSpace(raw)
	if candidate == "" {
		return nil, fmt.Errorf("%w: url is empty", ErrInvalidURL)
	}

	parsed, err := url.Parse(candidate)
	if err != nil {
		return nil, fmt.Errorf("%w: parse %q: %v", ErrInvalidURL, candidate, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("%w: %q uses unsupported scheme=%q", ErrInvalidURL, candidate, parsed.Scheme)
	}
	if strings.TrimSpace(parsed.Host) == "" {
		return nil, fmt.Errorf("%w: %q has empty host", ErrInvalidURL, candidate)
	}
	return parsed, nil
}
