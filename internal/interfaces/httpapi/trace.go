package httpapi

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("dynasty-league/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// startSpan opens a child span for handler entry points only. Without a
// parent (untraced routes such as /healthz) it returns a no-op span.
func startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if !shouldCreateHTTPAPISpan(name) || !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name, trace.WithAttributes(attrs...))
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, handlerSpanPrefix)
}

// leagueAttrs keeps only the non-empty league identifiers of a request.
func leagueAttrs(week, teamID, matchupID string) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3)
	if week != "" {
		attrs = append(attrs, attribute.String("league.week", week))
	}
	if teamID != "" {
		attrs = append(attrs, attribute.String("league.team_id", teamID))
	}
	if matchupID != "" {
		attrs = append(attrs, attribute.String("league.matchup_id", matchupID))
	}
	return attrs
}
