package observability

import (
	"errors"
	"testing"
	"time"

	otellog "go.opentelemetry.io/otel/log"

	"github.com/riskibarqy/club-stats/internal/platform/logging"
)

func TestIsHealthRequestLog(t *testing.T) {
	if !isHealthRequestLog("http request", []any{"method", "GET", "path", "/healthz", "status", 200}) {
		t.Fatalf("expected health check request log to be skipped")
	}
	if isHealthRequestLog("http request", []any{"path", "/v1/rankings"}) {
		t.Fatalf("expected ranking request log to be mirrored")
	}
	if isHealthRequestLog("match created", []any{"path", "/healthz"}) {
		t.Fatalf("expected non-request log to be mirrored")
	}
}

func TestLogAttributes(t *testing.T) {
	attrs := logAttributes([]any{
		"match_id", int64(7),
		"error", errors.New("goal mismatch"),
		"duration", 1500 * time.Millisecond,
		42, "unnamed",
		"dangling",
	})
	if len(attrs) != 5 {
		t.Fatalf("expected 5 attributes, got %d", len(attrs))
	}

	if attrs[0].Key != "match_id" || attrs[0].Value.Kind() != otellog.KindInt64 || attrs[0].Value.AsInt64() != 7 {
		t.Fatalf("unexpected match_id attribute: %+v", attrs[0])
	}
	if attrs[1].Value.AsString() != "goal mismatch" {
		t.Fatalf("unexpected error attribute: %+v", attrs[1])
	}
	if attrs[2].Value.AsString() != "1.5s" {
		t.Fatalf("unexpected duration attribute: %+v", attrs[2])
	}
	if attrs[3].Key != "arg_3" {
		t.Fatalf("expected positional key for non-string key, got %q", attrs[3].Key)
	}
	if attrs[4].Key != "dangling" || !attrs[4].Value.Empty() {
		t.Fatalf("expected empty value for dangling key, got %+v", attrs[4])
	}
}

func TestToOTelSeverity(t *testing.T) {
	cases := map[logging.Level]otellog.Severity{
		logging.LevelDebug: otellog.SeverityDebug,
		logging.LevelInfo:  otellog.SeverityInfo,
		logging.LevelWarn:  otellog.SeverityWarn,
		logging.LevelError: otellog.SeverityError,
	}
	for level, want := range cases {
		if got := toOTelSeverity(level); got != want {
			t.Fatalf("level %s: expected %v, got %v", level, want, got)
		}
	}
}
