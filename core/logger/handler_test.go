package logger

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"log/slog"
)

func newTestLogger(t *testing.T, format logFormat, component string) (*slog.Logger, *asyncWriter, *bytes.Buffer) {
	t.Helper()
	buf := &bytes.Buffer{}
	aw := newAsyncWriter([]io.Writer{buf}, 1024)
	handler := newStructuredHandler(handlerConfig{
		level:  slog.LevelInfo,
		writer: aw,
		format: format,
	})
	return slog.New(handler).With("component", component), aw, buf
}

func closeAndRead(t *testing.T, aw *asyncWriter, buf *bytes.Buffer) string {
	t.Helper()
	if err := aw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if err := aw.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	return strings.TrimSpace(buf.String())
}

func TestStructuredHandlerKVOrder(t *testing.T) {
	log, aw, buf := newTestLogger(t, formatKV, "app")
	ctx := WithRID(context.Background(), "rid-123")
	ctx = WithUpdateMeta(ctx, 42, 7, 9)

	LogEvent(ctx, log, slog.LevelInfo, "test.event",
		slog.String("status", "ok"),
		slog.String("cause", "unit"),
	)
	line := closeAndRead(t, aw, buf)

	tokens := strings.Split(line, " ")
	expected := []string{"ts=", "level=INFO", "component=app", "event=test.event", "status=ok", "rid=rid-123", "update_id=42", "user_id=7", "chat_id=9"}
	if len(tokens) < len(expected) {
		t.Fatalf("unexpected token count: %d (%s)", len(tokens), line)
	}
	for i, prefix := range expected {
		if !strings.HasPrefix(tokens[i], prefix) {
			t.Fatalf("token %d = %s, expected prefix %s", i, tokens[i], prefix)
		}
	}
}

func TestStructuredHandlerJSONOrder(t *testing.T) {
	log, aw, buf := newTestLogger(t, formatJSON, "prayer")
	ctx := WithRID(context.Background(), "rid-json")

	LogEvent(ctx, log, slog.LevelError, "group.post_failed",
		slog.String("status", "fail"),
		slog.String("err", "boom"),
		slog.String("error_kind", "http_4xx"),
	)
	line := closeAndRead(t, aw, buf)

	prefixes := []string{`{"ts":`, `"level":"ERROR"`, `"component":"prayer"`, `"event":"group.post_failed"`, `"status":"fail"`, `"rid":"rid-json"`, `"err":"boom"`, `"error_kind":"http_4xx"`}
	pos := -1
	for _, pref := range prefixes {
		idx := strings.Index(line, pref)
		if idx == -1 || idx < pos {
			t.Fatalf("prefix %s not found in order within %s", pref, line)
		}
		pos = idx
	}
}

func TestStructuredHandlerCompactRID(t *testing.T) {
	raw := BuildRID(123, 456, 789)

	log, aw, buf := newTestLogger(t, formatKV, "app")
	LogEvent(WithRID(context.Background(), raw), log, slog.LevelInfo, "rid.test")
	line := closeAndRead(t, aw, buf)
	if !strings.Contains(line, "rid="+CompactRID(raw)) {
		t.Fatalf("expected compact rid, got %s", line)
	}
	if strings.Contains(line, "rid_full=") {
		t.Fatalf("rid_full should be omitted in KV output, got %s", line)
	}

	log, aw, buf = newTestLogger(t, formatJSON, "app")
	LogEvent(WithRID(context.Background(), raw), log, slog.LevelInfo, "rid.test")
	line = closeAndRead(t, aw, buf)
	if !strings.Contains(line, `"rid_full":"`+raw+`"`) {
		t.Fatalf("expected rid_full in JSON output, got %s", line)
	}
	if !strings.Contains(line, `"ts_unix_nano"`) {
		t.Fatalf("expected ts_unix_nano in JSON output, got %s", line)
	}
}

func TestStructuredHandlerDurationAndLevelFilter(t *testing.T) {
	log, aw, buf := newTestLogger(t, formatKV, "tg")
	log.Debug("hidden")
	LogEvent(context.Background(), log, slog.LevelInfo, "handler.handled",
		slog.Duration("duration", 1500*time.Microsecond),
		slog.String("empty", ""),
	)
	line := closeAndRead(t, aw, buf)
	if strings.Contains(line, "hidden") {
		t.Fatalf("debug record should be filtered: %s", line)
	}
	if !strings.Contains(line, "duration_ms=2") {
		t.Fatalf("expected rounded duration_ms, got %s", line)
	}
	if strings.Contains(line, "empty=") {
		t.Fatalf("empty strings should be pruned: %s", line)
	}
}

func TestCompactRIDPassthrough(t *testing.T) {
	for _, rid := range []string{"", "abc", "1:2", "1:x:3"} {
		if got := CompactRID(rid); got != rid {
			t.Errorf("CompactRID(%q) = %q, want unchanged", rid, got)
		}
	}
	if got := CompactRID("35:36:-1"); got != "z.10.-1" {
		t.Fatalf("CompactRID = %q", got)
	}
}

func TestSanitizeLimit(t *testing.T) {
	if got := SanitizeLimit("a\x00b\u200bc\nd", 10); got != "abc\nd" {
		t.Fatalf("SanitizeLimit = %q", got)
	}
	if got := SanitizeLimit("молитва", 3); got != "мол" {
		t.Fatalf("rune limit = %q", got)
	}
}

func TestRatioSampler(t *testing.T) {
	s := newRatioSampler(1, 3)
	var allowed int
	for i := 0; i < 9; i++ {
		if s.Allow() {
			allowed++
		}
	}
	if allowed != 3 {
		t.Fatalf("allowed = %d, want 3", allowed)
	}
	s.Set(0, 0)
	if !s.Allow() {
		t.Fatal("disabled sampler must allow everything")
	}
	if n, d := parseRatioSpec("2/5"); n != 2 || d != 5 {
		t.Fatalf("parseRatioSpec = %d/%d", n, d)
	}
	if n, d := parseRatioSpec("10"); n != 1 || d != 10 {
		t.Fatalf("parseRatioSpec bare = %d/%d", n, d)
	}
}

func TestHelpersTolerateUninitializedLogger(t *testing.T) {
	if L != nil {
		t.Skip("global logger already initialized")
	}
	Warn(context.Background(), CompPrayer, "noop", slog.String("k", "v"))
	if Component("x") != nil {
		t.Fatal("Component should be nil before InitLogger")
	}
}
