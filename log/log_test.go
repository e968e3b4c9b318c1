package log

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestMake_DefaultConfiguration(t *testing.T) {
	logger := Make(&bytes.Buffer{})

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("Level() = %v, want %v", got, DefaultLevel)
	}

	if got := logger.Format(); got != DefaultFormat {
		t.Errorf("Format() = %v, want %v", got, DefaultFormat)
	}

	if logger.caller {
		t.Error("caller info enabled by default")
	}

	if !logger.pretty {
		t.Error("pretty output disabled by default")
	}
}

func TestLogger_ZeroValue(t *testing.T) {
	var logger Logger

	// none of these may panic
	logger.Trace("trace")
	logger.DebugContext(t.Context(), "debug")
	logger.Error("error", slog.String("key", "value"))
	logger = logger.With(slog.Int("n", 1))

	if logger.Enabled(t.Context(), LevelError) {
		t.Error("zero Logger reports enabled")
	}

	if got := logger.Level(); got != DefaultLevel {
		t.Errorf("Level() = %v, want %v", got, DefaultLevel)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	tests := []struct {
		name  string
		level Level
		log   func(Logger)
		want  bool
	}{
		{"trace below debug", LevelDebug, func(l Logger) { l.Trace("m") }, false},
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{"debug at info", LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{"info at info", LevelInfo, func(l Logger) { l.Info("m") }, true},
		{"warn at error", LevelError, func(l Logger) { l.Warn("m") }, false},
		{"error at error", LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := buf.Len() > 0; got != tt.want {
				t.Errorf("logged = %v, want %v (output %q)", got, tt.want, buf.String())
			}
		})
	}
}

func TestLogger_JSONRecord(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf,
		WithLevel(LevelTrace),
		WithFormat(FormatJSON),
		WithTimeLayout("none"))

	logger.TraceContext(t.Context(), "converted", slog.String("postfix", "1 2 +"))

	var rec map[string]any
	if err := json.Unmarshal(buf.Bytes(), &rec); err != nil {
		t.Fatalf("unmarshal %q: %v", buf.String(), err)
	}

	if rec["level"] != "TRACE" {
		t.Errorf("level = %v, want TRACE", rec["level"])
	}

	if rec["msg"] != "converted" {
		t.Errorf("msg = %v, want converted", rec["msg"])
	}

	if rec["postfix"] != "1 2 +" {
		t.Errorf("postfix = %v, want %q", rec["postfix"], "1 2 +")
	}

	if _, ok := rec["time"]; ok {
		t.Error("time present with layout none")
	}
}

func TestLogger_Caller(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithCaller(true), WithFormat(FormatJSON))
	logger.Info("here")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("caller does not name the test file: %s", buf.String())
	}
}

func TestLogger_Wrap_KeepsBase(t *testing.T) {
	var buf bytes.Buffer

	base := Make(&buf, WithLevel(LevelDebug), WithPretty(false))
	wrapped := base.Wrap(WithFormat(FormatJSON))

	if wrapped.Level() != LevelDebug {
		t.Errorf("Level() = %v, want %v", wrapped.Level(), LevelDebug)
	}

	wrapped.Debug("wrapped")

	if !strings.HasPrefix(buf.String(), "{") {
		t.Errorf("expected JSON output, got %q", buf.String())
	}

	if base.Format() != FormatText {
		t.Error("Wrap modified the receiver")
	}
}

func TestPrettyHandler(t *testing.T) {
	var buf bytes.Buffer

	logger := Make(&buf, WithTimeLayout("none")).
		With(slog.String("source", "args"))

	logger.Error("evaluation failed",
		slog.Any("error", errors.New("division by zero")),
		slog.Group("at", slog.Int("line", 2)))

	out := buf.String()

	for _, want := range []string{
		"ERROR",
		"evaluation failed",
		"source",
		"args",
		`"division by zero"`,
		"at.line",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}

	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected exactly one line, got %q", out)
	}
}

type valuer struct{}

func (valuer) LogValue() slog.Value {
	return slog.GroupValue(slog.String("kind", "syntax error"))
}

func TestPrettyHandler_ResolvesLogValuer(t *testing.T) {
	var buf bytes.Buffer

	Make(&buf, WithTimeLayout("none")).Info("failed", slog.Any("error", valuer{}))

	if !strings.Contains(buf.String(), "error.kind") {
		t.Errorf("LogValuer group not expanded: %q", buf.String())
	}
}

func TestLogger_NilContext(t *testing.T) {
	var buf bytes.Buffer

	//nolint:staticcheck // nil context is tolerated
	Make(&buf).InfoContext(nil, "no context")

	if !strings.Contains(buf.String(), "no context") {
		t.Errorf("message not logged: %q", buf.String())
	}
}
