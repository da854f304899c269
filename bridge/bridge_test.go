package bridge_test

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"runtime"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"

	"github.com/philipp01105/logonce/bridge"
	"github.com/philipp01105/logonce/core"
	"github.com/philipp01105/logonce/handler"
	"github.com/philipp01105/logonce/logger"
)

type recordingSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *recordingSink) WriteLine(line string) error {
	s.mu.Lock()
	s.lines = append(s.lines, line)
	s.mu.Unlock()
	return nil
}

func (s *recordingSink) Lines() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func newFacade(t *testing.T, level core.Level) (*logger.Facade, *recordingSink) {
	t.Helper()
	rec := &recordingSink{}
	f := logger.NewFacade()
	if err := f.Install(handler.NewDispatchBuilder().Chain(rec).Level(level).Build()); err != nil {
		t.Fatalf("Install() error = %v", err)
	}
	return f, rec
}

func line() int {
	_, _, l, _ := runtime.Caller(1)
	return l
}

func expectLines(t *testing.T, rec *recordingSink, want ...string) []string {
	t.Helper()
	lines := rec.Lines()
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d: %q", len(lines), len(want), lines)
	}
	for i, w := range want {
		if !strings.HasSuffix(lines[i], w) {
			t.Errorf("line %d = %q, want suffix %q", i, lines[i], w)
		}
	}
	return lines
}

func TestSlogHandler(t *testing.T) {
	f, rec := newFacade(t, core.InfoLevel)
	log := slog.New(bridge.NewSlogHandler(f))

	log.Debug("hidden")
	l := line() + 1
	log.Info("hello", "user", "alice", "n", 3)
	log.Warn("slow", slog.Duration("took", 1500*time.Millisecond))
	log.Error("failed", "err", errors.New("boom"))

	lines := expectLines(t, rec,
		"--- hello user=alice n=3",
		"--- slow took=1.5s",
		"--- failed err=boom",
	)
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) {
		t.Errorf("call site missing from %q", lines[0])
	}
	if !strings.Contains(lines[0], " INFO ") || !strings.Contains(lines[2], "ERROR ") {
		t.Errorf("levels wrong: %q", lines)
	}
}

func TestSlogHandler_Levels(t *testing.T) {
	f, rec := newFacade(t, core.TraceLevel)
	log := slog.New(bridge.NewSlogHandler(f))

	log.Log(context.Background(), slog.LevelDebug-4, "trace")
	log.Log(context.Background(), slog.LevelError+4, "fatal")

	lines := expectLines(t, rec, "--- trace", "--- fatal")
	if !strings.Contains(lines[0], "TRACE ") || !strings.Contains(lines[1], "ERROR ") {
		t.Errorf("levels wrong: %q", lines)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	f, _ := newFacade(t, core.WarnLevel)
	h := bridge.NewSlogHandler(f)
	if h.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Info enabled at Warn")
	}
	if !h.Enabled(context.Background(), slog.LevelError) {
		t.Error("Error disabled at Warn")
	}
}

func TestSlogHandler_AttrsGroupsAndTarget(t *testing.T) {
	f, rec := newFacade(t, core.TraceLevel)
	log := slog.New(bridge.NewSlogHandler(f)).
		With("target", "svc/api/auth", "svc", "api").
		WithGroup("req").
		With("id", 7)

	log.Info("login", slog.Group("user", "name", "bob", "admin", true))
	slog.New(bridge.NewSlogHandler(f)).Info("direct", "target", "x/y/z")

	lines := expectLines(t, rec,
		"--- login svc=api req.id=7 req.user.name=bob req.user.admin=true",
		"--- direct",
	)
	if !strings.Contains(lines[0], " auth:") {
		t.Errorf("target attr ignored: %q", lines[0])
	}
	if !strings.Contains(lines[1], " z:") {
		t.Errorf("target attr ignored: %q", lines[1])
	}
}

func TestZapCore(t *testing.T) {
	f, rec := newFacade(t, core.InfoLevel)
	zl := zap.New(bridge.NewZapCore(f))

	zl.Debug("hidden")
	l := line() + 1
	zl.Info("hello", zap.String("user", "alice"), zap.Int("n", 3))
	zl.Named("http.server").With(zap.Bool("tls", true)).Warn("slow", zap.Duration("took", time.Second))
	zl.Error("failed", zap.Error(errors.New("boom")))
	zl.DPanic("dpanic")

	lines := expectLines(t, rec,
		"--- hello user=alice n=3",
		"--- slow tls=true took=1s",
		"--- failed error=boom",
		"--- dpanic",
	)
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) {
		t.Errorf("call site missing from %q", lines[0])
	}
	if !strings.Contains(lines[1], " server:") {
		t.Errorf("named logger should become the target: %q", lines[1])
	}
	if !strings.Contains(lines[3], "ERROR ") {
		t.Errorf("DPanic should map to Error: %q", lines[3])
	}
	if err := zl.Sync(); err != nil {
		t.Errorf("Sync() error = %v", err)
	}
}

func TestZapCore_AddCaller(t *testing.T) {
	f, rec := newFacade(t, core.TraceLevel)
	zl := zap.New(bridge.NewZapCore(f), zap.AddCaller())

	l := line() + 1
	zl.Debug("with caller")

	lines := expectLines(t, rec, "--- with caller")
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) {
		t.Errorf("call site missing from %q", lines[0])
	}
	if !strings.Contains(lines[0], "DEBUG ") {
		t.Errorf("level wrong: %q", lines[0])
	}
}

func TestLogrusHook(t *testing.T) {
	f, rec := newFacade(t, core.DebugLevel)
	ll := logrus.New()
	ll.SetOutput(io.Discard)
	ll.SetLevel(logrus.TraceLevel)
	ll.AddHook(bridge.NewLogrusHook(f))

	ll.Trace("hidden")
	l := line() + 1
	ll.WithFields(logrus.Fields{"user": "alice", "n": 3}).Info("hello")
	ll.WithField("target", "svc/db").Warn("slow")
	ll.WithError(errors.New("boom")).Error("failed")

	lines := expectLines(t, rec,
		"--- hello n=3 user=alice",
		"--- slow",
		"--- failed error=boom",
	)
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) {
		t.Errorf("call site missing from %q", lines[0])
	}
	if !strings.Contains(lines[1], " db:") {
		t.Errorf("target field ignored: %q", lines[1])
	}
}

func TestLogrusHook_ReportCaller(t *testing.T) {
	f, rec := newFacade(t, core.TraceLevel)
	ll := logrus.New()
	ll.SetOutput(io.Discard)
	ll.SetLevel(logrus.TraceLevel)
	ll.SetReportCaller(true)
	ll.AddHook(bridge.NewLogrusHook(f))

	l := line() + 1
	ll.Trace("traced")

	lines := expectLines(t, rec, "--- traced")
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) || !strings.Contains(lines[0], "TRACE ") {
		t.Errorf("unexpected line %q", lines[0])
	}
	if got := len(bridge.NewLogrusHook(f).Levels()); got != len(logrus.AllLevels) {
		t.Errorf("Levels() returned %d levels", got)
	}
}

func TestZerologHook(t *testing.T) {
	f, rec := newFacade(t, core.InfoLevel)
	zl := zerolog.New(io.Discard).Level(zerolog.TraceLevel).Hook(bridge.NewZerologHook(f))

	zl.Debug().Msg("hidden")
	l := line() + 1
	zl.Info().Str("ignored", "field").Msg("hello")
	zl.Warn().Msg("slow")
	zl.Error().Msg("failed")
	zl.Log().Msg("no level")

	lines := expectLines(t, rec, "--- hello", "--- slow", "--- failed", "--- no level")
	if !strings.Contains(lines[0], fmt.Sprintf(" bridge_test:%d ", l)) {
		t.Errorf("call site missing from %q", lines[0])
	}
	if !strings.Contains(lines[3], " INFO ") {
		t.Errorf("NoLevel should map to Info: %q", lines[3])
	}
}

func TestZerologHook_WithTarget(t *testing.T) {
	f, rec := newFacade(t, core.TraceLevel)
	zl := zerolog.New(io.Discard).Level(zerolog.TraceLevel).
		Hook(bridge.NewZerologHook(f).WithTarget("svc/cache"))

	zl.Debug().Msg("evict")

	lines := expectLines(t, rec, "--- evict")
	if !strings.Contains(lines[0], "DEBUG cache:") {
		t.Errorf("unexpected line %q", lines[0])
	}
}

func TestBridges_NoBackend(t *testing.T) {
	f := logger.NewFacade()

	slog.New(bridge.NewSlogHandler(f)).Error("dropped")
	zap.New(bridge.NewZapCore(f)).Error("dropped")

	ll := logrus.New()
	ll.SetOutput(io.Discard)
	ll.AddHook(bridge.NewLogrusHook(f))
	ll.Error("dropped")

	zl := zerolog.New(io.Discard).Hook(bridge.NewZerologHook(f))
	zl.Error().Msg("dropped")
}
