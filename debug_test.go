package gauge

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })
	return &buf
}

func TestUpdateLogsAtDebug(t *testing.T) {
	buf := captureLogs(t)
	a, err := NewArc(nil, WithID("log1"))
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	_ = a.Update(WithValue(4))

	out := buf.String()
	if got := strings.Count(out, `msg="gauge update"`); got != 2 {
		t.Errorf("logged %d updates, want 2:\n%s", got, out)
	}
	for _, want := range []string{"kind=arc", "id=log1", "first=true", "changed=[value]"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestNoOpUpdateNotLogged(t *testing.T) {
	a, _ := NewArc(nil, WithValue(4))
	buf := captureLogs(t)
	_ = a.Update(WithValue(4))
	if buf.Len() != 0 {
		t.Errorf("unchanged update logged:\n%s", buf.String())
	}
}

func TestRejectedUpdateLogsWarning(t *testing.T) {
	a, _ := NewArc(nil)
	buf := captureLogs(t)
	_ = a.Update(WithMax(-1))
	out := buf.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "gauge update rejected") {
		t.Errorf("missing warning:\n%s", out)
	}
}

func TestDefaultLoggerSilent(t *testing.T) {
	SetLogger(nil)
	if Logger().Enabled(context.Background(), slog.LevelError) {
		t.Error("default logger should be disabled")
	}
}
