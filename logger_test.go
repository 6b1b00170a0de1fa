package curved

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger(t *testing.T) {
	if debugEnabled() {
		t.Fatal("default logger is enabled")
	}

	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { SetLogger(nil) })

	if _, err := NewCircularString(mustCoords(t, 0, 0, 1, 1), 0.01); err == nil {
		t.Fatal("two points make a circular string")
	}
	s := mustCircularString(t, 0.01, 0, 0, 1, 1, 2, 0)
	if _, err := s.Linearize(); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		`msg="rejected construction" kind=circularstring`,
		`msg="cached linearization"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("log doesn't contain %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	if debugEnabled() {
		t.Error("SetLogger(nil) didn't restore the silent logger")
	}
}
