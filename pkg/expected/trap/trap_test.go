package trap

import (
	"strings"
	"testing"
)

func TestPanicking(t *testing.T) {
	t.Parallel()
	defer func() {
		msg, ok := recover().(string)
		if !ok || !strings.Contains(msg, "boom") {
			t.Fatalf("expected panic carrying the detail, got %v", msg)
		}
	}()
	Panicking("boom")
}

func TestFireUsesDefault(t *testing.T) {
	old := Default
	defer func() { Default = old }()

	var got any
	Default = func(detail any) { got = detail }

	Fire(nil, "detail")
	if got != "detail" {
		t.Fatalf("expected Fire to fall back to Default, got %v", got)
	}
}

func TestFirePrefersGivenHandler(t *testing.T) {
	old := Default
	defer func() { Default = old }()
	Default = func(any) { t.Fatal("Default must not run when a handler is given") }

	var got any
	Fire(func(detail any) { got = detail }, 7)
	if got != 7 {
		t.Fatalf("expected given handler to run, got %v", got)
	}
}

func TestUnreachable(t *testing.T) {
	old := Default
	defer func() { Default = old }()

	var got any
	Default = func(detail any) { got = detail }

	Unreachable("impossible path")
	s, ok := got.(string)
	if !ok || !strings.Contains(s, "impossible path") {
		t.Fatalf("expected unreachable marker, got %v", got)
	}
}
