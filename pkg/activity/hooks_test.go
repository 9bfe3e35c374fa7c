package activity

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestHooksNotifyFansOut(t *testing.T) {
	first := &CaptureHook{}
	second := &CaptureHook{}
	hooks := Hooks{first, nil, second}

	if !hooks.Enabled() {
		t.Fatalf("expected enabled with hooks present")
	}

	err := hooks.Notify(context.Background(), Event{
		Verb:    "package.suspended",
		Package: "com.example.app",
		Actor:   "com.policy.mdm",
	})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(first.Events) != 1 || len(second.Events) != 1 {
		t.Fatalf("expected both hooks notified, got %d and %d", len(first.Events), len(second.Events))
	}
}

func TestHooksNotifyJoinsErrors(t *testing.T) {
	failing := &CaptureHook{Err: errors.New("sink down")}
	healthy := &CaptureHook{}
	hooks := Hooks{failing, healthy}

	err := hooks.Notify(context.Background(), Event{
		Verb:    "package.suspended",
		Package: "com.example.app",
	})
	if err == nil || !errors.Is(err, failing.Err) {
		t.Fatalf("expected joined error, got %v", err)
	}
	// A failing hook must not stop delivery to the others.
	if len(healthy.Events) != 1 {
		t.Fatalf("expected healthy hook notified, got %d", len(healthy.Events))
	}
}

func TestHooksNotifySkipsIncompleteEvents(t *testing.T) {
	capture := &CaptureHook{}
	hooks := Hooks{capture}

	if err := hooks.Notify(context.Background(), Event{Package: "com.example.app"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if err := hooks.Notify(context.Background(), Event{Verb: "package.suspended"}); err != nil {
		t.Fatalf("notify: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("expected incomplete events dropped, got %d", len(capture.Events))
	}
}

func TestNormalizeEventTrimsAndStamps(t *testing.T) {
	metadata := map[string]any{"k": "v"}
	event := NormalizeEvent(Event{
		Verb:     "  package.suspended  ",
		Package:  " com.example.app ",
		Actor:    " com.policy.mdm ",
		Metadata: metadata,
	})

	if event.Verb != "package.suspended" || event.Package != "com.example.app" || event.Actor != "com.policy.mdm" {
		t.Fatalf("expected trimmed fields, got %+v", event)
	}
	if event.OccurredAt.IsZero() {
		t.Fatalf("expected timestamp stamped")
	}
	event.Metadata["k"] = "changed"
	if metadata["k"] != "v" {
		t.Fatalf("normalization must clone metadata")
	}
}

func TestNormalizeEventKeepsExplicitTimestamp(t *testing.T) {
	stamp := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	event := NormalizeEvent(Event{Verb: "v", Package: "p", OccurredAt: stamp})
	if !event.OccurredAt.Equal(stamp) {
		t.Fatalf("expected explicit timestamp kept, got %v", event.OccurredAt)
	}
}

func TestHookFuncNil(t *testing.T) {
	var fn HookFunc
	if err := fn.Notify(context.Background(), Event{}); err != nil {
		t.Fatalf("nil hook func must be a no-op, got %v", err)
	}
}
