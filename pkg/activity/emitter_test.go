package activity

import (
	"context"
	"testing"
)

func TestEmitterAppliesDefaultChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true})

	if err := emitter.Emit(context.Background(), Event{
		Verb:    "package.suspended",
		Package: "com.example.app",
	}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(capture.Events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(capture.Events))
	}
	if capture.Events[0].Channel != "pm" {
		t.Fatalf("expected default channel pm, got %q", capture.Events[0].Channel)
	}
}

func TestEmitterKeepsExplicitChannel(t *testing.T) {
	capture := &CaptureHook{}
	emitter := NewEmitter(Hooks{capture}, Config{Enabled: true, Channel: "audit"})

	if err := emitter.Emit(context.Background(), Event{
		Verb:    "package.suspended",
		Package: "com.example.app",
		Channel: "custom",
	}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if capture.Events[0].Channel != "custom" {
		t.Fatalf("expected explicit channel kept, got %q", capture.Events[0].Channel)
	}
}

func TestEmitterDisabled(t *testing.T) {
	capture := &CaptureHook{}

	disabled := NewEmitter(Hooks{capture}, Config{Enabled: false})
	if disabled.Enabled() {
		t.Fatalf("expected disabled emitter")
	}
	if err := disabled.Emit(context.Background(), Event{Verb: "v", Package: "p"}); err != nil {
		t.Fatalf("emit: %v", err)
	}
	if len(capture.Events) != 0 {
		t.Fatalf("disabled emitter must not deliver, got %d", len(capture.Events))
	}

	// Enabled but hookless emitters are inert too.
	empty := NewEmitter(nil, Config{Enabled: true})
	if empty.Enabled() {
		t.Fatalf("expected hookless emitter disabled")
	}

	var nilEmitter *Emitter
	if nilEmitter.Enabled() {
		t.Fatalf("nil emitter must report disabled")
	}
}

func TestBuildStateEvents(t *testing.T) {
	cases := []struct {
		name  string
		build func(StateEventInput) Event
		verb  string
	}{
		{"suspended", BuildSuspendedEvent, "package.suspended"},
		{"unsuspended", BuildUnsuspendedEvent, "package.unsuspended"},
		{"component enabled", BuildComponentEnabledEvent, "package.component.enabled"},
		{"component disabled", BuildComponentDisabledEvent, "package.component.disabled"},
		{"enabled state changed", BuildEnabledStateChangedEvent, "package.enabled_state.changed"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			event := tc.build(StateEventInput{
				Package:      "com.example.app",
				Component:    "com.example.app/.Main",
				Actor:        "com.policy.mdm",
				DeviceUserID: 10,
				Metadata:     map[string]any{"k": "v"},
			})
			if event.Verb != tc.verb {
				t.Fatalf("expected verb %q, got %q", tc.verb, event.Verb)
			}
			if event.Package != "com.example.app" || event.DeviceUserID != 10 {
				t.Fatalf("input fields not carried: %+v", event)
			}
			if event.Metadata["component"] != "com.example.app/.Main" {
				t.Fatalf("expected component mirrored into metadata, got %v", event.Metadata)
			}
			if event.Metadata["k"] != "v" {
				t.Fatalf("expected caller metadata kept, got %v", event.Metadata)
			}
		})
	}
}

func TestBuildStateEventClonesMetadata(t *testing.T) {
	metadata := map[string]any{"k": "v"}
	event := BuildSuspendedEvent(StateEventInput{
		Package:  "com.example.app",
		Metadata: metadata,
	})
	event.Metadata["k"] = "changed"
	if metadata["k"] != "v" {
		t.Fatalf("builder must clone caller metadata")
	}
}
