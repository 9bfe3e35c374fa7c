package pm

import (
	"reflect"
	"testing"

	"github.com/goliatone/go-pm/pkg/activity"
)

const testComponent = "com.example.app/.MainActivity"

func TestComponentSetsStayNilUntilWritten(t *testing.T) {
	setting := newTestSetting()
	setting.SetInstalled(true, 0)

	if setting.EnabledComponents(0) != nil {
		t.Fatalf("enabled set must stay nil until first write")
	}
	if setting.DisabledComponents(0) != nil {
		t.Fatalf("disabled set must stay nil until first write")
	}
	if got := setting.ComponentEnabledState(testComponent, 0); got != EnabledStateDefault {
		t.Fatalf("expected default state, got %v", got)
	}
}

func TestEnableDisableRestoreComponent(t *testing.T) {
	setting := newTestSetting()

	if !setting.DisableComponent(testComponent, 0) {
		t.Fatalf("first disable must report change")
	}
	if setting.DisableComponent(testComponent, 0) {
		t.Fatalf("repeated disable must report no change")
	}
	if got := setting.ComponentEnabledState(testComponent, 0); got != EnabledStateDisabled {
		t.Fatalf("expected disabled, got %v", got)
	}

	// Enabling moves it across; the disable override must not survive.
	if !setting.EnableComponent(testComponent, 0) {
		t.Fatalf("enable after disable must report change")
	}
	if setting.DisabledComponents(0).Contains(testComponent) {
		t.Fatalf("component must leave the disabled set on enable")
	}
	if got := setting.ComponentEnabledState(testComponent, 0); got != EnabledStateEnabled {
		t.Fatalf("expected enabled, got %v", got)
	}

	if !setting.RestoreComponent(testComponent, 0) {
		t.Fatalf("restore with override present must report change")
	}
	if setting.RestoreComponent(testComponent, 0) {
		t.Fatalf("restore with no override must report no change")
	}
	if got := setting.ComponentEnabledState(testComponent, 0); got != EnabledStateDefault {
		t.Fatalf("expected default after restore, got %v", got)
	}
}

func TestComponentEnabledSetWins(t *testing.T) {
	setting := newTestSetting()
	// Force the pathological both-sets membership through the raw setters.
	setting.SetEnabledComponents(NewComponentSet(testComponent), 0)
	setting.SetDisabledComponents(NewComponentSet(testComponent), 0)

	if got := setting.ComponentEnabledState(testComponent, 0); got != EnabledStateEnabled {
		t.Fatalf("enabled membership must win, got %v", got)
	}
}

func TestSetComponentsReferenceVsCopy(t *testing.T) {
	setting := newTestSetting()
	source := NewComponentSet(testComponent)

	setting.SetEnabledComponents(source, 0)
	source.Add("com.example.app/.Other")
	if !setting.EnabledComponents(0).Contains("com.example.app/.Other") {
		t.Fatalf("reference setter must share the caller's set")
	}

	copySource := NewComponentSet(testComponent)
	setting.SetEnabledComponentsCopy(copySource, 0)
	copySource.Add("com.example.app/.Other")
	if setting.EnabledComponents(0).Contains("com.example.app/.Other") {
		t.Fatalf("copy setter must detach from the caller's set")
	}

	setting.SetEnabledComponentsCopy(nil, 0)
	if setting.EnabledComponents(0) != nil {
		t.Fatalf("nil copy must clear the set back to absent")
	}
}

func TestComponentSetSorted(t *testing.T) {
	set := NewComponentSet("b", "a", "c")
	if got := set.Sorted(); !reflect.DeepEqual(got, []string{"a", "b", "c"}) {
		t.Fatalf("expected sorted members, got %v", got)
	}
	var empty ComponentSet
	if got := empty.Sorted(); got != nil {
		t.Fatalf("expected nil for empty set, got %v", got)
	}
}

func TestComponentEvents(t *testing.T) {
	capture := &activity.CaptureHook{}
	emitter := activity.NewEmitter(activity.Hooks{capture}, activity.Config{Enabled: true})
	setting := newTestSetting(WithActivityEmitter(emitter))

	setting.DisableComponent(testComponent, 0)
	setting.DisableComponent(testComponent, 0) // no change, no event
	setting.EnableComponent(testComponent, 0)

	if len(capture.Events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(capture.Events))
	}
	if capture.Events[0].Verb != "package.component.disabled" {
		t.Fatalf("unexpected first verb %q", capture.Events[0].Verb)
	}
	if capture.Events[1].Verb != "package.component.enabled" {
		t.Fatalf("unexpected second verb %q", capture.Events[1].Verb)
	}
	if capture.Events[0].Component != testComponent {
		t.Fatalf("expected component on event, got %q", capture.Events[0].Component)
	}
}
