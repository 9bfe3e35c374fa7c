package pm

import (
	"reflect"
	"testing"
)

func TestFunctionRegistryRegisterAndCall(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("Double", func(args ...any) (any, error) {
		return args[0].(int) * 2, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Lookup is case-insensitive.
	result, err := registry.Call("double", 21)
	if err != nil {
		t.Fatalf("call: %v", err)
	}
	if result != 42 {
		t.Fatalf("expected 42, got %v", result)
	}
}

func TestFunctionRegistryRejectsDuplicatesAndNil(t *testing.T) {
	registry := NewFunctionRegistry()
	fn := func(...any) (any, error) { return nil, nil }

	if err := registry.Register("fn", fn); err != nil {
		t.Fatalf("register: %v", err)
	}
	if err := registry.Register("FN", fn); err == nil {
		t.Fatalf("expected duplicate error for case-insensitive name")
	}
	if err := registry.Register("", fn); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if err := registry.Register("nilfn", nil); err == nil {
		t.Fatalf("expected error for nil function")
	}
}

func TestFunctionRegistryCallUnknown(t *testing.T) {
	registry := NewFunctionRegistry()
	if _, err := registry.Call("missing"); err == nil {
		t.Fatalf("expected error for unregistered function")
	}
}

func TestFunctionRegistryCloneIsDetached(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("a", func(...any) (any, error) { return "a", nil }); err != nil {
		t.Fatalf("register: %v", err)
	}

	clone := registry.Clone()
	if err := clone.Register("b", func(...any) (any, error) { return "b", nil }); err != nil {
		t.Fatalf("register on clone: %v", err)
	}

	if got := registry.Names(); !reflect.DeepEqual(got, []string{"a"}) {
		t.Fatalf("clone registration leaked into original: %v", got)
	}
	if got := clone.Names(); !reflect.DeepEqual(got, []string{"a", "b"}) {
		t.Fatalf("expected clone to hold both, got %v", got)
	}
}

func TestFunctionRegistryNilReceiver(t *testing.T) {
	var registry *FunctionRegistry
	if registry.Clone() != nil {
		t.Fatalf("nil registry clone must be nil")
	}
	if registry.Names() != nil {
		t.Fatalf("nil registry names must be nil")
	}
	if _, err := registry.Call("fn"); err == nil {
		t.Fatalf("expected error calling through nil registry")
	}
}
