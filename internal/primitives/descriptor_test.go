package primitives

import (
	"errors"
	"testing"
)

func TestDescriptorValidate(t *testing.T) {
	id := func(_ *State, prev any) any { return prev }
	noop := func(*Mutable, *State, *Event) {}
	tests := []struct {
		name    string
		d       Descriptor
		wantErr bool
	}{
		{"empty", Descriptor{Name: "empty"}, false},
		{"valid", Descriptor{
			Name:        "ok",
			Transitions: map[string]TransitionFunc{"active": id},
			Events:      map[EventType]EventHandler{KeyDown: noop},
		}, false},
		{"empty property", Descriptor{Transitions: map[string]TransitionFunc{"": id}}, true},
		{"nil transition", Descriptor{Transitions: map[string]TransitionFunc{"active": nil}}, true},
		{"nil handler", Descriptor{Events: map[EventType]EventHandler{KeyDown: nil}}, true},
		{"empty event", Descriptor{Events: map[EventType]EventHandler{"": noop}}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.d.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrInvalidDescriptor) {
				t.Errorf("error %v does not wrap ErrInvalidDescriptor", err)
			}
		})
	}
}

func TestDescriptorManagedSorted(t *testing.T) {
	id := func(_ *State, prev any) any { return prev }
	d := Descriptor{Transitions: map[string]TransitionFunc{"b": id, "a": id, "c": id}}
	got := d.Managed()
	if len(got) != 3 || got[0] != "a" || got[1] != "b" || got[2] != "c" {
		t.Errorf("Managed() = %v, want [a b c]", got)
	}
	if !d.Manages("b") || d.Manages("z") {
		t.Error("Manages() mismatch")
	}
}

func TestComputeVersionStable(t *testing.T) {
	id := func(_ *State, prev any) any { return prev }
	a := Descriptor{Name: "nav", Transitions: map[string]TransitionFunc{"active": id}}
	b := Descriptor{Name: "nav", Transitions: map[string]TransitionFunc{"active": id}}
	c := Descriptor{Name: "nav", Transitions: map[string]TransitionFunc{"activated": id}}
	if ComputeVersion(a) != ComputeVersion(b) {
		t.Error("equal descriptors produced different versions")
	}
	if ComputeVersion(a) == ComputeVersion(c) {
		t.Error("different descriptors produced the same version")
	}
	if len(ComputeVersion(a)) != 16 {
		t.Errorf("version %q, want 16 hex chars", ComputeVersion(a))
	}
}
