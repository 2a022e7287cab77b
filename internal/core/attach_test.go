package core

import (
	"errors"
	"testing"

	"github.com/comalice/ariax/internal/primitives"
)

func TestAttachConnectDisconnect(t *testing.T) {
	base := primitives.NewCell(1)
	count := primitives.NewPatchChain(func() any { return base.Get() })
	state := primitives.NewState(map[string]any{"count": count, "disabled": false})
	ds := primitives.NewDispatchers(primitives.KeyDown)

	d := primitives.Descriptor{
		Name: "plus-ten",
		Transitions: map[string]primitives.TransitionFunc{
			"count": func(_ *primitives.State, prev any) any { return prev.(int) + 10 },
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.KeyDown: func(m *primitives.Mutable, s *primitives.State, _ *primitives.Event) {
				_ = propCount.Set(m, propCount.Get(s)+1)
			},
		},
	}
	a, err := Attach(state, d, ds)
	if err != nil {
		t.Fatal(err)
	}
	if got := propCount.Get(state); got != 1 {
		t.Errorf("count before connect = %d, want 1", got)
	}

	a.Connect()
	if !a.Connected() {
		t.Error("Connected() = false after Connect")
	}
	if got := propCount.Get(state); got != 11 {
		t.Errorf("count connected = %d, want 11", got)
	}
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if got := propCount.Get(state); got != 12 {
		t.Errorf("count after keydown = %d, want 12", got)
	}

	a.Disconnect()
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if got := propCount.Get(state); got != 12 {
		t.Errorf("count disconnected = %d, want frozen 12", got)
	}
	base.Set(5)
	if got := propCount.Get(state); got != 5 {
		t.Errorf("count after upstream change = %d, want pass-through 5", got)
	}

	a.Remove()
	if n := ds[primitives.KeyDown].Len(); n != 0 {
		t.Errorf("listeners after Remove = %d, want 0", n)
	}
}

func TestAttachRequiresPatchChains(t *testing.T) {
	state := primitives.NewState(map[string]any{"count": primitives.NewCell(1)})
	_, err := Attach(state, counterMachine(), primitives.NewDispatchers(primitives.KeyDown))
	if !errors.Is(err, ErrNotPatchable) {
		t.Errorf("Attach() error = %v, want ErrNotPatchable", err)
	}
}

func TestAttachTwoBehaviorsOnOneChain(t *testing.T) {
	count := primitives.NewPatchChain(func() any { return 1 })
	state := primitives.NewState(map[string]any{"count": count})
	double := primitives.Descriptor{Name: "double", Transitions: map[string]primitives.TransitionFunc{
		"count": func(_ *primitives.State, prev any) any { return prev.(int) * 2 },
	}}
	inc := primitives.Descriptor{Name: "inc", Transitions: map[string]primitives.TransitionFunc{
		"count": func(_ *primitives.State, prev any) any { return prev.(int) + 1 },
	}}
	a1, err := Attach(state, double, nil)
	if err != nil {
		t.Fatal(err)
	}
	a2, err := Attach(state, inc, nil)
	if err != nil {
		t.Fatal(err)
	}
	a1.Connect()
	a2.Connect()
	if got := propCount.Get(state); got != 3 {
		t.Errorf("count = %d, want 3", got)
	}
	a1.Disconnect()
	if got := propCount.Get(state); got != 3 {
		t.Errorf("count after disconnecting first = %d, want 3", got)
	}
}
