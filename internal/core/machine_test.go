package core

import (
	"context"
	"errors"
	"testing"

	"github.com/comalice/ariax/internal/primitives"
)

const (
	propCount    = primitives.Prop[int]("count")
	propDouble   = primitives.Prop[int]("double")
	propDisabled = primitives.Prop[bool]("disabled")
	propLabel    = primitives.Prop[string]("label")
)

// counterMachine manages count (incremented on Enter unless disabled) and
// double (twice count, read through the applied state).
func counterMachine() primitives.Descriptor {
	return primitives.Descriptor{
		Name: "counter",
		Transitions: map[string]primitives.TransitionFunc{
			"count": func(_ *primitives.State, prev any) any { return prev },
			"double": func(s *primitives.State, _ any) any {
				return propCount.Get(s) * 2
			},
		},
		Events: map[primitives.EventType]primitives.EventHandler{
			primitives.KeyDown: func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				if ev.Key == primitives.KeyEnter && !propDisabled.Get(s) {
					_ = propCount.Set(m, propCount.Get(s)+1)
					ev.PreventDefault()
				}
			},
		},
	}
}

func initialCounterState() (*primitives.State, *primitives.Cell[int], *primitives.Cell[bool]) {
	count := primitives.NewCell(1)
	disabled := primitives.NewCell(false)
	return primitives.NewState(map[string]any{
		"count":    count,
		"double":   primitives.NewCell(0),
		"disabled": disabled,
		"label":    "static",
	}), count, disabled
}

func TestApplyComputesManagedProperties(t *testing.T) {
	initial, _, _ := initialCounterState()
	a, err := Apply(initial, counterMachine(), primitives.NewDispatchers(primitives.KeyDown))
	if err != nil {
		t.Fatal(err)
	}
	s := a.State()
	if got := propCount.Get(s); got != 1 {
		t.Errorf("count = %d, want 1", got)
	}
	if got := propDouble.Get(s); got != 2 {
		t.Errorf("double = %d, want 2", got)
	}
	if got := propLabel.Get(s); got != "static" {
		t.Errorf("label = %q, want pass-through", got)
	}
	if v, _ := s.Get("disabled"); v != mustGet(initial, "disabled") {
		t.Error("unmanaged reactive property was not passed through by reference")
	}
}

func TestApplyHandlesEvents(t *testing.T) {
	initial, _, disabled := initialCounterState()
	ds := primitives.NewDispatchers(primitives.KeyDown)
	a, err := Apply(initial, counterMachine(), ds)
	if err != nil {
		t.Fatal(err)
	}
	ev := primitives.NewKeyEvent(primitives.KeyEnter)
	ds.Dispatch(ev)
	if !ev.DefaultPrevented() {
		t.Error("handler did not prevent default")
	}
	if got := propDouble.Get(a.State()); got != 4 {
		t.Errorf("double = %d, want 4 (sibling sees handler write)", got)
	}
	disabled.Set(true)
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if got := propCount.Get(a.State()); got != 2 {
		t.Errorf("count = %d, want 2 while disabled", got)
	}
}

func TestApplyFollowsInitialChanges(t *testing.T) {
	initial, count, _ := initialCounterState()
	ds := primitives.NewDispatchers(primitives.KeyDown)
	a, err := Apply(initial, counterMachine(), ds)
	if err != nil {
		t.Fatal(err)
	}
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	count.Set(10)
	if got := propCount.Get(a.State()); got != 10 {
		t.Errorf("count = %d, want 10 after initial change", got)
	}
}

func TestApplyMissingDispatcher(t *testing.T) {
	initial, _, _ := initialCounterState()
	_, err := Apply(initial, counterMachine(), primitives.NewDispatchers(primitives.FocusIn))
	if !errors.Is(err, ErrMissingDispatcher) {
		t.Errorf("Apply() error = %v, want ErrMissingDispatcher", err)
	}
}

func TestApplyInvalidDescriptor(t *testing.T) {
	initial, _, _ := initialCounterState()
	d := primitives.Descriptor{Transitions: map[string]primitives.TransitionFunc{"count": nil}}
	_, err := Apply(initial, d, nil)
	if !errors.Is(err, primitives.ErrInvalidDescriptor) {
		t.Errorf("Apply() error = %v, want ErrInvalidDescriptor", err)
	}
}

func TestReleaseStopsHandlers(t *testing.T) {
	initial, _, _ := initialCounterState()
	ds := primitives.NewDispatchers(primitives.KeyDown)
	a, err := Apply(initial, counterMachine(), ds)
	if err != nil {
		t.Fatal(err)
	}
	a.Release()
	a.Release()
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if got := propCount.Get(a.State()); got != 1 {
		t.Errorf("count = %d, want 1 after Release", got)
	}
	if ds[primitives.KeyDown].Len() != 0 {
		t.Errorf("listeners = %d, want 0", ds[primitives.KeyDown].Len())
	}
	if !a.Released() {
		t.Error("Released() = false")
	}
}

type recordingPublisher struct {
	changes []Change
}

func (p *recordingPublisher) Publish(_ context.Context, c Change) error {
	p.changes = append(p.changes, c)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func TestApplyPublishesChanges(t *testing.T) {
	initial, _, _ := initialCounterState()
	ds := primitives.NewDispatchers(primitives.KeyDown)
	pub := &recordingPublisher{}
	a, err := Apply(initial, counterMachine(), ds, WithPublisher(pub))
	if err != nil {
		t.Fatal(err)
	}
	// one initial change per managed property
	if len(pub.changes) != 2 {
		t.Fatalf("initial changes = %d, want 2", len(pub.changes))
	}
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if len(pub.changes) != 4 {
		t.Fatalf("changes = %d, want 4", len(pub.changes))
	}
	last := pub.changes[len(pub.changes)-1]
	if last.Machine != "counter" || last.Version != a.Version() {
		t.Errorf("last change = %+v", last)
	}
	a.Release()
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if len(pub.changes) != 4 {
		t.Errorf("changes after Release = %d, want 4", len(pub.changes))
	}
}

func TestApplyMiddlewareWrapsHandlers(t *testing.T) {
	initial, _, _ := initialCounterState()
	ds := primitives.NewDispatchers(primitives.KeyDown)
	var order []string
	mw := func(tag string) Middleware {
		return func(_ primitives.EventType, machine string, h primitives.EventHandler) primitives.EventHandler {
			return func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
				order = append(order, tag+":"+machine)
				h(m, s, ev)
			}
		}
	}
	if _, err := Apply(initial, counterMachine(), ds, WithMiddleware(mw("inner"), mw("outer"))); err != nil {
		t.Fatal(err)
	}
	ds.Dispatch(primitives.NewKeyEvent(primitives.KeyEnter))
	if len(order) != 2 || order[0] != "outer:counter" || order[1] != "inner:counter" {
		t.Errorf("order = %v, want [outer:counter inner:counter]", order)
	}
}

func mustGet(s *primitives.State, name string) any {
	v, _ := s.Get(name)
	return v
}
