package primitives

import "testing"

func TestPatchReflectedInChain(t *testing.T) {
	p := NewPatchChain(func() int { return 0 })
	p.Patch(func(v int) int { return v + 1 })
	if got := p.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}
}

func TestPatchFollowsParent(t *testing.T) {
	s := NewCell(0)
	p := NewPatchChain(s.Get)
	p.Patch(func(v int) int { return v + 1 })
	s.Set(1)
	if got := p.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
}

func TestPatchWrite(t *testing.T) {
	p := NewPatchChain(func() int { return 0 })
	patch := p.Patch(func(v int) int { return v + 1 })
	patch.Set(3)
	if got := p.Get(); got != 3 {
		t.Errorf("Get() = %d, want 3", got)
	}
}

func TestPatchFreezesOnDisconnect(t *testing.T) {
	tests := []struct {
		name  string
		write *int
		want  int
	}{
		{name: "computed value", want: 1},
		{name: "explicit value", write: ptr(5), want: 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			connected := NewCell(true)
			p := NewPatchChain(func() int { return 0 })
			patch := p.Patch(func(v int) int { return v + 1 }, WithConnected(connected))
			if tt.write != nil {
				patch.Set(*tt.write)
			}
			if got := p.Get(); got != tt.want {
				t.Errorf("Get() connected = %d, want %d", got, tt.want)
			}
			connected.Set(false)
			if got := p.Get(); got != tt.want {
				t.Errorf("Get() disconnected = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestPatchPassesThroughAfterUpstreamChange(t *testing.T) {
	connected := NewCell(true)
	s := NewCell(0)
	p := NewPatchChain(s.Get)
	runs := 0
	p.Patch(func(v int) int {
		runs++
		return v + 1
	}, WithConnected(connected))
	p.Get()
	connected.Set(false)
	if got := p.Get(); got != 1 {
		t.Errorf("Get() = %d, want frozen 1", got)
	}
	s.Set(10)
	if got := p.Get(); got != 10 {
		t.Errorf("Get() = %d, want pass-through 10", got)
	}
	if runs != 1 {
		t.Errorf("patch computation ran %d times, want 1", runs)
	}
}

func TestPatchIgnoresWritesWhileDisconnected(t *testing.T) {
	connected := NewCell(true)
	p := NewPatchChain(func() int { return 0 })
	patch := p.Patch(func(v int) int { return v + 1 }, WithConnected(connected))
	p.Get()
	connected.Set(false)
	patch.Set(99)
	if got := p.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}
}

func TestPatchStacks(t *testing.T) {
	connected := NewCell(true)
	s := NewCell(0)
	p := NewPatchChain(s.Get)
	p.Patch(func(v int) int { return v + 1 }, WithConnected(connected))
	p.Patch(func(v int) int { return v * 2 })
	if got := p.Get(); got != 2 {
		t.Errorf("Get() = %d, want 2", got)
	}
	connected.Set(false)
	if got := p.Get(); got != 2 {
		t.Errorf("Get() after disconnect = %d, want 2", got)
	}
	s.Set(3)
	if got := p.Get(); got != 6 {
		t.Errorf("Get() after upstream change = %d, want 6", got)
	}
}

func TestPatchTracksComputationDependencies(t *testing.T) {
	s := NewCell(0)
	o := NewCell(0)
	p := NewPatchChain(s.Get)
	p.Patch(func(v int) int { return v + o.Get() })
	if got := p.Get(); got != 0 {
		t.Errorf("Get() = %d, want 0", got)
	}
	o.Set(1)
	if got := p.Get(); got != 1 {
		t.Errorf("Get() = %d, want 1", got)
	}
}

func ptr[T any](v T) *T { return &v }
