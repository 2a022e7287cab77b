// Package benchmarks provides performance benchmarks for composing and
// applying behavior descriptors.
package benchmarks

import (
	"fmt"
	"testing"

	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

func listbox(b *testing.B) primitives.Descriptor {
	b.Helper()
	sel, err := behavior.SelectionFollowsFocus(behavior.SelectionOptions{})
	if err != nil {
		b.Fatal(err)
	}
	return core.Compose(
		behavior.ListNavigation(behavior.ListNavigationOptions{Wrap: true}),
		behavior.ActiveDescendantFocus(),
		sel,
	)
}

func BenchmarkCompose(b *testing.B) {
	for _, n := range []int{2, 8, 32} {
		b.Run(fmt.Sprintf("descriptors=%d", n), func(b *testing.B) {
			ds := GenChain(n)
			b.ReportAllocs()
			for b.Loop() {
				core.Compose(ds...)
			}
		})
	}
}

func BenchmarkApply(b *testing.B) {
	d := listbox(b)
	s, ds := GenListboxState(GenItems(100))
	b.ReportAllocs()
	for b.Loop() {
		a, err := core.Apply(s, d, ds)
		if err != nil {
			b.Fatal(err)
		}
		a.Release()
	}
}

func BenchmarkTransitionChain(b *testing.B) {
	for _, n := range []int{1, 8, 32} {
		b.Run(fmt.Sprintf("depth=%d", n), func(b *testing.B) {
			count := primitives.NewCell(0)
			initial := primitives.NewState(map[string]any{"count": count})
			ds := primitives.NewDispatchers(primitives.KeyDown)
			a, err := core.Apply(initial, core.Compose(GenChain(n)...), ds)
			if err != nil {
				b.Fatal(err)
			}
			defer a.Release()
			i := 0
			b.ReportAllocs()
			for b.Loop() {
				i++
				count.Set(i)
				if got := a.State().Read("count").(int); got != i+n {
					b.Fatalf("count = %d, want %d", got, i+n)
				}
			}
		})
	}
}

func BenchmarkDynamicSwap(b *testing.B) {
	wrap := behavior.ListNavigation(behavior.ListNavigationOptions{Wrap: true})
	clamp := behavior.ListNavigation(behavior.ListNavigationOptions{})
	s, ds := GenListboxState(GenItems(100))
	d := primitives.NewCell(wrap)
	da, err := core.ApplyDynamic(s, d, ds)
	if err != nil {
		b.Fatal(err)
	}
	defer da.Release()
	b.ReportAllocs()
	for i := 0; b.Loop(); i++ {
		if i%2 == 0 {
			d.Set(clamp)
		} else {
			d.Set(wrap)
		}
	}
}
