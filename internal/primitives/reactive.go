package primitives

import (
	"errors"
	"reflect"
	"slices"
)

// ErrCycle is the panic value raised when a derived value depends on itself.
var ErrCycle = errors.New("reactive: dependency cycle detected")

// Readable is any reactive value that can be read. Reads inside a Computed,
// Linked or Effect are recorded as dependencies.
type Readable[T any] interface {
	Get() T
}

// Writable is a reactive value that can also be overwritten.
type Writable[T any] interface {
	Readable[T]
	Set(T)
}

// Value is the type-erased read side of a reactive value, used by State.
type Value interface {
	Any() any
}

// AnySetter is the type-erased write side of a reactive value, used by Mutable.
type AnySetter interface {
	SetAny(any)
}

type nodeState uint8

const (
	stateDirty nodeState = iota // never computed
	stateCheck                  // an upstream value may have changed
	stateClean
)

type dep struct {
	n       *node
	version uint64
}

// node is one vertex of the dependency graph. Cells only carry a version and
// observers; derived nodes also carry deps and a recompute function.
type node struct {
	version   uint64
	state     nodeState
	computing bool
	deps      []dep
	observers []*node
	recompute func() bool
	effect    *Effect
}

// The graph is owned by a single event loop; there is no locking.
var (
	tracker    *node
	pending    []*Effect
	batchDepth int
	flushing   bool
)

func (n *node) track() {
	t := tracker
	if t == nil || t == n {
		return
	}
	for _, d := range t.deps {
		if d.n == n {
			return
		}
	}
	t.deps = append(t.deps, dep{n: n, version: n.version})
	n.observers = append(n.observers, t)
}

func (n *node) unobserve(o *node) {
	if i := slices.Index(n.observers, o); i >= 0 {
		n.observers = slices.Delete(n.observers, i, i+1)
	}
}

func (n *node) detach() {
	for _, d := range n.deps {
		d.n.unobserve(n)
	}
	n.deps = nil
}

// refresh brings a derived node up to date, recomputing only when one of the
// dependencies it read last time has a newer version.
func (n *node) refresh() {
	if n.recompute == nil || n.state == stateClean {
		return
	}
	if n.computing {
		panic(ErrCycle)
	}
	if n.state == stateCheck {
		changed := false
		for _, d := range n.deps {
			d.n.refresh()
			if d.n.version != d.version {
				changed = true
				break
			}
		}
		if !changed {
			n.state = stateClean
			return
		}
	}
	n.run()
}

func (n *node) run() {
	n.detach()
	prev := tracker
	tracker = n
	n.computing = true
	defer func() {
		tracker = prev
		n.computing = false
	}()
	if n.recompute() {
		n.version++
	}
	n.state = stateClean
}

// invalidate pushes a "maybe changed" mark to every transitive observer and
// queues the effects it reaches.
func (n *node) invalidate() {
	for _, o := range slices.Clone(n.observers) {
		if o.state != stateClean {
			continue
		}
		o.state = stateCheck
		if o.effect != nil {
			pending = append(pending, o.effect)
		}
		o.invalidate()
	}
}

func flush() {
	if batchDepth > 0 || flushing {
		return
	}
	flushing = true
	defer func() { flushing = false }()
	for len(pending) > 0 {
		e := pending[0]
		pending = pending[1:]
		if e.stopped {
			continue
		}
		e.node.refresh()
	}
}

// Untracked runs fn without recording any reads as dependencies.
func Untracked[T any](fn func() T) T {
	prev := tracker
	tracker = nil
	defer func() { tracker = prev }()
	return fn()
}

// Batch defers effect execution until fn and every enclosing batch returned.
func Batch(fn func()) {
	batchDepth++
	defer func() {
		batchDepth--
		flush()
	}()
	fn()
}

// ReadAny reads v if it is reactive and returns it unchanged otherwise.
func ReadAny(v any) any {
	if r, ok := v.(Value); ok {
		return r.Any()
	}
	return v
}

// As converts a type-erased value to T, returning the zero value for nil or
// mismatched types.
func As[T any](v any) T {
	t, _ := v.(T)
	return t
}

// Equal reports whether a and b hold the same value. Values whose dynamic
// type is not comparable are always considered different.
func Equal[T any](a, b T) bool {
	va, vb := any(a), any(b)
	if va == nil || vb == nil {
		return va == nil && vb == nil
	}
	if !reflect.ValueOf(va).Comparable() || !reflect.ValueOf(vb).Comparable() {
		return false
	}
	return va == vb
}

type cellOptions[T any] struct {
	equal func(a, b T) bool
}

// CellOption configures a Cell or Computed.
type CellOption[T any] func(*cellOptions[T])

// WithEqual replaces the default equality used to suppress no-op updates.
func WithEqual[T any](fn func(a, b T) bool) CellOption[T] {
	return func(o *cellOptions[T]) { o.equal = fn }
}

func buildCellOptions[T any](opts []CellOption[T]) cellOptions[T] {
	o := cellOptions[T]{equal: Equal[T]}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Cell is a writable reactive value.
type Cell[T any] struct {
	node  node
	value T
	equal func(a, b T) bool
}

// NewCell creates a Cell holding v.
func NewCell[T any](v T, opts ...CellOption[T]) *Cell[T] {
	o := buildCellOptions(opts)
	c := &Cell[T]{value: v, equal: o.equal}
	c.node.state = stateClean
	return c
}

// Get returns the current value and records the read.
func (c *Cell[T]) Get() T {
	c.node.track()
	return c.value
}

// Set stores v and notifies observers unless v equals the current value.
func (c *Cell[T]) Set(v T) {
	if c.equal(c.value, v) {
		return
	}
	c.value = v
	c.node.version++
	c.node.invalidate()
	flush()
}

// Update sets the value to fn applied to the current value.
func (c *Cell[T]) Update(fn func(T) T) {
	c.Set(fn(c.value))
}

func (c *Cell[T]) Any() any      { return c.Get() }
func (c *Cell[T]) SetAny(v any) { c.Set(As[T](v)) }

// Computed is a lazily evaluated derived value. It recomputes at most once per
// change of the values it read during its previous run.
type Computed[T any] struct {
	node     node
	fn       func() T
	value    T
	hasValue bool
	equal    func(a, b T) bool
}

// NewComputed creates a Computed evaluated on first read.
func NewComputed[T any](fn func() T, opts ...CellOption[T]) *Computed[T] {
	o := buildCellOptions(opts)
	c := &Computed[T]{fn: fn, equal: o.equal}
	c.node.recompute = c.recompute
	return c
}

func (c *Computed[T]) recompute() bool {
	v := c.fn()
	if c.hasValue && c.equal(c.value, v) {
		return false
	}
	c.value = v
	c.hasValue = true
	return true
}

// Get returns the up-to-date value and records the read.
func (c *Computed[T]) Get() T {
	c.node.refresh()
	c.node.track()
	return c.value
}

func (c *Computed[T]) Any() any { return c.Get() }

// Previous is the last source and value seen by a Linked computation.
type Previous[S, T any] struct {
	Source S
	Value  T
}

// Linked is a writable derived value: it follows its source computation but
// can be overwritten with Set until the source changes again.
type Linked[T any] struct {
	outer *Computed[*Cell[T]]
	onSet func(T)
}

// NewLinked creates a Linked that resets to fn() whenever fn's dependencies change.
func NewLinked[T any](fn func() T, opts ...CellOption[T]) *Linked[T] {
	return NewLinkedFrom(fn, func(v T, _ *Previous[T, T]) T { return v }, opts...)
}

// NewLinkedFrom creates a Linked whose value is computation(source(), previous).
// previous is nil on the first run and reflects explicit Set calls afterwards.
func NewLinkedFrom[S, T any](source func() S, computation func(S, *Previous[S, T]) T, opts ...CellOption[T]) *Linked[T] {
	var prev *Previous[S, T]
	l := &Linked[T]{}
	l.outer = NewComputed(func() *Cell[T] {
		s := source()
		v := computation(s, prev)
		prev = &Previous[S, T]{Source: s, Value: v}
		return NewCell(v, opts...)
	})
	l.onSet = func(v T) {
		if prev != nil {
			prev.Value = v
		}
	}
	return l
}

// Get returns the current value and records the read.
func (l *Linked[T]) Get() T {
	return l.outer.Get().Get()
}

// Set overrides the value until the source changes.
func (l *Linked[T]) Set(v T) {
	Untracked(l.outer.Get).Set(v)
	l.onSet(v)
}

// Update sets the value to fn applied to the current value.
func (l *Linked[T]) Update(fn func(T) T) {
	l.Set(fn(Untracked(l.Get)))
}

func (l *Linked[T]) Any() any      { return l.Get() }
func (l *Linked[T]) SetAny(v any) { l.Set(As[T](v)) }

// Effect runs a function immediately and again after every change to a value
// it read.
type Effect struct {
	node    node
	fn      func()
	stopped bool
}

// NewEffect creates and runs an Effect.
func NewEffect(fn func()) *Effect {
	e := &Effect{fn: fn}
	e.node.effect = e
	e.node.recompute = func() bool {
		e.fn()
		return false
	}
	e.node.refresh()
	return e
}

// Stop detaches the effect from the graph. It never runs again.
func (e *Effect) Stop() {
	e.stopped = true
	e.node.detach()
}

type constant[T any] struct{ v T }

func (c constant[T]) Get() T   { return c.v }
func (c constant[T]) Any() any { return c.v }

// Const wraps a static value as a Readable.
func Const[T any](v T) Readable[T] {
	return constant[T]{v: v}
}

// Get reads r, treating a nil Readable as the zero value.
func Get[T any](r Readable[T]) T {
	if r == nil {
		var zero T
		return zero
	}
	return r.Get()
}
