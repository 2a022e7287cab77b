package primitives

// PatchChain is a derived value that consumers can override by layering
// patches on top of it. Each patch computes from the output of the one below.
// Reconnecting a disconnected patch is not supported: once disconnected, a
// patch holds its last value until the chain below it changes, and from then
// on passes the lower value through.
type PatchChain[T any] struct {
	tail *Cell[Readable[T]]
}

type patchOptions struct {
	connected Readable[bool]
}

// PatchOption configures a single Patch call.
type PatchOption func(*patchOptions)

// WithConnected ties the patch to a connection flag.
func WithConnected(connected Readable[bool]) PatchOption {
	return func(o *patchOptions) { o.connected = connected }
}

// NewPatchChain creates a chain whose base value is fn().
func NewPatchChain[T any](fn func() T) *PatchChain[T] {
	return &PatchChain[T]{tail: NewCell[Readable[T]](NewComputed(fn))}
}

// Get returns the output of the topmost patch.
func (p *PatchChain[T]) Get() T {
	return p.tail.Get().Get()
}

func (p *PatchChain[T]) Any() any { return p.Get() }

type patchSource[T any] struct {
	connected bool
	parent    T
}

// Patch layers fn over the current top of the chain and returns the new
// layer. Writes to the returned value override it until the value below
// changes; writes made while disconnected are ignored.
func (p *PatchChain[T]) Patch(fn func(parent T) T, opts ...PatchOption) Writable[T] {
	var o patchOptions
	for _, opt := range opts {
		opt(&o)
	}
	parent := Untracked(p.tail.Get)
	connected := o.connected
	l := NewLinkedFrom(
		func() patchSource[T] {
			c := true
			if connected != nil {
				c = connected.Get()
			}
			return patchSource[T]{connected: c, parent: parent.Get()}
		},
		func(s patchSource[T], prev *Previous[patchSource[T], T]) T {
			if s.connected {
				return fn(s.parent)
			}
			if prev != nil && prev.Source.connected {
				return prev.Value
			}
			return s.parent
		},
	)
	p.tail.Set(l)
	return &patch[T]{linked: l, connected: connected}
}

type patch[T any] struct {
	linked    *Linked[T]
	connected Readable[bool]
}

func (p *patch[T]) Get() T { return p.linked.Get() }

func (p *patch[T]) Set(v T) {
	if p.connected != nil && !Untracked(p.connected.Get) {
		return
	}
	p.linked.Set(v)
}

func (p *patch[T]) Any() any      { return p.Get() }
func (p *patch[T]) SetAny(v any) { p.Set(As[T](v)) }
