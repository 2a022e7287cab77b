// Package ariax provides keyboard and focus behaviors for composite widgets:
// a listbox assembled from composable behavior descriptors and a grid with
// two-dimensional navigation.
//
// Widgets do not render anything. The host keeps the elements, forwards
// keyboard and focus events, and reads the derived state back (active item,
// selection, tabindex, focus requests) to update its view.
//
// The engine is single-threaded. All calls on a widget must come from the
// goroutine that owns its event loop.
package ariax

import (
	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/config"
	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

type (
	Descriptor   = primitives.Descriptor
	State        = primitives.State
	Mutable      = primitives.Mutable
	Event        = primitives.Event
	EventType    = primitives.EventType
	Element      = primitives.Element
	Document     = primitives.Document
	FocusRequest = primitives.FocusRequest

	Item       = behavior.Item
	ItemOption = behavior.ItemOption

	Orientation = behavior.Orientation
	Direction   = behavior.Direction

	// ListboxOptions selects the behaviors a listbox composes.
	ListboxOptions = config.ListboxOptions
)

// Prop is a typed property name in a widget state.
type Prop[T any] = primitives.Prop[T]

const (
	KeyDown  = primitives.KeyDown
	FocusIn  = primitives.FocusIn
	FocusOut = primitives.FocusOut

	Vertical   = behavior.Vertical
	Horizontal = behavior.Horizontal
	LTR        = behavior.LTR
	RTL        = behavior.RTL
)

// Sentinel errors surfaced by the facade.
var (
	ErrMultipleSelection = behavior.ErrMultipleSelection
	ErrConfig            = config.ErrConfig
)

// DefaultListboxOptions returns the defaults: no wrapping, active descendant
// focus, selection following focus, single selection, vertical, ltr.
func DefaultListboxOptions() ListboxOptions {
	return config.DefaultListboxOptions()
}

// NewItem creates a listbox item with a fresh identity.
func NewItem(opts ...ItemOption) Item {
	return behavior.NewItem(opts...)
}

func WithLabel(label string) ItemOption { return behavior.WithLabel(label) }

func WithElement(el Element) ItemOption { return behavior.WithElement(el) }

// WithItemDisabled makes the item's disabled flag follow r.
func WithItemDisabled(r primitives.Readable[bool]) ItemOption {
	return behavior.WithItemDisabled(r)
}

// Compose merges descriptors into one. Later descriptors see the values
// produced by earlier ones.
func Compose(ds ...Descriptor) Descriptor {
	return core.Compose(ds...)
}
