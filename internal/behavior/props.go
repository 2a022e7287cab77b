// Package behavior provides the listbox behaviors: list navigation, the two
// focus strategies and the two selection strategies. Each is a descriptor
// over the shared property vocabulary declared here; compose them with
// core.Compose, navigation first.
package behavior

import (
	"errors"

	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/primitives"
)

// ErrMultipleSelection is returned when a single-selection policy is
// configured with more than one selected item.
var ErrMultipleSelection = errors.New("multiple selection under a single-selection policy")

// Orientation of a list. The zero value behaves as Vertical.
type Orientation string

const (
	Vertical   Orientation = "vertical"
	Horizontal Orientation = "horizontal"
)

// Direction of text. The zero value behaves as LTR.
type Direction string

const (
	LTR Direction = "ltr"
	RTL Direction = "rtl"
)

// Shared property vocabulary.
const (
	Items              = primitives.Prop[[]Item]("items")
	Active             = primitives.Prop[uuid.UUID]("active")
	Activated          = primitives.Prop[uuid.UUID]("activated")
	Selected           = primitives.Prop[uuid.UUID]("selected")
	Selection          = primitives.Prop[[]uuid.UUID]("selection")
	Tabindex           = primitives.Prop[int]("tabindex")
	ActiveDescendantID = primitives.Prop[string]("activeDescendantId")
	Disabled           = primitives.Prop[bool]("disabled")
	Focused            = primitives.Prop[*primitives.FocusRequest]("focused")
	OrientationProp    = primitives.Prop[Orientation]("orientation")
	DirectionProp      = primitives.Prop[Direction]("direction")
	ElementProp        = primitives.Prop[primitives.Element]("element")
	DocumentProp       = primitives.Prop[primitives.Document]("document")
)

func identity(_ *primitives.State, prev any) any { return prev }

// activeItem returns the item named by the composed active property.
func activeItem(s *primitives.State) (Item, bool) {
	return FindItem(Items.Get(s), Active.Get(s))
}

// canActivate reports whether the item at i may become active.
func canActivate(s *primitives.State, items []Item, i int) bool {
	if i < 0 || i >= len(items) {
		return false
	}
	return !Disabled.Get(s) && !items[i].IsDisabled()
}

// SelectedItems returns the selection filtered to identities still present
// in items.
func SelectedItems(s *primitives.State) []uuid.UUID {
	return Present(Selection.Get(s), Items.Get(s))
}
