package behavior

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/primitives"
)

var nextItemID atomic.Int64

// Item is one option of a list widget. Identity is the stable key used by
// active and selected; ID is the DOM id referenced by aria-activedescendant.
type Item struct {
	Identity uuid.UUID
	ID       string
	Label    string
	Element  primitives.Element
	Disabled primitives.Readable[bool]
	Tabindex primitives.Readable[int]
}

// ItemOption configures an Item.
type ItemOption func(*Item)

// WithLabel sets the display label.
func WithLabel(label string) ItemOption {
	return func(it *Item) { it.Label = label }
}

// WithElement sets the element that receives focus under roving tabindex.
func WithElement(el primitives.Element) ItemOption {
	return func(it *Item) { it.Element = el }
}

// WithItemDisabled makes the item's disabled flag follow r.
func WithItemDisabled(r primitives.Readable[bool]) ItemOption {
	return func(it *Item) { it.Disabled = r }
}

// WithIdentity overrides the generated identity.
func WithIdentity(id uuid.UUID) ItemOption {
	return func(it *Item) { it.Identity = id }
}

// WithID overrides the generated DOM id.
func WithID(id string) ItemOption {
	return func(it *Item) { it.ID = id }
}

// NewItem creates an item with a fresh identity and DOM id.
func NewItem(opts ...ItemOption) Item {
	it := Item{
		Identity: uuid.New(),
		ID:       fmt.Sprintf("ariax-option-%d", nextItemID.Add(1)),
		Tabindex: primitives.Const(-1),
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

// IsDisabled reads the item's disabled flag.
func (it Item) IsDisabled() bool {
	return primitives.Get(it.Disabled)
}

// TabindexValue reads the item's tabindex, -1 when none is set.
func (it Item) TabindexValue() int {
	if it.Tabindex == nil {
		return -1
	}
	return it.Tabindex.Get()
}

// SnapshotValue returns a plain representation for serialization.
func (it Item) SnapshotValue() any {
	return map[string]any{
		"identity": it.Identity.String(),
		"id":       it.ID,
		"label":    it.Label,
		"disabled": it.IsDisabled(),
		"tabindex": it.TabindexValue(),
	}
}

// FindItem returns the item whose identity is id. The nil identity never matches.
func FindItem(items []Item, id uuid.UUID) (Item, bool) {
	if i := IndexOf(items, id); i >= 0 {
		return items[i], true
	}
	return Item{}, false
}

// IndexOf returns the index of the item whose identity is id, or -1.
func IndexOf(items []Item, id uuid.UUID) int {
	if id == uuid.Nil {
		return -1
	}
	for i, it := range items {
		if it.Identity == id {
			return i
		}
	}
	return -1
}

// FirstActivatable returns the first item that is not disabled.
func FirstActivatable(items []Item) (Item, bool) {
	for _, it := range items {
		if !it.IsDisabled() {
			return it, true
		}
	}
	return Item{}, false
}

// Present filters ids down to identities that still name an item, keeping order.
func Present(ids []uuid.UUID, items []Item) []uuid.UUID {
	var out []uuid.UUID
	for _, id := range ids {
		if IndexOf(items, id) >= 0 {
			out = append(out, id)
		}
	}
	return out
}

// Contains reports whether el is the element of one of items.
func Contains(items []Item, el primitives.Element) bool {
	if el == nil {
		return false
	}
	for _, it := range items {
		if primitives.Equal(it.Element, el) {
			return true
		}
	}
	return false
}
