// Package testutil provides an in-memory DOM for exercising widgets without
// a browser: elements with a parent chain and a document that tracks the
// focused element.
package testutil

import (
	"fmt"

	"github.com/comalice/ariax/internal/behavior"
	"github.com/comalice/ariax/internal/primitives"
)

// Document tracks which Element has focus.
type Document struct {
	active *Element
	log    []string
}

// NewDocument creates a document with nothing focused.
func NewDocument() *Document {
	return &Document{}
}

// HasFocus reports whether el is the focused element or one of its ancestors.
func (d *Document) HasFocus(el primitives.Element) bool {
	target, ok := el.(*Element)
	if !ok || target == nil {
		return false
	}
	for e := d.active; e != nil; e = e.parent {
		if e == target {
			return true
		}
	}
	return false
}

// Active returns the focused element, or nil.
func (d *Document) Active() *Element { return d.active }

// Blur clears focus.
func (d *Document) Blur() { d.active = nil }

// FocusLog returns the names of focused elements in order.
func (d *Document) FocusLog() []string { return d.log }

// Element is a named node. Focus makes it the document's active element.
type Element struct {
	Name   string
	doc    *Document
	parent *Element
}

// NewElement creates an element. parent may be nil.
func (d *Document) NewElement(name string, parent *Element) *Element {
	return &Element{Name: name, doc: d, parent: parent}
}

// Focus implements primitives.Element.
func (e *Element) Focus() {
	e.doc.active = e
	e.doc.log = append(e.doc.log, e.Name)
}

func (e *Element) String() string { return e.Name }

// Items creates n items whose elements are children of parent. Items at the
// indexes in disabled start disabled; the returned cells control each
// item's disabled flag.
func Items(doc *Document, parent *Element, n int, disabled ...int) ([]behavior.Item, []*primitives.Cell[bool]) {
	items := make([]behavior.Item, n)
	flags := make([]*primitives.Cell[bool], n)
	for i := range n {
		flags[i] = primitives.NewCell(false)
		label := fmt.Sprintf("item-%d", i)
		items[i] = behavior.NewItem(
			behavior.WithLabel(label),
			behavior.WithElement(doc.NewElement(label, parent)),
			behavior.WithItemDisabled(flags[i]),
		)
	}
	for _, i := range disabled {
		flags[i].Set(true)
	}
	return items, flags
}
