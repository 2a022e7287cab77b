package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentFocusContainment(t *testing.T) {
	doc := NewDocument()
	list := doc.NewElement("list", nil)
	child := doc.NewElement("child", list)
	other := doc.NewElement("other", nil)

	assert.False(t, doc.HasFocus(list))

	child.Focus()
	assert.True(t, doc.HasFocus(child))
	assert.True(t, doc.HasFocus(list), "ancestor contains focus")
	assert.False(t, doc.HasFocus(other))
	assert.Same(t, child, doc.Active())

	doc.Blur()
	assert.False(t, doc.HasFocus(list))
	assert.Equal(t, []string{"child"}, doc.FocusLog())
	assert.False(t, doc.HasFocus(nil))
}

func TestItems(t *testing.T) {
	doc := NewDocument()
	list := doc.NewElement("list", nil)
	items, flags := Items(doc, list, 3, 1)
	require.Len(t, items, 3)
	require.Len(t, flags, 3)

	assert.False(t, items[0].IsDisabled())
	assert.True(t, items[1].IsDisabled())
	assert.Equal(t, "item-2", items[2].Label)

	flags[1].Set(false)
	assert.False(t, items[1].IsDisabled())

	items[2].Element.Focus()
	assert.True(t, doc.HasFocus(list))
}
