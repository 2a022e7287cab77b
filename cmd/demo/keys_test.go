package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comalice/ariax/internal/primitives"
)

func TestParseKeys(t *testing.T) {
	events, err := ParseKeys("down, Up  ArrowLeft,space,ctrl+a alt+x,Shift+End,q")
	require.NoError(t, err)

	var keys []string
	for _, ev := range events {
		keys = append(keys, ev.Key)
	}
	assert.Equal(t, []string{
		primitives.KeyArrowDown,
		primitives.KeyArrowUp,
		primitives.KeyArrowLeft,
		primitives.KeySpace,
		"a",
		"x",
		primitives.KeyEnd,
		"q",
	}, keys)
	assert.True(t, events[4].Ctrl)
	assert.True(t, events[5].Alt)
	assert.True(t, events[6].Shift)
	assert.False(t, events[0].Ctrl)
}

func TestParseKeysErrors(t *testing.T) {
	_, err := ParseKeys("down,pagedown")
	assert.ErrorIs(t, err, errUnknownKey)

	events, err := ParseKeys(" , ")
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestDecodeInput(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		key  string
		ctrl bool
	}{
		{"up", []byte("\x1b[A"), primitives.KeyArrowUp, false},
		{"down", []byte("\x1b[B"), primitives.KeyArrowDown, false},
		{"right", []byte("\x1bOC"), primitives.KeyArrowRight, false},
		{"left", []byte("\x1b[D"), primitives.KeyArrowLeft, false},
		{"home", []byte("\x1b[1~"), primitives.KeyHome, false},
		{"end", []byte("\x1b[F"), primitives.KeyEnd, false},
		{"escape", []byte{27}, primitives.KeyEscape, false},
		{"enter", []byte{'\r'}, primitives.KeyEnter, false},
		{"space", []byte{' '}, primitives.KeySpace, false},
		{"ctrl+a", []byte{1}, "a", true},
		{"letter", []byte("b"), "b", false},
		{"unicode", []byte("é"), "é", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, quit := decodeInput(tt.in)
			require.False(t, quit)
			require.NotNil(t, ev)
			assert.Equal(t, tt.key, ev.Key)
			assert.Equal(t, tt.ctrl, ev.Ctrl)
		})
	}

	_, quit := decodeInput([]byte{3})
	assert.True(t, quit)
	ev, quit := decodeInput([]byte("\x1b[Z"))
	assert.False(t, quit)
	assert.Nil(t, ev)
}
