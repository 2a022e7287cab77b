package main

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/comalice/ariax/internal/primitives"
)

var errUnknownKey = errors.New("unknown key")

var keyNames = map[string]string{
	"up":     primitives.KeyArrowUp,
	"down":   primitives.KeyArrowDown,
	"left":   primitives.KeyArrowLeft,
	"right":  primitives.KeyArrowRight,
	"enter":  primitives.KeyEnter,
	"space":  primitives.KeySpace,
	"esc":    primitives.KeyEscape,
	"escape": primitives.KeyEscape,
	"home":   primitives.KeyHome,
	"end":    primitives.KeyEnd,
}

// ParseKeys turns a script of key names separated by commas or spaces into
// keydown events. Names are case-insensitive arrow names ("down"), DOM key
// values ("ArrowDown") or single characters, optionally prefixed with
// "ctrl+", "alt+" or "shift+".
func ParseKeys(script string) ([]*primitives.Event, error) {
	fields := strings.FieldsFunc(script, func(r rune) bool { return r == ',' || unicode.IsSpace(r) })
	events := make([]*primitives.Event, 0, len(fields))
	for _, f := range fields {
		ev, err := parseKey(f)
		if err != nil {
			return nil, err
		}
		events = append(events, ev)
	}
	return events, nil
}

func parseKey(name string) (*primitives.Event, error) {
	var ctrl, alt, shift bool
	for {
		lower := strings.ToLower(name)
		switch {
		case strings.HasPrefix(lower, "ctrl+") && len(name) > 5:
			ctrl, name = true, name[5:]
			continue
		case strings.HasPrefix(lower, "alt+") && len(name) > 4:
			alt, name = true, name[4:]
			continue
		case strings.HasPrefix(lower, "shift+") && len(name) > 6:
			shift, name = true, name[6:]
			continue
		}
		break
	}
	key, ok := keyNames[strings.ToLower(name)]
	switch {
	case ok:
	case utf8.RuneCountInString(name) == 1:
		key = name
	case isDOMKey(name):
		key = name
	default:
		return nil, fmt.Errorf("%q: %w", name, errUnknownKey)
	}
	ev := primitives.NewKeyEvent(key)
	ev.Ctrl, ev.Alt, ev.Shift = ctrl, alt, shift
	return ev, nil
}

func isDOMKey(name string) bool {
	for _, k := range keyNames {
		if k == name {
			return true
		}
	}
	return false
}

// decodeInput translates one read from a raw terminal. quit is set for
// ctrl+c and ctrl+d. Unrecognised sequences yield a nil event.
func decodeInput(b []byte) (ev *primitives.Event, quit bool) {
	if len(b) == 0 {
		return nil, false
	}
	switch c := b[0]; {
	case c == 3 || c == 4:
		return nil, true
	case c == 27:
		return decodeEscape(b[1:]), false
	case c == '\r' || c == '\n':
		return primitives.NewKeyEvent(primitives.KeyEnter), false
	case c >= 1 && c <= 26:
		return primitives.NewKeyEvent(string(rune('a' + c - 1))).WithCtrl(), false
	}
	r, _ := utf8.DecodeRune(b)
	if r == utf8.RuneError || !unicode.IsPrint(r) {
		return nil, false
	}
	return primitives.NewKeyEvent(string(r)), false
}

func decodeEscape(seq []byte) *primitives.Event {
	if len(seq) == 0 {
		return primitives.NewKeyEvent(primitives.KeyEscape)
	}
	if len(seq) < 2 || (seq[0] != '[' && seq[0] != 'O') {
		return nil
	}
	var key string
	switch string(seq[1:]) {
	case "A":
		key = primitives.KeyArrowUp
	case "B":
		key = primitives.KeyArrowDown
	case "C":
		key = primitives.KeyArrowRight
	case "D":
		key = primitives.KeyArrowLeft
	case "H", "1~", "7~":
		key = primitives.KeyHome
	case "F", "4~", "8~":
		key = primitives.KeyEnd
	default:
		return nil
	}
	return primitives.NewKeyEvent(key)
}
