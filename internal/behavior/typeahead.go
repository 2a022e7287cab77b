package behavior

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/comalice/ariax/builder"
	"github.com/comalice/ariax/internal/primitives"
)

// Typeahead activates the next item whose label starts with the typed
// character, searching forward from the active item and wrapping.
func Typeahead() primitives.Descriptor {
	return builder.New("typeahead",
		builder.Passthrough(Activated.Name()),
		builder.On(primitives.KeyDown, builder.When(isTypeaheadKey, func(m *primitives.Mutable, s *primitives.State, ev *primitives.Event) {
			items := Items.Get(s)
			n := len(items)
			start := IndexOf(items, Active.Get(s))
			for k := 1; k <= n; k++ {
				i := ((start+k)%n + n) % n
				if canActivate(s, items, i) && hasPrefixFold(items[i].Label, ev.Key) {
					_ = Activated.Set(m, items[i].Identity)
					ev.PreventDefault()
					return
				}
			}
		})),
	)
}

func isTypeaheadKey(_ *primitives.State, ev *primitives.Event) bool {
	if ev.Ctrl || ev.Alt || utf8.RuneCountInString(ev.Key) != 1 {
		return false
	}
	r, _ := utf8.DecodeRuneInString(ev.Key)
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// hasPrefixFold reports whether label starts with prefix under simple case
// folding, comparing whole runes.
func hasPrefixFold(label, prefix string) bool {
	for _, p := range prefix {
		r, size := utf8.DecodeRuneInString(label)
		if size == 0 || !strings.EqualFold(string(r), string(p)) {
			return false
		}
		label = label[size:]
	}
	return true
}
