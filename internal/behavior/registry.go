package behavior

import (
	"github.com/google/uuid"

	"github.com/comalice/ariax/internal/core"
	"github.com/comalice/ariax/internal/primitives"
)

// Registered behavior names.
const (
	NameListNavigation     = "list-navigation"
	NameListNavigationWrap = "list-navigation-wrap"
	NameActiveDescendant   = "active-descendant"
	NameRovingTabindex     = "roving-tabindex"
	NameFollowFocus        = "selection-follows-focus"
	NameOnCommit           = "selection-on-commit"
	NameOnCommitMultiple   = "selection-on-commit-multiple"
	NameTypeahead          = "typeahead"
)

func plain(d func() primitives.Descriptor) core.Factory {
	return func() (primitives.Descriptor, error) { return d(), nil }
}

// Registry returns a registry holding every listbox behavior under its
// name. preselected is checked by the single-selection policies.
func Registry(preselected ...uuid.UUID) *core.Registry {
	pre := SelectionOptions{Preselected: preselected}
	r := core.NewRegistry()
	factories := map[string]core.Factory{
		NameListNavigation: plain(func() primitives.Descriptor {
			return ListNavigation(ListNavigationOptions{})
		}),
		NameListNavigationWrap: plain(func() primitives.Descriptor {
			return ListNavigation(ListNavigationOptions{Wrap: true})
		}),
		NameActiveDescendant: plain(ActiveDescendantFocus),
		NameRovingTabindex:   plain(RovingTabindexFocus),
		NameFollowFocus: func() (primitives.Descriptor, error) {
			return SelectionFollowsFocus(pre)
		},
		NameOnCommit: func() (primitives.Descriptor, error) {
			return SelectionOnCommit(pre)
		},
		NameOnCommitMultiple: func() (primitives.Descriptor, error) {
			return SelectionOnCommit(SelectionOptions{Multiple: true})
		},
		NameTypeahead: plain(Typeahead),
	}
	for name, f := range factories {
		// names are distinct constants
		_ = r.Register(name, f)
	}
	return r
}
