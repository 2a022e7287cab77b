package primitives

// Element is a focusable node owned by the rendering collaborator.
type Element interface {
	Focus()
}

// Document answers live focus containment queries.
type Document interface {
	// HasFocus reports whether el or one of its descendants is the active focus target.
	HasFocus(el Element) bool
}

// FocusRequest asks the rendering collaborator to move focus to Target.
// Every request is a new pointer so that repeated requests for the same
// element still register as a change.
type FocusRequest struct {
	Target Element
}

// RequestFocus creates a FocusRequest for el. el may be nil.
func RequestFocus(el Element) *FocusRequest {
	return &FocusRequest{Target: el}
}

// HasFocus reports whether doc says el contains focus. A nil document or
// element never has focus.
func HasFocus(doc Document, el Element) bool {
	if doc == nil || el == nil {
		return false
	}
	return doc.HasFocus(el)
}
