package cssel

// Category identifies a selector-part kind and its fixed position in CSS
// compound-selector order. Categories must be applied in non-decreasing
// order; the zero value means no part has been set yet.
type Category int

const (
	categoryNone Category = iota

	// CategoryElement is the type selector (e.g. "div"). At most one.
	CategoryElement

	// CategoryID is the id selector, rendered with a "#" prefix. At most one.
	CategoryID

	// CategoryClass is a class selector, rendered with a "." prefix. Repeatable.
	CategoryClass

	// CategoryAttribute is an attribute selector, rendered in brackets. Repeatable.
	CategoryAttribute

	// CategoryPseudoClass is a pseudo-class, rendered with a ":" prefix. Repeatable.
	CategoryPseudoClass

	// CategoryPseudoElement is the pseudo-element, rendered with a "::" prefix.
	// At most one.
	CategoryPseudoElement
)

// Singleton returns true for categories that may occur at most once in a
// compound selector.
func (c Category) Singleton() bool {
	switch c {
	case CategoryElement, CategoryID, CategoryPseudoElement:
		return true
	}
	return false
}

// String returns the category name as used in error messages.
func (c Category) String() string {
	switch c {
	case CategoryElement:
		return "element"
	case CategoryID:
		return "id"
	case CategoryClass:
		return "class"
	case CategoryAttribute:
		return "attribute"
	case CategoryPseudoClass:
		return "pseudo-class"
	case CategoryPseudoElement:
		return "pseudo-element"
	default:
		return "none"
	}
}
