package cssel

import (
	"fmt"
	"strings"
)

// Selector is a renderable selector expression: either a *SimpleSelector
// (one compound selector) or a *CombinedSelector (two selectors joined by a
// combinator). The set of implementations is closed - combinator trees only
// ever contain these two shapes, with simple selectors at the leaves.
type Selector interface {
	fmt.Stringer

	// Err returns the first construction error recorded on this selector
	// or, for combined selectors, on any selector in the tree.
	Err() error

	selectorNode()
}

// SimpleSelector accumulates the parts of a single compound selector.
//
// SimpleSelector is a fluent builder - every part method mutates the
// receiver and returns it, so chains read like the selector they produce:
//
//	cssel.Element("input").Class("field").PseudoClass("focus")
//
// Part methods enforce CSS ordering and cardinality (see package docs).
// On the first violation the offending part is discarded, the error is
// recorded, and all later part calls become no-ops; the selector keeps
// rendering its last valid state.
//
// A SimpleSelector is owned by the chain that builds it. Nothing freezes it
// after String() is read, but typical usage treats rendering (or handing it
// to Combine) as terminal.
type SimpleSelector struct {
	element       string
	id            string
	classes       []string
	attrs         []string
	pseudoClasses []string
	pseudoElement string

	last Category
	err  error
}

// Element starts a selector with a type selector, e.g. Element("div").
func Element(value string) *SimpleSelector {
	return new(SimpleSelector).Element(value)
}

// ID starts a selector with an id part, e.g. ID("main") renders "#main".
func ID(value string) *SimpleSelector {
	return new(SimpleSelector).ID(value)
}

// Class starts a selector with a class part, e.g. Class("toast") renders ".toast".
func Class(value string) *SimpleSelector {
	return new(SimpleSelector).Class(value)
}

// Attr starts a selector with an attribute part. The value is the full
// attribute expression without brackets, e.g. Attr(`href$=".png"`).
func Attr(value string) *SimpleSelector {
	return new(SimpleSelector).Attr(value)
}

// PseudoClass starts a selector with a pseudo-class part, e.g.
// PseudoClass("hover") renders ":hover".
func PseudoClass(value string) *SimpleSelector {
	return new(SimpleSelector).PseudoClass(value)
}

// PseudoElement starts a selector with a pseudo-element part, e.g.
// PseudoElement("before") renders "::before".
func PseudoElement(value string) *SimpleSelector {
	return new(SimpleSelector).PseudoElement(value)
}

// Element sets the type selector. At most one per selector, and it must
// come before every other part.
func (s *SimpleSelector) Element(value string) *SimpleSelector {
	if s.advance(CategoryElement) {
		s.element = value
	}
	return s
}

// ID sets the id part. At most one per selector.
func (s *SimpleSelector) ID(value string) *SimpleSelector {
	if s.advance(CategoryID) {
		s.id = value
	}
	return s
}

// Class appends a class part. Classes repeat freely and render in insertion
// order; duplicates are kept as-is.
func (s *SimpleSelector) Class(value string) *SimpleSelector {
	if s.advance(CategoryClass) {
		s.classes = append(s.classes, value)
	}
	return s
}

// Attr appends an attribute part. The value is rendered verbatim inside
// brackets - no quoting or escaping is applied.
func (s *SimpleSelector) Attr(value string) *SimpleSelector {
	if s.advance(CategoryAttribute) {
		s.attrs = append(s.attrs, value)
	}
	return s
}

// PseudoClass appends a pseudo-class part.
func (s *SimpleSelector) PseudoClass(value string) *SimpleSelector {
	if s.advance(CategoryPseudoClass) {
		s.pseudoClasses = append(s.pseudoClasses, value)
	}
	return s
}

// PseudoElement sets the pseudo-element part. At most one per selector,
// always last.
func (s *SimpleSelector) PseudoElement(value string) *SimpleSelector {
	if s.advance(CategoryPseudoElement) {
		s.pseudoElement = value
	}
	return s
}

// advance runs the sequence check for cat and reports whether the mutation
// may be applied. Repeating a repeatable category compares equal to the
// running maximum and passes; only a strictly lower category is out of order.
func (s *SimpleSelector) advance(cat Category) bool {
	if s.err != nil {
		return false
	}
	if cat.Singleton() && s.last == cat {
		s.err = fmt.Errorf("%w: %s set twice", ErrDuplicatePart, cat)
		return false
	}
	if cat < s.last {
		s.err = fmt.Errorf("%w: %s after %s", ErrOutOfOrder, cat, s.last)
		return false
	}
	s.last = cat
	return true
}

// Err returns the first ordering or cardinality error recorded on the chain,
// or nil if every part applied cleanly.
func (s *SimpleSelector) Err() error {
	return s.err
}

// String renders the compound selector in fixed category order with no
// separators between parts. Absent parts render as nothing.
func (s *SimpleSelector) String() string {
	var b strings.Builder
	b.WriteString(s.element)
	if s.id != "" {
		b.WriteString("#")
		b.WriteString(s.id)
	}
	for _, c := range s.classes {
		b.WriteString(".")
		b.WriteString(c)
	}
	for _, a := range s.attrs {
		b.WriteString("[")
		b.WriteString(a)
		b.WriteString("]")
	}
	for _, p := range s.pseudoClasses {
		b.WriteString(":")
		b.WriteString(p)
	}
	if s.pseudoElement != "" {
		b.WriteString("::")
		b.WriteString(s.pseudoElement)
	}
	return b.String()
}

func (s *SimpleSelector) selectorNode() {}
