package cssel

// Combinator is the token joining the two sides of a combined selector.
//
// Any value is accepted and rendered verbatim between single spaces - the
// token is deliberately not validated, matching the permissiveness of
// hand-written selector text. Use the constants below for the standard CSS
// combinators.
type Combinator string

const (
	// Descendant matches elements anywhere below the left selector.
	// Note the token is itself a space, so it renders between the two
	// surrounding spaces as "A   B" - still a valid descendant selector,
	// since CSS collapses the whitespace.
	Descendant Combinator = " "

	// Child (">") matches direct children of the left selector.
	Child Combinator = ">"

	// NextSibling ("+") matches the element immediately following the left selector.
	NextSibling Combinator = "+"

	// SubsequentSibling ("~") matches any later sibling of the left selector.
	SubsequentSibling Combinator = "~"
)

// CombinedSelector joins two selectors with a combinator, representing
// "left <combinator> right". Either side may itself be a CombinedSelector,
// so nesting Combine calls builds arbitrary binary combinator trees.
//
// A CombinedSelector is immutable after construction.
type CombinedSelector struct {
	left       Selector
	combinator Combinator
	right      Selector
}

// Combine joins left and right with the given combinator.
//
// The operands are used as-is: no validation is performed and no copy is
// taken, so reusing a selector value across two trees aliases it. Ownership
// stays with the caller.
func Combine(left Selector, combinator Combinator, right Selector) *CombinedSelector {
	return &CombinedSelector{
		left:       left,
		combinator: combinator,
		right:      right,
	}
}

// Left returns the left operand.
func (c *CombinedSelector) Left() Selector {
	return c.left
}

// Right returns the right operand.
func (c *CombinedSelector) Right() Selector {
	return c.right
}

// Combinator returns the combinator token.
func (c *CombinedSelector) Combinator() Combinator {
	return c.combinator
}

// Err returns the first construction error found in the tree, walking
// left before right.
func (c *CombinedSelector) Err() error {
	if err := c.left.Err(); err != nil {
		return err
	}
	return c.right.Err()
}

// String renders "left <combinator> right" with exactly one space on each
// side of the combinator token, recursing through nested combined selectors.
func (c *CombinedSelector) String() string {
	return c.left.String() + " " + string(c.combinator) + " " + c.right.String()
}

func (c *CombinedSelector) selectorNode() {}
