package cssel

import (
	"fmt"
	"io"
	"strings"
)

// Declaration is a single "property: value" pair inside a rule.
// Values are rendered verbatim.
type Declaration struct {
	Property string
	Value    string
}

// Decl is shorthand for constructing a Declaration.
func Decl(property, value string) Declaration {
	return Declaration{Property: property, Value: value}
}

// Rule pairs a selector with its declarations. Declarations render in the
// order given - no sorting, no deduplication.
type Rule struct {
	Selector     Selector
	Declarations []Declaration
}

// NewRule constructs a rule for the given selector.
func NewRule(sel Selector, decls ...Declaration) Rule {
	return Rule{Selector: sel, Declarations: decls}
}

// WriteTo writes the rule as CSS text to w, implementing io.WriterTo.
func (r Rule) WriteTo(w io.Writer) (int64, error) {
	var total int64

	n, err := fmt.Fprintf(w, "%s {\n", r.Selector.String())
	total += int64(n)
	if err != nil {
		return total, err
	}

	for _, d := range r.Declarations {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", d.Property, d.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += int64(n)
	return total, err
}

// String returns the CSS text of the rule.
func (r Rule) String() string {
	var sb strings.Builder
	r.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}
