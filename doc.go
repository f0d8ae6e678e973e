// Package cssel builds syntactically valid CSS selector strings from
// composable method calls, enforcing selector grammar ordering and
// cardinality at build time instead of at string-parse time.
//
// The package is one-directional: selectors are built and rendered to text,
// never parsed from it. Validation against an actual document or DOM is out
// of scope.
//
// # Building Selectors
//
// Each part-kind has a package-level constructor that starts a fresh
// selector, and a chained method with the same name that appends to it:
//
//	cssel.ID("main").Class("container").Class("editable").String()
//	// "#main.container.editable"
//
//	cssel.Element("a").Attr(`href$=".png"`).PseudoClass("focus").String()
//	// `a[href$=".png"]:focus`
//
// Parts must be added in CSS grammar order: element, id, class, attribute,
// pseudo-class, pseudo-element. Element, id, and pseudo-element may each
// appear at most once; classes, attributes, and pseudo-classes repeat freely
// and render in insertion order.
//
// # Error Handling
//
// Builders are fluent, so grammar violations don't interrupt the chain.
// The first violation is recorded on the selector, the offending mutation is
// discarded, and every later chained call becomes a no-op. Check Err() after
// building:
//
//	sel := cssel.Element("div").ID("id").Element("span")
//	if err := sel.Err(); err != nil {
//	    // cssel.IsOutOfOrder(err) == true
//	}
//
// The selector stays renderable in its last valid state.
//
// # Combinators
//
// Combine joins two selectors with a combinator token:
//
//	cssel.Combine(cssel.Element("div"), cssel.Child, cssel.Element("span"))
//	// "div > span"
//
// Combined selectors are themselves selectors, so nesting builds arbitrary
// combinator trees. The combinator token is not validated - any string is
// rendered verbatim between single spaces. This matches the permissiveness
// of hand-written selector strings; pass the provided constants unless you
// know you want something else.
//
// # Rules and templ Integration
//
// A selector plus declarations forms a Rule, and StyleTag renders rules into
// a <style> element as a templ component:
//
//	rule := cssel.NewRule(cssel.Class("toast"), cssel.Decl("opacity", "0.9"))
//	@cssel.StyleTag(rule)
//
// TargetAttr emits the selector as an hx-target attribute for HTMX markup.
package cssel
