package cssel

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// StyleTag returns a templ component rendering the rules inside a <style>
// element, with a blank line between rules.
//
// Add it to a layout or component template:
//
//	@cssel.StyleTag(
//	    cssel.NewRule(cssel.Class("toast"), cssel.Decl("opacity", "0.9")),
//	)
//
// Rule text is written as-is - selectors and declarations built through this
// package are already CSS syntax, not HTML.
func StyleTag(rules ...Rule) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, "<style>\n"); err != nil {
			return err
		}
		for i, r := range rules {
			if i > 0 {
				if _, err := io.WriteString(w, "\n"); err != nil {
					return err
				}
			}
			if _, err := r.WriteTo(w); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</style>")
		return err
	})
}

// TargetAttr builds the hx-target attribute carrying the selector text.
//
// HTMX targets are CSS selectors, so built selectors drop straight in:
//
//	<button { cssel.TargetAttr(cssel.ID("results"))... }>
func TargetAttr(sel Selector) templ.Attributes {
	return templ.Attributes{"hx-target": sel.String()}
}
