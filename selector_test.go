package cssel

import (
	"testing"
)

func TestSimpleSelectorString(t *testing.T) {
	tests := []struct {
		name string
		sel  *SimpleSelector
		want string
	}{
		{"element only", Element("div"), "div"},
		{"id only", ID("main"), "#main"},
		{"class only", Class("toast"), ".toast"},
		{"attr only", Attr("disabled"), "[disabled]"},
		{"pseudo-class only", PseudoClass("hover"), ":hover"},
		{"pseudo-element only", PseudoElement("before"), "::before"},
		{"id and classes", ID("main").Class("container").Class("editable"), "#main.container.editable"},
		{"element attr pseudo-class", Element("a").Attr(`href$=".png"`).PseudoClass("focus"), `a[href$=".png"]:focus`},
		{"duplicate classes kept", Class("a").Class("a"), ".a.a"},
		{"all categories", Element("li").ID("x").Class("a").Attr("draggable").PseudoClass("first-child").PseudoElement("marker"), "li#x.a[draggable]:first-child::marker"},
		{"repeated attrs and pseudo-classes", Element("input").Attr("type=text").Attr("required").PseudoClass("focus").PseudoClass("valid"), "input[type=text][required]:focus:valid"},
		{"empty selector", new(SimpleSelector), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.sel.Err(); err != nil {
				t.Fatalf("Err() = %v, want nil", err)
			}
			if got := tt.sel.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSimpleSelectorDuplicatePart(t *testing.T) {
	tests := []struct {
		name string
		sel  *SimpleSelector
	}{
		{"element twice", Element("div").Element("span")},
		{"id twice", ID("a").ID("b")},
		{"pseudo-element twice", PseudoElement("before").PseudoElement("after")},
		{"id twice after element", Element("div").ID("a").ID("b")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Err()
			if err == nil {
				t.Fatal("Err() = nil, want duplicate part error")
			}
			if !IsDuplicatePart(err) {
				t.Errorf("IsDuplicatePart(%v) = false, want true", err)
			}
			if IsOutOfOrder(err) {
				t.Errorf("IsOutOfOrder(%v) = true, want false", err)
			}
		})
	}
}

func TestSimpleSelectorOutOfOrder(t *testing.T) {
	tests := []struct {
		name string
		sel  *SimpleSelector
	}{
		{"element after id", Element("div").ID("id").Element("span")},
		{"id after class", Class("a").ID("b")},
		{"class after attr", Attr("disabled").Class("a")},
		{"attr after pseudo-class", PseudoClass("hover").Attr("disabled")},
		{"pseudo-class after pseudo-element", PseudoElement("before").PseudoClass("hover")},
		{"unused lower category", PseudoElement("before").Element("div")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.sel.Err()
			if err == nil {
				t.Fatal("Err() = nil, want order error")
			}
			if !IsOutOfOrder(err) {
				t.Errorf("IsOutOfOrder(%v) = false, want true", err)
			}
			if IsDuplicatePart(err) {
				t.Errorf("IsDuplicatePart(%v) = true, want false", err)
			}
		})
	}
}

func TestSimpleSelectorKeepsLastValidState(t *testing.T) {
	sel := Element("div").ID("id").Element("span")

	if err := sel.Err(); !IsOutOfOrder(err) {
		t.Fatalf("Err() = %v, want order error", err)
	}
	// The failing mutation must not apply.
	if got := sel.String(); got != "div#id" {
		t.Errorf("String() = %q, want %q", got, "div#id")
	}
}

func TestSimpleSelectorStickyError(t *testing.T) {
	sel := ID("a").ID("b")
	first := sel.Err()
	if !IsDuplicatePart(first) {
		t.Fatalf("Err() = %v, want duplicate part error", first)
	}

	// Later calls are no-ops and do not replace the first error.
	sel.Class("late").PseudoElement("after")
	if sel.Err() != first {
		t.Errorf("Err() = %v, want first error %v", sel.Err(), first)
	}
	if got := sel.String(); got != "#a" {
		t.Errorf("String() = %q, want %q", got, "#a")
	}
}

func TestSimpleSelectorSameCategoryNotOutOfOrder(t *testing.T) {
	// Repeating a repeatable category compares equal to the running
	// maximum, so it is neither a duplicate nor out of order.
	sel := Class("a").Class("b").Class("c")
	if err := sel.Err(); err != nil {
		t.Fatalf("Err() = %v, want nil", err)
	}
	if got := sel.String(); got != ".a.b.c" {
		t.Errorf("String() = %q, want %q", got, ".a.b.c")
	}
}

func TestSimpleSelectorStringIsPureRead(t *testing.T) {
	sel := Element("div")
	if got := sel.String(); got != "div" {
		t.Fatalf("String() = %q, want %q", got, "div")
	}

	// Rendering does not freeze the node.
	sel.Class("a")
	if err := sel.Err(); err != nil {
		t.Fatalf("Err() after post-render mutation = %v, want nil", err)
	}
	if got := sel.String(); got != "div.a" {
		t.Errorf("String() = %q, want %q", got, "div.a")
	}
}
