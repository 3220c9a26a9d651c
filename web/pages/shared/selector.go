package shared

import (
	"strconv"

	"calcdesigns/web/pages/designs"

	"github.com/rohanthewiz/element"
)

const (
	selectorActive = "bg-blue-600 text-white shadow-md"
	selectorIdle   = "bg-gray-100 text-gray-600 hover:bg-gray-200"
)

// Selector is the fixed design picker. Every button is a plain link carrying
// the new selection in the query string; no script is involved.
type Selector struct {
	Current    designs.Selection
	DefaultSet string
}

func (s Selector) Render(b *element.Builder) any {
	b.Nav("class", "fixed top-4 right-4 z-50 bg-white shadow-lg rounded-lg p-4", "id", "design-selector").R(
		b.H3("class", "text-sm font-semibold mb-2 text-gray-700").T("Select Design:"),
		b.Div("class", "flex gap-2").R(
			b.Wrap(func() {
				for n := 1; n <= designs.Count; n++ {
					s.button(b, n)
				}
			}),
		),
		s.setSwitch(b),
	)
	return nil
}

func (s Selector) button(b *element.Builder, n int) {
	sel := designs.Selection{Set: s.Current.Set, Design: n}
	class := "px-3 py-1 rounded-md text-sm font-medium transition-all selector-button "
	attrs := []string{"href", sel.Query(s.DefaultSet), "data-design-button", strconv.Itoa(n)}

	if n == s.Current.Design {
		class += selectorActive
		attrs = append(attrs, "aria-current", "true")
	} else {
		class += selectorIdle
	}

	if v, err := designs.Lookup(sel.Set, n); err == nil {
		attrs = append(attrs, "title", v.Name)
	}

	b.A(append([]string{"class", class}, attrs...)...).T(strconv.Itoa(n))
}

// setSwitch lets the reviewer flip between design sets, keeping the design number
func (s Selector) setSwitch(b *element.Builder) any {
	b.Div("class", "mt-3 flex gap-2 text-xs", "id", "set-switch").R(
		b.Wrap(func() {
			for _, set := range designs.Sets() {
				sel := designs.Selection{Set: set, Design: s.Current.Design}
				if set == s.Current.Set {
					b.Span("class", "px-2 py-0.5 rounded bg-slate-800 text-white", "data-set-button", set).T(set)
					continue
				}
				b.A("href", sel.Query(s.DefaultSet), "class", "px-2 py-0.5 rounded text-slate-600 hover:bg-slate-100",
					"data-set-button", set).T(set)
			}
		}),
	)
	return nil
}
