// Package pages assembles full html documents from the shared parts and the
// design variants.
package pages

import (
	"fmt"
	"html"

	"calcdesigns/catalog"
	"calcdesigns/web/pages/comps"
	"calcdesigns/web/pages/designs"
	"calcdesigns/web/pages/shared"

	"github.com/rohanthewiz/element"
)

const siteTitle = "Financial Calculators"

// Showcase is the root view: the selector plus exactly one variant
type Showcase struct {
	shared.Page
	Selection  designs.Selection
	DefaultSet string
}

// NewShowcase prepares the root view for sel. An invalid selection renders the default.
func NewShowcase(sel designs.Selection, defaultSet string) Showcase {
	if !sel.Valid() {
		sel = designs.DefaultSelection
	}
	if !designs.HasSet(defaultSet) {
		defaultSet = designs.SetClassic
	}
	return Showcase{
		Page:       shared.Page{Title: siteTitle + " · Design Review"},
		Selection:  sel,
		DefaultSet: defaultSet,
	}
}

func (s Showcase) Render() string {
	variant := s.Selection.Variant()

	return s.Document("min-h-screen bg-gray-50",
		shared.Selector{Current: s.Selection, DefaultSet: s.DefaultSet},
		variant.Body(catalog.Calculators()),
		s.Footer(),
	)
}

// VariantPage shows one variant alone, without the selector, for embedding
// several designs side by side
type VariantPage struct {
	shared.Page
	Variant designs.Variant
}

func NewVariantPage(v designs.Variant) VariantPage {
	return VariantPage{
		Page:    shared.Page{Title: fmt.Sprintf("%s · Design %d", siteTitle, v.Number)},
		Variant: v,
	}
}

func (vp VariantPage) Render() string {
	subtitle := fmt.Sprintf("%s set · %d. %s", vp.Variant.Set, vp.Variant.Number, vp.Variant.Name)
	return vp.Document("min-h-screen bg-gray-50",
		vp.Banner(subtitle),
		vp.Variant.Body(catalog.Calculators()),
	)
}

// NotFound is the page for an unknown design route.
// Detail may echo request input; it is escaped on render.
type NotFound struct {
	shared.Page
	Detail string
}

func NewNotFound(detail string) NotFound {
	return NotFound{Page: shared.Page{Title: "Design not found"}, Detail: detail}
}

func (nf NotFound) Render() string {
	return nf.Document("min-h-screen bg-gray-50 flex items-center justify-center",
		notFoundBody{detail: nf.Detail},
	)
}

type notFoundBody struct {
	detail string
}

func (n notFoundBody) Render(b *element.Builder) (x any) {
	b.Div("class", "max-w-xl mx-auto py-24 px-4").R(
		element.RenderComponents(b, comps.Heading{Title: "Design not found", Lead: html.EscapeString(n.detail)}),
		b.P("class", "text-center mt-6").R(
			b.A("href", "/", "class", "text-blue-600 font-medium").T("Back to the showcase"),
		),
	)
	return
}
