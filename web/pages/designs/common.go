package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

// icon writes inline svg for ic
func icon(b *element.Builder, ic catalog.Icon, class string) any {
	b.T(ic.SVG(class))
	return nil
}

// cover writes the illustrative image above a card when the look asks for it.
// Cards without an image get nothing.
func cover(b *element.Builder, c catalog.Calculator, lk look, class string) any {
	if !lk.images || !c.HasImage() {
		return nil
	}
	b.Div("class", "relative overflow-hidden "+class).R(
		b.Img("src", c.Image, "alt", c.Title, "loading", "lazy",
			"class", "w-full h-40 object-cover group-hover:scale-105 transition-transform duration-500"),
	)
	return nil
}

// grid writes the responsive three column card grid, calling card once per calculator
func grid(b *element.Builder, class string, calcs []catalog.Calculator, card func(i int, c catalog.Calculator)) any {
	b.Div("class", "grid grid-cols-1 md:grid-cols-2 lg:grid-cols-3 "+class).R(
		b.Wrap(func() {
			for i, c := range calcs {
				card(i, c)
			}
		}),
	)
	return nil
}
