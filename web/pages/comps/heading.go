package comps

import "github.com/rohanthewiz/element"

// Heading is a centered title with an optional lead paragraph
type Heading struct {
	Title string
	Lead  string
}

func (h Heading) Render(b *element.Builder) (x any) {
	b.Div("class", "text-center").R(
		b.H1("class", "text-4xl font-bold text-gray-900 mb-4").T(h.Title),
		b.Wrap(func() {
			if h.Lead != "" {
				b.P("class", "text-gray-600").T(h.Lead)
			}
		}),
	)
	return
}
