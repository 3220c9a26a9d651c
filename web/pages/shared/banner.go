package shared

import "github.com/rohanthewiz/element"

// Banner is the slim strip above a standalone variant page naming what is shown
type Banner struct {
	Title    string
	Subtitle string
}

func (bn Banner) Render(b *element.Builder) any {
	b.Header("class", "bg-slate-900 text-white px-6 py-3 flex items-center justify-between text-sm").R(
		b.Span("class", "font-semibold").T(bn.Title),
		b.Wrap(func() {
			if bn.Subtitle != "" {
				b.Span("class", "text-slate-300").T(bn.Subtitle)
			}
		}),
	)
	return nil
}
