package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

// renderGlass: frosted glass cards floating over three drifting blurred blobs
func renderGlass(b *element.Builder, calcs []catalog.Calculator, lk look) {
	b.Div("class", "min-h-screen relative overflow-hidden bg-gradient-to-br from-purple-50 via-blue-50 to-pink-50").R(
		// Background blobs
		b.Div("class", "absolute inset-0 overflow-hidden").R(
			b.Div("class", "absolute top-0 left-0 w-96 h-96 bg-purple-300 rounded-full mix-blend-multiply filter blur-3xl opacity-30 blob drift-a").R(),
			b.Div("class", "absolute top-0 right-0 w-96 h-96 bg-blue-300 rounded-full mix-blend-multiply filter blur-3xl opacity-30 blob drift-b").R(),
			b.Div("class", "absolute bottom-0 left-1/2 w-96 h-96 bg-pink-300 rounded-full mix-blend-multiply filter blur-3xl opacity-30 blob drift-c").R(),
		),

		b.Div("class", "container mx-auto px-4 py-16 relative z-10").R(
			b.Div(Motion{Enter: EnterDrop, Duration: 0.6}.Attrs("text-center mb-16")...).R(
				b.Div("class", "flex items-center justify-center gap-2 mb-4").R(
					icon(b, catalog.IconSparkles, "w-8 h-8 text-purple-600"),
					b.H1("class", "text-5xl font-bold bg-gradient-to-r from-purple-600 via-blue-600 to-pink-600 bg-clip-text text-transparent").
						T("Financial Calculators"),
				),
				b.P("class", "text-gray-600 text-lg max-w-2xl mx-auto").
					T("Make informed investment decisions with our comprehensive suite of financial calculation tools"),
			),

			grid(b, "gap-8 max-w-7xl mx-auto", calcs, func(i int, c catalog.Calculator) {
				enter := Motion{Enter: EnterRise, Duration: 0.5, Rise: 50}.Stagger(i, 0.1)
				b.Div(enter.Attrs("group cursor-pointer calc-card", "data-calc", c.ID)...).R(
					b.Div("class", "relative h-full backdrop-blur-xl bg-white/40 border border-white/60 rounded-3xl p-8 shadow-xl hover:shadow-2xl transition-all duration-300 hover-float overflow-hidden").R(
						// Gradient wash on hover
						b.Div("class", "absolute inset-0 bg-gradient-to-br "+c.Gradient.Classes()+" opacity-0 group-hover:opacity-10 rounded-3xl transition-opacity duration-300").R(),
						cover(b, c, lk, "-mx-8 -mt-8 mb-6 rounded-t-3xl"),

						b.Div("class", "relative w-16 h-16 mb-6 bg-gradient-to-br "+c.Gradient.Classes()+" rounded-2xl flex items-center justify-center text-white shadow-lg group-hover:shadow-xl transition-all duration-300").R(
							icon(b, c.Icon, "w-6 h-6"),
						),

						b.Div("class", "relative").R(
							b.H3("class", "text-2xl font-bold text-gray-800 mb-3 group-hover:text-gray-900 transition-colors").T(c.Title),
							b.P("class", "text-gray-600 mb-4").T(c.Description),
							b.Div("class", "flex items-center text-blue-600 font-medium group-hover:gap-2 transition-all").R(
								b.Span().T("Calculate Now"),
								icon(b, catalog.IconChevronRight, "w-5 h-5 group-hover:translate-x-1 transition-transform"),
							),
						),
					),
				)
			}),
		),
	)
}
