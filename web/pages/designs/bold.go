package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

// renderBold: dark slate and purple canvas, cards swing in on the Y axis
func renderBold(b *element.Builder, calcs []catalog.Calculator, lk look) {
	b.Div("class", "min-h-screen bg-gradient-to-br from-slate-900 via-purple-900 to-slate-900").R(
		b.Div("class", "container mx-auto px-4 py-20").R(
			b.Div(Motion{Enter: EnterZoom, Duration: 0.6, Zoom: 0.9}.Attrs("text-center mb-20")...).R(
				b.Div(Motion{Enter: EnterDrop, Duration: 0.3, Delay: 0.2}.Attrs("inline-block mb-4 px-6 py-2 bg-purple-500/20 border border-purple-500/30 rounded-full text-purple-300 text-sm font-medium")...).
					T("✨ Premium Financial Tools"),
				b.H1("class", "text-6xl md:text-7xl font-bold text-white mb-6").R(
					b.Span("class", "bg-gradient-to-r from-purple-400 via-pink-400 to-purple-400 bg-clip-text text-transparent").
						T("Smart Calculators"),
				),
				b.P("class", "text-gray-300 text-xl max-w-2xl mx-auto").
					T("Powerful tools to optimize your investment strategy and maximize returns"),
			),

			grid(b, "gap-8 max-w-7xl mx-auto", calcs, func(i int, c catalog.Calculator) {
				enter := Motion{Enter: EnterTilt, Duration: 0.6}.Stagger(i, 0.1)
				b.Div(enter.Attrs("group cursor-pointer calc-card perspective-1000", "data-calc", c.ID)...).R(
					b.Div("class", "relative h-full bg-gradient-to-br from-slate-800 to-slate-900 border border-purple-500/30 rounded-3xl p-8 shadow-2xl group-hover:shadow-purple-500/20 transition-all duration-500 hover-tilt overflow-hidden").R(
						// Glow
						b.Div("class", "absolute inset-0 bg-gradient-to-br "+c.Gradient.Classes()+" opacity-0 group-hover:opacity-20 rounded-3xl blur-xl transition-opacity duration-500").R(),
						cover(b, c, lk, "-mx-8 -mt-8 mb-8 rounded-t-3xl opacity-80"),

						b.Div("class", "relative w-20 h-20 mb-8 bg-gradient-to-br "+c.Gradient.Classes()+" rounded-2xl flex items-center justify-center text-white shadow-lg transform group-hover:scale-110 group-hover:rotate-6 transition-all duration-300 preserve-3d").R(
							icon(b, c.Icon, "w-6 h-6"),
						),

						b.Div("class", "relative").R(
							b.H3("class", "text-2xl font-bold text-white mb-3 group-hover:text-purple-300 transition-colors").T(c.Title),
							b.P("class", "text-gray-400 mb-6").T(c.Description),
							b.Div("class", "flex items-center justify-between").R(
								b.Span("class", "text-purple-400 font-semibold group-hover:text-purple-300 transition-colors").T("Launch Tool"),
								b.Div("class", "w-10 h-10 bg-purple-500/20 rounded-full flex items-center justify-center group-hover:bg-purple-500/40 transition-colors").R(
									icon(b, catalog.IconChevronRight, "w-5 h-5 text-purple-400 group-hover:translate-x-1 transition-transform"),
								),
							),
						),
					),
				)
			}),
		),
	)
}
