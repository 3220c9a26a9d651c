package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

const meshBackground = "background:" +
	"radial-gradient(circle at 20% 20%, rgba(99, 102, 241, 0.4) 0%, transparent 50%)," +
	"radial-gradient(circle at 80% 80%, rgba(236, 72, 153, 0.4) 0%, transparent 50%)," +
	"radial-gradient(circle at 40% 60%, rgba(168, 85, 247, 0.4) 0%, transparent 50%);" +
	"background-size:200% 200%"

// renderMesh: slow moving radial mesh, glass cards with a recurring shimmer
// and a closing call to action that does nothing
func renderMesh(b *element.Builder, calcs []catalog.Calculator, lk look) {
	b.Div("class", "min-h-screen relative overflow-hidden bg-gradient-to-br from-indigo-50 via-purple-50 to-pink-50").R(
		b.Div("class", "absolute inset-0").R(
			b.Div("class", "absolute inset-0 opacity-30 mesh-pan", "style", meshBackground).R(),
		),

		b.Div("class", "container mx-auto px-4 py-20 relative z-10").R(
			b.Div(Motion{Enter: EnterRise, Duration: 0.8, Rise: 30}.Attrs("text-center mb-20")...).R(
				b.Div(Motion{Enter: EnterZoom, Duration: 0.5, Delay: 0.2}.Attrs("inline-flex items-center gap-2 mb-6 px-6 py-3 bg-white/80 backdrop-blur-sm border border-purple-200 rounded-full shadow-lg")...).R(
					b.Div("class", "w-2 h-2 bg-gradient-to-r from-purple-600 to-pink-600 rounded-full animate-pulse").R(),
					b.Span("class", "text-sm font-semibold bg-gradient-to-r from-purple-600 to-pink-600 bg-clip-text text-transparent").
						T("Premium Financial Suite"),
				),

				b.H1("class", "text-6xl md:text-7xl font-bold mb-6 leading-tight").R(
					b.Span("class", "bg-gradient-to-r from-indigo-600 via-purple-600 to-pink-600 bg-clip-text text-transparent").T("Investment"),
					b.Br(),
					b.Span("class", "text-gray-900").T("Calculators"),
				),

				b.P("class", "text-xl text-gray-600 max-w-2xl mx-auto leading-relaxed").
					T("Empower your financial decisions with our suite of intelligent calculation tools"),
			),

			grid(b, "gap-8 max-w-7xl mx-auto", calcs, func(i int, c catalog.Calculator) {
				enter := Motion{Enter: EnterZoom, Duration: 0.5, Zoom: 0.8}.Stagger(i, 0.1)
				b.Div(enter.Attrs("group cursor-pointer calc-card", "data-calc", c.ID)...).R(
					b.Div("class", "relative h-full backdrop-blur-2xl bg-white/70 border border-white/50 rounded-3xl p-8 shadow-xl hover:shadow-2xl transition-all duration-500 overflow-hidden hover-grow").R(
						// Shimmer sweep
						b.Div("class", "absolute inset-0 shimmer").R(
							b.Div("class", "h-full w-1/2 bg-gradient-to-r "+c.Gradient.Classes()+" opacity-20 blur-xl").R(),
						),
						cover(b, c, lk, "-mx-8 -mt-8 mb-6 rounded-t-3xl"),

						b.Div("class", "relative mb-6").R(
							b.Div("class", "relative z-10 w-16 h-16 bg-gradient-to-br "+c.Gradient.Classes()+" rounded-2xl flex items-center justify-center text-white shadow-lg group-hover:shadow-xl transition-all duration-300 group-hover:rotate-6").R(
								icon(b, c.Icon, "w-6 h-6"),
							),
							b.Div("class", "absolute inset-0 w-16 h-16 bg-gradient-to-br "+c.Gradient.Classes()+" rounded-2xl blur-lg opacity-50 group-hover:opacity-70 transition-opacity").R(),
						),

						b.Div("class", "relative").R(
							b.H3("class", "text-2xl font-bold text-gray-900 mb-3 group-hover:text-transparent group-hover:bg-gradient-to-r group-hover:from-purple-600 group-hover:to-pink-600 group-hover:bg-clip-text transition-all duration-300").
								T(c.Title),
							b.P("class", "text-gray-600 mb-6 leading-relaxed").T(c.Description),

							b.Div("class", "flex items-center justify-between pt-4 border-t border-gray-200/50").R(
								b.Span("class", "text-sm font-semibold text-purple-600 group-hover:text-purple-700").T("Get Started"),
								b.Div("class", "w-10 h-10 bg-gradient-to-br "+c.Gradient.Classes()+" rounded-full flex items-center justify-center text-white shadow-md group-hover:shadow-lg transition-all").R(
									icon(b, catalog.IconChevronRight, "w-5 h-5 group-hover:translate-x-0.5 transition-transform"),
								),
							),
						),
					),
				)
			}),

			b.Div(Motion{Enter: EnterFade, Duration: 0.5, Delay: 1}.Attrs("text-center mt-16")...).R(
				b.P("class", "text-gray-600 mb-4").T("Need help choosing the right calculator?"),
				b.Button("type", "button", "class", "px-8 py-4 bg-gradient-to-r from-purple-600 to-pink-600 text-white font-semibold rounded-full shadow-lg hover:shadow-xl hover:scale-105 transition-all duration-300").
					T("Talk to an Expert"),
			),
		),
	)
}
