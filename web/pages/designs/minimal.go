package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

func renderMinimal(b *element.Builder, calcs []catalog.Calculator, lk look) {
	b.Div("class", "min-h-screen bg-white").R(
		b.Div("class", "container mx-auto px-4 py-20").R(
			b.Div(Motion{Enter: EnterFade, Duration: 0.8}.Attrs("max-w-4xl mx-auto mb-20")...).R(
				b.H1("class", "text-6xl font-bold text-gray-900 mb-6 tracking-tight").T("Financial Calculators"),
				b.P("class", "text-xl text-gray-600 leading-relaxed").
					T("Precision tools for your investment planning and wealth management journey"),
				// Accent bars
				b.Div("class", "mt-6 flex items-center gap-2").R(
					b.Div("class", "h-1 w-20 bg-gradient-to-r from-blue-600 to-blue-400 rounded-full").R(),
					b.Div("class", "h-1 w-12 bg-gradient-to-r from-blue-400 to-blue-300 rounded-full").R(),
					b.Div("class", "h-1 w-8 bg-blue-200 rounded-full").R(),
				),
			),

			grid(b, "gap-6 max-w-7xl mx-auto", calcs, func(i int, c catalog.Calculator) {
				enter := Motion{Enter: EnterRise, Duration: 0.4, Rise: 20}.Stagger(i, 0.05)
				b.Div(enter.Attrs("group cursor-pointer calc-card", "data-calc", c.ID)...).R(
					b.Div("class", "relative h-full bg-gray-50 border border-gray-200 rounded-2xl p-8 hover:border-blue-300 hover:bg-blue-50/50 transition-all duration-300 hover-lift overflow-hidden").R(
						b.Div("class", "absolute top-4 right-4 w-2 h-2 bg-blue-600 rounded-full opacity-0 group-hover:opacity-100 transition-opacity").R(),
						cover(b, c, lk, "-mx-8 -mt-8 mb-6 rounded-t-2xl grayscale group-hover:grayscale-0 transition"),

						b.Div("class", "w-14 h-14 mb-6 bg-gray-100 rounded-xl flex items-center justify-center text-gray-600 group-hover:bg-blue-100 group-hover:text-blue-600 transition-all duration-300").R(
							icon(b, c.Icon, "w-6 h-6"),
						),

						b.H3("class", "text-xl font-semibold text-gray-900 mb-2").T(c.Title),
						b.P("class", "text-gray-600 text-sm mb-4").T(c.Description),
						b.Div("class", "flex items-center text-sm font-medium text-blue-600 group-hover:gap-1 transition-all").R(
							b.Span().T("Start Calculating"),
							icon(b, catalog.IconChevronRight, "w-4 h-4"),
						),
					),
				)
			}),
		),
	)
}
