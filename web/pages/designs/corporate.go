package designs

import (
	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
)

type stat struct {
	Value string
	Label string
}

var corporateStats = []stat{
	{"6+", "Calculator Types"},
	{"100%", "Accurate Results"},
	{"Free", "To Use"},
}

func renderCorporate(b *element.Builder, calcs []catalog.Calculator, lk look) {
	b.Div("class", "min-h-screen bg-gradient-to-b from-gray-50 to-white").R(
		b.Div("class", "container mx-auto px-4 py-16").R(
			b.Div(Motion{Enter: EnterRise, Duration: 0.6, Rise: 20}.Attrs("max-w-6xl mx-auto mb-16")...).R(
				b.Div("class", "flex items-start justify-between mb-8").R(
					b.Div().R(
						b.Div("class", "flex items-center gap-3 mb-4").R(
							b.Div("class", "w-12 h-12 bg-blue-600 rounded-lg flex items-center justify-center").R(
								icon(b, catalog.IconCalculator, "w-6 h-6 text-white"),
							),
							b.Div().R(
								b.H1("class", "text-4xl font-bold text-gray-900").T("Financial Planning Tools"),
								b.P("class", "text-blue-600 font-medium").T("Investment Calculator Suite"),
							),
						),
						b.P("class", "text-gray-600 text-lg max-w-2xl leading-relaxed").
							T("Professional-grade calculators designed to help you make data-driven investment decisions and achieve your financial objectives with confidence."),
					),
				),

				// Stats bar
				b.Div("class", "grid grid-cols-3 gap-4 p-6 bg-blue-50 rounded-xl border border-blue-100 stats-bar").R(
					b.Wrap(func() {
						for _, s := range corporateStats {
							b.Div().R(
								b.Div("class", "text-2xl font-bold text-blue-600").T(s.Value),
								b.Div("class", "text-sm text-gray-600").T(s.Label),
							)
						}
					}),
				),
			),

			b.Div("class", "max-w-6xl mx-auto").R(
				grid(b, "gap-6", calcs, func(i int, c catalog.Calculator) {
					enter := Motion{Enter: EnterRise, Duration: 0.4, Rise: 30}.Stagger(i, 0.08)
					b.Div(enter.Attrs("group cursor-pointer calc-card", "data-calc", c.ID)...).R(
						b.Div("class", "h-full bg-white border-2 border-gray-200 rounded-xl p-6 hover:border-blue-500 hover:shadow-lg transition-all duration-300 hover-nudge overflow-hidden").R(
							cover(b, c, lk, "-mx-6 -mt-6 mb-4 rounded-t-xl"),

							b.Div("class", "flex items-center justify-between mb-4").R(
								b.Div("class", "text-xs font-bold text-gray-400 card-number").F("%02d", i+1),
								b.Div("class", "w-10 h-10 bg-gray-100 rounded-lg flex items-center justify-center text-gray-600 group-hover:bg-blue-600 group-hover:text-white transition-all duration-300").R(
									icon(b, c.Icon, "w-6 h-6"),
								),
							),

							b.H3("class", "text-xl font-bold text-gray-900 mb-2 group-hover:text-blue-600 transition-colors").T(c.Title),
							b.P("class", "text-gray-600 text-sm mb-4 leading-relaxed").T(c.Description),

							b.Div("class", "pt-4 border-t border-gray-100 flex items-center justify-between").R(
								b.Span("class", "text-sm font-semibold text-blue-600 group-hover:text-blue-700").T("Open Calculator"),
								icon(b, catalog.IconChevronRight, "w-5 h-5 text-gray-400 group-hover:text-blue-600 group-hover:translate-x-1 transition-all"),
							),
						),
					)
				}),
			),
		),
	)
}
