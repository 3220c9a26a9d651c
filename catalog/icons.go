package catalog

import (
	"fmt"
	"strings"
)

// Icon names one of the stroke icons used on the page
type Icon string

const (
	IconCalculator   Icon = "calculator"
	IconWallet       Icon = "wallet"
	IconTrendingUp   Icon = "trending-up"
	IconPieChart     Icon = "pie-chart"
	IconTarget       Icon = "target"
	IconBarChart     Icon = "bar-chart-3"
	IconChevronRight Icon = "chevron-right"
	IconSparkles     Icon = "sparkles"
)

// Inner markup of each icon on a 24x24 stroke grid
var iconPaths = map[Icon]string{
	IconCalculator: `<rect width="16" height="20" x="4" y="2" rx="2"/><line x1="8" x2="16" y1="6" y2="6"/>` +
		`<line x1="16" x2="16" y1="14" y2="18"/><path d="M16 10h.01"/><path d="M12 10h.01"/><path d="M8 10h.01"/>` +
		`<path d="M12 14h.01"/><path d="M8 14h.01"/><path d="M12 18h.01"/><path d="M8 18h.01"/>`,

	IconWallet: `<path d="M19 7V4a1 1 0 0 0-1-1H5a2 2 0 0 0 0 4h15a1 1 0 0 1 1 1v4h-3a2 2 0 0 0 0 4h3a1 1 0 0 0 1-1v-2a1 1 0 0 0-1-1"/>` +
		`<path d="M3 5v14a2 2 0 0 0 2 2h15a1 1 0 0 0 1-1v-4"/>`,

	IconTrendingUp:   `<polyline points="22 7 13.5 15.5 8.5 10.5 2 17"/><polyline points="16 7 22 7 22 13"/>`,
	IconPieChart:     `<path d="M21.21 15.89A10 10 0 1 1 8 2.83"/><path d="M22 12A10 10 0 0 0 12 2v10z"/>`,
	IconTarget:       `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	IconBarChart:     `<path d="M3 3v18h18"/><path d="M18 17V9"/><path d="M13 17V5"/><path d="M8 17v-3"/>`,
	IconChevronRight: `<path d="m9 18 6-6-6-6"/>`,

	IconSparkles: `<path d="m12 3-1.912 5.813a2 2 0 0 1-1.275 1.275L3 12l5.813 1.912a2 2 0 0 1 1.275 1.275L12 21l1.912-5.813a2 2 0 0 1 1.275-1.275L21 12l-5.813-1.912a2 2 0 0 1-1.275-1.275L12 3Z"/>` +
		`<path d="M5 3v4"/><path d="M19 17v4"/><path d="M3 5h4"/><path d="M17 19h4"/>`,
}

// Valid reports whether the icon has markup
func (i Icon) Valid() bool {
	_, ok := iconPaths[i]
	return ok
}

// SVG returns inline svg markup for the icon with the given class list.
// An unknown icon renders as an empty svg of the same size.
func (i Icon) SVG(class string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" class="%s" data-icon="%s" viewBox="0 0 24 24" `+
		`fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true">`,
		class, i)
	sb.WriteString(iconPaths[i])
	sb.WriteString("</svg>")
	return sb.String()
}
