package shared

import "github.com/rohanthewiz/element"

// Footer marks the page as a mockup
type Footer struct{}

func (f Footer) Render(b *element.Builder) any {
	b.Footer("class", "py-6 text-center text-xs text-gray-400").R(
		b.P().T("Design review build. Calculators shown here are not functional."),
	)
	return nil
}
