// Package shared contains the pieces every page of the showcase uses:
// the document head, the design selector, the banner and the footer.
package shared

import "github.com/rohanthewiz/element"

const (
	// TailwindCDN serves the utility classes the variants are written in
	TailwindCDN = "https://cdn.tailwindcss.com"
	// DesignsCSS holds the keyframes behind the entrance and hover effects
	DesignsCSS = "/static/css/designs.css?v=1"
)

// Page is embedded by every full page and supplies the shared parts
type Page struct {
	Title string
}

// Document writes a complete html document: doctype, head, then body
// wrapping the given components.
func (p Page) Document(bodyClass string, comps ...element.Component) string {
	b := element.NewBuilder()

	b.Html("lang", "en").R(
		p.head(b),
		b.Body("class", bodyClass).R(
			element.RenderComponents(b, comps...),
		),
	)

	return "<!DOCTYPE html>\n" + b.String()
}

func (p Page) head(b *element.Builder) any {
	return b.Head().R(
		b.Meta("charset", "UTF-8"),
		b.Meta("name", "viewport", "content", "width=device-width, initial-scale=1.0"),
		b.Title().T(p.Title),
		b.Link("rel", "icon", "href", "/favicon.ico"),
		b.Script("src", TailwindCDN).R(),
		b.Link("rel", "stylesheet", "href", DesignsCSS),
	)
}

func (p Page) Banner(subtitle string) Banner {
	return Banner{Title: p.Title, Subtitle: subtitle}
}

func (p Page) Footer() Footer {
	return Footer{}
}
