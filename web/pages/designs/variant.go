// Package designs contains the landing page variants. Every variant is a pure
// function of the calculator list: nothing here reads or writes shared state,
// and none of the cards link anywhere.
package designs

import (
	"strconv"

	"calcdesigns/catalog"

	"github.com/rohanthewiz/element"
	"github.com/rohanthewiz/serr"
)

const (
	SetClassic     = "classic"
	SetIllustrated = "illustrated"

	// Count is the number of variants in every set
	Count = 5
)

// Variant is one visual treatment of the calculator list
type Variant struct {
	Set     string
	Number  int
	Name    string
	Tagline string
	render  func(b *element.Builder, calcs []catalog.Calculator, look look)
	look    look
}

// look holds the knobs shared between the classic and illustrated sets
type look struct {
	images bool
}

// Body returns the variant as a component wrapping its page in a marked container
func (v Variant) Body(calcs []catalog.Calculator) element.Component {
	return Body{Variant: v, Calculators: calcs}
}

// Body renders one variant
type Body struct {
	Variant     Variant
	Calculators []catalog.Calculator
}

func (bd Body) Render(b *element.Builder) (x any) {
	b.Div("class", "design-body",
		"data-design", strconv.Itoa(bd.Variant.Number),
		"data-set", bd.Variant.Set).R(
		b.Wrap(func() {
			bd.Variant.render(b, bd.Calculators, bd.Variant.look)
		}),
	)
	return
}

var sets = map[string][Count]Variant{
	SetClassic: {
		{Number: 1, Name: "Gradient Glassmorphism", Tagline: "Frosted cards over drifting color blobs", render: renderGlass},
		{Number: 2, Name: "Minimalist Grid", Tagline: "Clean typography on white", render: renderMinimal},
		{Number: 3, Name: "Bold Modern 3D", Tagline: "Dark canvas with tilting cards", render: renderBold},
		{Number: 4, Name: "Corporate Professional", Tagline: "Structured layout with a stats bar", render: renderCorporate},
		{Number: 5, Name: "Contemporary Gradient Mesh", Tagline: "Moving mesh background with shimmering glass", render: renderMesh},
	},
	SetIllustrated: {
		{Number: 1, Name: "Glassmorphism Gallery", Tagline: "Glass cards topped with photography", render: renderGlass},
		{Number: 2, Name: "Minimal Photo Grid", Tagline: "Quiet grid with image headers", render: renderMinimal},
		{Number: 3, Name: "Cinematic 3D", Tagline: "Dark tilt cards with photo banners", render: renderBold},
		{Number: 4, Name: "Corporate Brochure", Tagline: "Numbered cards with cover images", render: renderCorporate},
		{Number: 5, Name: "Mesh Showcase", Tagline: "Gradient mesh with illustrated glass", render: renderMesh},
	},
}

var setOrder = []string{SetClassic, SetIllustrated}

func init() {
	for name, vs := range sets {
		for i := range vs {
			vs[i].Set = name
			vs[i].look = look{images: name == SetIllustrated}
		}
		sets[name] = vs
	}
}

// Sets lists the design set names in display order
func Sets() []string {
	out := make([]string, len(setOrder))
	copy(out, setOrder)
	return out
}

// HasSet reports whether name is a known design set
func HasSet(name string) bool {
	_, ok := sets[name]
	return ok
}

// Variants returns the five variants of a set, or nil for an unknown set
func Variants(set string) []Variant {
	vs, ok := sets[set]
	if !ok {
		return nil
	}
	out := make([]Variant, Count)
	copy(out, vs[:])
	return out
}

// Lookup finds variant n (1-based) of set
func Lookup(set string, n int) (Variant, error) {
	vs, ok := sets[set]
	if !ok {
		return Variant{}, serr.New("unknown design set", "set", set)
	}
	if n < 1 || n > Count {
		return Variant{}, serr.New("design number out of range", "set", set, "design", strconv.Itoa(n))
	}
	return vs[n-1], nil
}
