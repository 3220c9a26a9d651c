package web

import (
	"fmt"
	"net/http"
	"strconv"

	"calcdesigns/web/pages"
	"calcdesigns/web/pages/designs"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// pageHandlers render the html routes. defaults is what a bare "/" shows.
type pageHandlers struct {
	defaults designs.Selection
}

// Showcase handles GET /?design=N&set=S
// Bad values never fail the request; they fall back to the defaults.
func (h pageHandlers) Showcase(ctx rweb.Context) error {
	rawDesign := ctx.Request().QueryParam("design")
	rawSet := ctx.Request().QueryParam("set")

	sel, adjusted := designs.ParseSelection(rawDesign, rawSet, h.defaults)
	if adjusted {
		logger.Debug("Selection adjusted", "design", rawDesign, "set", rawSet,
			"using_set", sel.Set, "using_design", sel.Design)
	}

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(pages.NewShowcase(sel, h.defaults.Set).Render())
}

// Standalone handles GET /designs/:set/:n
func (h pageHandlers) Standalone(ctx rweb.Context) error {
	set := ctx.Request().Param("set")
	rawN := ctx.Request().Param("n")

	n, err := strconv.Atoi(rawN)
	if err != nil {
		return notFound(ctx, fmt.Sprintf("%q is not a design number.", rawN))
	}

	v, err := designs.Lookup(set, n)
	if err != nil {
		logger.Debug("Unknown design requested", "set", set, "design", rawN, "error", err)
		return notFound(ctx, fmt.Sprintf("There is no design %d in set %q.", n, set))
	}

	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(pages.NewVariantPage(v).Render())
}

func notFound(ctx rweb.Context, detail string) error {
	ctx.SetStatus(http.StatusNotFound)
	ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
	return ctx.WriteHTML(pages.NewNotFound(detail).Render())
}
