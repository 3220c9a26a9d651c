// Package api serves the read-only JSON view of the showcase content.
// There are no write endpoints: the page is a mockup and nothing it shows
// can be changed over the wire.
package api

import (
	"net/http"
	"strconv"
	"strings"

	"calcdesigns/catalog"
	"calcdesigns/web/pages/designs"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// MsgPackContentType is what a client sends in Accept to get msgpack instead of JSON
const MsgPackContentType = "application/x-msgpack"

// APIResponse provides a consistent response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success" msgpack:"success"`
	Data    interface{} `json:"data,omitempty" msgpack:"data,omitempty"`
	Error   string      `json:"error,omitempty" msgpack:"error,omitempty"`
}

// DesignInfo describes one variant for listing
type DesignInfo struct {
	Set     string `json:"set" msgpack:"set"`
	Number  int    `json:"number" msgpack:"number"`
	Name    string `json:"name" msgpack:"name"`
	Tagline string `json:"tagline" msgpack:"tagline"`
	Path    string `json:"path" msgpack:"path"`
}

// writeSuccess sends a successful response with data, as msgpack when the
// client asked for it and JSON otherwise
func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	resp := APIResponse{Success: true, Data: data}
	if wantsMsgPack(ctx) {
		return writeMsgPack(ctx, status, resp)
	}
	ctx.SetStatus(status)
	return ctx.WriteJSON(resp)
}

// writeError sends an error response in the same encoding writeSuccess would use
func writeError(ctx rweb.Context, status int, message string) error {
	resp := APIResponse{Success: false, Error: message}
	if wantsMsgPack(ctx) {
		return writeMsgPack(ctx, status, resp)
	}
	ctx.SetStatus(status)
	return ctx.WriteJSON(resp)
}

func wantsMsgPack(ctx rweb.Context) bool {
	for _, h := range ctx.Request().Headers() {
		if strings.EqualFold(h.Key, "Accept") && strings.Contains(h.Value, MsgPackContentType) {
			return true
		}
	}
	return false
}

func writeMsgPack(ctx rweb.Context, status int, resp APIResponse) error {
	data, err := msgpack.Marshal(resp)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to encode msgpack response"), "path", ctx.Request().Path())
		// JSON directly: going back through writeError would pick msgpack again
		ctx.SetStatus(http.StatusInternalServerError)
		return ctx.WriteJSON(APIResponse{Success: false, Error: "encoding failed"})
	}
	ctx.SetStatus(status)
	ctx.Response().SetHeader("Content-Type", MsgPackContentType)
	return ctx.Bytes(data)
}

// ListCalculators handles GET /api/v1/calculators
// Returns the six calculator descriptors in display order.
func ListCalculators(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, catalog.Calculators())
}

// GetCalculator handles GET /api/v1/calculators/:id
func GetCalculator(ctx rweb.Context) error {
	id := ctx.Request().Param("id")
	calc, ok := catalog.ByID(id)
	if !ok {
		return writeError(ctx, http.StatusNotFound, "calculator not found")
	}
	return writeSuccess(ctx, http.StatusOK, calc)
}

// ListDesigns handles GET /api/v1/designs
// Query parameters:
//   - set: restrict to one design set (e.g. ?set=illustrated)
func ListDesigns(ctx rweb.Context) error {
	sets := designs.Sets()
	if set := ctx.Request().QueryParam("set"); set != "" {
		if !designs.HasSet(set) {
			return writeError(ctx, http.StatusBadRequest, "unknown design set")
		}
		sets = []string{set}
	}

	var out []DesignInfo
	for _, set := range sets {
		for _, v := range designs.Variants(set) {
			out = append(out, DesignInfo{
				Set:     v.Set,
				Number:  v.Number,
				Name:    v.Name,
				Tagline: v.Tagline,
				Path:    DesignPath(v),
			})
		}
	}
	return writeSuccess(ctx, http.StatusOK, out)
}

// DesignPath is the standalone page route for v
func DesignPath(v designs.Variant) string {
	return "/designs/" + v.Set + "/" + strconv.Itoa(v.Number)
}

// Health handles GET /health
func Health(ctx rweb.Context) error {
	return ctx.WriteJSON(map[string]string{"status": "ok"})
}
