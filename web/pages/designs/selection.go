package designs

import (
	"net/url"
	"strconv"
	"strings"
)

// Selection is the only state of the showcase: which set, which design
type Selection struct {
	Set    string
	Design int
}

// DefaultSelection is what a bare request shows
var DefaultSelection = Selection{Set: SetClassic, Design: 1}

// Valid reports whether the selection names an existing variant
func (s Selection) Valid() bool {
	return HasSet(s.Set) && s.Design >= 1 && s.Design <= Count
}

// Variant resolves the selection, falling back to the default for anything invalid
func (s Selection) Variant() Variant {
	v, err := Lookup(s.Set, s.Design)
	if err != nil {
		v, _ = Lookup(DefaultSelection.Set, DefaultSelection.Design)
	}
	return v
}

// Query builds the query string for the selection. The set is left out when it
// matches defaultSet so default links stay short.
func (s Selection) Query(defaultSet string) string {
	q := url.Values{}
	q.Set("design", strconv.Itoa(s.Design))
	if s.Set != defaultSet {
		q.Set("set", s.Set)
	}
	return "?" + q.Encode()
}

// ParseSelection normalizes raw query values against def.
// Empty values take the default silently. Anything unparseable or out of range
// also takes the default and reports adjusted=true.
func ParseSelection(designParam, setParam string, def Selection) (sel Selection, adjusted bool) {
	if !def.Valid() {
		def = DefaultSelection
	}
	sel = def

	if setParam = strings.TrimSpace(strings.ToLower(setParam)); setParam != "" {
		if HasSet(setParam) {
			sel.Set = setParam
		} else {
			adjusted = true
		}
	}

	if designParam = strings.TrimSpace(designParam); designParam != "" {
		n, err := strconv.Atoi(designParam)
		if err != nil || n < 1 || n > Count {
			adjusted = true
		} else {
			sel.Design = n
		}
	}
	return
}
