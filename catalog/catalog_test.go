package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculatorsFixedSet(t *testing.T) {
	calcs := Calculators()
	require.Len(t, calcs, 6)
	assert.Equal(t, 6, Count())

	wantIDs := []string{"sip", "lumpsum", "swp", "mf", "goal", "comparison"}
	seen := make(map[string]bool)
	for i, c := range calcs {
		assert.Equal(t, wantIDs[i], c.ID)
		assert.False(t, seen[c.ID], "duplicate id %s", c.ID)
		seen[c.ID] = true

		assert.NotEmpty(t, c.Title)
		assert.NotEmpty(t, c.Description)
		assert.NotEmpty(t, c.Gradient.From)
		assert.NotEmpty(t, c.Gradient.To)
		assert.True(t, c.Icon.Valid(), "icon %q for %s", c.Icon, c.ID)
		assert.True(t, strings.HasPrefix(c.Image, "https://"), "image for %s", c.ID)
	}
}

func TestCalculatorsReturnsCopy(t *testing.T) {
	first := Calculators()
	first[0].Title = "Changed"
	first[1].Gradient.From = "black"

	second := Calculators()
	assert.Equal(t, "SIP Calculator", second[0].Title)
	assert.Equal(t, "green-500", second[1].Gradient.From)
}

func TestByID(t *testing.T) {
	c, ok := ByID("swp")
	require.True(t, ok)
	assert.Equal(t, "SWP Calculator", c.Title)
	assert.Equal(t, "from-orange-500 to-red-600", c.Gradient.Classes())

	_, ok = ByID("emi")
	assert.False(t, ok)
}

func TestIconSVG(t *testing.T) {
	svg := IconTarget.SVG("w-6 h-6")
	assert.True(t, strings.HasPrefix(svg, "<svg "))
	assert.True(t, strings.HasSuffix(svg, "</svg>"))
	assert.Contains(t, svg, `class="w-6 h-6"`)
	assert.Contains(t, svg, `data-icon="target"`)
	assert.Equal(t, 3, strings.Count(svg, "<circle"))

	unknown := Icon("nope")
	assert.False(t, unknown.Valid())
	assert.Contains(t, unknown.SVG("w-4 h-4"), "></svg>")
}
