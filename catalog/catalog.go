// Package catalog holds the fixed list of calculator categories shown on the
// landing page. The list is built once at package load and handed out as
// copies, so no renderer can change what another renderer sees.
package catalog

// Gradient is a Tailwind color pair used for icon tiles and hover glows
type Gradient struct {
	From string `json:"from" msgpack:"from"`
	To   string `json:"to" msgpack:"to"`
}

// Classes returns the utility classes for the pair, e.g. "from-blue-500 to-purple-600"
func (g Gradient) Classes() string {
	return "from-" + g.From + " to-" + g.To
}

// Calculator describes the display metadata of one calculator category.
// There is no calculation behind it.
type Calculator struct {
	ID          string   `json:"id" msgpack:"id"`
	Title       string   `json:"title" msgpack:"title"`
	Icon        Icon     `json:"icon" msgpack:"icon"`
	Description string   `json:"description" msgpack:"description"`
	Gradient    Gradient `json:"gradient" msgpack:"gradient"`
	Image       string   `json:"image,omitempty" msgpack:"image,omitempty"`
}

// HasImage reports whether an illustrative image is attached
func (c Calculator) HasImage() bool {
	return c.Image != ""
}

const imageHost = "https://images.unsplash.com/"

var calculators = []Calculator{
	{
		ID:          "sip",
		Title:       "SIP Calculator",
		Icon:        IconCalculator,
		Description: "Calculate your SIP returns",
		Gradient:    Gradient{From: "blue-500", To: "purple-600"},
		Image:       imageHost + "photo-1554224155-6726b3ff858f?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "lumpsum",
		Title:       "Lumpsum Calculator",
		Icon:        IconWallet,
		Description: "Plan your one-time investment",
		Gradient:    Gradient{From: "green-500", To: "teal-600"},
		Image:       imageHost + "photo-1579621970563-ebec7560ff3e?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "swp",
		Title:       "SWP Calculator",
		Icon:        IconTrendingUp,
		Description: "Systematic withdrawal planning",
		Gradient:    Gradient{From: "orange-500", To: "red-600"},
		Image:       imageHost + "photo-1611974789855-9c2a0a7236a3?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "mf",
		Title:       "MF Calculator",
		Icon:        IconPieChart,
		Description: "Mutual fund return estimator",
		Gradient:    Gradient{From: "pink-500", To: "rose-600"},
		Image:       imageHost + "photo-1460925895917-afdab827c52f?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "goal",
		Title:       "Goal Planning",
		Icon:        IconTarget,
		Description: "Achieve your financial goals",
		Gradient:    Gradient{From: "indigo-500", To: "blue-600"},
		Image:       imageHost + "photo-1553729459-efe14ef6055d?auto=format&fit=crop&w=800&q=80",
	},
	{
		ID:          "comparison",
		Title:       "Fund Comparison",
		Icon:        IconBarChart,
		Description: "Compare mutual funds",
		Gradient:    Gradient{From: "cyan-500", To: "blue-600"},
		Image:       imageHost + "photo-1590283603385-17ffb3a7f29f?auto=format&fit=crop&w=800&q=80",
	},
}

// Calculators returns a copy of the descriptor list in display order.
// Calculator holds only value fields, so a shallow copy is a full copy.
func Calculators() []Calculator {
	out := make([]Calculator, len(calculators))
	copy(out, calculators)
	return out
}

// Count is the number of calculator categories
func Count() int {
	return len(calculators)
}

// ByID finds a descriptor by its identifier
func ByID(id string) (Calculator, bool) {
	for _, c := range calculators {
		if c.ID == id {
			return c, true
		}
	}
	return Calculator{}, false
}
