package configurator

// Unset is shown for any value that has no label.
const Unset = "—"

// Option names an enumerated, always-populated configuration choice.
type Option string

const (
	OptionEdge   Option = "edge"
	OptionWeight Option = "weight"
	OptionLayout Option = "layout"
	OptionGable  Option = "gable"
	OptionHip    Option = "hip"
	OptionRidge  Option = "ridge"
)

// Choice is one selectable value of an option together with its display text.
type Choice struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description"`
}

var choiceTables = map[Option][]Choice{
	OptionEdge: {
		{"standard", "Standard", "Straight factory-finished look"},
		{"rusticut", "Rusticut", "Serrated edge cut for a more rustic finish"},
		{"toscana", "Toscana", "Unique beveling creates a staggered look"},
	},
	OptionWeight: {
		{"standard", "Standard (10.4 lbs/sq.ft.)", "Perfect for easy installation"},
		{"ultralite", "Ultralite (8.9 lbs/sq.ft.)", "Perfect for re-roofing"},
		{"super-duty", "Super Duty (11.6 lbs/sq.ft.)", "For extreme weather climates"},
	},
	OptionLayout: {
		{"standard", "Standard", "Straight factory-finished look"},
		{"cottage", "Cottage", "Variable staggering for unparalleled texture"},
	},
	OptionGable: {
		{"90-tile-rakes", "90° Tile Rakes", "Clean traditional tile look - L shaped"},
		{"oval-tile-rakes", "Oval Tile Rakes", "Mediterranean rounded C shape"},
		{"metal-rakes", "Metal Rakes", "True shake or slate look"},
	},
	OptionHip: {
		{"45-hip", "45° Hip", "Traditional shake or slate look"},
		{"oval-hip", "Oval Hip", "Spanish or Mediterranean look"},
		{"hip-starter", "Hip Starter", "First tile on hip run for slate/shake"},
		{"oval-hip-starter", "Oval Hip Starter", "First tile for Mission/European"},
	},
	OptionRidge: {
		{"45-ridge", "45° Ridge", "Slate/shake look for 3/12 to 10/12 pitch"},
		{"oval-ridge", "Oval Ridge", "Mission and Mediterranean look"},
		{"steep-ridge", "Steep Ridge", "For above 11/12 pitch"},
		{"bell-ridge", "Bell Ridge", "Unique English coping tile look"},
	},
}

// Options returns every option name in display order.
func Options() []Option {
	return []Option{OptionEdge, OptionWeight, OptionLayout, OptionGable, OptionHip, OptionRidge}
}

// Choices returns the selectable values of option in display order.
func Choices(option Option) []Choice {
	return append([]Choice(nil), choiceTables[option]...)
}

// SummaryLabel maps an option value to its display label, or Unset when the value is empty or unknown.
func SummaryLabel(option Option, value string) string {
	if value == "" {
		return Unset
	}
	for _, c := range choiceTables[option] {
		if c.Value == value {
			return c.Label
		}
	}

	return Unset
}
