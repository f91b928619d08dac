package configurator

import (
	"fmt"
	"strings"

	"bartile/internal/domain/entity"
)

// CategoryAll matches every category in MatchCategory. Comparison is case-insensitive.
const CategoryAll = "all"

// DefaultOverlayColor is used by the preview when no color has been chosen.
const DefaultOverlayColor = "rgba(74, 74, 74, 0.4)"

// overlayAlpha is appended to a #RRGGBB hex to get a half-transparent overlay.
const overlayAlpha = "80"

// IsComplete reports whether profile, color and texture are all selected.
func IsComplete(cfg *entity.Configuration) bool {
	return cfg != nil && cfg.Profile != nil && cfg.Color != nil && cfg.Texture != nil
}

// PreviewOverlayColor returns the color hex with a fixed alpha, or the neutral default.
func PreviewOverlayColor(cfg *entity.Configuration) string {
	if cfg == nil || cfg.Color == nil {
		return DefaultOverlayColor
	}

	return cfg.Color.Hex + overlayAlpha
}

// Searchable is a catalog item that can be filtered in a picker.
type Searchable interface {
	SearchName() string
	SearchCategory() string
	// SearchCode is the identity code matched by substring, or "" when codes are not searchable.
	SearchCode() string
}

// MatchCategory is the picker filter predicate.
func MatchCategory(item Searchable, activeCategory, query string) bool {
	if !strings.EqualFold(activeCategory, CategoryAll) && item.SearchCategory() != activeCategory {
		return false
	}
	if query == "" {
		return true
	}
	if strings.Contains(strings.ToLower(item.SearchName()), strings.ToLower(query)) {
		return true
	}
	code := item.SearchCode()

	return code != "" && strings.Contains(code, query)
}

// Filter applies MatchCategory to a full candidate list.
func Filter[T Searchable](items []T, activeCategory, query string) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if MatchCategory(item, activeCategory, query) {
			out = append(out, item)
		}
	}

	return out
}

// StepState describes a step in the step indicator.
type StepState string

const (
	StepStateVisited StepState = "visited"
	StepStateCurrent StepState = "current"
	StepStateLocked  StepState = "locked"
)

// StepIndicator is one entry of the step indicator.
type StepIndicator struct {
	Index     int       `json:"index"`
	Label     string    `json:"label"`
	State     StepState `json:"state"`
	Clickable bool      `json:"clickable"`
}

// SummaryRow is one labelled line of the summary.
type SummaryRow struct {
	Group  string `json:"group"`
	Label  string `json:"label"`
	Value  string `json:"value"`
	Swatch string `json:"swatch,omitempty"`
}

// View is everything a client needs to render the current step.
type View struct {
	Step            int                  `json:"step"`
	StepLabel       string               `json:"step_label"`
	Steps           []StepIndicator      `json:"steps"`
	CanProceed      bool                 `json:"can_proceed"`
	CanGoBack       bool                 `json:"can_go_back"`
	ProgressPercent int                  `json:"progress_percent"`
	Configuration   entity.Configuration `json:"configuration"`
	Complete        bool                 `json:"complete"`
	StatusTitle     string               `json:"status_title"`
	StatusMessage   string               `json:"status_message"`
	Summary         []SummaryRow         `json:"summary"`
	OverlayColor    string               `json:"overlay_color"`
}

// ComposeView derives the display data for cfg at step. It never mutates cfg.
func ComposeView(cfg *entity.Configuration, step Step) View {
	complete := IsComplete(cfg)
	v := View{
		Step:            int(step),
		StepLabel:       step.String(),
		Steps:           stepIndicators(step),
		CanProceed:      CanLeave(step, cfg),
		CanGoBack:       step > StepProfile,
		ProgressPercent: (int(step) + 1) * 100 / StepCount,
		Configuration:   cfg.Clone(),
		Complete:        complete,
		Summary:         SummaryRows(cfg),
		OverlayColor:    PreviewOverlayColor(cfg),
	}
	if complete {
		v.StatusTitle = "Configuration Complete"
		v.StatusMessage = "Your tile configuration is ready for a quote"
	} else {
		v.StatusTitle = "Almost There!"
		v.StatusMessage = "Complete all required selections to request a quote"
	}

	return v
}

func stepIndicators(current Step) []StepIndicator {
	out := make([]StepIndicator, 0, StepCount)
	for _, s := range Steps() {
		state := StepStateLocked
		switch {
		case s < current:
			state = StepStateVisited
		case s == current:
			state = StepStateCurrent
		}
		out = append(out, StepIndicator{
			Index:     int(s),
			Label:     s.String(),
			State:     state,
			Clickable: s <= current,
		})
	}

	return out
}

// SummaryRows lists every field of cfg with its display value.
func SummaryRows(cfg *entity.Configuration) []SummaryRow {
	profile, color, texture, swatch := Unset, Unset, Unset, ""
	if cfg.Profile != nil {
		profile = cfg.Profile.Name
	}
	if cfg.Color != nil {
		color = ColorLabel(cfg.Color)
		swatch = cfg.Color.Hex
	}
	if cfg.Texture != nil {
		texture = cfg.Texture.Name
	}

	return []SummaryRow{
		{Group: "Main Selections", Label: "Tile Profile", Value: profile},
		{Group: "Main Selections", Label: "Color", Value: color, Swatch: swatch},
		{Group: "Main Selections", Label: "Texture", Value: texture},
		{Group: "Options", Label: "Edge Design", Value: SummaryLabel(OptionEdge, string(cfg.Edge))},
		{Group: "Options", Label: "Weight", Value: SummaryLabel(OptionWeight, string(cfg.Weight))},
		{Group: "Options", Label: "Layout", Value: SummaryLabel(OptionLayout, string(cfg.Layout))},
		{Group: "Trim Details", Label: "Gable", Value: SummaryLabel(OptionGable, string(cfg.Trim.Gable))},
		{Group: "Trim Details", Label: "Hip", Value: SummaryLabel(OptionHip, string(cfg.Trim.Hip))},
		{Group: "Trim Details", Label: "Ridge", Value: SummaryLabel(OptionRidge, string(cfg.Trim.Ridge))},
	}
}

// ColorLabel formats a color as "<name> (#<code>)".
func ColorLabel(c *entity.ColorSnapshot) string {
	return fmt.Sprintf("%s (#%s)", c.Name, c.ID)
}
