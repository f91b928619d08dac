package entity

import "slices"

// Edge is the tile edge finish.
type Edge string

const (
	EdgeStandard Edge = "standard"
	EdgeRusticut Edge = "rusticut"
	EdgeToscana  Edge = "toscana"
)

// IsValid checks if the Edge is a valid value.
func (e Edge) IsValid() bool {
	switch e {
	case EdgeStandard, EdgeRusticut, EdgeToscana:
		return true
	default:
		return false
	}
}

// Weight is the tile weight class.
type Weight string

const (
	WeightStandard  Weight = "standard"
	WeightUltralite Weight = "ultralite"
	WeightSuperDuty Weight = "super-duty"
)

// IsValid checks if the Weight is a valid value.
func (w Weight) IsValid() bool {
	switch w {
	case WeightStandard, WeightUltralite, WeightSuperDuty:
		return true
	default:
		return false
	}
}

// Layout is the tile staggering pattern.
type Layout string

const (
	LayoutStandard Layout = "standard"
	LayoutCottage  Layout = "cottage"
)

// IsValid checks if the Layout is a valid value.
func (l Layout) IsValid() bool {
	switch l {
	case LayoutStandard, LayoutCottage:
		return true
	default:
		return false
	}
}

// Gable is the rake trim choice.
type Gable string

const (
	Gable90TileRakes   Gable = "90-tile-rakes"
	GableOvalTileRakes Gable = "oval-tile-rakes"
	GableMetalRakes    Gable = "metal-rakes"
)

// IsValid checks if the Gable is a valid value.
func (g Gable) IsValid() bool {
	switch g {
	case Gable90TileRakes, GableOvalTileRakes, GableMetalRakes:
		return true
	default:
		return false
	}
}

// Hip is the hip trim choice.
type Hip string

const (
	Hip45          Hip = "45-hip"
	HipOval        Hip = "oval-hip"
	HipStarter     Hip = "hip-starter"
	HipOvalStarter Hip = "oval-hip-starter"
)

// IsValid checks if the Hip is a valid value.
func (h Hip) IsValid() bool {
	switch h {
	case Hip45, HipOval, HipStarter, HipOvalStarter:
		return true
	default:
		return false
	}
}

// Ridge is the ridge trim choice.
type Ridge string

const (
	Ridge45    Ridge = "45-ridge"
	RidgeOval  Ridge = "oval-ridge"
	RidgeSteep Ridge = "steep-ridge"
	RidgeBell  Ridge = "bell-ridge"
)

// IsValid checks if the Ridge is a valid value.
func (r Ridge) IsValid() bool {
	switch r {
	case Ridge45, RidgeOval, RidgeSteep, RidgeBell:
		return true
	default:
		return false
	}
}

// Trim holds the three roof-edge finishing choices. All three are always set.
type Trim struct {
	Gable Gable `json:"gable"`
	Hip   Hip   `json:"hip"`
	Ridge Ridge `json:"ridge"`
}

// ProfileSnapshot is the immutable copy of a profile attached to a configuration.
type ProfileSnapshot struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    ProfileCategory `json:"category"`
	Description string          `json:"description,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	Features    []string        `json:"features,omitempty"`
}

// ColorSnapshot is the immutable copy of a color attached to a configuration.
type ColorSnapshot struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Hex      string `json:"hex"`
	Category string `json:"category"`
}

// TextureSnapshot is the immutable copy of a texture attached to a configuration.
type TextureSnapshot struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`
	Premium     bool   `json:"premium"`
	Note        string `json:"note,omitempty"`
}

// Configuration is a customer's in-progress tile design.
type Configuration struct {
	Profile *ProfileSnapshot `json:"profile"`
	Color   *ColorSnapshot   `json:"color"`
	Texture *TextureSnapshot `json:"texture"`
	Edge    Edge             `json:"edge"`
	Weight  Weight           `json:"weight"`
	Layout  Layout           `json:"layout"`
	Trim    Trim             `json:"trim"`
}

// DefaultConfiguration returns a configuration with nothing selected and every option at its default.
func DefaultConfiguration() Configuration {
	return Configuration{
		Edge:   EdgeStandard,
		Weight: WeightStandard,
		Layout: LayoutStandard,
		Trim: Trim{
			Gable: Gable90TileRakes,
			Hip:   Hip45,
			Ridge: Ridge45,
		},
	}
}

// Clone returns a deep copy so callers never share snapshot pointers.
func (c Configuration) Clone() Configuration {
	out := c
	if c.Profile != nil {
		p := *c.Profile
		p.Features = slices.Clone(c.Profile.Features)
		out.Profile = &p
	}
	if c.Color != nil {
		col := *c.Color
		out.Color = &col
	}
	if c.Texture != nil {
		t := *c.Texture
		out.Texture = &t
	}

	return out
}
