package configurator

import "bartile/internal/domain/entity"

// ShapeKind identifies how a client should build the tile mesh.
type ShapeKind string

const (
	ShapeBeveledSlab  ShapeKind = "beveled-slab"
	ShapeSplitBoard   ShapeKind = "split-board"
	ShapeBarrel       ShapeKind = "barrel"
	ShapeDoubleBarrel ShapeKind = "double-barrel"
	ShapeFlat         ShapeKind = "flat"
)

// Point is a control point in the tile's cross-section plane.
type Point struct {
	X float64 `json:"x"`
	Z float64 `json:"z"`
}

// Bevel describes the chamfer applied to extruded outlines.
type Bevel struct {
	Thickness float64 `json:"thickness"`
	Size      float64 `json:"size"`
	Segments  int     `json:"segments"`
}

// TileGeometry is a renderer-neutral description of a single tile. Units are illustrative.
// Outline is the closed face of extruded slabs; Curves holds one cross-section per barrel.
type TileGeometry struct {
	Kind    ShapeKind `json:"kind"`
	Width   float64   `json:"width"`
	Height  float64   `json:"height"`
	Depth   float64   `json:"depth"`
	Outline []Point   `json:"outline,omitempty"`
	Curves  [][]Point `json:"curves,omitempty"`
	Bevel   *Bevel    `json:"bevel,omitempty"`
	Splits  int       `json:"splits,omitempty"`
}

// Finish holds the physically based material parameters for a texture.
type Finish struct {
	Roughness float64 `json:"roughness"`
	Metalness float64 `json:"metalness"`
}

// GeometryStrategy builds a tile shape for one family of profiles.
type GeometryStrategy interface {
	Build() TileGeometry
}

// GeometryFunc adapts a plain function to GeometryStrategy.
type GeometryFunc func() TileGeometry

// Build implements GeometryStrategy.
func (f GeometryFunc) Build() TileGeometry { return f() }

const (
	tileWidth  = 1.2
	tileHeight = 1.8
)

func slateGeometry() TileGeometry {
	return TileGeometry{
		Kind:   ShapeBeveledSlab,
		Width:  tileWidth,
		Height: tileHeight,
		Depth:  0.08,
		Outline: []Point{
			{0, 0}, {tileWidth, 0}, {1.15, tileHeight}, {0.05, tileHeight},
		},
		Bevel: &Bevel{Thickness: 0.02, Size: 0.02, Segments: 2},
	}
}

func splitTimberGeometry() TileGeometry {
	return TileGeometry{
		Kind:   ShapeSplitBoard,
		Width:  tileWidth,
		Height: tileHeight,
		Depth:  0.12,
		Splits: 3,
	}
}

func missionGeometry() TileGeometry {
	return TileGeometry{
		Kind:   ShapeBarrel,
		Width:  tileWidth,
		Height: tileHeight,
		Depth:  0.18,
		Curves: [][]Point{
			{{0, 0}, {0.3, 0.15}, {0.6, 0.18}, {0.9, 0.12}, {tileWidth, 0}},
		},
	}
}

func mediterraneanGeometry() TileGeometry {
	return TileGeometry{
		Kind:   ShapeDoubleBarrel,
		Width:  tileWidth,
		Height: tileHeight,
		Depth:  0.15,
		Curves: [][]Point{
			{{0, 0}, {0.3, 0.15}, {0.6, 0}},
			{{0.6, 0}, {0.9, 0.15}, {tileWidth, 0}},
		},
	}
}

func flatGeometry() TileGeometry {
	return TileGeometry{
		Kind:   ShapeFlat,
		Width:  tileWidth,
		Height: tileHeight,
		Depth:  0.1,
	}
}

// Yorkshire profiles are sold in both slate and split timber cuts; the slate outline is used.
var geometryStrategies = map[entity.ProfileCategory]GeometryStrategy{
	entity.ProfileCategorySlate:         GeometryFunc(slateGeometry),
	entity.ProfileCategoryYorkshire:     GeometryFunc(slateGeometry),
	entity.ProfileCategorySplitTimber:   GeometryFunc(splitTimberGeometry),
	entity.ProfileCategoryMission:       GeometryFunc(missionGeometry),
	entity.ProfileCategoryMediterranean: GeometryFunc(mediterraneanGeometry),
}

// GeometryFor returns the tile shape for a profile category, falling back to a flat tile.
func GeometryFor(category entity.ProfileCategory) TileGeometry {
	if s, ok := geometryStrategies[category]; ok {
		return s.Build()
	}

	return flatGeometry()
}

var defaultFinish = Finish{Roughness: 0.7, Metalness: 0.1}

var textureFinishes = map[string]Finish{
	"vintage":         {Roughness: 0.95, Metalness: 0.1},
	"swirl-brush":     {Roughness: 0.85, Metalness: 0.05},
	"straight-brush":  {Roughness: 0.8, Metalness: 0.05},
	"cobblestone":     {Roughness: 0.95, Metalness: 0},
	"signature-slate": {Roughness: 0.75, Metalness: 0.15},
}

// FinishFor returns the material finish for a texture id, falling back to a standard finish.
func FinishFor(textureID string) Finish {
	if f, ok := textureFinishes[textureID]; ok {
		return f
	}

	return defaultFinish
}

// Preview bundles what the 3D viewer and the house overlay need.
type Preview struct {
	OverlayColor string        `json:"overlay_color"`
	ColorHex     string        `json:"color_hex,omitempty"`
	Geometry     *TileGeometry `json:"geometry,omitempty"`
	Finish       Finish        `json:"finish"`
}

// ComposePreview derives the preview parameters for cfg. Geometry is nil until a profile is chosen.
func ComposePreview(cfg *entity.Configuration) Preview {
	p := Preview{
		OverlayColor: PreviewOverlayColor(cfg),
		Finish:       defaultFinish,
	}
	if cfg.Color != nil {
		p.ColorHex = cfg.Color.Hex
	}
	if cfg.Profile != nil {
		g := GeometryFor(cfg.Profile.Category)
		p.Geometry = &g
	}
	if cfg.Texture != nil {
		p.Finish = FinishFor(cfg.Texture.ID)
	}

	return p
}
