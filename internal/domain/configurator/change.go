// Package configurator holds the tile configuration state machine, the step
// sequencer and the pure view functions derived from a configuration.
package configurator

import (
	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
)

// Field names a top-level configuration field.
type Field string

const (
	FieldProfile Field = "profile"
	FieldColor   Field = "color"
	FieldTexture Field = "texture"
	FieldEdge    Field = "edge"
	FieldWeight  Field = "weight"
	FieldLayout  Field = "layout"
	FieldTrim    Field = "trim"
)

// ParseField resolves a field name received over the wire.
func ParseField(name string) (Field, error) {
	switch f := Field(name); f {
	case FieldProfile, FieldColor, FieldTexture, FieldEdge, FieldWeight, FieldLayout, FieldTrim:
		return f, nil
	default:
		return "", domainerrors.ErrInvalidField.WithDetails(name)
	}
}

// IsReference reports whether the field holds a catalog snapshot rather than an option.
func (f Field) IsReference() bool {
	return f == FieldProfile || f == FieldColor || f == FieldTexture
}

// Change is a single-field update to a configuration.
// The set of changes is closed: only the constructors in this package produce one.
type Change interface {
	Field() Field
	apply(cfg *entity.Configuration)
}

type profileChange struct{ snap entity.ProfileSnapshot }

func (c profileChange) Field() Field { return FieldProfile }
func (c profileChange) apply(cfg *entity.Configuration) {
	snap := c.snap
	cfg.Profile = &snap
}

type colorChange struct{ snap entity.ColorSnapshot }

func (c colorChange) Field() Field { return FieldColor }
func (c colorChange) apply(cfg *entity.Configuration) {
	snap := c.snap
	cfg.Color = &snap
}

type textureChange struct{ snap entity.TextureSnapshot }

func (c textureChange) Field() Field { return FieldTexture }
func (c textureChange) apply(cfg *entity.Configuration) {
	snap := c.snap
	cfg.Texture = &snap
}

type edgeChange entity.Edge

func (c edgeChange) Field() Field { return FieldEdge }
func (c edgeChange) apply(cfg *entity.Configuration) { cfg.Edge = entity.Edge(c) }

type weightChange entity.Weight

func (c weightChange) Field() Field { return FieldWeight }
func (c weightChange) apply(cfg *entity.Configuration) { cfg.Weight = entity.Weight(c) }

type layoutChange entity.Layout

func (c layoutChange) Field() Field { return FieldLayout }
func (c layoutChange) apply(cfg *entity.Configuration) { cfg.Layout = entity.Layout(c) }

// TrimPatch is a partial trim update. Nil members keep their current value.
type TrimPatch struct {
	Gable *entity.Gable
	Hip   *entity.Hip
	Ridge *entity.Ridge
}

type trimChange TrimPatch

func (c trimChange) Field() Field { return FieldTrim }
func (c trimChange) apply(cfg *entity.Configuration) {
	if c.Gable != nil {
		cfg.Trim.Gable = *c.Gable
	}
	if c.Hip != nil {
		cfg.Trim.Hip = *c.Hip
	}
	if c.Ridge != nil {
		cfg.Trim.Ridge = *c.Ridge
	}
}

// SetProfile selects a tile profile. The snapshot is copied, so later edits to p do not leak in.
func SetProfile(p entity.ProfileSnapshot) Change {
	p.Features = append([]string(nil), p.Features...)

	return profileChange{snap: p}
}

// SetColor selects a tile color.
func SetColor(c entity.ColorSnapshot) Change { return colorChange{snap: c} }

// SetTexture selects a tile texture.
func SetTexture(t entity.TextureSnapshot) Change { return textureChange{snap: t} }

// SetEdge selects the edge finish.
func SetEdge(e entity.Edge) Change { return edgeChange(e) }

// SetWeight selects the weight class.
func SetWeight(w entity.Weight) Change { return weightChange(w) }

// SetLayout selects the layout pattern.
func SetLayout(l entity.Layout) Change { return layoutChange(l) }

// SetTrim merges the given sub-choices into the current trim.
func SetTrim(p TrimPatch) Change { return trimChange(p) }

// ParseOption builds the change for an enumerated option field from its wire value.
// Reference fields and trim are rejected with ErrInvalidField; use ParseTrim for trim.
func ParseOption(field Field, value string) (Change, error) {
	switch field {
	case FieldEdge:
		if e := entity.Edge(value); e.IsValid() {
			return SetEdge(e), nil
		}
	case FieldWeight:
		if w := entity.Weight(value); w.IsValid() {
			return SetWeight(w), nil
		}
	case FieldLayout:
		if l := entity.Layout(value); l.IsValid() {
			return SetLayout(l), nil
		}
	default:
		return nil, domainerrors.ErrInvalidField.WithDetails(string(field))
	}

	return nil, domainerrors.ErrInvalidOption.WithDetails(string(field) + "=" + value)
}

// ParseTrim builds a trim change from wire values. Empty values leave the sub-choice untouched.
func ParseTrim(gable, hip, ridge string) (Change, error) {
	var patch TrimPatch
	if gable != "" {
		g := entity.Gable(gable)
		if !g.IsValid() {
			return nil, domainerrors.ErrInvalidOption.WithDetails("gable=" + gable)
		}
		patch.Gable = &g
	}
	if hip != "" {
		h := entity.Hip(hip)
		if !h.IsValid() {
			return nil, domainerrors.ErrInvalidOption.WithDetails("hip=" + hip)
		}
		patch.Hip = &h
	}
	if ridge != "" {
		r := entity.Ridge(ridge)
		if !r.IsValid() {
			return nil, domainerrors.ErrInvalidOption.WithDetails("ridge=" + ridge)
		}
		patch.Ridge = &r
	}

	return SetTrim(patch), nil
}
