package configurator

import (
	"testing"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeometryFor(t *testing.T) {
	tests := []struct {
		category entity.ProfileCategory
		want     ShapeKind
	}{
		{entity.ProfileCategorySlate, ShapeBeveledSlab},
		{entity.ProfileCategoryYorkshire, ShapeBeveledSlab},
		{entity.ProfileCategorySplitTimber, ShapeSplitBoard},
		{entity.ProfileCategoryMission, ShapeBarrel},
		{entity.ProfileCategoryMediterranean, ShapeDoubleBarrel},
		{entity.ProfileCategory("Shingle"), ShapeFlat},
	}

	for _, tt := range tests {
		t.Run(string(tt.category), func(t *testing.T) {
			g := GeometryFor(tt.category)
			assert.Equal(t, tt.want, g.Kind)
			assert.Positive(t, g.Width)
			assert.Positive(t, g.Height)
		})
	}
}

func TestFinishFor(t *testing.T) {
	assert.Equal(t, Finish{Roughness: 0.95, Metalness: 0}, FinishFor("cobblestone"))
	assert.Equal(t, Finish{Roughness: 0.75, Metalness: 0.15}, FinishFor("signature-slate"))
	assert.Equal(t, Finish{Roughness: 0.7, Metalness: 0.1}, FinishFor("unknown"))
}

func TestComposePreview(t *testing.T) {
	cfg := entity.DefaultConfiguration()
	p := ComposePreview(&cfg)
	assert.Nil(t, p.Geometry)
	assert.Equal(t, DefaultOverlayColor, p.OverlayColor)

	profile, color, texture := testProfile(), testColor(), testTexture()
	cfg.Profile, cfg.Color, cfg.Texture = &profile, &color, &texture
	p = ComposePreview(&cfg)

	require.NotNil(t, p.Geometry)
	assert.Equal(t, ShapeBeveledSlab, p.Geometry.Kind)
	assert.Equal(t, "#3d3d3d", p.ColorHex)
	assert.Equal(t, FinishFor("vintage"), p.Finish)
}

func TestShareToken_RoundTrip(t *testing.T) {
	profile, color := testProfile(), testColor()
	cfg := entity.DefaultConfiguration()
	cfg.Profile, cfg.Color = &profile, &color
	cfg.Layout = entity.LayoutCottage

	token := EncodeShareToken(ShareStateOf(&cfg))
	state, err := DecodeShareToken(token)
	require.NoError(t, err)

	assert.Equal(t, "legendary-slate", state.Profile)
	assert.Equal(t, "33", state.Color)
	assert.Empty(t, state.Texture)

	changes, err := state.OptionChanges()
	require.NoError(t, err)
	m := NewMachine()
	for _, c := range changes {
		m.Update(c)
	}
	assert.Equal(t, entity.LayoutCottage, m.Configuration().Layout)
	assert.Equal(t, cfg.Trim, m.Configuration().Trim)
}

func TestShareToken_Rejects(t *testing.T) {
	_, err := DecodeShareToken("%%%")
	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	_, err = ShareState{Edge: "jagged"}.OptionChanges()
	require.ErrorIs(t, err, domainerrors.ErrInvalidOption)
}
