package configurator

import (
	"testing"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() entity.ProfileSnapshot {
	return entity.ProfileSnapshot{
		ID:          "legendary-slate",
		Name:        "Legendary Slate",
		Category:    entity.ProfileCategorySlate,
		Description: "Hand-crafted slate look",
		Features:    []string{"Class A fire rating", "50-year warranty"},
	}
}

func testColor() entity.ColorSnapshot {
	return entity.ColorSnapshot{ID: "33", Name: "Charcoal", Hex: "#3d3d3d", Category: "Dark"}
}

func testTexture() entity.TextureSnapshot {
	return entity.TextureSnapshot{ID: "vintage", Name: "Vintage", Premium: true, Note: "Adds 2 weeks lead time"}
}

func ptr[T any](v T) *T { return &v }

func TestMachine_UpdateChangesOnlyNamedField(t *testing.T) {
	tests := []struct {
		name   string
		change Change
		mutate func(cfg *entity.Configuration)
	}{
		{
			name:   "profile",
			change: SetProfile(testProfile()),
			mutate: func(cfg *entity.Configuration) { p := testProfile(); cfg.Profile = &p },
		},
		{
			name:   "color",
			change: SetColor(testColor()),
			mutate: func(cfg *entity.Configuration) { c := testColor(); cfg.Color = &c },
		},
		{
			name:   "texture",
			change: SetTexture(testTexture()),
			mutate: func(cfg *entity.Configuration) { tx := testTexture(); cfg.Texture = &tx },
		},
		{
			name:   "edge",
			change: SetEdge(entity.EdgeToscana),
			mutate: func(cfg *entity.Configuration) { cfg.Edge = entity.EdgeToscana },
		},
		{
			name:   "weight",
			change: SetWeight(entity.WeightSuperDuty),
			mutate: func(cfg *entity.Configuration) { cfg.Weight = entity.WeightSuperDuty },
		},
		{
			name:   "layout",
			change: SetLayout(entity.LayoutCottage),
			mutate: func(cfg *entity.Configuration) { cfg.Layout = entity.LayoutCottage },
		},
		{
			name:   "trim ridge",
			change: SetTrim(TrimPatch{Ridge: ptr(entity.RidgeBell)}),
			mutate: func(cfg *entity.Configuration) { cfg.Trim.Ridge = entity.RidgeBell },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMachine()
			want := m.Configuration()
			tt.mutate(&want)

			m.Update(tt.change)

			if diff := cmp.Diff(want, m.Configuration()); diff != "" {
				t.Fatalf("Update(%s) mismatch (-want +got):\n%s", tt.name, diff)
			}
		})
	}
}

func TestMachine_TrimMergesKeyWise(t *testing.T) {
	m := NewMachine()
	m.Update(SetTrim(TrimPatch{Hip: ptr(entity.HipOvalStarter), Ridge: ptr(entity.RidgeSteep)}))

	m.Update(SetTrim(TrimPatch{Gable: ptr(entity.GableMetalRakes)}))

	assert.Equal(t, entity.Trim{
		Gable: entity.GableMetalRakes,
		Hip:   entity.HipOvalStarter,
		Ridge: entity.RidgeSteep,
	}, m.Configuration().Trim)
}

func TestMachine_ResetRestoresDefaults(t *testing.T) {
	m := NewMachine()
	m.Update(SetProfile(testProfile()))
	m.Update(SetColor(testColor()))
	m.Update(SetTexture(testTexture()))
	m.Update(SetEdge(entity.EdgeRusticut))
	m.Update(SetTrim(TrimPatch{Gable: ptr(entity.GableOvalTileRakes)}))

	m.Reset()

	want := entity.Configuration{
		Edge:   "standard",
		Weight: "standard",
		Layout: "standard",
		Trim:   entity.Trim{Gable: "90-tile-rakes", Hip: "45-hip", Ridge: "45-ridge"},
	}
	if diff := cmp.Diff(want, m.Configuration()); diff != "" {
		t.Fatalf("Reset mismatch (-want +got):\n%s", diff)
	}
}

func TestMachine_SnapshotsAreIsolated(t *testing.T) {
	p := testProfile()
	m := NewMachine()
	m.Update(SetProfile(p))

	p.Name = "Renamed in catalog"
	p.Features[0] = "changed"
	got := m.Configuration()
	got.Profile.Name = "mutated copy"

	cfg := m.Configuration()
	assert.Equal(t, "Legendary Slate", cfg.Profile.Name)
	assert.Equal(t, "Class A fire rating", cfg.Profile.Features[0])
}

func TestMachine_UpdateNilIsNoop(t *testing.T) {
	m := NewMachine()
	m.Update(nil)
	assert.Equal(t, entity.DefaultConfiguration(), m.Configuration())
}

func TestParseField(t *testing.T) {
	f, err := ParseField("texture")
	require.NoError(t, err)
	assert.Equal(t, FieldTexture, f)

	_, err = ParseField("roof")
	require.ErrorIs(t, err, domainerrors.ErrInvalidField)
}

func TestParseOption(t *testing.T) {
	change, err := ParseOption(FieldWeight, "ultralite")
	require.NoError(t, err)
	assert.Equal(t, FieldWeight, change.Field())

	_, err = ParseOption(FieldEdge, "jagged")
	require.ErrorIs(t, err, domainerrors.ErrInvalidOption)

	_, err = ParseOption(FieldProfile, "legendary-slate")
	require.ErrorIs(t, err, domainerrors.ErrInvalidField)
}

func TestParseTrim(t *testing.T) {
	change, err := ParseTrim("", "oval-hip", "")
	require.NoError(t, err)

	m := NewMachine()
	m.Update(change)
	assert.Equal(t, entity.Trim{Gable: entity.Gable90TileRakes, Hip: entity.HipOval, Ridge: entity.Ridge45}, m.Configuration().Trim)

	_, err = ParseTrim("", "", "flat-ridge")
	require.ErrorIs(t, err, domainerrors.ErrInvalidOption)
}
