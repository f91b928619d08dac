package configurator

import (
	"encoding/base64"
	"encoding/json"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
)

// ShareState is the compact, catalog-key form of a configuration carried in share links.
type ShareState struct {
	Profile string `json:"p,omitempty"`
	Color   string `json:"c,omitempty"`
	Texture string `json:"t,omitempty"`
	Edge    string `json:"e,omitempty"`
	Weight  string `json:"w,omitempty"`
	Layout  string `json:"l,omitempty"`
	Gable   string `json:"g,omitempty"`
	Hip     string `json:"h,omitempty"`
	Ridge   string `json:"r,omitempty"`
}

// ShareStateOf captures the catalog keys and option values of cfg.
func ShareStateOf(cfg *entity.Configuration) ShareState {
	s := ShareState{
		Edge:   string(cfg.Edge),
		Weight: string(cfg.Weight),
		Layout: string(cfg.Layout),
		Gable:  string(cfg.Trim.Gable),
		Hip:    string(cfg.Trim.Hip),
		Ridge:  string(cfg.Trim.Ridge),
	}
	if cfg.Profile != nil {
		s.Profile = cfg.Profile.ID
	}
	if cfg.Color != nil {
		s.Color = cfg.Color.ID
	}
	if cfg.Texture != nil {
		s.Texture = cfg.Texture.ID
	}

	return s
}

// OptionChanges converts the option part of the state into changes. Empty values keep defaults.
func (s ShareState) OptionChanges() ([]Change, error) {
	changes := make([]Change, 0, 4)
	for field, value := range map[Field]string{FieldEdge: s.Edge, FieldWeight: s.Weight, FieldLayout: s.Layout} {
		if value == "" {
			continue
		}
		change, err := ParseOption(field, value)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	trim, err := ParseTrim(s.Gable, s.Hip, s.Ridge)
	if err != nil {
		return nil, err
	}

	return append(changes, trim), nil
}

// EncodeShareToken serializes the state into a URL-safe token.
func EncodeShareToken(s ShareState) string {
	raw, _ := json.Marshal(s) // plain strings only, cannot fail

	return base64.RawURLEncoding.EncodeToString(raw)
}

// DecodeShareToken parses a token produced by EncodeShareToken.
func DecodeShareToken(token string) (ShareState, error) {
	var s ShareState
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return s, domainerrors.ErrValidationFailed.WithDetails("malformed share token")
	}
	if err := json.Unmarshal(raw, &s); err != nil {
		return s, domainerrors.ErrValidationFailed.WithDetails("malformed share token")
	}

	return s, nil
}
