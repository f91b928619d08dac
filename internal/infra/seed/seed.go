// Package seed loads the starter catalog from YAML and upserts it by business key.
package seed

import (
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"bartile/internal/domain/entity"
	"bartile/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Catalog is the seed file layout.
type Catalog struct {
	Profiles []Profile      `yaml:"profiles"`
	Colors   []Color        `yaml:"colors"`
	Textures []Texture      `yaml:"textures"`
	Houses   []HousePreview `yaml:"houses"`
}

type Profile struct {
	ID          string   `yaml:"id"`
	Name        string   `yaml:"name"`
	Category    string   `yaml:"category"`
	Description string   `yaml:"description"`
	ImageURL    string   `yaml:"imageUrl"`
	Features    []string `yaml:"features"`
	Inactive    bool     `yaml:"inactive"`
}

type Color struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	Hex      string `yaml:"hex"`
	Category string `yaml:"category"`
	Inactive bool   `yaml:"inactive"`
}

type Texture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	ImageURL    string `yaml:"imageUrl"`
	Premium     bool   `yaml:"premium"`
	Note        string `yaml:"note"`
	Inactive    bool   `yaml:"inactive"`
}

type HousePreview struct {
	ID       string `yaml:"id"`
	Name     string `yaml:"name"`
	ImageURL string `yaml:"imageUrl"`
	Inactive bool   `yaml:"inactive"`
}

// Result counts what Apply changed per catalog.
type Result struct {
	Created map[string]int
	Updated map[string]int
}

// Load decodes a seed file. Unknown keys are rejected so typos do not silently drop data.
func Load(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Catalog
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return &c, nil
		}

		return nil, errors.Wrap(err, "failed to decode seed file")
	}

	if err := c.validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

func (c *Catalog) validate() error {
	var problems []string
	check := func(kind string, i int, id, name string) {
		if strings.TrimSpace(id) == "" || strings.TrimSpace(name) == "" {
			problems = append(problems, kind+" #"+strconv.Itoa(i+1)+" needs id and name")
		}
	}
	for i, p := range c.Profiles {
		check("profile", i, p.ID, p.Name)
	}
	for i, col := range c.Colors {
		check("color", i, col.ID, col.Name)
	}
	for i, t := range c.Textures {
		check("texture", i, t.ID, t.Name)
	}
	for i, h := range c.Houses {
		check("house", i, h.ID, h.Name)
	}

	if len(problems) > 0 {
		return errors.Errorf("invalid seed file: %s", strings.Join(problems, "; "))
	}

	return nil
}

// Apply upserts every item inside one transaction. List order becomes sort order.
func Apply(ctx context.Context, txManager repository.TransactionManager, c *Catalog, logger *slog.Logger) (*Result, error) {
	res := &Result{Created: map[string]int{}, Updated: map[string]int{}}

	err := txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		if err := upsertAll(ctx, f.NewProfileRepository(), "profiles", toProfiles(c.Profiles), res, catalogKeys[entity.Profile]{
			key:      func(p *entity.Profile) string { return p.ProfileID },
			identity: func(p *entity.Profile) (*uuid.UUID, *time.Time) { return &p.ID, &p.CreatedAt },
		}); err != nil {
			return err
		}
		if err := upsertAll(ctx, f.NewColorRepository(), "colors", toColors(c.Colors), res, catalogKeys[entity.Color]{
			key:      func(c *entity.Color) string { return c.ColorID },
			identity: func(c *entity.Color) (*uuid.UUID, *time.Time) { return &c.ID, &c.CreatedAt },
		}); err != nil {
			return err
		}
		if err := upsertAll(ctx, f.NewTextureRepository(), "textures", toTextures(c.Textures), res, catalogKeys[entity.Texture]{
			key:      func(t *entity.Texture) string { return t.TextureID },
			identity: func(t *entity.Texture) (*uuid.UUID, *time.Time) { return &t.ID, &t.CreatedAt },
		}); err != nil {
			return err
		}

		return upsertAll(ctx, f.NewHousePreviewRepository(), "houses", toHouses(c.Houses), res, catalogKeys[entity.HousePreview]{
			key:      func(h *entity.HousePreview) string { return h.HouseID },
			identity: func(h *entity.HousePreview) (*uuid.UUID, *time.Time) { return &h.ID, &h.CreatedAt },
		})
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to apply seed catalog")
	}

	for kind, n := range res.Created {
		logger.InfoContext(ctx, "Seeded catalog", slog.String("kind", kind), slog.Int("created", n), slog.Int("updated", res.Updated[kind]))
	}

	return res, nil
}

type catalogKeys[T entity.CatalogEntity] struct {
	key      func(*T) string
	identity func(*T) (*uuid.UUID, *time.Time)
}

func upsertAll[T entity.CatalogEntity](ctx context.Context, repo repository.CatalogRepository[T], kind string, items []*T, res *Result, keys catalogKeys[T]) error {
	res.Created[kind], res.Updated[kind] = 0, 0
	for _, item := range items {
		existing, err := repo.FindByKey(ctx, keys.key(item))
		switch {
		case errors.Is(err, repository.ErrCatalogItemNotFound):
			if err := repo.Create(ctx, item); err != nil {
				return errors.Wrapf(err, "failed to create %s %s", kind, keys.key(item))
			}
			res.Created[kind]++
		case err != nil:
			return errors.Wrapf(err, "failed to look up %s %s", kind, keys.key(item))
		default:
			id, createdAt := keys.identity(item)
			existingID, existingCreatedAt := keys.identity(existing)
			*id, *createdAt = *existingID, *existingCreatedAt
			if err := repo.Update(ctx, item); err != nil {
				return errors.Wrapf(err, "failed to update %s %s", kind, keys.key(item))
			}
			res.Updated[kind]++
		}
	}

	return nil
}

func toProfiles(in []Profile) []*entity.Profile {
	out := make([]*entity.Profile, 0, len(in))
	for i, p := range in {
		out = append(out, &entity.Profile{
			ProfileID:   strings.TrimSpace(p.ID),
			Name:        strings.TrimSpace(p.Name),
			Category:    entity.ProfileCategory(strings.TrimSpace(p.Category)),
			Description: p.Description,
			ImageURL:    p.ImageURL,
			Features:    p.Features,
			IsActive:    !p.Inactive,
			SortOrder:   i,
		})
	}

	return out
}

func toColors(in []Color) []*entity.Color {
	out := make([]*entity.Color, 0, len(in))
	for i, c := range in {
		hex := strings.TrimSpace(c.Hex)
		if hex != "" && !strings.HasPrefix(hex, "#") {
			hex = "#" + hex
		}
		out = append(out, &entity.Color{
			ColorID:   strings.TrimSpace(c.ID),
			Name:      strings.TrimSpace(c.Name),
			Hex:       hex,
			Category:  strings.TrimSpace(c.Category),
			IsActive:  !c.Inactive,
			SortOrder: i,
		})
	}

	return out
}

func toTextures(in []Texture) []*entity.Texture {
	out := make([]*entity.Texture, 0, len(in))
	for i, t := range in {
		out = append(out, &entity.Texture{
			TextureID:   strings.TrimSpace(t.ID),
			Name:        strings.TrimSpace(t.Name),
			Description: t.Description,
			ImageURL:    t.ImageURL,
			IsPremium:   t.Premium,
			Note:        t.Note,
			IsActive:    !t.Inactive,
			SortOrder:   i,
		})
	}

	return out
}

func toHouses(in []HousePreview) []*entity.HousePreview {
	out := make([]*entity.HousePreview, 0, len(in))
	for i, h := range in {
		out = append(out, &entity.HousePreview{
			HouseID:   strings.TrimSpace(h.ID),
			Name:      strings.TrimSpace(h.Name),
			ImageURL:  h.ImageURL,
			IsActive:  !h.Inactive,
			SortOrder: i,
		})
	}

	return out
}
