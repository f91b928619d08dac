package impl

import (
	"context"
	"testing"
	"time"

	"bartile/internal/domain/entity"
	domainerrors "bartile/internal/domain/errors"
	"bartile/internal/domain/repository"
	mockRepo "bartile/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCatalogService_ListActive(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Color](t)
	svc := NewColorCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	colors := []*entity.Color{newTestColor()}
	repo.EXPECT().List(ctx, true).Return(colors, nil)

	got, err := svc.ListActive(ctx)

	require.NoError(t, err)
	assert.Equal(t, colors, got)
}

func TestCatalogService_ListAll_Error(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Texture](t)
	svc := NewTextureCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().List(ctx, false).Return(nil, errors.New("connection reset"))

	_, err := svc.ListAll(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to list texture items")
}

func TestCatalogService_Create_DerivesProfileKey(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Profile](t)
	svc := NewProfileCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	input := &entity.Profile{
		Name:     "  Legendary Slate ",
		Category: entity.ProfileCategorySlate,
		Features: []string{"Class A fire rating", "  ", ""},
		IsActive: true,
	}

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Profile")).
		Run(func(ctx context.Context, item *entity.Profile) {
			item.ID = uuid.New()
		}).
		Return(nil)

	got, err := svc.Create(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "legendary-slate", got.ProfileID)
	assert.Equal(t, "Legendary Slate", got.Name)
	assert.Equal(t, []string{"Class A fire rating"}, got.Features)
	assert.NotEqual(t, uuid.Nil, got.ID)
}

func TestCatalogService_Create_KeepsExplicitKey(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.HousePreview](t)
	svc := NewHouseCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.HousePreview")).Return(nil)

	got, err := svc.Create(ctx, &entity.HousePreview{HouseID: "ranch-01", Name: "Ranch House", ImageURL: "/houses/ranch.jpg"})

	require.NoError(t, err)
	assert.Equal(t, "ranch-01", got.HouseID)
}

func TestCatalogService_Create_MissingFields(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Color](t)
	svc := NewColorCatalog(repo, newDiscardLogger())

	_, err := svc.Create(context.Background(), &entity.Color{Name: "Charcoal"})

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	var baseErr *domainerrors.BaseError
	require.ErrorAs(t, err, &baseErr)
	assert.Equal(t, "missing required fields: category, color_id, hex", baseErr.Details())
}

func TestCatalogService_Create_ColorHexGetsHash(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Color](t)
	svc := NewColorCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Color")).Return(nil)

	got, err := svc.Create(ctx, &entity.Color{ColorID: "33", Name: "Charcoal", Hex: "3d3d3d", Category: "Dark"})

	require.NoError(t, err)
	assert.Equal(t, "#3d3d3d", got.Hex)
}

func TestCatalogService_Create_DuplicateKey(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Texture](t)
	svc := NewTextureCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	repo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Texture")).
		Return(repository.ErrDuplicateCatalogKey)

	_, err := svc.Create(ctx, &entity.Texture{Name: "Vintage"})

	require.ErrorIs(t, err, domainerrors.ErrCatalogKeyConflict)
}

func TestCatalogService_GetActiveByKey(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		found   *entity.Profile
		findErr error
		wantErr error
	}{
		{name: "active", found: newTestProfile()},
		{name: "inactive", found: &entity.Profile{ProfileID: "legendary-slate", IsActive: false}, wantErr: domainerrors.ErrSelectionUnavailable},
		{name: "unknown", findErr: repository.ErrCatalogItemNotFound, wantErr: domainerrors.ErrSelectionUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mockRepo.NewMockCatalogRepository[entity.Profile](t)
			svc := NewProfileCatalog(repo, newDiscardLogger())

			repo.EXPECT().FindByKey(ctx, "legendary-slate").Return(tt.found, tt.findErr)

			got, err := svc.GetActiveByKey(ctx, "legendary-slate")

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.found, got)
		})
	}
}

func TestCatalogService_Update_KeepsIdentity(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Texture](t)
	svc := NewTextureCatalog(repo, newDiscardLogger())
	ctx := context.Background()

	existing := newTestTexture()
	existing.CreatedAt = time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	repo.EXPECT().FindByID(ctx, existing.ID).Return(existing, nil)
	repo.EXPECT().
		Update(ctx, mock.MatchedBy(func(item *entity.Texture) bool {
			return item.ID == existing.ID && item.CreatedAt.Equal(existing.CreatedAt) && item.Name == "Vintage Plus"
		})).
		Return(nil)

	_, err := svc.Update(ctx, existing.ID, &entity.Texture{TextureID: "vintage", Name: "Vintage Plus"})

	require.NoError(t, err)
}

func TestCatalogService_Update_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.Color](t)
	svc := NewColorCatalog(repo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrCatalogItemNotFound)

	_, err := svc.Update(ctx, id, newTestColor())

	require.ErrorIs(t, err, domainerrors.ErrColorNotFound)
}

func TestCatalogService_Delete_NotFound(t *testing.T) {
	repo := mockRepo.NewMockCatalogRepository[entity.HousePreview](t)
	svc := NewHouseCatalog(repo, newDiscardLogger())
	ctx := context.Background()
	id := uuid.New()

	repo.EXPECT().Delete(ctx, id).Return(repository.ErrCatalogItemNotFound)

	err := svc.Delete(ctx, id)

	require.ErrorIs(t, err, domainerrors.ErrHouseNotFound)
}
