package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/model"
	"github.com/luciantraders/meesho-lister/internal/service"
)

var testProduct = model.Product{
	ProductID:    "KURTI001",
	Name:         "Floral Cotton Kurti",
	Brand:        "Generic",
	SellingPrice: 399,
	MRP:          999,
	GSTPercent:   5,
	Description:  "Premium quality cotton kurti",
	Keywords:     "kurti, cotton",
	HSNCode:      "61091000",
	WeightGrams:  280,
}

// Magic-number prefixes that satisfy MIME sniffing in tests.
var (
	pngBytes  = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n', 0, 0, 0, 0}
	jpegBytes = []byte{0xFF, 0xD8, 0xFF, 0xE0, 0x00, 0x10, 'J', 'F', 'I', 'F', 0x00}
)

func TestDraftService(t *testing.T) {
	ctx := context.Background()

	t.Run("Should seed a new draft with the default variant", func(t *testing.T) {
		svc := service.NewDraftService()

		draft, err := svc.CreateDraft(ctx, testProduct)

		require.NoError(t, err)
		assert.Equal(t, testProduct, draft.Product)
		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, draft.Variants)
		assert.Empty(t, draft.Images)
	})

	t.Run("Should return not found for an unknown draft", func(t *testing.T) {
		svc := service.NewDraftService()

		_, err := svc.GetDraft(ctx, uuid.New())

		assert.ErrorIs(t, err, apperr.DraftNotFoundErr)
	})

	t.Run("Should append variants preserving order", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		draft, err = svc.AddVariant(ctx, draft.ID, model.Variant{Size: "L", Color: "Blue"})
		require.NoError(t, err)

		assert.Equal(t, []model.Variant{
			{Size: "M", Color: "Red"},
			{Size: "L", Color: "Blue"},
		}, draft.Variants)
	})

	t.Run("Should drop a blank variant on add", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		draft, err = svc.AddVariant(ctx, draft.ID, model.Variant{Size: "  ", Color: "Blue"})
		require.NoError(t, err)

		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, draft.Variants)
	})

	t.Run("Should reseed the default variant when the list empties", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		draft, err = svc.RemoveVariant(ctx, draft.ID, 0)
		require.NoError(t, err)

		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, draft.Variants)
	})

	t.Run("Should reject an out of range variant index", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		_, err = svc.RemoveVariant(ctx, draft.ID, 3)

		assert.ErrorIs(t, err, apperr.VariantNotFoundErr)
	})

	t.Run("Should stage sniffed JPEG and PNG images", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		draft, err = svc.StageImage(ctx, draft.ID, "front.png", pngBytes)
		require.NoError(t, err)
		draft, err = svc.StageImage(ctx, draft.ID, "back.jpg", jpegBytes)
		require.NoError(t, err)

		require.Len(t, draft.Images, 2)
		assert.Equal(t, "front.png", draft.Images[0].Filename)
		assert.Equal(t, "image/png", draft.Images[0].MIME)
		assert.Equal(t, "image/jpeg", draft.Images[1].MIME)
	})

	t.Run("Should reject a non-image payload regardless of filename", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		_, err = svc.StageImage(ctx, draft.ID, "photo.png", []byte("just text"))

		assert.ErrorIs(t, err, apperr.ImageTypeErr)
	})

	t.Run("Should cap staged images at five", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		for i := 0; i < model.MaxImages; i++ {
			_, err = svc.StageImage(ctx, draft.ID, "img.png", pngBytes)
			require.NoError(t, err)
		}

		_, err = svc.StageImage(ctx, draft.ID, "extra.png", pngBytes)

		assert.ErrorIs(t, err, apperr.ImageLimitErr)
	})

	t.Run("Should clear staged images", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		_, err = svc.StageImage(ctx, draft.ID, "img.png", pngBytes)
		require.NoError(t, err)

		draft, err = svc.ClearImages(ctx, draft.ID)
		require.NoError(t, err)

		assert.Empty(t, draft.Images)
	})

	t.Run("Should hand out snapshots, not shared slices", func(t *testing.T) {
		svc := service.NewDraftService()
		draft, err := svc.CreateDraft(ctx, testProduct)
		require.NoError(t, err)

		snap, err := svc.GetDraft(ctx, draft.ID)
		require.NoError(t, err)
		snap.Variants[0] = model.Variant{Size: "XXL", Color: "Black"}

		fresh, err := svc.GetDraft(ctx, draft.ID)
		require.NoError(t, err)
		assert.Equal(t, []model.Variant{{Size: "M", Color: "Red"}}, fresh.Variants)
	})
}
