package service_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/imgur"
	"github.com/luciantraders/meesho-lister/internal/model"
	"github.com/luciantraders/meesho-lister/internal/service"
	"github.com/luciantraders/meesho-lister/internal/testutil"
)

// fakeUploader maps each image to a canned result without any network.
type fakeUploader struct {
	results []imgur.UploadResult
	calls   int
}

func (f *fakeUploader) AcquireLinks(_ context.Context, images [][]byte) (model.ImageLinkSet, []imgur.UploadResult) {
	f.calls++

	var links model.ImageLinkSet
	results := make([]imgur.UploadResult, len(images))
	for i := range images {
		res := imgur.UploadResult{Err: errors.New("no canned result")}
		if i < len(f.results) {
			res = f.results[i]
		}
		results[i] = res
		if res.OK() {
			links[i] = res.Link
		}
	}
	return links, results
}

// emptyVariantDrafts overrides GetDraft to hand back a draft with no
// variants, which the store itself never produces.
type emptyVariantDrafts struct {
	service.DraftService
}

func (emptyVariantDrafts) GetDraft(context.Context, uuid.UUID) (service.Draft, error) {
	return service.Draft{Product: testProduct}, nil
}

func TestExportService(t *testing.T) {
	ctx := context.Background()
	logger := testutil.DiscardLogger()

	t.Run("Should export one row per variant without images", func(t *testing.T) {
		drafts := service.NewDraftService()
		draft, err := drafts.CreateDraft(ctx, testProduct)
		require.NoError(t, err)
		_, err = drafts.AddVariant(ctx, draft.ID, model.Variant{Size: "L", Color: "Blue"})
		require.NoError(t, err)

		uploader := &fakeUploader{}
		svc := service.NewExportService(logger, drafts, uploader)

		file, err := svc.ExportDraft(ctx, draft.ID)
		require.NoError(t, err)

		assert.Equal(t, "meesho_KURTI001_ready.xlsx", file.Filename)
		assert.Empty(t, file.Warnings)
		assert.Zero(t, uploader.calls, "no staged images means no upload call")

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, "KURTI001-M-RED", rows[1][10])
		assert.Equal(t, "KURTI001-L-BLUE", rows[2][10])
	})

	t.Run("Should proceed with blank slots and warnings on upload failures", func(t *testing.T) {
		drafts := service.NewDraftService()
		draft, err := drafts.CreateDraft(ctx, testProduct)
		require.NoError(t, err)
		for _, name := range []string{"a.png", "b.png", "c.png"} {
			_, err = drafts.StageImage(ctx, draft.ID, name, pngBytes)
			require.NoError(t, err)
		}

		uploader := &fakeUploader{results: []imgur.UploadResult{
			{Link: "https://i.imgur.com/one.png"},
			{Err: errors.New("unexpected status: 429 Too Many Requests")},
			{Link: "https://i.imgur.com/three.png"},
		}}
		svc := service.NewExportService(logger, drafts, uploader)

		file, err := svc.ExportDraft(ctx, draft.ID)
		require.NoError(t, err)

		require.Len(t, file.Warnings, 1)
		assert.Contains(t, file.Warnings[0], "image 2")
		assert.Contains(t, file.Warnings[0], "b.png")

		f, err := excelize.OpenReader(bytes.NewReader(file.Data))
		require.NoError(t, err)
		defer f.Close()

		rows, err := f.GetRows("Sheet1")
		require.NoError(t, err)
		require.Len(t, rows, 2)

		row := rows[1]
		assert.Equal(t, "https://i.imgur.com/one.png", row[5])
		assert.Equal(t, "", row[6])
		assert.Equal(t, "https://i.imgur.com/three.png", row[7])
	})

	t.Run("Should fail on a missing draft", func(t *testing.T) {
		svc := service.NewExportService(logger, service.NewDraftService(), &fakeUploader{})

		_, err := svc.ExportDraft(ctx, uuid.New())

		assert.ErrorIs(t, err, apperr.DraftNotFoundErr)
	})

	t.Run("Should refuse to export zero variants", func(t *testing.T) {
		svc := service.NewExportService(logger, emptyVariantDrafts{}, &fakeUploader{})

		_, err := svc.ExportDraft(ctx, uuid.New())

		assert.ErrorIs(t, err, apperr.NoVariantsErr)
	})
}
