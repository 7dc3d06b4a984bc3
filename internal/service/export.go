package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/luciantraders/meesho-lister/internal/export"
	"github.com/luciantraders/meesho-lister/internal/imgur"
	"github.com/luciantraders/meesho-lister/internal/model"
)

var tracer = otel.Tracer("internal/service")

// ImageUploader acquires public links for an ordered batch of image blobs.
type ImageUploader interface {
	AcquireLinks(ctx context.Context, images [][]byte) (model.ImageLinkSet, []imgur.UploadResult)
}

// ExportFile is a finished workbook ready for download, with one warning
// per image whose upload failed.
type ExportFile struct {
	Filename string
	Data     []byte
	Warnings []string
}

type ExportService interface {
	ExportDraft(ctx context.Context, draftID uuid.UUID) (ExportFile, error)
}

type exportService struct {
	logger   *slog.Logger
	draftSvc DraftService
	uploader ImageUploader
}

func NewExportService(logger *slog.Logger, draftSvc DraftService, uploader ImageUploader) ExportService {
	return &exportService{
		logger:   logger.With(slog.String("service", "export")),
		draftSvc: draftSvc,
		uploader: uploader,
	}
}

// ExportDraft runs the full pipeline for one draft: upload staged images,
// expand variants into rows, serialize the workbook. Image failures degrade
// to blank link slots; everything else is terminal.
func (s *exportService) ExportDraft(ctx context.Context, draftID uuid.UUID) (ExportFile, error) {
	ctx, span := tracer.Start(ctx, "export.draft")
	defer span.End()

	draft, err := s.draftSvc.GetDraft(ctx, draftID)
	if err != nil {
		return ExportFile{}, fmt.Errorf("draft service get draft: %w", err)
	}

	var links model.ImageLinkSet
	var warnings []string
	if len(draft.Images) > 0 {
		images := make([][]byte, len(draft.Images))
		for i, img := range draft.Images {
			images[i] = img.Data
		}

		var results []imgur.UploadResult
		links, results = s.uploader.AcquireLinks(ctx, images)
		for i, res := range results {
			if !res.OK() {
				warnings = append(warnings, fmt.Sprintf("image %d (%s): %v", i+1, draft.Images[i].Filename, res.Err))
			}
		}
	}

	rows, err := export.BuildRows(draft.Product, draft.Variants, links)
	if err != nil {
		return ExportFile{}, fmt.Errorf("build rows: %w", err)
	}

	data, err := export.WriteWorkbook(rows)
	if err != nil {
		return ExportFile{}, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.InfoContext(ctx, "draft exported",
		slog.String("draft_id", draftID.String()),
		slog.String("product_id", draft.Product.ProductID),
		slog.Int("rows", len(rows)),
		slog.Int("image_warnings", len(warnings)))

	return ExportFile{
		Filename: export.Filename(draft.Product.ProductID),
		Data:     data,
		Warnings: warnings,
	}, nil
}
