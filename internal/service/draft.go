package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/model"
)

// StagedImage is an image attached to a draft, held in memory until export
// time uploads it for a public link.
type StagedImage struct {
	Filename string `json:"filename"`
	MIME     string `json:"mime"`
	Data     []byte `json:"-"`
}

// Draft is one operator editing session: product fields, the variant list
// and up to five staged images. Drafts live only in memory.
type Draft struct {
	ID        uuid.UUID       `json:"id"`
	Product   model.Product   `json:"product"`
	Variants  []model.Variant `json:"variants"`
	Images    []StagedImage   `json:"images"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

type DraftService interface {
	CreateDraft(ctx context.Context, product model.Product) (Draft, error)
	GetDraft(ctx context.Context, id uuid.UUID) (Draft, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, product model.Product) (Draft, error)
	AddVariant(ctx context.Context, id uuid.UUID, variant model.Variant) (Draft, error)
	RemoveVariant(ctx context.Context, id uuid.UUID, index int) (Draft, error)
	StageImage(ctx context.Context, id uuid.UUID, filename string, data []byte) (Draft, error)
	ClearImages(ctx context.Context, id uuid.UUID) (Draft, error)
}

// draftService keeps drafts in a mutex-guarded map. There is exactly one
// logical writer per draft (the operator), so no finer locking is needed.
type draftService struct {
	mu     sync.RWMutex
	drafts map[uuid.UUID]*Draft
}

func NewDraftService() DraftService {
	return &draftService{
		drafts: make(map[uuid.UUID]*Draft),
	}
}

func (s *draftService) CreateDraft(_ context.Context, product model.Product) (Draft, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Draft{}, fmt.Errorf("generate uuid v7: %w", err)
	}

	now := time.Now()
	draft := &Draft{
		ID:        id,
		Product:   product,
		Variants:  []model.Variant{model.DefaultVariant()},
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.mu.Lock()
	s.drafts[id] = draft
	s.mu.Unlock()

	return snapshot(draft), nil
}

func (s *draftService) GetDraft(_ context.Context, id uuid.UUID) (Draft, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[id]
	if !ok {
		return Draft{}, apperr.DraftNotFoundErr
	}

	return snapshot(draft), nil
}

func (s *draftService) UpdateProduct(_ context.Context, id uuid.UUID, product model.Product) (Draft, error) {
	return s.mutate(id, func(draft *Draft) error {
		draft.Product = product
		return nil
	})
}

func (s *draftService) AddVariant(_ context.Context, id uuid.UUID, variant model.Variant) (Draft, error) {
	return s.mutate(id, func(draft *Draft) error {
		draft.Variants = model.NormalizeVariants(append(draft.Variants, variant))
		return nil
	})
}

func (s *draftService) RemoveVariant(_ context.Context, id uuid.UUID, index int) (Draft, error) {
	return s.mutate(id, func(draft *Draft) error {
		if index < 0 || index >= len(draft.Variants) {
			return apperr.VariantNotFoundErr
		}
		remaining := append(draft.Variants[:index:index], draft.Variants[index+1:]...)
		// An emptied list is reseeded with the default variant, so the
		// editing surface never holds zero variants.
		draft.Variants = model.NormalizeVariants(remaining)
		return nil
	})
}

func (s *draftService) StageImage(_ context.Context, id uuid.UUID, filename string, data []byte) (Draft, error) {
	mime := mimetype.Detect(data)
	if !mime.Is("image/jpeg") && !mime.Is("image/png") {
		return Draft{}, apperr.ImageTypeErr
	}

	return s.mutate(id, func(draft *Draft) error {
		if len(draft.Images) >= model.MaxImages {
			return apperr.ImageLimitErr
		}
		draft.Images = append(draft.Images, StagedImage{
			Filename: filename,
			MIME:     mime.String(),
			Data:     data,
		})
		return nil
	})
}

func (s *draftService) ClearImages(_ context.Context, id uuid.UUID) (Draft, error) {
	return s.mutate(id, func(draft *Draft) error {
		draft.Images = nil
		return nil
	})
}

func (s *draftService) mutate(id uuid.UUID, fn func(*Draft) error) (Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[id]
	if !ok {
		return Draft{}, apperr.DraftNotFoundErr
	}

	if err := fn(draft); err != nil {
		return Draft{}, err
	}
	draft.UpdatedAt = time.Now()

	return snapshot(draft), nil
}

// snapshot copies a draft so callers never share the store's slices.
func snapshot(draft *Draft) Draft {
	out := *draft
	out.Variants = append([]model.Variant(nil), draft.Variants...)
	out.Images = append([]StagedImage(nil), draft.Images...)
	return out
}
