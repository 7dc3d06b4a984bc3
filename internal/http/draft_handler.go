package http

import (
	"encoding/json"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/model"
	"github.com/luciantraders/meesho-lister/internal/service"
)

// maxImageBytes caps one staged image upload.
const maxImageBytes = 10 << 20 // 10 MB

type draftHandler struct {
	svc      *Service
	draftSvc service.DraftService
}

func newDraftHandler(svc *Service, draftSvc service.DraftService) *draftHandler {
	return &draftHandler{svc: svc, draftSvc: draftSvc}
}

// productRequest carries the operator-facing form fields with the ranges the
// marketplace template expects.
type productRequest struct {
	ProductID    string  `json:"product_id" validate:"required"`
	Name         string  `json:"name" validate:"required"`
	Brand        string  `json:"brand"`
	SellingPrice float64 `json:"selling_price" validate:"gte=100,lte=5000"`
	MRP          float64 `json:"mrp" validate:"gtfield=SellingPrice,lte=10000"`
	GSTPercent   float64 `json:"gst_percent" validate:"gte=0,lte=28"`
	Description  string  `json:"description" validate:"required"`
	Keywords     string  `json:"keywords"`
	HSNCode      string  `json:"hsn_code"`
	WeightGrams  float64 `json:"weight_grams" validate:"gte=100,lte=1000"`
}

func (req productRequest) toModel() model.Product {
	return model.Product{
		ProductID:    req.ProductID,
		Name:         req.Name,
		Brand:        req.Brand,
		SellingPrice: req.SellingPrice,
		MRP:          req.MRP,
		GSTPercent:   req.GSTPercent,
		Description:  req.Description,
		Keywords:     req.Keywords,
		HSNCode:      req.HSNCode,
		WeightGrams:  req.WeightGrams,
	}
}

type variantRequest struct {
	Size  string `json:"size" validate:"required"`
	Color string `json:"color" validate:"required"`
}

func (h *draftHandler) createDraft(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	draft, err := h.draftSvc.CreateDraft(r.Context(), req.toModel())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusCreated, draft)
}

func (h *draftHandler) getDraft(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	draft, err := h.draftSvc.GetDraft(r.Context(), id)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	req, ok := h.decodeProduct(w, r)
	if !ok {
		return
	}

	draft, err := h.draftSvc.UpdateProduct(r.Context(), id, req.toModel())
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) addVariant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	var req variantRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	if err := h.svc.validator.Validate(req); err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	draft, err := h.draftSvc.AddVariant(r.Context(), id, model.Variant{Size: req.Size, Color: req.Color})
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) removeVariant(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	draft, err := h.draftSvc.RemoveVariant(r.Context(), id, index)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) stageImage(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImageBytes)
	if err := r.ParseMultipartForm(maxImageBytes); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	draft, err := h.draftSvc.StageImage(r.Context(), id, header.Filename, data)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) clearImages(w http.ResponseWriter, r *http.Request) {
	id, ok := h.draftID(w, r)
	if !ok {
		return
	}

	draft, err := h.draftSvc.ClearImages(r.Context(), id)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, draft)
}

func (h *draftHandler) draftID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "draftId"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return uuid.Nil, false
	}
	return id, true
}

func (h *draftHandler) decodeProduct(w http.ResponseWriter, r *http.Request) (productRequest, bool) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return req, false
	}
	if err := h.svc.validator.Validate(req); err != nil {
		h.svc.respondError(w, r, err)
		return req, false
	}
	return req, true
}
