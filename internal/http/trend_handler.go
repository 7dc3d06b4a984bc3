package http

import (
	"net/http"

	"github.com/luciantraders/meesho-lister/internal/service"
)

type trendHandler struct {
	svc      *Service
	trendSvc service.TrendService
}

func newTrendHandler(svc *Service, trendSvc service.TrendService) *trendHandler {
	return &trendHandler{svc: svc, trendSvc: trendSvc}
}

func (h *trendHandler) listTrending(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	platforms := query["platforms"]
	categories := query["categories"]

	products, err := h.trendSvc.ListTrending(r.Context(), platforms, categories)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	h.svc.respondJSON(w, r, http.StatusOK, products)
}

func (h *trendHandler) listPlatforms(w http.ResponseWriter, r *http.Request) {
	h.svc.respondJSON(w, r, http.StatusOK, h.trendSvc.Platforms(r.Context()))
}
