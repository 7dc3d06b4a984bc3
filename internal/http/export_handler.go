package http

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/luciantraders/meesho-lister/internal/apperr"
	"github.com/luciantraders/meesho-lister/internal/service"
)

const (
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	// ImageWarningHeader carries one entry per image whose upload failed.
	ImageWarningHeader = "X-Image-Warning"
)

type exportHandler struct {
	svc       *Service
	exportSvc service.ExportService
}

func newExportHandler(svc *Service, exportSvc service.ExportService) *exportHandler {
	return &exportHandler{svc: svc, exportSvc: exportSvc}
}

func (h *exportHandler) exportDraft(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "draftId"))
	if err != nil {
		h.svc.respondError(w, r, apperr.ValidationErr.WrapParent(err))
		return
	}

	file, err := h.exportSvc.ExportDraft(r.Context(), id)
	if err != nil {
		h.svc.respondError(w, r, err)
		return
	}

	for _, warning := range file.Warnings {
		w.Header().Add(ImageWarningHeader, warning)
	}
	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Filename))
	w.Header().Set("Content-Length", fmt.Sprint(len(file.Data)))
	w.WriteHeader(http.StatusOK)

	//nolint:errcheck
	w.Write(file.Data)
}
