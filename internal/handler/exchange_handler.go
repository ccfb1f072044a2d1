package handler

import "net/http"

func (h *Handler) ImportIntegrated(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(w, r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	result, notice, err := h.exchangeService.Import(r.Context(), filename, data)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ImportResponse{
		Members:  result.Members,
		Absences: result.Absences,
		Notice:   domainNoticeToHTTP(notice),
	})
}

func (h *Handler) ExportIntegrated(w http.ResponseWriter, r *http.Request) {
	download, err := h.exchangeService.Export(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeDownload(w, download)
}
