package handler

import "net/http"

func (h *Handler) GetTable(w http.ResponseWriter, r *http.Request) {
	view, err := h.positionService.GetTable(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tableViewToHTTP(view, nil))
}

func (h *Handler) UpdateTable(w http.ResponseWriter, r *http.Request) {
	var req UpdateTableRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	view, notice, err := h.positionService.UpdateTable(r.Context(), req.Columns, req.Data)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tableViewToHTTP(view, notice))
}

func (h *Handler) ImportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(w, r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	view, notice, err := h.positionService.ImportSpreadsheet(r.Context(), filename, data)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, tableViewToHTTP(view, notice))
}

func (h *Handler) ExportSpreadsheet(w http.ResponseWriter, r *http.Request) {
	download, err := h.positionService.ExportSpreadsheet(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeDownload(w, download)
}
