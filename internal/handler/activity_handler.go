package handler

import (
	"net/http"

	"github.com/bagdasarian/position-helper/internal/domain"
)

func (h *Handler) ListActivity(w http.ResponseWriter, r *http.Request) {
	entries, err := h.activityService.List(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, activityToHTTP(entries))
}

func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	colors, err := h.themeService.Get(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req ThemeRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.Dark == nil {
		h.handleError(w, domain.NewBadRequestError("dark is required"))
		return
	}

	colors, err := h.themeService.Set(r.Context(), *req.Dark)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, colors)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
