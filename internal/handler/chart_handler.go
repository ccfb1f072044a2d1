package handler

import "net/http"

func (h *Handler) WorkloadCharts(w http.ResponseWriter, r *http.Request) {
	result, err := h.chartService.Workload(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, WorkloadResponse{
		Treemap:      result.Treemap,
		Distribution: result.Distribution,
		Heatmap:      result.Heatmap,
		Deviation:    result.Deviation,
		Columns:      columnStatsToHTTP(result.Columns),
	})
}
