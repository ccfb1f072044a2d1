package handler

import (
	"net/http"

	"github.com/bagdasarian/position-helper/internal/exchange"
)

func (h *Handler) GetAbsences(w http.ResponseWriter, r *http.Request) {
	log, err := h.absenceService.Get(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AbsenceResponse{AbsenceData: exchange.AbsenceToData(log)})
}

func (h *Handler) AddAbsence(w http.ResponseWriter, r *http.Request) {
	var req AddAbsenceRequest
	if err := decodeJSON(r, &req); err != nil {
		h.handleError(w, err)
		return
	}

	log, notice, err := h.absenceService.Add(r.Context(), req.Date, req.Member, req.Reason)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AbsenceResponse{
		AbsenceData: exchange.AbsenceToData(log),
		Notice:      domainNoticeToHTTP(notice),
	})
}

func (h *Handler) ResetAbsences(w http.ResponseWriter, r *http.Request) {
	notice, err := h.absenceService.Reset(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, NoticeOnlyResponse{Notice: domainNoticeToHTTP(notice)})
}

func (h *Handler) ImportAbsences(w http.ResponseWriter, r *http.Request) {
	filename, data, err := readUpload(w, r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	log, notice, err := h.absenceService.Import(r.Context(), filename, data)
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, AbsenceResponse{
		AbsenceData: exchange.AbsenceToData(log),
		Notice:      domainNoticeToHTTP(notice),
	})
}

func (h *Handler) ExportAbsences(w http.ResponseWriter, r *http.Request) {
	download, err := h.absenceService.Export(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeDownload(w, download)
}

func (h *Handler) AbsenceStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.absenceService.Stats(r.Context())
	if err != nil {
		h.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, absenceStatsToHTTP(stats))
}
