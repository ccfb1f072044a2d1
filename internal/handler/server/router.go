package server

import (
	"net/http"

	"github.com/bagdasarian/position-helper/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("GET /members/list", h.ListMembers)
	mux.HandleFunc("GET /members/active", h.ActiveMembers)
	mux.HandleFunc("POST /members/add", h.AddMember)
	mux.HandleFunc("POST /members/delete", h.DeleteMember)
	mux.HandleFunc("POST /members/setIsActive", h.SetIsActive)
	mux.HandleFunc("POST /members/toggle", h.ToggleActive)
	mux.HandleFunc("POST /members/memo", h.SaveMemo)

	mux.HandleFunc("GET /positions/get", h.GetTable)
	mux.HandleFunc("POST /positions/update", h.UpdateTable)
	mux.HandleFunc("POST /positions/import", h.ImportSpreadsheet)
	mux.HandleFunc("GET /positions/export", h.ExportSpreadsheet)

	mux.HandleFunc("GET /absences/get", h.GetAbsences)
	mux.HandleFunc("POST /absences/add", h.AddAbsence)
	mux.HandleFunc("POST /absences/reset", h.ResetAbsences)
	mux.HandleFunc("POST /absences/import", h.ImportAbsences)
	mux.HandleFunc("GET /absences/export", h.ExportAbsences)
	mux.HandleFunc("GET /absences/stats", h.AbsenceStats)

	mux.HandleFunc("GET /charts/workload", h.WorkloadCharts)

	mux.HandleFunc("POST /data/import", h.ImportIntegrated)
	mux.HandleFunc("GET /data/export", h.ExportIntegrated)

	mux.HandleFunc("GET /activity/get", h.ListActivity)
	mux.HandleFunc("GET /theme/get", h.GetTheme)
	mux.HandleFunc("POST /theme/set", h.SetTheme)

	mux.HandleFunc("GET /health", h.Health)
}
