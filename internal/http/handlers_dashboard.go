package httpx

import (
	"net/http"

	"github.com/nextgen-academy/academy-api/internal/service"
)

// DashboardHandlers provides HTTP handlers for the back-office landing page.
type DashboardHandlers struct {
	Svc *service.StatsService
}

// Stats returns the dashboard count summary.
// GET /api/admin/dashboard.
func (h *DashboardHandlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Dashboard(r.Context())
	if err != nil {
		WriteAppError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, stats)
}
