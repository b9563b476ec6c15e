package handler

import (
	"net/http"

	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
)

// GetDashboardStats retorna os indicadores de hoje comparados com ontem
func GetDashboardStats(service dashboarding.DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ComputeDashboardStats(r.Context()))
	}
}

func ListCustomers(service dashboarding.DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListCustomers(r.Context()))
	}
}
