package handler

import (
	"net/http"
	"strconv"

	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-dashboard-api/pkg/utils"
)

const maxAnalyticsDays = 366

// ListAnalytics aceita ?days=N (padrão da configuração) e ?end=2006-01-02 (padrão hoje)
func ListAnalytics(service dashboarding.DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()

		days := 0
		if raw := query.Get("days"); raw != "" {
			parsed, err := strconv.Atoi(raw)
			if err != nil || parsed < 1 || parsed > maxAnalyticsDays {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "days deve ser um inteiro entre 1 e 366", nil)
				return
			}
			days = parsed
		}

		end, err := utils.ParseDate(query.Get("end"))
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end deve estar no formato AAAA-MM-DD", nil)
			return
		}

		writeJSON(w, r, http.StatusOK, service.ListAnalytics(r.Context(), days, *end))
	}
}
