package handler

import (
	"errors"
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-dashboard-api/pkg/log"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func writeJSON(w http.ResponseWriter, r *http.Request, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.ForContext(r.Context()).WithError(err).Error("Erro ao enviar resposta")
	}
}

// writeServiceError converte um *DashboardError no erro padronizado da API
func writeServiceError(w http.ResponseWriter, err error) {
	var dashErr *dashboarding.DashboardError
	if errors.As(err, &dashErr) {
		var details any
		if dashErr.Details != "" {
			details = dashErr.Details
		}
		apiErrors.WriteError(w, dashErr.Code, dashErr.Err.Error(), details)
		return
	}

	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno do servidor", nil)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	defer r.Body.Close()

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Corpo da requisição inválido")
		apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Corpo da requisição inválido", nil)
		return false
	}

	return true
}
