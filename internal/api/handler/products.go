package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
)

func ListProducts(service dashboarding.DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListProducts(r.Context()))
	}
}

func GetProduct(service dashboarding.DocumentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		product, err := service.GetProduct(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	}
}

// CreateProduct recebe o preço em unidade de exibição; a conversão para centavos fica no integrador
func CreateProduct(service dashboarding.DashboardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input domain.ProductInput
		if !decodeBody(w, r, &input) {
			return
		}

		product, err := service.CreateProduct(r.Context(), input)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusCreated, product)
	}
}

func UpdateProduct(service dashboarding.DashboardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var patch domain.ProductPatch
		if !decodeBody(w, r, &patch) {
			return
		}

		product, err := service.UpdateProduct(r.Context(), id, patch)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, product)
	}
}

func DeleteProduct(service dashboarding.DashboardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteProduct(r.Context(), id); err != nil {
			writeServiceError(w, err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}
