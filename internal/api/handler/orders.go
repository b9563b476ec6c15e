package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
)

type updateOrderStatusBody struct {
	Status domain.OrderStatus `json:"status"`
}

func ListRecentOrders(service dashboarding.DashboardReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, service.ListRecentOrders(r.Context()))
	}
}

func GetOrder(service dashboarding.DocumentReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		order, err := service.GetOrder(r.Context(), id)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, order)
	}
}

// UpdateOrderStatus altera apenas o status do pedido
func UpdateOrderStatus(service dashboarding.DashboardWriter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var body updateOrderStatusBody
		if !decodeBody(w, r, &body) {
			return
		}

		if err := service.UpdateOrderStatus(r.Context(), id, body.Status); err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, r, http.StatusOK, map[string]any{
			"success": true,
			"id":      id,
			"status":  body.Status,
		})
	}
}
