package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/storefront-dashboard-api/internal/api/handler/router"
	"github.com/vfg2006/storefront-dashboard-api/internal/domain"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/storefront-dashboard-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/storefront-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/storefront-dashboard-api/pkg/log"
	"go.uber.org/mock/gomock"
)

type fakeCronJob struct {
	triggered int
}

func (f *fakeCronJob) TriggerManualDigest() { f.triggered++ }

func (f *fakeCronJob) GetStatus() map[string]any {
	return map[string]any{"enabled": true}
}

func setupRouter(t *testing.T) (*mocks.MockDashboarder, *fakeCronJob, http.Handler) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := mocks.NewMockDashboarder(ctrl)
	cron := &fakeCronJob{}

	rt := router.New(
		router.WithRoutes(Healthcheck()...),
		router.WithRoutes(Metrics(prometheus.NewRegistry())...),
		router.WithRoutes(Dashboard(service)...),
		router.WithRoutes(Orders(service)...),
		router.WithRoutes(Products(service)...),
		router.WithRoutes(CronJobs(CronJobServices{DailyDigestService: cron})...),
	)

	return service, cron, rt
}

func doRequest(handler http.Handler, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func decodeAPIError(t *testing.T, rec *httptest.ResponseRecorder) apiErrors.APIError {
	var apiErr apiErrors.APIError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &apiErr))
	return apiErr
}

func TestGetDashboardStats(t *testing.T) {
	service, _, rt := setupRouter(t)

	service.EXPECT().ComputeDashboardStats(gomock.Any()).Return(domain.DashboardStats{
		RevenueToday:   500,
		RevenueChange:  25,
		NewOrders:      2,
		ConversionRate: 4.8,
	})

	rec := doRequest(rt, http.MethodGet, "/v1/dashboard/stats", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"revenue_today": 500,
		"revenue_change": 25,
		"new_orders": 2,
		"orders_change": 0,
		"conversion_rate": 4.8,
		"conversion_change": 0,
		"active_customers": 0,
		"customers_change": 0
	}`, rec.Body.String())
}

func TestListRecentOrders_CustomerPlaceholder(t *testing.T) {
	service, _, rt := setupRouter(t)
	createdAt := time.Date(2024, 1, 1, 13, 2, 0, 0, time.UTC)

	service.EXPECT().ListRecentOrders(gomock.Any()).Return([]domain.Order{
		{
			ID:          "o1",
			OrderNumber: "#ORD-1",
			Customer:    domain.NewIDReference("u1").WithPlaceholder(domain.CustomerPlaceholder()),
			Total:       450,
			Status:      domain.OrderStatusProcessing,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		},
	})

	rec := doRequest(rt, http.MethodGet, "/v1/orders", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "o1",
		"order_number": "#ORD-1",
		"customer": {"email": "Customer"},
		"total": 450,
		"status": "processing",
		"created_at": "2024-01-01T13:02:00Z",
		"updated_at": "2024-01-01T13:02:00Z"
	}]`, rec.Body.String())
}

func TestGetOrder_NotFound(t *testing.T) {
	service, _, rt := setupRouter(t)

	service.EXPECT().GetOrder(gomock.Any(), "o404").
		Return(nil, &dashboarding.DashboardError{Err: dashboarding.ErrNotFound, Code: apiErrors.ErrNotFound, Operation: "getOrder"})

	rec := doRequest(rt, http.MethodGet, "/v1/orders/o404", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrNotFound, decodeAPIError(t, rec).Code)
}

func TestUpdateOrderStatus(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setup          func(service *mocks.MockDashboarder)
		expectedStatus int
		expectedCode   string
	}{
		{
			name: "sucesso",
			body: `{"status":"shipped"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", domain.OrderStatusShipped).Return(nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name: "status inválido",
			body: `{"status":"lost"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", domain.OrderStatus("lost")).
					Return(dashboarding.NewDashboardError(dashboarding.ErrInvalidOrderStatus, apiErrors.ErrInvalidStatus, "updateOrderStatus", "lost"))
			},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidStatus,
		},
		{
			name:           "JSON malformado",
			body:           `{"status":`,
			setup:          func(service *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
			expectedCode:   apiErrors.ErrInvalidFormat,
		},
		{
			name: "Payload recusou",
			body: `{"status":"cancelled"}`,
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().UpdateOrderStatus(gomock.Any(), "o1", domain.OrderStatusCancelled).
					Return(dashboarding.NewDashboardError(dashboarding.ErrWriteRejected, apiErrors.ErrWriteRejected, "updateOrderStatus", ""))
			},
			expectedStatus: http.StatusBadGateway,
			expectedCode:   apiErrors.ErrWriteRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, rt := setupRouter(t)
			tt.setup(service)

			rec := doRequest(rt, http.MethodPatch, "/v1/orders/o1/status", tt.body)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedCode != "" {
				assert.Equal(t, tt.expectedCode, decodeAPIError(t, rec).Code)
			}
		})
	}
}

func TestListProducts(t *testing.T) {
	service, _, rt := setupRouter(t)

	service.EXPECT().ListProducts(gomock.Any()).Return([]domain.Product{
		{ID: "p1", Name: "Fone", SKU: "HP-001", Price: 249.99, IsActive: true, Tags: []string{}},
	})

	rec := doRequest(rt, http.MethodGet, "/v1/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{
		"id": "p1",
		"name": "Fone",
		"sku": "HP-001",
		"price": 249.99,
		"inventory_count": 0,
		"is_active": true,
		"tags": []
	}]`, rec.Body.String())
}

func TestCreateProduct(t *testing.T) {
	service, _, rt := setupRouter(t)
	active := true

	service.EXPECT().CreateProduct(gomock.Any(), domain.ProductInput{
		Name:           "Fone",
		Price:          249.99,
		InventoryCount: 5,
		IsActive:       &active,
		Tags:           []string{"Audio"},
	}).Return(&domain.Product{ID: "p1", Name: "Fone", SKU: "SKU-AbC123", Price: 249.99, InventoryCount: 5, IsActive: true, Tags: []string{"Audio"}}, nil)

	rec := doRequest(rt, http.MethodPost, "/v1/products", `{"name":"Fone","price":249.99,"inventory_count":5,"is_active":true,"tags":["Audio"]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"sku":"SKU-AbC123"`)
}

func TestUpdateProduct_PartialBody(t *testing.T) {
	service, _, rt := setupRouter(t)

	service.EXPECT().UpdateProduct(gomock.Any(), "p1", gomock.Any()).
		DoAndReturn(func(_ any, _ string, patch domain.ProductPatch) (*domain.Product, error) {
			assert.Nil(t, patch.Name)
			require.NotNil(t, patch.Price)
			assert.Equal(t, 19.99, *patch.Price)
			return &domain.Product{ID: "p1", Price: 19.99, Tags: []string{}}, nil
		})

	rec := doRequest(rt, http.MethodPatch, "/v1/products/p1", `{"price":19.99}`)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	t.Run("sucesso", func(t *testing.T) {
		service, _, rt := setupRouter(t)

		service.EXPECT().DeleteProduct(gomock.Any(), "p1").Return(nil)

		rec := doRequest(rt, http.MethodDelete, "/v1/products/p1", "")

		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("falha é reportada", func(t *testing.T) {
		service, _, rt := setupRouter(t)

		service.EXPECT().DeleteProduct(gomock.Any(), "p1").
			Return(dashboarding.NewDashboardError(dashboarding.ErrStoreFailure, apiErrors.ErrCommunication, "deleteProduct", ""))

		rec := doRequest(rt, http.MethodDelete, "/v1/products/p1", "")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})
}

func TestListCustomers(t *testing.T) {
	service, _, rt := setupRouter(t)

	service.EXPECT().ListCustomers(gomock.Any()).Return([]domain.Customer{})

	rec := doRequest(rt, http.MethodGet, "/v1/customers", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListAnalytics(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		setup          func(service *mocks.MockDashboarder)
		expectedStatus int
	}{
		{
			name:  "sem parâmetros usa os padrões",
			query: "",
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().ListAnalytics(gomock.Any(), 0, time.Time{}).Return([]domain.AnalyticsPoint{})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:  "days e end informados",
			query: "?days=7&end=2024-01-15",
			setup: func(service *mocks.MockDashboarder) {
				service.EXPECT().ListAnalytics(gomock.Any(), 7, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)).
					Return([]domain.AnalyticsPoint{{Date: "2024-01-15"}})
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "days inválido",
			query:          "?days=abc",
			setup:          func(service *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "days fora do limite",
			query:          "?days=0",
			setup:          func(service *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "end inválido",
			query:          "?end=15/01/2024",
			setup:          func(service *mocks.MockDashboarder) {},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, _, rt := setupRouter(t)
			tt.setup(service)

			rec := doRequest(rt, http.MethodGet, "/v1/analytics"+tt.query, "")

			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestCronJobs(t *testing.T) {
	t.Run("dispara o resumo diário", func(t *testing.T) {
		_, cron, rt := setupRouter(t)

		rec := doRequest(rt, http.MethodPost, "/v1/cron/run/daily-digest", "")

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, 1, cron.triggered)
	})

	t.Run("tipo desconhecido", func(t *testing.T) {
		_, cron, rt := setupRouter(t)

		rec := doRequest(rt, http.MethodPost, "/v1/cron/run/meta", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, 0, cron.triggered)
	})

	t.Run("status", func(t *testing.T) {
		_, _, rt := setupRouter(t)

		rec := doRequest(rt, http.MethodGet, "/v1/cron/status", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"daily-digest":{"enabled":true}}`, rec.Body.String())
	})
}

func TestHealthcheckAndMetrics(t *testing.T) {
	_, _, rt := setupRouter(t)

	assert.Equal(t, http.StatusOK, doRequest(rt, http.MethodGet, "/healthcheck", "").Code)
	assert.Equal(t, http.StatusOK, doRequest(rt, http.MethodGet, "/metrics", "").Code)
}
