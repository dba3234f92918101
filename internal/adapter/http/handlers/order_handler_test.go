package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/handlers/mocks"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func orderTestRouter(h *OrderHandler) *gin.Engine {
	r := gin.New()
	group := r.Group("/v1")
	group.POST("/orders", h.CreateOrder)
	group.GET("/orders", h.ListOrders)
	group.GET("/orders/in-production", h.ListInProductionProducts)
	group.GET("/orders/qr/:payload", h.ResolveQRCode)
	group.GET("/orders/:order_id", h.GetOrder)
	group.PATCH("/orders/:order_id/products/manufactured", h.SetProductManufactured)
	return r
}

func TestOrderHandler_CreateOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("malformed json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		req := httptest.NewRequest(http.MethodPost, "/v1/orders", bytes.NewBufferString(`{"order_number":"#1001"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().CreateOrder(
			gomock.Any(),
			"#1001",
			entities.Customer{Name: "Maria Souza", Email: "maria@example.com"},
			[]entities.Product{{Name: "Logo polo", SKU: "SKU-1", Quantity: 2, Price: 15.5}},
			gomock.Nil(),
			"high",
		).Return(entities.Order{
			ID:          "ord-1",
			OrderNumber: "#1001",
			Status:      entities.OrderStatusPending,
			QRCode:      "ord-1",
			Total:       31,
		}, nil)

		body := bytes.NewBufferString(`{
			"order_number": "#1001",
			"customer": {"name": "Maria Souza", "email": "maria@example.com"},
			"products": [{"name": "Logo polo", "sku": "SKU-1", "quantity": 2, "price": 15.5}],
			"complexity": "high"
		}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["id"] != "ord-1" || res["qr_code"] != "ord-1" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("usecase validation maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().CreateOrder(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Order{}, usecase.ErrInvalidQuantity)

		body := bytes.NewBufferString(`{
			"order_number": "#1001",
			"customer": {"name": "Maria Souza", "email": "maria@example.com"},
			"products": [{"name": "Logo polo", "quantity": -1}]
		}`)
		req := httptest.NewRequest(http.MethodPost, "/v1/orders", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestOrderHandler_GetOrder(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().GetOrder(gomock.Any(), "missing").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().GetOrder(gomock.Any(), "ord-1").Return(entities.Order{
			ID:          "ord-1",
			OrderNumber: "#1001",
			Status:      entities.OrderStatusInProduction,
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["status"] != "in_production" {
			t.Fatalf("unexpected status: %v", res["status"])
		}
	})
}

func TestOrderHandler_ListOrders(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid status filter maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().ListOrders(gomock.Any(), "shipped").Return(nil, usecase.ErrInvalidOrderStatus)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=shipped", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("filter passed through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().ListOrders(gomock.Any(), "in_production").Return([]entities.Order{
			{ID: "ord-1", Status: entities.OrderStatusInProduction},
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders?status=in_production", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var res []map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if len(res) != 1 || res[0]["id"] != "ord-1" {
			t.Fatalf("unexpected response: %v", res)
		}
	})
}

func TestOrderHandler_ResolveQRCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().ResolveQRCode(gomock.Any(), "bogus").Return(entities.Order{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/qr/bogus", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().ResolveQRCode(gomock.Any(), "ord-1").Return(entities.Order{
			ID:     "ord-1",
			QRCode: "ord-1",
		}, nil)

		req := httptest.NewRequest(http.MethodGet, "/v1/orders/qr/ord-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_SetProductManufactured(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("product not on order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().SetProductManufactured(gomock.Any(), "ord-1", "SKU-9", true).
			Return(entities.Order{}, usecase.ErrProductNotFound)

		body := bytes.NewBufferString(`{"sku":"SKU-9","manufactured":true}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/products/manufactured", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIOrderUseCase(ctrl)
		r := orderTestRouter(NewOrderHandler(uc))

		uc.EXPECT().SetProductManufactured(gomock.Any(), "ord-1", "SKU-1", true).Return(entities.Order{
			ID: "ord-1",
			Products: []entities.Product{
				{Name: "Logo polo", SKU: "SKU-1", Quantity: 2, Manufactured: true},
			},
		}, nil)

		body := bytes.NewBufferString(`{"sku":"SKU-1","manufactured":true}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/products/manufactured", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestOrderHandler_ListInProductionProducts(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIOrderUseCase(ctrl)
	r := orderTestRouter(NewOrderHandler(uc))

	uc.EXPECT().ListInProductionProducts(gomock.Any()).Return([]usecase.InProductionProduct{
		{
			OrderID:     "ord-1",
			OrderNumber: "#1001",
			Product:     entities.Product{Name: "Logo polo", SKU: "SKU-1", Quantity: 2},
		},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/orders/in-production", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(res) != 1 || res[0]["order_id"] != "ord-1" {
		t.Fatalf("unexpected response: %v", res)
	}
}
