package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	mock_interfaces "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestOrderUseCase_CreateOrder(t *testing.T) {
	customer := entities.Customer{Name: "Nguyen An", Email: "an@example.com"}
	products := []entities.Product{{Name: "Polo shirt", SKU: "SKU-1", Quantity: 2, Price: 15.5}}

	t.Run("invalid order number", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.CreateOrder(context.Background(), "   ", customer, products, nil, "")
		if !errors.Is(err, ErrInvalidOrderNumber) {
			t.Fatalf("expected ErrInvalidOrderNumber, got %v", err)
		}
	})

	t.Run("missing customer email", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.CreateOrder(context.Background(), "A1001", entities.Customer{Name: "An"}, products, nil, "")
		if !errors.Is(err, ErrInvalidCustomer) {
			t.Fatalf("expected ErrInvalidCustomer, got %v", err)
		}
	})

	t.Run("no products", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.CreateOrder(context.Background(), "A1001", customer, nil, nil, "")
		if !errors.Is(err, ErrNoProducts) {
			t.Fatalf("expected ErrNoProducts, got %v", err)
		}
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		bad := []entities.Product{{Name: "Cap", Quantity: 0, Price: 8}}
		_, err := uc.CreateOrder(context.Background(), "A1001", customer, bad, nil, "")
		if !errors.Is(err, ErrInvalidQuantity) {
			t.Fatalf("expected ErrInvalidQuantity, got %v", err)
		}
	})

	t.Run("negative price", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		bad := []entities.Product{{Name: "Cap", Quantity: 1, Price: -1}}
		_, err := uc.CreateOrder(context.Background(), "A1001", customer, bad, nil, "")
		if !errors.Is(err, ErrInvalidPrice) {
			t.Fatalf("expected ErrInvalidPrice, got %v", err)
		}
	})

	t.Run("creates with seeded stages, derived status and qr", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		uc := NewOrderUseCase(orders, settings)

		settings.EXPECT().GetStageCatalog(gomock.Any()).Return([]entities.StageDefinition{
			{ID: "sewing", Name: "Sewing", Order: 2},
			{ID: "cutting", Name: "Cutting", Order: 1},
		}, nil)
		orders.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Order{})).DoAndReturn(
			func(_ context.Context, o entities.Order) (entities.Order, error) {
				if o.ID == "" || o.QRCode != o.ID {
					t.Fatalf("expected qr payload = order id, got %+v", o)
				}
				if o.Status != entities.OrderStatusPending {
					t.Fatalf("expected derived pending status, got %s", o.Status)
				}
				if len(o.Stages) != 2 || o.Stages[0].ID != "cutting" || o.Stages[1].ID != "sewing" {
					t.Fatalf("expected catalog-ordered checklist, got %+v", o.Stages)
				}
				if o.Total != 31 {
					t.Fatalf("expected total 31, got %v", o.Total)
				}
				return o, nil
			},
		)

		o, err := uc.CreateOrder(context.Background(), " A1001 ", customer, products, nil, "high")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderNumber != "A1001" || o.Complexity != "high" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_ListOrders(t *testing.T) {
	t.Run("rejects unknown status filter", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.ListOrders(context.Background(), "shipped")
		if !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("passes valid filter through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().List(gomock.Any(), entities.OrderStatusInProduction).Return([]entities.Order{{ID: "ord-1"}}, nil)

		out, err := uc.ListOrders(context.Background(), "in_production")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 1 {
			t.Fatalf("unexpected orders: %+v", out)
		}
	})
}

func TestOrderUseCase_ResolveQRCode(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		uc := NewOrderUseCase(nil, nil)
		_, err := uc.ResolveQRCode(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidQRPayload) {
			t.Fatalf("expected ErrInvalidQRPayload, got %v", err)
		}
	})

	t.Run("unknown payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "bogus").Return(entities.Order{}, nil)

		_, err := uc.ResolveQRCode(context.Background(), "bogus")
		if !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("resolves the scanned order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", OrderNumber: "A1001"}, nil)

		o, err := uc.ResolveQRCode(context.Background(), "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if o.OrderNumber != "A1001" {
			t.Fatalf("unexpected order: %+v", o)
		}
	})
}

func TestOrderUseCase_SetProductManufactured(t *testing.T) {
	t.Run("sku not on order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID:       "ord-1",
			Products: []entities.Product{{SKU: "SKU-1"}},
		}, nil)

		_, err := uc.SetProductManufactured(context.Background(), "ord-1", "SKU-9", true)
		if !errors.Is(err, ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("flips the flag", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewOrderUseCase(orders, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{
			ID:       "ord-1",
			Products: []entities.Product{{SKU: "SKU-1"}},
		}, nil)
		orders.EXPECT().SetProductManufactured(gomock.Any(), "ord-1", "SKU-1", true).Return(entities.Order{
			ID:       "ord-1",
			Products: []entities.Product{{SKU: "SKU-1", Manufactured: true}},
		}, nil)

		o, err := uc.SetProductManufactured(context.Background(), "ord-1", "SKU-1", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !o.Products[0].Manufactured {
			t.Fatalf("expected manufactured flag set")
		}
	})
}

func TestOrderUseCase_ListInProductionProducts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	orders := mock_interfaces.NewMockIOrderRepository(ctrl)
	uc := NewOrderUseCase(orders, nil)

	orders.EXPECT().List(gomock.Any(), entities.OrderStatus("")).Return([]entities.Order{
		{
			ID:          "ord-1",
			OrderNumber: "A1001",
			Status:      entities.OrderStatusInProduction,
			Products: []entities.Product{
				{SKU: "SKU-1", Manufactured: true},
				{SKU: "SKU-2"},
			},
		},
		{
			ID:          "ord-2",
			OrderNumber: "A1002",
			Status:      entities.OrderStatusCompleted,
			Products:    []entities.Product{{SKU: "SKU-3"}},
		},
		{
			ID:          "ord-3",
			OrderNumber: "A1003",
			Status:      entities.OrderStatusPending,
			Products:    []entities.Product{{SKU: "SKU-4"}},
		},
	}, nil)

	view, err := uc.ListInProductionProducts(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(view) != 2 {
		t.Fatalf("expected 2 rows, got %+v", view)
	}
	if view[0].Product.SKU != "SKU-2" || view[0].OrderNumber != "A1001" {
		t.Fatalf("unexpected first row: %+v", view[0])
	}
	if view[1].Product.SKU != "SKU-4" || view[1].OrderID != "ord-3" {
		t.Fatalf("unexpected second row: %+v", view[1])
	}
}
