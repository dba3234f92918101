package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	mock_interfaces "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSyncUseCase_SyncOrders(t *testing.T) {
	t.Run("gateway missing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		uc := NewSyncUseCase(orders, nil)

		_, err := uc.SyncOrders(context.Background(), []string{"ord-1"})
		if !errors.Is(err, ErrCommerceGatewayMissing) {
			t.Fatalf("expected ErrCommerceGatewayMissing, got %v", err)
		}
	})

	t.Run("empty batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		_, err := uc.SyncOrders(context.Background(), nil)
		if !errors.Is(err, ErrNoOrdersToSync) {
			t.Fatalf("expected ErrNoOrdersToSync, got %v", err)
		}
	})

	t.Run("all accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		for _, id := range []string{"ord-1", "ord-2"} {
			id := id
			orders.EXPECT().GetByID(gomock.Any(), id).Return(entities.Order{ID: id, OrderNumber: "#" + id}, nil)
			gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("shopify-"+id, nil)
			orders.EXPECT().MarkSynced(gomock.Any(), id, "shopify-"+id).Return(entities.Order{ID: id, Synced: true}, nil)
		}

		res, err := uc.SyncOrders(context.Background(), []string{"ord-1", "ord-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Synced) != 2 || len(res.Failed) != 0 || len(res.Skipped) != 0 {
			t.Fatalf("unexpected result: %+v", res)
		}
		if res.Synced[0].ExternalID != "shopify-ord-1" {
			t.Fatalf("unexpected external id: %+v", res.Synced[0])
		}
	})

	t.Run("already synced order is skipped without a push", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1", Synced: true}, nil)

		res, err := uc.SyncOrders(context.Background(), []string{"ord-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Skipped) != 1 || res.Skipped[0].Error != "" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})

	t.Run("first failure aborts the rest and keeps earlier progress", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "ord-1").Return(entities.Order{ID: "ord-1"}, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("ext-1", nil)
		orders.EXPECT().MarkSynced(gomock.Any(), "ord-1", "ext-1").Return(entities.Order{ID: "ord-1", Synced: true}, nil)

		orders.EXPECT().GetByID(gomock.Any(), "ord-2").Return(entities.Order{ID: "ord-2"}, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("", errors.New("shopify 502"))

		res, err := uc.SyncOrders(context.Background(), []string{"ord-1", "ord-2", "ord-3", "ord-4"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Synced) != 1 || res.Synced[0].OrderID != "ord-1" {
			t.Fatalf("expected ord-1 kept synced, got %+v", res.Synced)
		}
		if len(res.Failed) != 1 || res.Failed[0].OrderID != "ord-2" {
			t.Fatalf("expected ord-2 failed, got %+v", res.Failed)
		}
		if len(res.Skipped) != 2 || res.Skipped[0].OrderID != "ord-3" || res.Skipped[1].OrderID != "ord-4" {
			t.Fatalf("expected ord-3 and ord-4 skipped, got %+v", res.Skipped)
		}
	})

	t.Run("unknown order id aborts the batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		orders.EXPECT().GetByID(gomock.Any(), "missing").Return(entities.Order{}, nil)

		res, err := uc.SyncOrders(context.Background(), []string{"missing", "ord-2"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Failed) != 1 || len(res.Skipped) != 1 {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}

func TestSyncUseCase_SyncPending(t *testing.T) {
	t.Run("nothing pending", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		orders.EXPECT().ListUnsynced(gomock.Any()).Return(nil, nil)

		res, err := uc.SyncPending(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Synced)+len(res.Failed)+len(res.Skipped) != 0 {
			t.Fatalf("expected empty result, got %+v", res)
		}
	})

	t.Run("pushes every unsynced order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		orders := mock_interfaces.NewMockIOrderRepository(ctrl)
		gateway := mock_interfaces.NewMockICommerceGateway(ctrl)
		uc := NewSyncUseCase(orders, gateway)

		orders.EXPECT().ListUnsynced(gomock.Any()).Return([]entities.Order{{ID: "ord-9"}}, nil)
		orders.EXPECT().GetByID(gomock.Any(), "ord-9").Return(entities.Order{ID: "ord-9"}, nil)
		gateway.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return("ext-9", nil)
		orders.EXPECT().MarkSynced(gomock.Any(), "ord-9", "ext-9").Return(entities.Order{ID: "ord-9", Synced: true}, nil)

		res, err := uc.SyncPending(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(res.Synced) != 1 || res.Synced[0].OrderID != "ord-9" {
			t.Fatalf("unexpected result: %+v", res)
		}
	})
}
