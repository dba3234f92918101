package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrNoOrdersToSync         = errors.New("no orders to sync")
	ErrCommerceGatewayMissing = errors.New("commerce gateway not configured")
)

// ISyncUseCase pushes locally created orders to the external commerce
// channel and marks them synced after confirmed acceptance.

type ISyncUseCase interface {
	SyncOrders(ctx context.Context, orderIDs []string) (entities.SyncResult, error)
	SyncPending(ctx context.Context) (entities.SyncResult, error)
}

type SyncUseCase struct {
	orders  interfaces.IOrderRepository
	gateway interfaces.ICommerceGateway
}

var _ ISyncUseCase = (*SyncUseCase)(nil)

func NewSyncUseCase(orders interfaces.IOrderRepository, gateway interfaces.ICommerceGateway) *SyncUseCase {
	return &SyncUseCase{orders: orders, gateway: gateway}
}

// SyncOrders pushes the given orders sequentially. An order is marked
// synced only after the channel accepted it; already-synced orders are
// skipped. The first submission failure stops the batch, so every order
// after it is reported as skipped and stays synced=false. Orders marked
// before the failure keep their synced flag (no rollback).
func (u *SyncUseCase) SyncOrders(ctx context.Context, orderIDs []string) (entities.SyncResult, error) {
	result := entities.SyncResult{
		Synced:  []entities.SyncOutcome{},
		Failed:  []entities.SyncOutcome{},
		Skipped: []entities.SyncOutcome{},
	}
	if u.gateway == nil {
		return result, ErrCommerceGatewayMissing
	}
	if len(orderIDs) == 0 {
		return result, ErrNoOrdersToSync
	}
	log.Printf("[sync][usecase] batch start orders=%d", len(orderIDs))

	aborted := false
	for _, id := range orderIDs {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		if aborted {
			result.Skipped = append(result.Skipped, entities.SyncOutcome{OrderID: id, Error: "batch aborted by earlier failure"})
			continue
		}

		order, err := u.orders.GetByID(ctx, id)
		if err != nil {
			log.Printf("[sync][usecase] load failed order_id=%s err=%v", id, err)
			result.Failed = append(result.Failed, entities.SyncOutcome{OrderID: id, Error: err.Error()})
			aborted = true
			continue
		}
		if order.ID == "" {
			result.Failed = append(result.Failed, entities.SyncOutcome{OrderID: id, Error: ErrOrderNotFound.Error()})
			aborted = true
			continue
		}
		if order.Synced {
			result.Skipped = append(result.Skipped, entities.SyncOutcome{OrderID: order.ID, OrderNumber: order.OrderNumber})
			continue
		}

		externalID, err := u.gateway.CreateOrder(ctx, order)
		if err != nil {
			log.Printf("[sync][usecase] submit failed order_id=%s order_number=%s err=%v", order.ID, order.OrderNumber, err)
			result.Failed = append(result.Failed, entities.SyncOutcome{OrderID: order.ID, OrderNumber: order.OrderNumber, Error: err.Error()})
			aborted = true
			continue
		}

		if _, err := u.orders.MarkSynced(ctx, order.ID, externalID); err != nil {
			// Accepted by the channel but not flagged locally; a retry will
			// be skipped on the channel side only via its own dedup.
			log.Printf("[sync][usecase] mark synced failed order_id=%s external_id=%s err=%v", order.ID, externalID, err)
			result.Failed = append(result.Failed, entities.SyncOutcome{OrderID: order.ID, OrderNumber: order.OrderNumber, ExternalID: externalID, Error: err.Error()})
			aborted = true
			continue
		}
		log.Printf("[sync][usecase] synced order_id=%s order_number=%s external_id=%s", order.ID, order.OrderNumber, externalID)
		result.Synced = append(result.Synced, entities.SyncOutcome{OrderID: order.ID, OrderNumber: order.OrderNumber, ExternalID: externalID})
	}

	log.Printf("[sync][usecase] batch done synced=%d failed=%d skipped=%d", len(result.Synced), len(result.Failed), len(result.Skipped))
	return result, nil
}

// SyncPending pushes every not-yet-synced order.
func (u *SyncUseCase) SyncPending(ctx context.Context) (entities.SyncResult, error) {
	pending, err := u.orders.ListUnsynced(ctx)
	if err != nil {
		return entities.SyncResult{}, err
	}
	if len(pending) == 0 {
		return entities.SyncResult{
			Synced:  []entities.SyncOutcome{},
			Failed:  []entities.SyncOutcome{},
			Skipped: []entities.SyncOutcome{},
		}, nil
	}

	ids := make([]string, 0, len(pending))
	for _, o := range pending {
		ids = append(ids, o.ID)
	}
	return u.SyncOrders(ctx, ids)
}
