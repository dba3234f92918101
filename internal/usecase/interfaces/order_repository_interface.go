package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// IOrderRepository abstracts order persistence.
//
// The production service must be able to:
//   - create an order (manual intake, CSV import, inbound webhook)
//   - resolve an order by id (the QR payload is used directly as the key)
//   - list orders, optionally filtered by aggregate status
//   - update the embedded stage checklist plus the derived status
//   - flip a line item's manufactured flag
//   - mark an order synced after the external channel accepted it

type IOrderRepository interface {
	Create(ctx context.Context, o entities.Order) (entities.Order, error)
	GetByID(ctx context.Context, id string) (entities.Order, error)
	List(ctx context.Context, status entities.OrderStatus) ([]entities.Order, error)
	ListUnsynced(ctx context.Context) ([]entities.Order, error)
	UpdateStages(ctx context.Context, id string, stages []entities.ProductionStage, status entities.OrderStatus) (entities.Order, error)
	SetProductManufactured(ctx context.Context, id, sku string, manufactured bool) (entities.Order, error)
	MarkSynced(ctx context.Context, id string, externalID string) (entities.Order, error)
}
