package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// ICommerceGateway abstracts the external commerce channel (e.g. Shopify).
//
// CreateOrder submits one locally created order and returns the channel's
// id for it. The caller marks the order synced only after a success return.
type ICommerceGateway interface {
	CreateOrder(ctx context.Context, o entities.Order) (externalID string, err error)
}
