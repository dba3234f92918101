package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// IStageAuditRepository abstracts the append-only stage completion log.
//
// Append must be idempotent on the record id: re-appending an existing id is
// not an error (replay after a partial failure).

type IStageAuditRepository interface {
	Append(ctx context.Context, rec entities.StageAuditRecord) error
	ListByOrderID(ctx context.Context, orderID string) ([]entities.StageAuditRecord, error)
}
