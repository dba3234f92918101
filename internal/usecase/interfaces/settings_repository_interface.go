package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// ISettingsRepository reads and updates the single configuration record
// holding the ordered production-stage catalog.

type ISettingsRepository interface {
	GetStageCatalog(ctx context.Context) ([]entities.StageDefinition, error)
	PutStageCatalog(ctx context.Context, catalog []entities.StageDefinition) error
}
