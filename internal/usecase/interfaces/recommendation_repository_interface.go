package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// IRecommendationRepository reads the precomputed next-product suggestions.
// The set is maintained by an external planning process; this service never
// writes it.

type IRecommendationRepository interface {
	ListByThreadColor(ctx context.Context, threadColor string) ([]entities.MachineRecommendation, error)
}
