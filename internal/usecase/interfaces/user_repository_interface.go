package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// IUserRepository resolves authenticated principals to their workshop
// profile (role + assigned stages). Capability checks in the usecases key
// off this record, never off anything the client sends.

type IUserRepository interface {
	GetByUID(ctx context.Context, uid string) (entities.UserProfile, error)
}
