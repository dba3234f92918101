package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidStageDefinition = errors.New("invalid stage definition")
	ErrDuplicateStageID       = errors.New("stage id already in catalog")
)

// ISettingsUseCase manages the configured production-stage catalog. Reads
// are open to any authenticated user; catalog changes are admin only.

type ISettingsUseCase interface {
	GetStageCatalog(ctx context.Context) ([]entities.StageDefinition, error)
	AddStage(ctx context.Context, actorUID string, def entities.StageDefinition) ([]entities.StageDefinition, error)
}

type SettingsUseCase struct {
	settings interfaces.ISettingsRepository
	users    interfaces.IUserRepository
}

var _ ISettingsUseCase = (*SettingsUseCase)(nil)

func NewSettingsUseCase(settings interfaces.ISettingsRepository, users interfaces.IUserRepository) *SettingsUseCase {
	return &SettingsUseCase{settings: settings, users: users}
}

func (u *SettingsUseCase) GetStageCatalog(ctx context.Context) ([]entities.StageDefinition, error) {
	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Order < catalog[j].Order })
	return catalog, nil
}

// AddStage appends a new catalog entry. Duplicate ids are rejected so two
// checklist stages can never share an id.
func (u *SettingsUseCase) AddStage(ctx context.Context, actorUID string, def entities.StageDefinition) ([]entities.StageDefinition, error) {
	actorUID = strings.TrimSpace(actorUID)
	if actorUID == "" {
		return nil, ErrInvalidActorUID
	}
	def.ID = strings.TrimSpace(def.ID)
	def.Name = strings.TrimSpace(def.Name)
	if def.ID == "" || def.Name == "" {
		return nil, ErrInvalidStageDefinition
	}

	actor, err := u.users.GetByUID(ctx, actorUID)
	if err != nil {
		return nil, err
	}
	if actor.UID == "" {
		return nil, ErrActorNotFound
	}
	if actor.Role != entities.UserRoleAdmin {
		return nil, ErrAdminRequired
	}

	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return nil, err
	}
	for _, existing := range catalog {
		if existing.ID == def.ID {
			return nil, ErrDuplicateStageID
		}
	}
	if def.Order == 0 {
		maxOrder := 0
		for _, existing := range catalog {
			if existing.Order > maxOrder {
				maxOrder = existing.Order
			}
		}
		def.Order = maxOrder + 1
	}

	catalog = append(catalog, def)
	if err := u.settings.PutStageCatalog(ctx, catalog); err != nil {
		return nil, err
	}
	log.Printf("[settings][usecase] stage added stage_id=%s name=%s order=%d by=%s", def.ID, def.Name, def.Order, actorUID)

	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Order < catalog[j].Order })
	return catalog, nil
}
