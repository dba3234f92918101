package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound         = errors.New("order not found")
	ErrStageNotFound         = errors.New("stage not found on order")
	ErrActorNotFound         = errors.New("actor profile not found")
	ErrActorNotAllowed       = errors.New("actor not allowed for stage")
	ErrStageAlreadyCompleted = errors.New("stage already completed")
	ErrStageNotPending       = errors.New("stage not pending")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidStageID        = errors.New("invalid stage id")
	ErrInvalidActorUID       = errors.New("invalid actor uid")
)

// IStageUseCase exposes the production-stage sequencer.
//
// Stage state is authoritative here: the aggregate order status is always
// recomputed from the checklist on every transition, and a direct write to
// it is never accepted from outside.

type IStageUseCase interface {
	CompleteStage(ctx context.Context, actorUID, orderID, stageID, notes string) (entities.ProductionStage, error)
	StartStage(ctx context.Context, actorUID, orderID, stageID string) (entities.ProductionStage, error)
	ListAvailableStages(ctx context.Context, actorUID string) ([]entities.StageDefinition, error)
}

type StageUseCase struct {
	orders   interfaces.IOrderRepository
	audit    interfaces.IStageAuditRepository
	users    interfaces.IUserRepository
	settings interfaces.ISettingsRepository
}

var _ IStageUseCase = (*StageUseCase)(nil)

func NewStageUseCase(
	orders interfaces.IOrderRepository,
	audit interfaces.IStageAuditRepository,
	users interfaces.IUserRepository,
	settings interfaces.ISettingsRepository,
) *StageUseCase {
	return &StageUseCase{orders: orders, audit: audit, users: users, settings: settings}
}

// CompleteStage marks a checklist stage completed on behalf of the actor.
//
// The stage and audit-log writes are two independent persists (per-document
// atomicity only). The audit record id is deterministic, so re-running a
// completion that failed between the two writes converges instead of
// duplicating log entries.
func (u *StageUseCase) CompleteStage(ctx context.Context, actorUID, orderID, stageID, notes string) (entities.ProductionStage, error) {
	actorUID, orderID, stageID = strings.TrimSpace(actorUID), strings.TrimSpace(orderID), strings.TrimSpace(stageID)
	log.Printf("[stage][usecase] complete start order_id=%s stage_id=%s actor=%s", orderID, stageID, actorUID)

	order, stage, actor, err := u.loadForTransition(ctx, actorUID, orderID, stageID)
	if err != nil {
		return entities.ProductionStage{}, err
	}
	if stage.Status == entities.StageStatusCompleted {
		log.Printf("[stage][usecase] already completed order_id=%s stage_id=%s", orderID, stageID)
		return entities.ProductionStage{}, ErrStageAlreadyCompleted
	}

	now := time.Now().UTC()
	stage.Status = entities.StageStatusCompleted
	stage.CompletedAt = &now
	stage.CompletedBy = actor.UID
	if stage.StartedAt == nil {
		stage.StartedAt = &now
	}
	if notes = strings.TrimSpace(notes); notes != "" {
		stage.Notes = notes
	}

	updated, err := u.orders.UpdateStages(ctx, order.ID, order.Stages, order.DeriveStatus())
	if err != nil {
		log.Printf("[stage][usecase] stage update failed order_id=%s stage_id=%s err=%v", orderID, stageID, err)
		return entities.ProductionStage{}, err
	}

	rec := entities.StageAuditRecord{
		ID:          entities.AuditRecordID(order.ID, stageID),
		OrderID:     order.ID,
		StageID:     stageID,
		CompletedAt: now,
		CompletedBy: actor.UID,
	}
	if err := u.audit.Append(ctx, rec); err != nil {
		// The stage write already landed; the caller can retry and the
		// deterministic record id makes the replay converge.
		log.Printf("[stage][usecase] audit append failed order_id=%s stage_id=%s err=%v", orderID, stageID, err)
		return entities.ProductionStage{}, err
	}

	done := updated.StageByID(stageID)
	if done == nil {
		return *stage, nil
	}
	log.Printf("[stage][usecase] complete success order_id=%s stage_id=%s order_status=%s", orderID, stageID, updated.Status)
	return *done, nil
}

// StartStage moves a pending stage to in_progress and stamps startedAt.
func (u *StageUseCase) StartStage(ctx context.Context, actorUID, orderID, stageID string) (entities.ProductionStage, error) {
	actorUID, orderID, stageID = strings.TrimSpace(actorUID), strings.TrimSpace(orderID), strings.TrimSpace(stageID)
	log.Printf("[stage][usecase] start order_id=%s stage_id=%s actor=%s", orderID, stageID, actorUID)

	order, stage, _, err := u.loadForTransition(ctx, actorUID, orderID, stageID)
	if err != nil {
		return entities.ProductionStage{}, err
	}
	if stage.Status == entities.StageStatusCompleted {
		return entities.ProductionStage{}, ErrStageAlreadyCompleted
	}
	if stage.Status != entities.StageStatusPending {
		return entities.ProductionStage{}, ErrStageNotPending
	}

	now := time.Now().UTC()
	stage.Status = entities.StageStatusInProgress
	stage.StartedAt = &now

	updated, err := u.orders.UpdateStages(ctx, order.ID, order.Stages, order.DeriveStatus())
	if err != nil {
		log.Printf("[stage][usecase] start update failed order_id=%s stage_id=%s err=%v", orderID, stageID, err)
		return entities.ProductionStage{}, err
	}
	if started := updated.StageByID(stageID); started != nil {
		return *started, nil
	}
	return *stage, nil
}

// ListAvailableStages intersects the actor's assigned stages with the
// configured catalog, preserving the catalog's display order.
func (u *StageUseCase) ListAvailableStages(ctx context.Context, actorUID string) ([]entities.StageDefinition, error) {
	actorUID = strings.TrimSpace(actorUID)
	if actorUID == "" {
		return nil, ErrInvalidActorUID
	}

	actor, err := u.users.GetByUID(ctx, actorUID)
	if err != nil {
		return nil, err
	}
	if actor.UID == "" {
		return nil, ErrActorNotFound
	}

	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(catalog, func(i, j int) bool { return catalog[i].Order < catalog[j].Order })

	if actor.Role == entities.UserRoleAdmin {
		return catalog, nil
	}

	assigned := make(map[string]struct{}, len(actor.AssignedStages))
	for _, id := range actor.AssignedStages {
		assigned[id] = struct{}{}
	}
	available := make([]entities.StageDefinition, 0, len(catalog))
	for _, def := range catalog {
		if _, ok := assigned[def.ID]; ok {
			available = append(available, def)
		}
	}
	return available, nil
}

func (u *StageUseCase) loadForTransition(ctx context.Context, actorUID, orderID, stageID string) (entities.Order, *entities.ProductionStage, entities.UserProfile, error) {
	if actorUID == "" {
		return entities.Order{}, nil, entities.UserProfile{}, ErrInvalidActorUID
	}
	if orderID == "" {
		return entities.Order{}, nil, entities.UserProfile{}, ErrInvalidOrderID
	}
	if stageID == "" {
		return entities.Order{}, nil, entities.UserProfile{}, ErrInvalidStageID
	}

	actor, err := u.users.GetByUID(ctx, actorUID)
	if err != nil {
		return entities.Order{}, nil, entities.UserProfile{}, err
	}
	if actor.UID == "" {
		return entities.Order{}, nil, entities.UserProfile{}, ErrActorNotFound
	}
	if !actor.CanActOnStage(stageID) {
		log.Printf("[stage][usecase] actor not allowed actor=%s stage_id=%s", actorUID, stageID)
		return entities.Order{}, nil, entities.UserProfile{}, ErrActorNotAllowed
	}

	order, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, nil, entities.UserProfile{}, err
	}
	if order.ID == "" {
		return entities.Order{}, nil, entities.UserProfile{}, ErrOrderNotFound
	}

	stage := order.StageByID(stageID)
	if stage == nil {
		return entities.Order{}, nil, entities.UserProfile{}, ErrStageNotFound
	}
	return order, stage, actor, nil
}
