package usecase

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrMachineNotFound     = errors.New("machine not found")
	ErrMachineNotIdle      = errors.New("machine not idle")
	ErrOperationNotFound   = errors.New("machine operation not found")
	ErrOperationNotRunning = errors.New("machine operation not running")
	ErrInvalidMachineID    = errors.New("invalid machine id")
	ErrInvalidMachineName  = errors.New("invalid machine name")
	ErrInvalidOperationID  = errors.New("invalid operation id")
	ErrInvalidThreadColor  = errors.New("invalid thread color")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrAdminRequired       = errors.New("admin role required")
)

// IMachineUseCase covers machine lifecycle, operation runs and the
// thread-color recommendation advisor.

type IMachineUseCase interface {
	CreateMachine(ctx context.Context, actorUID, name, managerID, managerName string) (entities.SewingMachine, error)
	ListMachines(ctx context.Context) ([]entities.SewingMachine, error)
	StartOperation(ctx context.Context, machineID, productID, productName, threadColor string, estimatedMinutes int) (entities.MachineOperation, error)
	CompleteOperation(ctx context.Context, operationID string) (entities.MachineOperation, []entities.MachineRecommendation, error)
	InterruptOperation(ctx context.Context, operationID string) (entities.MachineOperation, error)
	RecommendNext(ctx context.Context, threadColor string) ([]entities.MachineRecommendation, error)
}

type MachineUseCase struct {
	machines        interfaces.IMachineRepository
	recommendations interfaces.IRecommendationRepository
	users           interfaces.IUserRepository
}

var _ IMachineUseCase = (*MachineUseCase)(nil)

func NewMachineUseCase(
	machines interfaces.IMachineRepository,
	recommendations interfaces.IRecommendationRepository,
	users interfaces.IUserRepository,
) *MachineUseCase {
	return &MachineUseCase{machines: machines, recommendations: recommendations, users: users}
}

func (u *MachineUseCase) CreateMachine(ctx context.Context, actorUID, name, managerID, managerName string) (entities.SewingMachine, error) {
	actorUID = strings.TrimSpace(actorUID)
	if actorUID == "" {
		return entities.SewingMachine{}, ErrInvalidActorUID
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return entities.SewingMachine{}, ErrInvalidMachineName
	}

	actor, err := u.users.GetByUID(ctx, actorUID)
	if err != nil {
		return entities.SewingMachine{}, err
	}
	if actor.UID == "" {
		return entities.SewingMachine{}, ErrActorNotFound
	}
	if actor.Role != entities.UserRoleAdmin {
		return entities.SewingMachine{}, ErrAdminRequired
	}

	now := time.Now().UTC()
	m := entities.SewingMachine{
		ID:          uuid.NewString(),
		Name:        name,
		ManagerID:   strings.TrimSpace(managerID),
		ManagerName: strings.TrimSpace(managerName),
		Status:      entities.MachineStatusIdle,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return u.machines.CreateMachine(ctx, m)
}

func (u *MachineUseCase) ListMachines(ctx context.Context) ([]entities.SewingMachine, error) {
	return u.machines.ListMachines(ctx)
}

// StartOperation puts an idle machine to work on a product and records the
// run with its thread color and estimated end time.
func (u *MachineUseCase) StartOperation(ctx context.Context, machineID, productID, productName, threadColor string, estimatedMinutes int) (entities.MachineOperation, error) {
	machineID, productID, threadColor = strings.TrimSpace(machineID), strings.TrimSpace(productID), strings.TrimSpace(threadColor)
	if machineID == "" {
		return entities.MachineOperation{}, ErrInvalidMachineID
	}
	if productID == "" {
		return entities.MachineOperation{}, ErrInvalidProductID
	}
	if threadColor == "" {
		return entities.MachineOperation{}, ErrInvalidThreadColor
	}
	if estimatedMinutes <= 0 {
		estimatedMinutes = 60
	}

	m, err := u.machines.GetMachineByID(ctx, machineID)
	if err != nil {
		return entities.MachineOperation{}, err
	}
	if m.ID == "" {
		return entities.MachineOperation{}, ErrMachineNotFound
	}
	if m.Status != entities.MachineStatusIdle {
		log.Printf("[machine][usecase] start rejected machine_id=%s status=%s", machineID, m.Status)
		return entities.MachineOperation{}, ErrMachineNotIdle
	}

	now := time.Now().UTC()
	end := now.Add(time.Duration(estimatedMinutes) * time.Minute)
	op := entities.MachineOperation{
		ID:               uuid.NewString(),
		MachineID:        machineID,
		ProductID:        productID,
		ProductName:      strings.TrimSpace(productName),
		ThreadColor:      threadColor,
		Status:           entities.OperationStatusInProgress,
		StartTime:        now,
		EstimatedEndTime: end,
	}
	created, err := u.machines.CreateOperation(ctx, op)
	if err != nil {
		return entities.MachineOperation{}, err
	}

	m.Status = entities.MachineStatusWorking
	m.CurrentThreadColor = threadColor
	m.CurrentProductID = productID
	m.CurrentProductName = op.ProductName
	m.StartTime = &now
	m.EstimatedEndTime = &end
	m.UpdatedAt = now
	if _, err := u.machines.UpdateMachine(ctx, m); err != nil {
		log.Printf("[machine][usecase] machine update failed machine_id=%s err=%v", machineID, err)
		return entities.MachineOperation{}, err
	}
	log.Printf("[machine][usecase] operation started machine_id=%s operation_id=%s thread_color=%s", machineID, created.ID, threadColor)
	return created, nil
}

// CompleteOperation finishes a run, frees the machine and returns the ranked
// follow-up suggestions for the thread color still loaded on it.
func (u *MachineUseCase) CompleteOperation(ctx context.Context, operationID string) (entities.MachineOperation, []entities.MachineRecommendation, error) {
	op, m, err := u.loadRunningOperation(ctx, operationID)
	if err != nil {
		return entities.MachineOperation{}, nil, err
	}

	now := time.Now().UTC()
	op.Status = entities.OperationStatusCompleted
	op.CompletedAt = &now
	updated, err := u.machines.UpdateOperation(ctx, op)
	if err != nil {
		return entities.MachineOperation{}, nil, err
	}

	if err := u.releaseMachine(ctx, m, now); err != nil {
		return entities.MachineOperation{}, nil, err
	}

	recs, err := u.RecommendNext(ctx, op.ThreadColor)
	if err != nil {
		// The completion already persisted; suggestions are best effort.
		log.Printf("[machine][usecase] recommendation lookup failed operation_id=%s err=%v", operationID, err)
		return updated, nil, nil
	}
	log.Printf("[machine][usecase] operation completed operation_id=%s machine_id=%s recommendations=%d", operationID, m.ID, len(recs))
	return updated, recs, nil
}

func (u *MachineUseCase) InterruptOperation(ctx context.Context, operationID string) (entities.MachineOperation, error) {
	op, m, err := u.loadRunningOperation(ctx, operationID)
	if err != nil {
		return entities.MachineOperation{}, err
	}

	now := time.Now().UTC()
	op.Status = entities.OperationStatusInterrupted
	op.CompletedAt = &now
	updated, err := u.machines.UpdateOperation(ctx, op)
	if err != nil {
		return entities.MachineOperation{}, err
	}
	if err := u.releaseMachine(ctx, m, now); err != nil {
		return entities.MachineOperation{}, err
	}
	log.Printf("[machine][usecase] operation interrupted operation_id=%s machine_id=%s", operationID, m.ID)
	return updated, nil
}

// RecommendNext returns suggestions whose thread color equals the given hex
// string exactly, by descending priority. Equal priorities are ordered by
// ascending recommendation id so repeated calls return a stable sequence.
func (u *MachineUseCase) RecommendNext(ctx context.Context, threadColor string) ([]entities.MachineRecommendation, error) {
	threadColor = strings.TrimSpace(threadColor)
	if threadColor == "" {
		return nil, ErrInvalidThreadColor
	}

	recs, err := u.recommendations.ListByThreadColor(ctx, threadColor)
	if err != nil {
		return nil, err
	}

	matched := make([]entities.MachineRecommendation, 0, len(recs))
	for _, r := range recs {
		if r.ThreadColor == threadColor {
			matched = append(matched, r)
		}
	}
	sort.SliceStable(matched, func(i, j int) bool {
		if matched[i].Priority != matched[j].Priority {
			return matched[i].Priority > matched[j].Priority
		}
		return matched[i].ID < matched[j].ID
	})
	return matched, nil
}

func (u *MachineUseCase) loadRunningOperation(ctx context.Context, operationID string) (entities.MachineOperation, entities.SewingMachine, error) {
	operationID = strings.TrimSpace(operationID)
	if operationID == "" {
		return entities.MachineOperation{}, entities.SewingMachine{}, ErrInvalidOperationID
	}

	op, err := u.machines.GetOperationByID(ctx, operationID)
	if err != nil {
		return entities.MachineOperation{}, entities.SewingMachine{}, err
	}
	if op.ID == "" {
		return entities.MachineOperation{}, entities.SewingMachine{}, ErrOperationNotFound
	}
	if op.Status != entities.OperationStatusInProgress {
		return entities.MachineOperation{}, entities.SewingMachine{}, ErrOperationNotRunning
	}

	m, err := u.machines.GetMachineByID(ctx, op.MachineID)
	if err != nil {
		return entities.MachineOperation{}, entities.SewingMachine{}, err
	}
	if m.ID == "" {
		return entities.MachineOperation{}, entities.SewingMachine{}, ErrMachineNotFound
	}
	return op, m, nil
}

// releaseMachine returns the machine to idle but keeps the loaded thread
// color, which is what the advisor matches against.
func (u *MachineUseCase) releaseMachine(ctx context.Context, m entities.SewingMachine, now time.Time) error {
	m.Status = entities.MachineStatusIdle
	m.CurrentProductID = ""
	m.CurrentProductName = ""
	m.StartTime = nil
	m.EstimatedEndTime = nil
	m.UpdatedAt = now
	_, err := u.machines.UpdateMachine(ctx, m)
	return err
}
