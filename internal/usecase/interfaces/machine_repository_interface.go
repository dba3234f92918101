package interfaces

import (
	"context"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

// IMachineRepository abstracts machine and machine-operation persistence.

type IMachineRepository interface {
	CreateMachine(ctx context.Context, m entities.SewingMachine) (entities.SewingMachine, error)
	GetMachineByID(ctx context.Context, id string) (entities.SewingMachine, error)
	ListMachines(ctx context.Context) ([]entities.SewingMachine, error)
	UpdateMachine(ctx context.Context, m entities.SewingMachine) (entities.SewingMachine, error)

	CreateOperation(ctx context.Context, op entities.MachineOperation) (entities.MachineOperation, error)
	GetOperationByID(ctx context.Context, id string) (entities.MachineOperation, error)
	UpdateOperation(ctx context.Context, op entities.MachineOperation) (entities.MachineOperation, error)
	ListOperationsByMachineID(ctx context.Context, machineID string) ([]entities.MachineOperation, error)
}
