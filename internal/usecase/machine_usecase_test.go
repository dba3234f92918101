package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	mock_interfaces "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestMachineUseCase_CreateMachine(t *testing.T) {
	t.Run("invalid name", func(t *testing.T) {
		uc := NewMachineUseCase(nil, nil, nil)
		_, err := uc.CreateMachine(context.Background(), "admin", "   ", "", "")
		if !errors.Is(err, ErrInvalidMachineName) {
			t.Fatalf("expected ErrInvalidMachineName, got %v", err)
		}
	})

	t.Run("worker cannot create", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewMachineUseCase(nil, nil, users)

		users.EXPECT().GetByUID(gomock.Any(), "w-1").Return(entities.UserProfile{UID: "w-1", Role: entities.UserRoleWorker}, nil)

		_, err := uc.CreateMachine(context.Background(), "w-1", "Tajima 8-head", "", "")
		if !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("admin creates idle machine", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewMachineUseCase(machines, nil, users)

		users.EXPECT().GetByUID(gomock.Any(), "admin").Return(entities.UserProfile{UID: "admin", Role: entities.UserRoleAdmin}, nil)
		machines.EXPECT().CreateMachine(gomock.Any(), gomock.AssignableToTypeOf(entities.SewingMachine{})).DoAndReturn(
			func(_ context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
				if m.ID == "" || m.Name != "Tajima 8-head" || m.Status != entities.MachineStatusIdle {
					t.Fatalf("unexpected machine: %+v", m)
				}
				return m, nil
			},
		)

		m, err := uc.CreateMachine(context.Background(), "admin", " Tajima 8-head ", "mgr-1", "Lan")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.ManagerID != "mgr-1" || m.ManagerName != "Lan" {
			t.Fatalf("unexpected manager fields: %+v", m)
		}
	})
}

func TestMachineUseCase_StartOperation(t *testing.T) {
	t.Run("machine not idle", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewMachineUseCase(machines, nil, nil)

		machines.EXPECT().GetMachineByID(gomock.Any(), "m-1").Return(entities.SewingMachine{
			ID:     "m-1",
			Status: entities.MachineStatusWorking,
		}, nil)

		_, err := uc.StartOperation(context.Background(), "m-1", "p-1", "", "#FF0000", 30)
		if !errors.Is(err, ErrMachineNotIdle) {
			t.Fatalf("expected ErrMachineNotIdle, got %v", err)
		}
	})

	t.Run("starts a run and flips the machine to working", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewMachineUseCase(machines, nil, nil)

		machines.EXPECT().GetMachineByID(gomock.Any(), "m-1").Return(entities.SewingMachine{
			ID:     "m-1",
			Status: entities.MachineStatusIdle,
		}, nil)
		machines.EXPECT().CreateOperation(gomock.Any(), gomock.AssignableToTypeOf(entities.MachineOperation{})).DoAndReturn(
			func(_ context.Context, op entities.MachineOperation) (entities.MachineOperation, error) {
				if op.MachineID != "m-1" || op.ProductID != "p-1" || op.ThreadColor != "#FF0000" {
					t.Fatalf("unexpected operation: %+v", op)
				}
				if op.Status != entities.OperationStatusInProgress {
					t.Fatalf("expected in_progress, got %s", op.Status)
				}
				if got := op.EstimatedEndTime.Sub(op.StartTime); got != 30*time.Minute {
					t.Fatalf("expected 30m estimate, got %v", got)
				}
				return op, nil
			},
		)
		machines.EXPECT().UpdateMachine(gomock.Any(), gomock.AssignableToTypeOf(entities.SewingMachine{})).DoAndReturn(
			func(_ context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
				if m.Status != entities.MachineStatusWorking || m.CurrentThreadColor != "#FF0000" || m.CurrentProductID != "p-1" {
					t.Fatalf("unexpected machine state: %+v", m)
				}
				return m, nil
			},
		)

		op, err := uc.StartOperation(context.Background(), "m-1", "p-1", "Cap logo", "#FF0000", 30)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.ProductName != "Cap logo" {
			t.Fatalf("unexpected product name: %q", op.ProductName)
		}
	})
}

func TestMachineUseCase_CompleteOperation(t *testing.T) {
	t.Run("operation not running", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		uc := NewMachineUseCase(machines, nil, nil)

		machines.EXPECT().GetOperationByID(gomock.Any(), "op-1").Return(entities.MachineOperation{
			ID:     "op-1",
			Status: entities.OperationStatusCompleted,
		}, nil)

		_, _, err := uc.CompleteOperation(context.Background(), "op-1")
		if !errors.Is(err, ErrOperationNotRunning) {
			t.Fatalf("expected ErrOperationNotRunning, got %v", err)
		}
	})

	t.Run("completes, frees machine, returns suggestions for loaded thread", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		recs := mock_interfaces.NewMockIRecommendationRepository(ctrl)
		uc := NewMachineUseCase(machines, recs, nil)

		machines.EXPECT().GetOperationByID(gomock.Any(), "op-1").Return(entities.MachineOperation{
			ID:          "op-1",
			MachineID:   "m-1",
			ThreadColor: "#1B5E20",
			Status:      entities.OperationStatusInProgress,
		}, nil)
		machines.EXPECT().GetMachineByID(gomock.Any(), "m-1").Return(entities.SewingMachine{
			ID:                 "m-1",
			Status:             entities.MachineStatusWorking,
			CurrentThreadColor: "#1B5E20",
			CurrentProductID:   "p-1",
		}, nil)
		machines.EXPECT().UpdateOperation(gomock.Any(), gomock.AssignableToTypeOf(entities.MachineOperation{})).DoAndReturn(
			func(_ context.Context, op entities.MachineOperation) (entities.MachineOperation, error) {
				if op.Status != entities.OperationStatusCompleted || op.CompletedAt == nil {
					t.Fatalf("unexpected operation: %+v", op)
				}
				return op, nil
			},
		)
		machines.EXPECT().UpdateMachine(gomock.Any(), gomock.AssignableToTypeOf(entities.SewingMachine{})).DoAndReturn(
			func(_ context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
				if m.Status != entities.MachineStatusIdle || m.CurrentProductID != "" {
					t.Fatalf("expected idle machine, got %+v", m)
				}
				if m.CurrentThreadColor != "#1B5E20" {
					t.Fatalf("expected thread color kept, got %q", m.CurrentThreadColor)
				}
				return m, nil
			},
		)
		recs.EXPECT().ListByThreadColor(gomock.Any(), "#1B5E20").Return([]entities.MachineRecommendation{
			{ID: "rec-2", Priority: 2, ThreadColor: "#1B5E20"},
			{ID: "rec-5", Priority: 5, ThreadColor: "#1B5E20"},
		}, nil)

		op, suggestions, err := uc.CompleteOperation(context.Background(), "op-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Status != entities.OperationStatusCompleted {
			t.Fatalf("expected completed, got %s", op.Status)
		}
		if len(suggestions) != 2 || suggestions[0].ID != "rec-5" {
			t.Fatalf("expected priority 5 suggestion first, got %+v", suggestions)
		}
	})

	t.Run("recommendation failure does not undo the completion", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		machines := mock_interfaces.NewMockIMachineRepository(ctrl)
		recs := mock_interfaces.NewMockIRecommendationRepository(ctrl)
		uc := NewMachineUseCase(machines, recs, nil)

		machines.EXPECT().GetOperationByID(gomock.Any(), "op-1").Return(entities.MachineOperation{
			ID:          "op-1",
			MachineID:   "m-1",
			ThreadColor: "#000000",
			Status:      entities.OperationStatusInProgress,
		}, nil)
		machines.EXPECT().GetMachineByID(gomock.Any(), "m-1").Return(entities.SewingMachine{ID: "m-1"}, nil)
		machines.EXPECT().UpdateOperation(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, op entities.MachineOperation) (entities.MachineOperation, error) { return op, nil },
		)
		machines.EXPECT().UpdateMachine(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, m entities.SewingMachine) (entities.SewingMachine, error) { return m, nil },
		)
		recs.EXPECT().ListByThreadColor(gomock.Any(), "#000000").Return(nil, errors.New("index offline"))

		op, suggestions, err := uc.CompleteOperation(context.Background(), "op-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if op.Status != entities.OperationStatusCompleted {
			t.Fatalf("expected completed, got %s", op.Status)
		}
		if suggestions != nil {
			t.Fatalf("expected no suggestions, got %+v", suggestions)
		}
	})
}

func TestMachineUseCase_InterruptOperation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	machines := mock_interfaces.NewMockIMachineRepository(ctrl)
	uc := NewMachineUseCase(machines, nil, nil)

	machines.EXPECT().GetOperationByID(gomock.Any(), "op-1").Return(entities.MachineOperation{
		ID:        "op-1",
		MachineID: "m-1",
		Status:    entities.OperationStatusInProgress,
	}, nil)
	machines.EXPECT().GetMachineByID(gomock.Any(), "m-1").Return(entities.SewingMachine{ID: "m-1", Status: entities.MachineStatusWorking}, nil)
	machines.EXPECT().UpdateOperation(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, op entities.MachineOperation) (entities.MachineOperation, error) {
			if op.Status != entities.OperationStatusInterrupted {
				t.Fatalf("expected interrupted, got %s", op.Status)
			}
			return op, nil
		},
	)
	machines.EXPECT().UpdateMachine(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, m entities.SewingMachine) (entities.SewingMachine, error) {
			if m.Status != entities.MachineStatusIdle {
				t.Fatalf("expected idle, got %s", m.Status)
			}
			return m, nil
		},
	)

	op, err := uc.InterruptOperation(context.Background(), "op-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if op.Status != entities.OperationStatusInterrupted {
		t.Fatalf("expected interrupted, got %s", op.Status)
	}
}

func TestMachineUseCase_RecommendNext(t *testing.T) {
	t.Run("invalid thread color", func(t *testing.T) {
		uc := NewMachineUseCase(nil, nil, nil)
		_, err := uc.RecommendNext(context.Background(), "  ")
		if !errors.Is(err, ErrInvalidThreadColor) {
			t.Fatalf("expected ErrInvalidThreadColor, got %v", err)
		}
	})

	t.Run("filters exact color and orders by priority then id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		recs := mock_interfaces.NewMockIRecommendationRepository(ctrl)
		uc := NewMachineUseCase(nil, recs, nil)

		recs.EXPECT().ListByThreadColor(gomock.Any(), "#FF0000").Return([]entities.MachineRecommendation{
			{ID: "rec-b", Priority: 2, ThreadColor: "#FF0000"},
			{ID: "rec-d", Priority: 5, ThreadColor: "#FF0000"},
			{ID: "rec-a", Priority: 5, ThreadColor: "#FF0000"},
			{ID: "rec-c", Priority: 9, ThreadColor: "#ff0000"},
		}, nil)

		out, err := uc.RecommendNext(context.Background(), "#FF0000")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected case-different color dropped, got %+v", out)
		}
		if out[0].ID != "rec-a" || out[1].ID != "rec-d" || out[2].ID != "rec-b" {
			t.Fatalf("unexpected ordering: %+v", out)
		}
	})

	t.Run("no matches yields empty list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		recs := mock_interfaces.NewMockIRecommendationRepository(ctrl)
		uc := NewMachineUseCase(nil, recs, nil)

		recs.EXPECT().ListByThreadColor(gomock.Any(), "#123456").Return(nil, nil)

		out, err := uc.RecommendNext(context.Background(), "#123456")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 0 {
			t.Fatalf("expected empty, got %+v", out)
		}
	})
}
