package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	mock_interfaces "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestSettingsUseCase_GetStageCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	settings := mock_interfaces.NewMockISettingsRepository(ctrl)
	uc := NewSettingsUseCase(settings, nil)

	settings.EXPECT().GetStageCatalog(gomock.Any()).Return([]entities.StageDefinition{
		{ID: "packing", Order: 3},
		{ID: "cutting", Order: 1},
		{ID: "sewing", Order: 2},
	}, nil)

	catalog, err := uc.GetStageCatalog(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if catalog[0].ID != "cutting" || catalog[1].ID != "sewing" || catalog[2].ID != "packing" {
		t.Fatalf("expected catalog sorted by order, got %+v", catalog)
	}
}

func TestSettingsUseCase_AddStage(t *testing.T) {
	def := entities.StageDefinition{ID: "embossing", Name: "Embossing"}

	t.Run("invalid definition", func(t *testing.T) {
		uc := NewSettingsUseCase(nil, nil)
		_, err := uc.AddStage(context.Background(), "admin", entities.StageDefinition{ID: " ", Name: "x"})
		if !errors.Is(err, ErrInvalidStageDefinition) {
			t.Fatalf("expected ErrInvalidStageDefinition, got %v", err)
		}
	})

	t.Run("worker rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSettingsUseCase(nil, users)

		users.EXPECT().GetByUID(gomock.Any(), "w-1").Return(entities.UserProfile{UID: "w-1", Role: entities.UserRoleWorker}, nil)

		_, err := uc.AddStage(context.Background(), "w-1", def)
		if !errors.Is(err, ErrAdminRequired) {
			t.Fatalf("expected ErrAdminRequired, got %v", err)
		}
	})

	t.Run("duplicate id rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSettingsUseCase(settings, users)

		users.EXPECT().GetByUID(gomock.Any(), "admin").Return(entities.UserProfile{UID: "admin", Role: entities.UserRoleAdmin}, nil)
		settings.EXPECT().GetStageCatalog(gomock.Any()).Return([]entities.StageDefinition{{ID: "embossing", Order: 1}}, nil)

		_, err := uc.AddStage(context.Background(), "admin", def)
		if !errors.Is(err, ErrDuplicateStageID) {
			t.Fatalf("expected ErrDuplicateStageID, got %v", err)
		}
	})

	t.Run("appends with next display order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		settings := mock_interfaces.NewMockISettingsRepository(ctrl)
		users := mock_interfaces.NewMockIUserRepository(ctrl)
		uc := NewSettingsUseCase(settings, users)

		users.EXPECT().GetByUID(gomock.Any(), "admin").Return(entities.UserProfile{UID: "admin", Role: entities.UserRoleAdmin}, nil)
		settings.EXPECT().GetStageCatalog(gomock.Any()).Return([]entities.StageDefinition{
			{ID: "cutting", Order: 1},
			{ID: "sewing", Order: 2},
		}, nil)
		settings.EXPECT().PutStageCatalog(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, catalog []entities.StageDefinition) error {
				if len(catalog) != 3 || catalog[2].ID != "embossing" || catalog[2].Order != 3 {
					t.Fatalf("unexpected catalog write: %+v", catalog)
				}
				return nil
			},
		)

		catalog, err := uc.AddStage(context.Background(), "admin", def)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(catalog) != 3 || catalog[2].ID != "embossing" {
			t.Fatalf("unexpected catalog: %+v", catalog)
		}
	})
}
