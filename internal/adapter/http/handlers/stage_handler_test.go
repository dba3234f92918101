package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/handlers/mocks"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func stageTestRouter(h *StageHandler, actorUID string) *gin.Engine {
	r := gin.New()
	group := r.Group("/v1")
	if actorUID != "" {
		group.Use(func(c *gin.Context) {
			c.Set("actor_uid", actorUID)
			c.Next()
		})
	}
	group.PATCH("/orders/:order_id/stages/:stage_id/complete", h.CompleteStage)
	group.PATCH("/orders/:order_id/stages/:stage_id/start", h.StartStage)
	group.GET("/stages/available", h.ListAvailableStages)
	return r
}

func TestStageHandler_CompleteStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing principal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "")

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/cutting/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("success with notes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "w-1")

		uc.EXPECT().CompleteStage(gomock.Any(), "w-1", "ord-1", "cutting", "trimmed twice").Return(entities.ProductionStage{
			ID:          "cutting",
			Status:      entities.StageStatusCompleted,
			CompletedBy: "w-1",
		}, nil)

		body := bytes.NewBufferString(`{"notes":"trimmed twice"}`)
		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/cutting/complete", body)
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
		}
		var res map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
			t.Fatalf("invalid response json: %v", err)
		}
		if res["status"] != "completed" || res["completed_by"] != "w-1" {
			t.Fatalf("unexpected response: %v", res)
		}
	})

	t.Run("actor not allowed maps to 403", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "w-1")

		uc.EXPECT().CompleteStage(gomock.Any(), "w-1", "ord-1", "sewing", "").Return(entities.ProductionStage{}, usecase.ErrActorNotAllowed)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/sewing/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("already completed maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "admin")

		uc.EXPECT().CompleteStage(gomock.Any(), "admin", "ord-1", "cutting", "").Return(entities.ProductionStage{}, usecase.ErrStageAlreadyCompleted)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/cutting/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("order not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "admin")

		uc.EXPECT().CompleteStage(gomock.Any(), "admin", "missing", "cutting", "").Return(entities.ProductionStage{}, usecase.ErrOrderNotFound)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/missing/stages/cutting/complete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestStageHandler_StartStage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("stage not pending maps to 409", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "w-1")

		uc.EXPECT().StartStage(gomock.Any(), "w-1", "ord-1", "sewing").Return(entities.ProductionStage{}, usecase.ErrStageNotPending)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/sewing/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIStageUseCase(ctrl)
		r := stageTestRouter(NewStageHandler(uc), "w-1")

		uc.EXPECT().StartStage(gomock.Any(), "w-1", "ord-1", "sewing").Return(entities.ProductionStage{
			ID:     "sewing",
			Status: entities.StageStatusInProgress,
		}, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/orders/ord-1/stages/sewing/start", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestStageHandler_ListAvailableStages(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStageUseCase(ctrl)
	r := stageTestRouter(NewStageHandler(uc), "w-1")

	uc.EXPECT().ListAvailableStages(gomock.Any(), "w-1").Return([]entities.StageDefinition{
		{ID: "cutting", Name: "Cutting", Order: 1},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/stages/available", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var res []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response json: %v", err)
	}
	if len(res) != 1 || res[0]["id"] != "cutting" {
		t.Fatalf("unexpected response: %v", res)
	}
}
