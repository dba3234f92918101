package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/request"
	response "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/response"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/middleware"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// StageHandler handles HTTP requests for production stage transitions.
//
// The acting operator always comes from the validated token, never from the
// request body, so a station tablet cannot complete stages on behalf of
// another operator.

type StageHandler struct {
	usecase usecase.IStageUseCase
}

func NewStageHandler(uc usecase.IStageUseCase) *StageHandler {
	return &StageHandler{usecase: uc}
}

// CompleteStage marks a stage done for the authenticated operator.
func (h *StageHandler) CompleteStage(c *gin.Context) {
	actorUID, err := middleware.GetActorUID(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated principal", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	stageID := c.Param("stage_id")

	var payload request.StageTransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_STAGE_INPUT", "Invalid stage payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	log.Printf("[stage][handler] complete start order_id=%s stage_id=%s actor=%s", orderID, stageID, actorUID)
	stage, err := h.usecase.CompleteStage(c.Request.Context(), actorUID, orderID, stageID, payload.Notes)
	if err != nil {
		log.Printf("[stage][handler] complete failed order_id=%s stage_id=%s actor=%s err=%v", orderID, stageID, actorUID, err)
		appErr := mapStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[stage][handler] complete success order_id=%s stage_id=%s actor=%s", orderID, stageID, actorUID)

	c.JSON(http.StatusOK, response.FromStage(stage))
}

// StartStage moves a pending stage to in_progress for the authenticated
// operator.
func (h *StageHandler) StartStage(c *gin.Context) {
	actorUID, err := middleware.GetActorUID(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated principal", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	orderID := c.Param("order_id")
	stageID := c.Param("stage_id")

	stage, err := h.usecase.StartStage(c.Request.Context(), actorUID, orderID, stageID)
	if err != nil {
		log.Printf("[stage][handler] start failed order_id=%s stage_id=%s actor=%s err=%v", orderID, stageID, actorUID, err)
		appErr := mapStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStage(stage))
}

// ListAvailableStages returns the catalog stages the authenticated operator
// may act on.
func (h *StageHandler) ListAvailableStages(c *gin.Context) {
	actorUID, err := middleware.GetActorUID(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated principal", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	defs, err := h.usecase.ListAvailableStages(c.Request.Context(), actorUID)
	if err != nil {
		appErr := mapStageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStageDefinitions(defs))
}

func mapStageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderID),
		errors.Is(err, usecase.ErrInvalidStageID),
		errors.Is(err, usecase.ErrInvalidActorUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrActorNotFound):
		return pkg.NewDomainErrorSimple("ACTOR_NOT_FOUND", "Operator profile not found", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActorNotAllowed):
		return pkg.NewDomainErrorSimple("STAGE_NOT_ALLOWED", "Operator is not assigned to this stage", http.StatusForbidden)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageNotFound):
		return pkg.NewDomainErrorSimple("STAGE_NOT_FOUND", "Stage not found on order", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageAlreadyCompleted):
		return pkg.NewDomainErrorSimple("STAGE_ALREADY_COMPLETED", "Stage already completed", http.StatusConflict)
	case errors.Is(err, usecase.ErrStageNotPending):
		return pkg.NewDomainErrorSimple("STAGE_NOT_PENDING", "Stage is not pending", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
