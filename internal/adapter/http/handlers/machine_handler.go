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

var (
	errInvalidMachinePayload = pkg.NewDomainErrorSimple("INVALID_MACHINE_INPUT", "Invalid machine payload", http.StatusBadRequest)
)

// MachineHandler handles HTTP requests for sewing machines and their runs.

type MachineHandler struct {
	usecase usecase.IMachineUseCase
}

func NewMachineHandler(uc usecase.IMachineUseCase) *MachineHandler {
	return &MachineHandler{usecase: uc}
}

// CreateMachine registers a machine. Admin only.
func (h *MachineHandler) CreateMachine(c *gin.Context) {
	actorUID, err := middleware.GetActorUID(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated principal", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.MachineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	machine, err := h.usecase.CreateMachine(c.Request.Context(), actorUID, payload.Name, payload.ManagerID, payload.ManagerName)
	if err != nil {
		log.Printf("[machine][handler] create failed name=%s actor=%s err=%v", payload.Name, actorUID, err)
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[machine][handler] create success machine_id=%s name=%s", machine.ID, machine.Name)

	c.JSON(http.StatusCreated, response.FromMachine(machine))
}

// ListMachines lists every registered machine with its live state.
func (h *MachineHandler) ListMachines(c *gin.Context) {
	machines, err := h.usecase.ListMachines(c.Request.Context())
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromMachines(machines))
}

// StartOperation begins a run on an idle machine.
func (h *MachineHandler) StartOperation(c *gin.Context) {
	machineID := c.Param("machine_id")

	var payload request.OperationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidMachinePayload.HTTPStatus, errInvalidMachinePayload.ToHTTPError())
		return
	}

	log.Printf("[machine][handler] operation-start machine_id=%s product_id=%s color=%s", machineID, payload.ProductID, payload.ThreadColor)
	op, err := h.usecase.StartOperation(c.Request.Context(), machineID, payload.ProductID, payload.ProductName, payload.ThreadColor, payload.EstimatedMinutes)
	if err != nil {
		log.Printf("[machine][handler] operation-start failed machine_id=%s err=%v", machineID, err)
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromOperation(op))
}

// CompleteOperation finishes a run, frees the machine, and returns next-run
// suggestions for the thread still loaded.
func (h *MachineHandler) CompleteOperation(c *gin.Context) {
	operationID := c.Param("operation_id")

	op, recs, err := h.usecase.CompleteOperation(c.Request.Context(), operationID)
	if err != nil {
		log.Printf("[machine][handler] operation-complete failed operation_id=%s err=%v", operationID, err)
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[machine][handler] operation-complete success operation_id=%s recommendations=%d", operationID, len(recs))

	c.JSON(http.StatusOK, response.CompletedOperationResponse{
		Operation:       response.FromOperation(op),
		Recommendations: response.FromRecommendations(recs),
	})
}

// InterruptOperation aborts a run and frees the machine.
func (h *MachineHandler) InterruptOperation(c *gin.Context) {
	operationID := c.Param("operation_id")

	op, err := h.usecase.InterruptOperation(c.Request.Context(), operationID)
	if err != nil {
		log.Printf("[machine][handler] operation-interrupt failed operation_id=%s err=%v", operationID, err)
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOperation(op))
}

// RecommendNext returns planner suggestions for a thread color, best first.
func (h *MachineHandler) RecommendNext(c *gin.Context) {
	threadColor := c.Query("thread_color")

	recs, err := h.usecase.RecommendNext(c.Request.Context(), threadColor)
	if err != nil {
		appErr := mapMachineError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromRecommendations(recs))
}

func mapMachineError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidMachineID),
		errors.Is(err, usecase.ErrInvalidMachineName),
		errors.Is(err, usecase.ErrInvalidOperationID),
		errors.Is(err, usecase.ErrInvalidThreadColor),
		errors.Is(err, usecase.ErrInvalidProductID),
		errors.Is(err, usecase.ErrInvalidActorUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActorNotFound):
		return pkg.NewDomainErrorSimple("ACTOR_NOT_FOUND", "Operator profile not found", http.StatusForbidden)
	case errors.Is(err, usecase.ErrMachineNotFound):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_FOUND", "Machine not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOperationNotFound):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_FOUND", "Machine operation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrMachineNotIdle):
		return pkg.NewDomainErrorSimple("MACHINE_NOT_IDLE", "Machine is not idle", http.StatusConflict)
	case errors.Is(err, usecase.ErrOperationNotRunning):
		return pkg.NewDomainErrorSimple("OPERATION_NOT_RUNNING", "Machine operation is not running", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
