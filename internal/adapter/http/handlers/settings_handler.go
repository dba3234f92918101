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

// SettingsHandler handles HTTP requests for the workshop stage catalog.

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetStageCatalog returns the catalog ordered by stage sequence.
func (h *SettingsHandler) GetStageCatalog(c *gin.Context) {
	defs, err := h.usecase.GetStageCatalog(c.Request.Context())
	if err != nil {
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromStageDefinitions(defs))
}

// AddStage appends a stage definition to the catalog. Admin only. Orders
// already in flight keep their checklist; only new orders pick this up.
func (h *SettingsHandler) AddStage(c *gin.Context) {
	actorUID, err := middleware.GetActorUID(c)
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Missing authenticated principal", http.StatusUnauthorized)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	var payload request.StageDefinitionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_STAGE_DEFINITION", "Invalid stage definition payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	defs, err := h.usecase.AddStage(c.Request.Context(), actorUID, payload.ToDefinition())
	if err != nil {
		log.Printf("[settings][handler] add-stage failed stage_id=%s actor=%s err=%v", payload.ID, actorUID, err)
		appErr := mapSettingsError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[settings][handler] add-stage success stage_id=%s catalog_size=%d", payload.ID, len(defs))

	c.JSON(http.StatusCreated, response.FromStageDefinitions(defs))
}

func mapSettingsError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStageDefinition), errors.Is(err, usecase.ErrInvalidActorUID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAdminRequired):
		return pkg.NewDomainErrorSimple("ADMIN_REQUIRED", "Admin role required", http.StatusForbidden)
	case errors.Is(err, usecase.ErrActorNotFound):
		return pkg.NewDomainErrorSimple("ACTOR_NOT_FOUND", "Operator profile not found", http.StatusForbidden)
	case errors.Is(err, usecase.ErrDuplicateStageID):
		return pkg.NewDomainErrorSimple("DUPLICATE_STAGE_ID", "Stage id already in catalog", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
