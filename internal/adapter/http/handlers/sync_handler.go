package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/request"
	response "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/response"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// SyncHandler handles HTTP requests for pushing orders to the commerce
// channel.

type SyncHandler struct {
	usecase usecase.ISyncUseCase
}

func NewSyncHandler(uc usecase.ISyncUseCase) *SyncHandler {
	return &SyncHandler{usecase: uc}
}

// SyncOrders pushes the selected orders to the commerce channel. An empty
// or absent order_ids list pushes everything still unsynced.
func (h *SyncHandler) SyncOrders(c *gin.Context) {
	var payload request.SyncRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			appErr := pkg.NewDomainErrorSimple("INVALID_SYNC_INPUT", "Invalid sync payload", http.StatusBadRequest)
			c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
	}

	var (
		result entities.SyncResult
		err    error
	)
	if len(payload.OrderIDs) == 0 {
		log.Printf("[sync][handler] sync-pending start")
		result, err = h.usecase.SyncPending(c.Request.Context())
	} else {
		log.Printf("[sync][handler] sync start orders=%d", len(payload.OrderIDs))
		result, err = h.usecase.SyncOrders(c.Request.Context(), payload.OrderIDs)
	}
	if err != nil {
		log.Printf("[sync][handler] sync failed err=%v", err)
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[sync][handler] sync done synced=%d failed=%d skipped=%d", len(result.Synced), len(result.Failed), len(result.Skipped))

	c.JSON(http.StatusOK, response.FromSyncResult(result))
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrNoOrdersToSync):
		return pkg.NewDomainErrorSimple("NO_ORDERS_TO_SYNC", "No orders to sync", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCommerceGatewayMissing):
		return pkg.NewDomainErrorSimple("COMMERCE_GATEWAY_MISSING", "Commerce gateway not configured", http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
