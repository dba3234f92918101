package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/request"
	response "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/response"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidOrderPayload = pkg.NewDomainErrorSimple("INVALID_ORDER_INPUT", "Invalid order payload", http.StatusBadRequest)
)

// OrderHandler handles HTTP requests for production orders.

type OrderHandler struct {
	usecase usecase.IOrderUseCase
}

func NewOrderHandler(uc usecase.IOrderUseCase) *OrderHandler {
	return &OrderHandler{usecase: uc}
}

// CreateOrder registers a manually entered order and seeds its stage checklist.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var payload request.OrderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.CreateOrder(
		c.Request.Context(),
		payload.OrderNumber,
		payload.ToCustomer(),
		payload.ToProducts(),
		payload.Deadline,
		payload.Complexity,
	)
	if err != nil {
		log.Printf("[order][handler] create failed order_number=%s err=%v", payload.OrderNumber, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] create success order_id=%s order_number=%s", order.ID, order.OrderNumber)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

// GetOrder returns a single order by id.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id := c.Param("order_id")

	order, err := h.usecase.GetOrder(c.Request.Context(), id)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListOrders lists orders, optionally filtered by the derived status.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	status := c.Query("status")

	orders, err := h.usecase.ListOrders(c.Request.Context(), status)
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrders(orders))
}

// ResolveQRCode looks up the order a scanned QR payload points at.
func (h *OrderHandler) ResolveQRCode(c *gin.Context) {
	payloadStr := c.Param("payload")
	log.Printf("[order][handler] qr-resolve start payload=%s", payloadStr)

	order, err := h.usecase.ResolveQRCode(c.Request.Context(), payloadStr)
	if err != nil {
		log.Printf("[order][handler] qr-resolve failed payload=%s err=%v", payloadStr, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[order][handler] qr-resolve success order_id=%s", order.ID)

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// SetProductManufactured flips a line item's manufactured flag.
func (h *OrderHandler) SetProductManufactured(c *gin.Context) {
	orderID := c.Param("order_id")

	var payload request.ManufacturedRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidOrderPayload.HTTPStatus, errInvalidOrderPayload.ToHTTPError())
		return
	}

	order, err := h.usecase.SetProductManufactured(c.Request.Context(), orderID, payload.SKU, payload.Manufactured)
	if err != nil {
		log.Printf("[order][handler] manufactured failed order_id=%s sku=%s err=%v", orderID, payload.SKU, err)
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromOrder(order))
}

// ListInProductionProducts returns the embroidery station work queue: every
// not-yet-manufactured product on an order still in production.
func (h *OrderHandler) ListInProductionProducts(c *gin.Context) {
	view, err := h.usecase.ListInProductionProducts(c.Request.Context())
	if err != nil {
		appErr := mapOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromInProductionProducts(view))
}

func mapOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidOrderNumber),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrNoProducts),
		errors.Is(err, usecase.ErrInvalidQuantity),
		errors.Is(err, usecase.ErrInvalidPrice),
		errors.Is(err, usecase.ErrInvalidQRPayload),
		errors.Is(err, usecase.ErrInvalidOrderStatus),
		errors.Is(err, usecase.ErrInvalidSKU),
		errors.Is(err, usecase.ErrInvalidOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrOrderNotFound):
		return pkg.NewDomainErrorSimple("ORDER_NOT_FOUND", "Order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found on order", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
