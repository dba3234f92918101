package handlers

import (
	"errors"
	"log"
	"net/http"

	response "github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/adapter/http/dto/response"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/pkg"

	"github.com/gin-gonic/gin"
)

// ImportHandler handles order intake from the commerce channel: CSV exports
// uploaded by hand and order webhooks pushed by the channel itself.

type ImportHandler struct {
	usecase usecase.IImportUseCase
}

func NewImportHandler(uc usecase.IImportUseCase) *ImportHandler {
	return &ImportHandler{usecase: uc}
}

// ImportCSV ingests a channel CSV export uploaded as multipart field "file".
// Each data row becomes its own order; rows without a customer name or email
// are counted as skipped.
func (h *ImportHandler) ImportCSV(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("MISSING_CSV_FILE", "Multipart field 'file' is required", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		appErr := pkg.NewDomainError("INVALID_CSV_FILE", "Could not read uploaded file", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer file.Close()

	log.Printf("[import][handler] csv start filename=%s size=%d", fileHeader.Filename, fileHeader.Size)
	result, err := h.usecase.ImportCSV(c.Request.Context(), file)
	if err != nil {
		log.Printf("[import][handler] csv failed filename=%s err=%v", fileHeader.Filename, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[import][handler] csv done created=%d skipped=%d", len(result.Created), result.Skipped)

	c.JSON(http.StatusOK, response.FromImportResult(result))
}

// ImportWebhook ingests one order pushed by the commerce channel's
// orders/create webhook. The created order is stored already synced.
func (h *ImportHandler) ImportWebhook(c *gin.Context) {
	var payload usecase.WebhookOrder
	if err := c.ShouldBindJSON(&payload); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	order, err := h.usecase.ImportWebhookOrder(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[import][handler] webhook failed external_id=%d err=%v", payload.ID, err)
		appErr := mapImportError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[import][handler] webhook success order_id=%s order_number=%s", order.ID, order.OrderNumber)

	c.JSON(http.StatusCreated, response.FromOrder(order))
}

func mapImportError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEmptyCSV):
		return pkg.NewDomainErrorSimple("EMPTY_CSV", "CSV contains no data rows", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMissingCSVHeaders):
		return pkg.NewDomainErrorSimple("MISSING_CSV_HEADERS", "CSV is missing required headers", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidWebhook):
		return pkg.NewDomainErrorSimple("INVALID_WEBHOOK_PAYLOAD", "Invalid webhook payload", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
