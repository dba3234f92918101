package usecase

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrEmptyCSV          = errors.New("csv file has no data rows")
	ErrMissingCSVHeaders = errors.New("csv is missing required headers")
	ErrInvalidWebhook    = errors.New("invalid webhook order payload")
)

// Shopify order-export column names the import maps from.
const (
	csvColName        = "Name"
	csvColEmail       = "Email"
	csvColPhone       = "Phone"
	csvColAddress     = "Shipping Address1"
	csvColItemName    = "Lineitem name"
	csvColItemSKU     = "Lineitem sku"
	csvColItemQty     = "Lineitem quantity"
	csvColItemPrice   = "Lineitem price"
	csvColCustomer    = "Shipping Name"
)

// WebhookLineItem mirrors one entry of the channel's order-created payload.
type WebhookLineItem struct {
	Name       string `json:"name"`
	SKU        string `json:"sku"`
	Quantity   int    `json:"quantity"`
	Price      string `json:"price"`
	Properties []struct {
		Name  string `json:"name"`
		Value string `json:"value"`
	} `json:"properties"`
}

// WebhookOrder mirrors the channel's order-created webhook payload.
type WebhookOrder struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Customer struct {
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
	} `json:"customer"`
	ShippingAddress struct {
		Address1 string `json:"address1"`
		City     string `json:"city"`
	} `json:"shipping_address"`
	LineItems []WebhookLineItem `json:"line_items"`
}

// IImportUseCase maps the external channel's CSV export and order webhook
// payloads into canonical orders.

type IImportUseCase interface {
	ImportCSV(ctx context.Context, r io.Reader) (entities.ImportResult, error)
	ImportWebhookOrder(ctx context.Context, payload WebhookOrder) (entities.Order, error)
}

type ImportUseCase struct {
	orders   interfaces.IOrderRepository
	settings interfaces.ISettingsRepository
}

var _ IImportUseCase = (*ImportUseCase)(nil)

func NewImportUseCase(orders interfaces.IOrderRepository, settings interfaces.ISettingsRepository) *ImportUseCase {
	return &ImportUseCase{orders: orders, settings: settings}
}

// ImportCSV reads a channel order export. Mapping is header-driven; rows
// missing the Name or Email column value are skipped. Every valid row
// becomes its own order wrapping a single line item — rows sharing an order
// number are deliberately not merged.
func (u *ImportUseCase) ImportCSV(ctx context.Context, r io.Reader) (entities.ImportResult, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return entities.ImportResult{}, ErrEmptyCSV
	}
	col := make(map[string]int, len(header))
	for i, h := range header {
		col[strings.TrimSpace(h)] = i
	}
	if _, ok := col[csvColName]; !ok {
		return entities.ImportResult{}, ErrMissingCSVHeaders
	}
	if _, ok := col[csvColEmail]; !ok {
		return entities.ImportResult{}, ErrMissingCSVHeaders
	}

	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return entities.ImportResult{}, err
	}

	result := entities.ImportResult{Created: []string{}}
	row := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return entities.ImportResult{}, fmt.Errorf("csv row %d: %w", row, err)
		}
		row++

		field := func(name string) string {
			idx, ok := col[name]
			if !ok || idx >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[idx])
		}

		orderNumber := field(csvColName)
		email := field(csvColEmail)
		if orderNumber == "" || email == "" {
			result.Skipped++
			continue
		}

		qty, _ := strconv.Atoi(field(csvColItemQty))
		if qty <= 0 {
			qty = 1
		}
		price, _ := strconv.ParseFloat(field(csvColItemPrice), 64)
		if price < 0 {
			price = 0
		}

		customerName := field(csvColCustomer)
		if customerName == "" {
			customerName = orderNumber
		}

		product := entities.Product{
			Name:     field(csvColItemName),
			SKU:      field(csvColItemSKU),
			Quantity: qty,
			Price:    price,
		}
		if product.Name == "" {
			product.Name = orderNumber
		}

		now := time.Now().UTC()
		o := entities.Order{
			ID:          uuid.NewString(),
			OrderNumber: orderNumber,
			Customer: entities.Customer{
				Name:    customerName,
				Email:   email,
				Phone:   field(csvColPhone),
				Address: field(csvColAddress),
			},
			Products:  []entities.Product{product},
			Stages:    entities.SeedStages(catalog),
			Total:     price * float64(qty),
			CreatedAt: now,
			UpdatedAt: now,
		}
		o.Status = o.DeriveStatus()
		o.QRCode = o.ID

		created, err := u.orders.Create(ctx, o)
		if err != nil {
			return entities.ImportResult{}, fmt.Errorf("csv row %d: %w", row, err)
		}
		result.Created = append(result.Created, created.ID)
	}

	log.Printf("[import][usecase] csv done created=%d skipped=%d", len(result.Created), result.Skipped)
	return result, nil
}

// ImportWebhookOrder maps a channel order-created event into a canonical
// order. The order is stored already synced: it originated on the channel.
func (u *ImportUseCase) ImportWebhookOrder(ctx context.Context, payload WebhookOrder) (entities.Order, error) {
	orderNumber := strings.TrimSpace(payload.Name)
	if orderNumber == "" && payload.ID != 0 {
		orderNumber = fmt.Sprintf("#%d", payload.ID)
	}
	email := strings.TrimSpace(payload.Email)
	if email == "" {
		email = strings.TrimSpace(payload.Customer.Email)
	}
	customerName := strings.TrimSpace(strings.TrimSpace(payload.Customer.FirstName) + " " + strings.TrimSpace(payload.Customer.LastName))
	if orderNumber == "" || email == "" || len(payload.LineItems) == 0 {
		return entities.Order{}, ErrInvalidWebhook
	}
	if customerName == "" {
		customerName = email
	}

	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return entities.Order{}, err
	}

	products := make([]entities.Product, 0, len(payload.LineItems))
	total := 0.0
	for _, li := range payload.LineItems {
		qty := li.Quantity
		if qty <= 0 {
			qty = 1
		}
		price, _ := strconv.ParseFloat(strings.TrimSpace(li.Price), 64)
		if price < 0 {
			price = 0
		}

		p := entities.Product{
			Name:     strings.TrimSpace(li.Name),
			SKU:      strings.TrimSpace(li.SKU),
			Quantity: qty,
			Price:    price,
		}
		for _, prop := range li.Properties {
			name := strings.ToLower(strings.TrimSpace(prop.Name))
			value := strings.TrimSpace(prop.Value)
			if value == "" {
				continue
			}
			switch {
			case strings.Contains(name, "position"):
				p.Positions = append(p.Positions, value)
			case name == "color":
				p.Color = value
			case name == "size":
				p.Size = value
			}
		}
		total += price * float64(qty)
		products = append(products, p)
	}

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		OrderNumber: orderNumber,
		Customer: entities.Customer{
			Name:    customerName,
			Email:   email,
			Phone:   strings.TrimSpace(payload.Customer.Phone),
			Address: strings.TrimSpace(payload.ShippingAddress.Address1),
		},
		Products:  products,
		Stages:    entities.SeedStages(catalog),
		Total:     total,
		Synced:    true,
		SyncedAt:  &now,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if payload.ID != 0 {
		o.ExternalID = strconv.FormatInt(payload.ID, 10)
	}
	o.Status = o.DeriveStatus()
	o.QRCode = o.ID

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[import][usecase] webhook order created order_id=%s order_number=%s products=%d", created.ID, created.OrderNumber, len(created.Products))
	return created, nil
}
