package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var (
	ErrInvalidOrderNumber   = errors.New("invalid order number")
	ErrInvalidCustomer      = errors.New("customer name and email are required")
	ErrNoProducts           = errors.New("order has no products")
	ErrInvalidQuantity      = errors.New("product quantity must be positive")
	ErrInvalidPrice         = errors.New("product price must be non-negative")
	ErrInvalidQRPayload     = errors.New("invalid qr payload")
	ErrInvalidOrderStatus   = errors.New("invalid order status filter")
	ErrInvalidSKU           = errors.New("invalid product sku")
	ErrProductNotFound      = errors.New("product not found on order")
)

// InProductionProduct is one row of the warehouse "in production" view: a
// not-yet-manufactured line item with its owning order identity.
type InProductionProduct struct {
	OrderID     string           `json:"order_id"`
	OrderNumber string           `json:"order_number"`
	Product     entities.Product `json:"product"`
}

// IOrderUseCase covers order intake, lookup (including QR scans) and the
// manufactured-flag inventory view.

type IOrderUseCase interface {
	CreateOrder(ctx context.Context, orderNumber string, customer entities.Customer, products []entities.Product, deadline *time.Time, complexity string) (entities.Order, error)
	GetOrder(ctx context.Context, id string) (entities.Order, error)
	ListOrders(ctx context.Context, status string) ([]entities.Order, error)
	ResolveQRCode(ctx context.Context, payload string) (entities.Order, error)
	SetProductManufactured(ctx context.Context, orderID, sku string, manufactured bool) (entities.Order, error)
	ListInProductionProducts(ctx context.Context) ([]InProductionProduct, error)
}

type OrderUseCase struct {
	orders   interfaces.IOrderRepository
	settings interfaces.ISettingsRepository
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(orders interfaces.IOrderRepository, settings interfaces.ISettingsRepository) *OrderUseCase {
	return &OrderUseCase{orders: orders, settings: settings}
}

// CreateOrder validates the intake payload, seeds the stage checklist from
// the configured catalog and assigns the QR payload. Malformed orders are
// rejected here, before any write.
func (u *OrderUseCase) CreateOrder(ctx context.Context, orderNumber string, customer entities.Customer, products []entities.Product, deadline *time.Time, complexity string) (entities.Order, error) {
	orderNumber = strings.TrimSpace(orderNumber)
	if orderNumber == "" {
		return entities.Order{}, ErrInvalidOrderNumber
	}
	customer.Name = strings.TrimSpace(customer.Name)
	customer.Email = strings.TrimSpace(customer.Email)
	if customer.Name == "" || customer.Email == "" {
		return entities.Order{}, ErrInvalidCustomer
	}
	if len(products) == 0 {
		return entities.Order{}, ErrNoProducts
	}
	total := 0.0
	for _, p := range products {
		if p.Quantity <= 0 {
			return entities.Order{}, ErrInvalidQuantity
		}
		if p.Price < 0 {
			return entities.Order{}, ErrInvalidPrice
		}
		total += p.Price * float64(p.Quantity)
	}

	catalog, err := u.settings.GetStageCatalog(ctx)
	if err != nil {
		return entities.Order{}, err
	}
	stages := entities.SeedStages(catalog)

	now := time.Now().UTC()
	o := entities.Order{
		ID:          uuid.NewString(),
		OrderNumber: orderNumber,
		Customer:    customer,
		Products:    products,
		Stages:      stages,
		Total:       total,
		Complexity:  strings.TrimSpace(complexity),
		Deadline:    deadline,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	o.Status = o.DeriveStatus()
	// The QR payload is the order id itself; scanners resolve it as a
	// direct lookup key.
	o.QRCode = o.ID

	created, err := u.orders.Create(ctx, o)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] created order_id=%s order_number=%s products=%d stages=%d", created.ID, created.OrderNumber, len(created.Products), len(created.Stages))
	return created, nil
}

func (u *OrderUseCase) GetOrder(ctx context.Context, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.orders.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) ListOrders(ctx context.Context, status string) ([]entities.Order, error) {
	status = strings.TrimSpace(status)
	switch entities.OrderStatus(status) {
	case "", entities.OrderStatusPending, entities.OrderStatusInProduction, entities.OrderStatusCompleted:
	default:
		return nil, ErrInvalidOrderStatus
	}
	return u.orders.List(ctx, entities.OrderStatus(status))
}

// ResolveQRCode looks up the order addressed by a scanned payload. The
// payload is opaque and used directly as the order key.
func (u *OrderUseCase) ResolveQRCode(ctx context.Context, payload string) (entities.Order, error) {
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return entities.Order{}, ErrInvalidQRPayload
	}

	o, err := u.orders.GetByID(ctx, payload)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		log.Printf("[order][usecase] qr resolve miss payload=%q", payload)
		return entities.Order{}, ErrOrderNotFound
	}
	return o, nil
}

func (u *OrderUseCase) SetProductManufactured(ctx context.Context, orderID, sku string, manufactured bool) (entities.Order, error) {
	orderID, sku = strings.TrimSpace(orderID), strings.TrimSpace(sku)
	if orderID == "" {
		return entities.Order{}, ErrInvalidOrderID
	}
	if sku == "" {
		return entities.Order{}, ErrInvalidSKU
	}

	o, err := u.orders.GetByID(ctx, orderID)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	found := false
	for _, p := range o.Products {
		if p.SKU == sku {
			found = true
			break
		}
	}
	if !found {
		return entities.Order{}, ErrProductNotFound
	}

	updated, err := u.orders.SetProductManufactured(ctx, orderID, sku, manufactured)
	if err != nil {
		return entities.Order{}, err
	}
	log.Printf("[order][usecase] manufactured flag set order_id=%s sku=%s manufactured=%t", orderID, sku, manufactured)
	return updated, nil
}

// ListInProductionProducts returns every line item still waiting to be
// manufactured across non-completed orders. A missing manufactured flag
// counts as not manufactured.
func (u *OrderUseCase) ListInProductionProducts(ctx context.Context) ([]InProductionProduct, error) {
	orders, err := u.orders.List(ctx, "")
	if err != nil {
		return nil, err
	}

	view := make([]InProductionProduct, 0)
	for _, o := range orders {
		if o.Status == entities.OrderStatusCompleted {
			continue
		}
		for _, p := range o.Products {
			if p.Manufactured {
				continue
			}
			view = append(view, InProductionProduct{
				OrderID:     o.ID,
				OrderNumber: o.OrderNumber,
				Product:     p,
			})
		}
	}
	return view, nil
}
