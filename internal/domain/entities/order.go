package entities

import "time"

// OrderStatus is the order's aggregate production state.
//
// It is derived from the stage checklist and never accepted from a client
// write: all pending => pending, all completed => completed, anything in
// between => in_production.

type OrderStatus string

const (
	OrderStatusPending      OrderStatus = "pending"
	OrderStatusInProduction OrderStatus = "in_production"
	OrderStatusCompleted    OrderStatus = "completed"
)

// Customer is the value object attached to an order at intake.
// It is not mutated after creation.
type Customer struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

// Product is a single order line item. Positions lists the embroidery/print
// placements requested for the item (e.g. "front left", "back").
type Product struct {
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Color        string   `json:"color,omitempty"`
	Size         string   `json:"size,omitempty"`
	Positions    []string `json:"positions,omitempty"`
	Manufactured bool     `json:"manufactured"`
}

// Order is the workshop order persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//
// The stage checklist is embedded in the order document; stage updates and
// the audit-log append are separate writes (per-document atomicity only).
type Order struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"order_number"`
	Customer    Customer          `json:"customer"`
	Products    []Product         `json:"products"`
	Stages      []ProductionStage `json:"stages"`
	Status      OrderStatus       `json:"status"`
	QRCode      string            `json:"qr_code,omitempty"`
	Total       float64           `json:"total"`
	Complexity  string            `json:"complexity,omitempty"`
	Synced      bool              `json:"synced"`
	SyncedAt    *time.Time        `json:"synced_at,omitempty"`
	ExternalID  string            `json:"external_id,omitempty"`
	Deadline    *time.Time        `json:"deadline,omitempty"`
	CreatedAt   time.Time         `json:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at"`
}

// StageByID returns the checklist stage with the given id, or nil.
func (o *Order) StageByID(stageID string) *ProductionStage {
	for i := range o.Stages {
		if o.Stages[i].ID == stageID {
			return &o.Stages[i]
		}
	}
	return nil
}

// DeriveStatus recomputes the aggregate order status from the stage
// checklist. Orders without stages stay pending.
func (o *Order) DeriveStatus() OrderStatus {
	if len(o.Stages) == 0 {
		return OrderStatusPending
	}
	allPending, allCompleted := true, true
	for _, s := range o.Stages {
		if s.Status != StageStatusPending {
			allPending = false
		}
		if s.Status != StageStatusCompleted {
			allCompleted = false
		}
	}
	switch {
	case allPending:
		return OrderStatusPending
	case allCompleted:
		return OrderStatusCompleted
	default:
		return OrderStatusInProduction
	}
}
