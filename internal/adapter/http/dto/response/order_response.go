package response

import (
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase"
)

type StageResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	StartedAt   *time.Time `json:"started_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy string     `json:"completed_by,omitempty"`
	Notes       string     `json:"notes,omitempty"`
}

type ProductResponse struct {
	Name         string   `json:"name"`
	SKU          string   `json:"sku"`
	Quantity     int      `json:"quantity"`
	Price        float64  `json:"price"`
	Color        string   `json:"color,omitempty"`
	Size         string   `json:"size,omitempty"`
	Positions    []string `json:"positions,omitempty"`
	Manufactured bool     `json:"manufactured"`
}

type OrderResponse struct {
	ID          string            `json:"id"`
	OrderNumber string            `json:"order_number"`
	Customer    entities.Customer `json:"customer"`
	Products    []ProductResponse `json:"products"`
	Stages      []StageResponse   `json:"stages"`
	Status      string            `json:"status"`
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

func FromOrder(o entities.Order) OrderResponse {
	products := make([]ProductResponse, 0, len(o.Products))
	for _, p := range o.Products {
		products = append(products, ProductResponse{
			Name:         p.Name,
			SKU:          p.SKU,
			Quantity:     p.Quantity,
			Price:        p.Price,
			Color:        p.Color,
			Size:         p.Size,
			Positions:    p.Positions,
			Manufactured: p.Manufactured,
		})
	}
	stages := make([]StageResponse, 0, len(o.Stages))
	for _, s := range o.Stages {
		stages = append(stages, FromStage(s))
	}
	return OrderResponse{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		Customer:    o.Customer,
		Products:    products,
		Stages:      stages,
		Status:      string(o.Status),
		QRCode:      o.QRCode,
		Total:       o.Total,
		Complexity:  o.Complexity,
		Synced:      o.Synced,
		SyncedAt:    o.SyncedAt,
		ExternalID:  o.ExternalID,
		Deadline:    o.Deadline,
		CreatedAt:   o.CreatedAt,
		UpdatedAt:   o.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []OrderResponse {
	out := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, FromOrder(o))
	}
	return out
}

func FromStage(s entities.ProductionStage) StageResponse {
	return StageResponse{
		ID:          s.ID,
		Name:        s.Name,
		Status:      string(s.Status),
		StartedAt:   s.StartedAt,
		CompletedAt: s.CompletedAt,
		CompletedBy: s.CompletedBy,
		Notes:       s.Notes,
	}
}

type InProductionProductResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber string          `json:"order_number"`
	Product     ProductResponse `json:"product"`
}

func FromInProductionProducts(view []usecase.InProductionProduct) []InProductionProductResponse {
	out := make([]InProductionProductResponse, 0, len(view))
	for _, row := range view {
		out = append(out, InProductionProductResponse{
			OrderID:     row.OrderID,
			OrderNumber: row.OrderNumber,
			Product: ProductResponse{
				Name:         row.Product.Name,
				SKU:          row.Product.SKU,
				Quantity:     row.Product.Quantity,
				Price:        row.Product.Price,
				Color:        row.Product.Color,
				Size:         row.Product.Size,
				Positions:    row.Product.Positions,
				Manufactured: row.Product.Manufactured,
			},
		})
	}
	return out
}
