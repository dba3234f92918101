package request

import (
	"strings"
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
)

type CustomerRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type ProductRequest struct {
	Name      string   `json:"name" binding:"required"`
	SKU       string   `json:"sku"`
	Quantity  int      `json:"quantity" binding:"required"`
	Price     float64  `json:"price"`
	Color     string   `json:"color"`
	Size      string   `json:"size"`
	Positions []string `json:"positions"`
}

// OrderRequest is the manual intake payload.
type OrderRequest struct {
	OrderNumber string           `json:"order_number" binding:"required"`
	Customer    CustomerRequest  `json:"customer" binding:"required"`
	Products    []ProductRequest `json:"products" binding:"required"`
	Deadline    *time.Time       `json:"deadline"`
	Complexity  string           `json:"complexity"`
}

func (r OrderRequest) ToCustomer() entities.Customer {
	return entities.Customer{
		Name:    strings.TrimSpace(r.Customer.Name),
		Email:   strings.TrimSpace(r.Customer.Email),
		Phone:   strings.TrimSpace(r.Customer.Phone),
		Address: strings.TrimSpace(r.Customer.Address),
	}
}

func (r OrderRequest) ToProducts() []entities.Product {
	products := make([]entities.Product, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, entities.Product{
			Name:      strings.TrimSpace(p.Name),
			SKU:       strings.TrimSpace(p.SKU),
			Quantity:  p.Quantity,
			Price:     p.Price,
			Color:     strings.TrimSpace(p.Color),
			Size:      strings.TrimSpace(p.Size),
			Positions: p.Positions,
		})
	}
	return products
}

// ManufacturedRequest flips a line item's manufactured flag.
type ManufacturedRequest struct {
	SKU          string `json:"sku" binding:"required"`
	Manufactured bool   `json:"manufactured"`
}
