package commerce

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/domain/entities"
	"github.com/nguyenvanlinh1902/ProductionManagement-sub000/internal/usecase/interfaces"
)

var ErrMissingShopifyCredentials = errors.New("missing SHOPIFY_STORE_DOMAIN or SHOPIFY_ACCESS_TOKEN")

const defaultAPIVersion = "2024-01"

// ShopifyGateway pushes orders to the Shopify Admin REST API.
//
// Supported env vars:
//   - SHOPIFY_STORE_DOMAIN (e.g. my-shop.myshopify.com)
//   - SHOPIFY_ACCESS_TOKEN
//   - SHOPIFY_API_VERSION (default: 2024-01)
//   - COMMERCE_GATEWAY_MOCK (accepts 1/true/yes/on/mock)
type ShopifyGateway struct {
	httpClient *http.Client
	baseURL    string
	token      string
	mockMode   bool
}

var _ interfaces.ICommerceGateway = (*ShopifyGateway)(nil)

func NewShopifyGateway(storeDomain, accessToken string) (*ShopifyGateway, error) {
	if isCommerceGatewayMockEnabled() {
		log.Printf("[commerce][gateway] mock mode enabled")
		return &ShopifyGateway{mockMode: true}, nil
	}

	storeDomain = strings.TrimSpace(storeDomain)
	accessToken = strings.TrimSpace(accessToken)
	if storeDomain == "" || accessToken == "" {
		log.Printf("[commerce][gateway] missing shopify credentials")
		return nil, ErrMissingShopifyCredentials
	}

	version := strings.TrimSpace(os.Getenv("SHOPIFY_API_VERSION"))
	if version == "" {
		version = defaultAPIVersion
	}

	log.Printf("[commerce][gateway] shopify client initialized domain=%s api_version=%s", storeDomain, version)
	return &ShopifyGateway{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		baseURL:    fmt.Sprintf("https://%s/admin/api/%s", storeDomain, version),
		token:      accessToken,
	}, nil
}

type shopifyLineItem struct {
	Title      string            `json:"title"`
	SKU        string            `json:"sku,omitempty"`
	Quantity   int               `json:"quantity"`
	Price      string            `json:"price"`
	Properties map[string]string `json:"properties,omitempty"`
}

type shopifyOrderPayload struct {
	Order struct {
		Name      string            `json:"name,omitempty"`
		Email     string            `json:"email"`
		Phone     string            `json:"phone,omitempty"`
		Note      string            `json:"note,omitempty"`
		LineItems []shopifyLineItem `json:"line_items"`
		Customer  struct {
			FirstName string `json:"first_name"`
			Email     string `json:"email"`
		} `json:"customer"`
		BillingAddress *struct {
			Address1 string `json:"address1"`
		} `json:"billing_address,omitempty"`
	} `json:"order"`
}

type shopifyOrderResponse struct {
	Order struct {
		ID int64 `json:"id"`
	} `json:"order"`
}

// CreateOrder submits one order and returns Shopify's id for it. Non-2xx
// responses are returned as errors with the response body for diagnosis.
func (g *ShopifyGateway) CreateOrder(ctx context.Context, o entities.Order) (string, error) {
	if g != nil && g.mockMode {
		id := strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		log.Printf("[commerce][gateway] mock create success order_number=%s external_id=%s", o.OrderNumber, id)
		return id, nil
	}
	if g == nil || g.httpClient == nil {
		return "", ErrMissingShopifyCredentials
	}

	payload := buildOrderPayload(o)
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}
	log.Printf("[commerce][gateway] create start order_number=%s payload_len=%d", o.OrderNumber, len(body))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/orders.json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", g.token)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		log.Printf("[commerce][gateway] request failed order_number=%s err=%v", o.OrderNumber, err)
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Printf("[commerce][gateway] create rejected order_number=%s status=%d", o.OrderNumber, resp.StatusCode)
		return "", fmt.Errorf("shopify order create failed: status=%d body=%s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}

	var parsed shopifyOrderResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("shopify response unmarshal failed: %w", err)
	}
	externalID := strconv.FormatInt(parsed.Order.ID, 10)
	log.Printf("[commerce][gateway] create success order_number=%s external_id=%s", o.OrderNumber, externalID)
	return externalID, nil
}

func buildOrderPayload(o entities.Order) shopifyOrderPayload {
	var payload shopifyOrderPayload
	payload.Order.Name = o.OrderNumber
	payload.Order.Email = o.Customer.Email
	payload.Order.Phone = o.Customer.Phone
	payload.Order.Customer.FirstName = o.Customer.Name
	payload.Order.Customer.Email = o.Customer.Email
	if o.Complexity != "" {
		payload.Order.Note = "complexity: " + o.Complexity
	}
	if o.Customer.Address != "" {
		payload.Order.BillingAddress = &struct {
			Address1 string `json:"address1"`
		}{Address1: o.Customer.Address}
	}

	payload.Order.LineItems = make([]shopifyLineItem, 0, len(o.Products))
	for _, p := range o.Products {
		li := shopifyLineItem{
			Title:    p.Name,
			SKU:      p.SKU,
			Quantity: p.Quantity,
			Price:    strconv.FormatFloat(p.Price, 'f', 2, 64),
		}
		props := map[string]string{}
		if p.Color != "" {
			props["color"] = p.Color
		}
		if p.Size != "" {
			props["size"] = p.Size
		}
		for i, pos := range p.Positions {
			props[fmt.Sprintf("position_%d", i+1)] = pos
		}
		if len(props) > 0 {
			li.Properties = props
		}
		payload.Order.LineItems = append(payload.Order.LineItems, li)
	}
	return payload
}

func isCommerceGatewayMockEnabled() bool {
	for _, key := range []string{"COMMERCE_GATEWAY_MOCK", "SHOPIFY_MOCK"} {
		v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
		switch v {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}
