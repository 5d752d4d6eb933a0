package dto

import "github.com/shopspring/decimal"

// ─── Checkout ────────────────────────────────────────────────────────────────

type CheckoutResponse struct {
	OrderID     string          `json:"order_id"`
	OrderNumber int             `json:"order_number"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	WhatsAppURL string          `json:"whatsapp_url"`
}

// ─── Admin order management ──────────────────────────────────────────────────

type OrderFilter struct {
	Status string `form:"status"` // pendente | concluido | cancelado | all
	From   string `form:"from"`   // YYYY-MM-DD
	To     string `form:"to"`     // YYYY-MM-DD
	Page   int    `form:"page,default=1"   validate:"min=1"`
	Limit  int    `form:"limit,default=50" validate:"min=1,max=200"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pendente concluido cancelado"`
}

type OrderItemResponse struct {
	VariationID  string          `json:"variation_id"`
	Product      string          `json:"product"`
	Size         string          `json:"size"`
	Quantity     int             `json:"quantity"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	Subtotal     decimal.Decimal `json:"subtotal"`
}

type OrderResponse struct {
	ID           string              `json:"id"`
	Number       int                 `json:"number"`
	Status       string              `json:"status"`
	Restocked    bool                `json:"restocked"`
	TotalPrice   decimal.Decimal     `json:"total_price"`
	ItemsSummary string              `json:"items_summary"`
	WhatsAppURL  *string             `json:"whatsapp_url"`
	Items        []OrderItemResponse `json:"items"`
	CreatedAt    string              `json:"created_at"`
	// Warning reports non-fatal notices, ex: a rejected re-activation that
	// forced the order back to cancelado.
	Warning *string `json:"warning,omitempty"`
}

type OrderListResponse struct {
	Data  []OrderResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// ─── Dashboard ───────────────────────────────────────────────────────────────

type DashboardFilter struct {
	From string `form:"from"` // YYYY-MM-DD; default: 30 days ago
	To   string `form:"to"`   // YYYY-MM-DD; default: today
}

type LowStockProduct struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Slug       string `json:"slug"`
	TotalStock int    `json:"total_stock"`
	Active     bool   `json:"active"`
}

type DashboardResponse struct {
	From            string           `json:"from"`
	To              string           `json:"to"`
	TotalLeads      int64            `json:"total_leads"`
	CompletedOrders int64            `json:"completed_orders"`
	Revenue         decimal.Decimal  `json:"revenue"`
	ConversionRate  decimal.Decimal  `json:"conversion_rate"`
	StatusCounts    map[string]int64 `json:"status_counts"`
	LowStock        []LowStockProduct `json:"low_stock"`
	OutOfStock      []LowStockProduct `json:"out_of_stock"`
}
