package dto

import "github.com/shopspring/decimal"

// AddToCartRequest adds units of one variation. The product id is sent
// alongside so the server can reject variations of a different product.
type AddToCartRequest struct {
	ProductID   string `json:"product_id"   validate:"required,uuid"`
	VariationID string `json:"variation_id" validate:"required,uuid"`
	Quantity    int    `json:"quantity"     validate:"required,min=1"`
}

// UpdateCartRequest replaces quantities per variation id. Quantity < 1
// removes the line; quantities above stock are clamped with a warning.
type UpdateCartRequest struct {
	Items map[string]int `json:"items" validate:"required,min=1"`
}

type CartItemResponse struct {
	ProductID   string          `json:"product_id"`
	ProductName string          `json:"product_name"`
	ProductSlug string          `json:"product_slug"`
	Image       *string         `json:"image"`
	VariationID string          `json:"variation_id"`
	Size        string          `json:"size"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}

type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	ItemCount  int                `json:"item_count"`
	TotalPrice decimal.Decimal    `json:"total_price"`
	// WhatsAppPreview is the message the checkout will send, for display.
	WhatsAppPreview string   `json:"whatsapp_preview"`
	Warnings        []string `json:"warnings,omitempty"`
}
