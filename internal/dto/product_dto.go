package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type VariationRequest struct {
	Size  string `json:"size"  validate:"required,min=1,max=50"`
	Stock int    `json:"stock" validate:"min=0"`
}

type CreateProductRequest struct {
	Name        string          `json:"name"  validate:"required,min=2,max=150"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Image       *string         `json:"image"`
	// Slug overrides the slug derived from Name; leave empty to auto-generate.
	Slug        string             `json:"slug"`
	Active      *bool              `json:"active"`
	CategoryIDs []string           `json:"category_ids" validate:"omitempty,dive,uuid"`
	Variations  []VariationRequest `json:"variations"   validate:"required,min=1,dive"`
}

type UpdateProductRequest struct {
	Name        *string          `json:"name"  validate:"omitempty,min=2,max=150"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Image       *string          `json:"image"`
	Slug        *string          `json:"slug"`
	Active      *bool            `json:"active"`
	CategoryIDs []string         `json:"category_ids" validate:"omitempty,dive,uuid"`
}

// UpdateVariationRequest adjusts one size row of a product.
type UpdateVariationRequest struct {
	Size  *string `json:"size"  validate:"omitempty,min=1,max=50"`
	Stock *int    `json:"stock" validate:"omitempty,min=0"`
}

// ─── Filter / Pagination ─────────────────────────────────────────────────────

type ProductFilter struct {
	Category string `form:"category"` // category slug
	Active   string `form:"active"`   // "false" | "all" | default: actives
	Name     string `form:"name"`
	Page     int    `form:"page,default=1"   validate:"min=1"`
	Limit    int    `form:"limit,default=20" validate:"min=1,max=100"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type VariationResponse struct {
	ID    string `json:"id"`
	Size  string `json:"size"`
	Stock int    `json:"stock"`
}

type CategoryRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

type ProductResponse struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description *string         `json:"description"`
	Price       decimal.Decimal `json:"price"`
	// CurrentPrice is resolved against promotions at read time.
	CurrentPrice decimal.Decimal     `json:"current_price"`
	OnSale       bool                `json:"on_sale"`
	Image        *string             `json:"image"`
	Slug         string              `json:"slug"`
	Active       bool                `json:"active"`
	TotalStock   int                 `json:"total_stock"`
	ViewCount    int                 `json:"view_count"`
	CartAddCount int                 `json:"cart_add_count"`
	Variations   []VariationResponse `json:"variations"`
	Categories   []CategoryRef       `json:"categories"`
	// Warning carries non-fatal notices (ex: slug auto-suffixed on collision).
	Warning *string `json:"warning,omitempty"`
}

type ProductListResponse struct {
	Data  []ProductResponse `json:"data"`
	Total int64             `json:"total"`
	Page  int               `json:"page"`
	Limit int               `json:"limit"`
}
