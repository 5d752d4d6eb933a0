package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreatePromotionRequest struct {
	Name            string          `json:"name"             validate:"required,min=2,max=100"`
	IsActive        bool            `json:"is_active"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	DiscountPercent decimal.Decimal `json:"discount_percent" validate:"required,min=0,max=100"`
	ProductIDs      []string        `json:"product_ids"      validate:"omitempty,dive,uuid"`
}

type UpdatePromotionRequest struct {
	Name            *string          `json:"name" validate:"omitempty,min=2,max=100"`
	IsActive        *bool            `json:"is_active"`
	StartDate       *time.Time       `json:"start_date"`
	EndDate         *time.Time       `json:"end_date"`
	DiscountPercent *decimal.Decimal `json:"discount_percent" validate:"omitempty,min=0,max=100"`
	ProductIDs      []string         `json:"product_ids"      validate:"omitempty,dive,uuid"`
}

type PromotionResponse struct {
	ID              string          `json:"id"`
	Name            string          `json:"name"`
	IsActive        bool            `json:"is_active"`
	StartDate       *time.Time      `json:"start_date"`
	EndDate         *time.Time      `json:"end_date"`
	DiscountPercent decimal.Decimal `json:"discount_percent"`
	// CurrentlyActive is evaluated against the server clock at read time.
	CurrentlyActive bool     `json:"currently_active"`
	ProductIDs      []string `json:"product_ids"`
}
