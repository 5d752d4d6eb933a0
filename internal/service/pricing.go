package service

import (
	"time"

	"github.com/LandLandeiro/oba-moda-afro/internal/model"

	"github.com/shopspring/decimal"
)

// CurrentPrice resolves the price a customer sees and pays for a product
// at the given instant. The first currently active promotion wins; its
// discount is applied to the base price and rounded to 2 decimal places.
// No side effects and no caching; the promotion window is time-dependent,
// so this must be evaluated at every read.
func CurrentPrice(p *model.Product, now time.Time) decimal.Decimal {
	promo := p.ActivePromotion(now)
	if promo == nil {
		return p.Price
	}
	factor := decimal.NewFromInt(1).Sub(promo.DiscountPercent.Div(decimal.NewFromInt(100)))
	return p.Price.Mul(factor).Round(2)
}

// IsOnSale reports whether any promotion currently applies to the product.
func IsOnSale(p *model.Product, now time.Time) bool {
	return p.ActivePromotion(now) != nil
}
