package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Promotion is a discount campaign (e.g. "Black Friday") applied to a set
// of products. StartDate/EndDate are optional: a nil bound never expires.
type Promotion struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name            string    `gorm:"uniqueIndex;not null"`
	IsActive        bool      `gorm:"not null;default:false"`
	StartDate       *time.Time
	EndDate         *time.Time
	DiscountPercent decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Products []Product `gorm:"many2many:promotion_products"`
}

// IsCurrentlyActive reports whether the campaign applies at the given
// instant. Pure function of now; callers must not cache the result.
func (p *Promotion) IsCurrentlyActive(now time.Time) bool {
	if !p.IsActive {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	return true
}
