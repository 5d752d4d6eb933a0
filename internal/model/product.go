package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product is a storefront item. Price is the full ("cheio") price; the
// customer-facing price is resolved at read time against Promotions.
type Product struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"index;not null"`
	Description *string
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Image       *string
	Slug         string `gorm:"uniqueIndex;not null"`
	Active       bool   `gorm:"not null;default:true"`
	ViewCount    int    `gorm:"not null;default:0"`
	CartAddCount int    `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Variations []Variation `gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
	Categories []Category  `gorm:"many2many:product_categories"`
	Promotions []Promotion `gorm:"many2many:promotion_products"`
}

// TotalStock sums stock across all variations.
func (p *Product) TotalStock() int {
	total := 0
	for _, v := range p.Variations {
		total += v.Stock
	}
	return total
}

// ActivePromotion returns the first currently active promotion, or nil.
// Iteration order decides ties between overlapping campaigns.
func (p *Product) ActivePromotion(now time.Time) *Promotion {
	for i := range p.Promotions {
		if p.Promotions[i].IsCurrentlyActive(now) {
			return &p.Promotions[i]
		}
	}
	return nil
}

// Variation is a purchasable size/stock unit of a Product.
type Variation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;index"`
	Size      string    `gorm:"not null"`
	Stock     int       `gorm:"not null;default:0;check:stock >= 0"`

	Product *Product `gorm:"foreignKey:ProductID"`
}
