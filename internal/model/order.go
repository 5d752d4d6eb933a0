package model

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order statuses. Cancelled orders may be re-activated from the back
// office, which re-subtracts stock if it is still available.
const (
	OrderStatusPending   = "pendente"
	OrderStatusCompleted = "concluido"
	OrderStatusCancelled = "cancelado"
)

// Order is a checkout lead: the cart frozen into durable rows plus the
// WhatsApp deep link the customer was redirected to.
type Order struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Number     int             `gorm:"uniqueIndex;not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Status     string          `gorm:"not null;default:'pendente';index"`
	// Restocked is true iff this order's stock deduction has been reversed.
	Restocked   bool    `gorm:"not null;default:false"`
	WhatsAppURL *string `gorm:"type:varchar(2000)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// ItemsSummary renders "2x Vestido Dashiki (M), 1x Turbante (U)" for lists.
func (o *Order) ItemsSummary() string {
	if len(o.Items) == 0 {
		return "N/A"
	}
	parts := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		name, size := "?", "?"
		if item.Variation != nil {
			size = item.Variation.Size
			if item.Variation.Product != nil {
				name = item.Variation.Product.Name
			}
		}
		parts = append(parts, fmt.Sprintf("%dx %s (%s)", item.Quantity, name, size))
	}
	return strings.Join(parts, ", ")
}

// OrderItem records one cart line. PricePerItem is frozen at purchase
// time and never follows later price or promotion changes.
type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	VariationID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity     int             `gorm:"not null"`
	PricePerItem decimal.Decimal `gorm:"type:decimal(10,2);not null"`

	Order     *Order     `gorm:"foreignKey:OrderID"`
	Variation *Variation `gorm:"foreignKey:VariationID"`
}
