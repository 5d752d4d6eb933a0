package model

import (
	"time"

	"github.com/google/uuid"
)

// Category classifies products. Slug is derived from Name on every save.
type Category struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Slug        string    `gorm:"uniqueIndex;not null"`
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Products []Product `gorm:"many2many:product_categories"`
}

// TableName overrides GORM's default pluralization (category → categories).
func (Category) TableName() string { return "categories" }
