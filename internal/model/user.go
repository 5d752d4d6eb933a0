package model

import (
	"time"

	"github.com/google/uuid"
)

// User is a back-office operator. The storefront itself has no accounts;
// only the admin API requires authentication.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email        string    `gorm:"uniqueIndex;not null"`
	PasswordHash string    `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
