package model

import "github.com/google/uuid"

// Well-known SiteStat keys.
const (
	StatTotalVisits    = "total_visitas"
	StatTotalCheckouts = "total_checkouts_whatsapp"
)

// SiteStat is a named site-wide counter (visits, checkouts).
type SiteStat struct {
	ID    uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key   string    `gorm:"uniqueIndex;not null"`
	Value int64     `gorm:"not null;default:0"`
}
