package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Content tables: banners, header/footer links and text sections edited
// from the back office and read by the storefront.

// Banner is a carousel slide. It links either to a product (by slug) or
// to an external URL; the product link wins when both are set.
type Banner struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title           *string
	Subtitle        *string
	ImageURLDesktop string `gorm:"not null"`
	ImageURLMobile  *string
	LinkURL         *string
	ProductID       *uuid.UUID `gorm:"type:uuid"`
	SortOrder       int        `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Product *Product `gorm:"foreignKey:ProductID"`
}

// FinalLinkURL resolves where the banner points: linked product first,
// then the external URL, then a dead link.
func (b *Banner) FinalLinkURL() string {
	if b.Product != nil && b.Product.Slug != "" {
		return "/produto/" + b.Product.Slug
	}
	if b.LinkURL != nil && *b.LinkURL != "" && *b.LinkURL != "#" {
		return normalizeExternalURL(*b.LinkURL)
	}
	return "#"
}

// HeaderLink is a navigation entry pointing at a category.
type HeaderLink struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name       string     `gorm:"not null"`
	CategoryID *uuid.UUID `gorm:"type:uuid"`
	SortOrder  int        `gorm:"not null;default:0"`

	Category *Category `gorm:"foreignKey:CategoryID"`
}

// FooterLink is a footer entry; Column groups links into footer columns.
type FooterLink struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title     string    `gorm:"not null"`
	URL       string    `gorm:"not null;default:'#'"`
	SortOrder int       `gorm:"not null;default:0"`
	Column    int       `gorm:"not null;default:1"`
}

// FinalURL normalizes operator-typed URLs so external links work:
// schemes (http, https, mailto, tel) are respected, bare hosts like
// "instagram.com/loja" get a protocol-relative prefix.
func (f *FooterLink) FinalURL() string {
	return normalizeExternalURL(f.URL)
}

func normalizeExternalURL(raw string) string {
	if raw == "" || raw == "#" {
		return "#"
	}
	for _, prefix := range []string{"http://", "https://", "mailto:", "tel:"} {
		if strings.HasPrefix(raw, prefix) {
			return raw
		}
	}
	return "//" + raw
}

// TextSection is a keyed rich-text block (e.g. "sobre-nos").
type TextSection struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Key     string    `gorm:"uniqueIndex;not null"`
	Title   string    `gorm:"not null"`
	Content *string   `gorm:"type:text"`
}
