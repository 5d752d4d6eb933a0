package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string { return &s }

func TestBannerFinalLinkURL(t *testing.T) {
	product := &Product{Slug: "vestido-dashiki"}

	tests := []struct {
		name   string
		banner Banner
		want   string
	}{
		{"product wins over link", Banner{Product: product, LinkURL: strPtr("https://example.com")}, "/produto/vestido-dashiki"},
		{"external link kept", Banner{LinkURL: strPtr("https://example.com/promo")}, "https://example.com/promo"},
		{"bare host prefixed", Banner{LinkURL: strPtr("instagram.com/loja")}, "//instagram.com/loja"},
		{"empty falls back", Banner{}, "#"},
		{"hash falls back", Banner{LinkURL: strPtr("#")}, "#"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.banner.FinalLinkURL())
		})
	}
}

func TestFooterLinkFinalURL(t *testing.T) {
	assert.Equal(t, "mailto:contato@loja.com", (&FooterLink{URL: "mailto:contato@loja.com"}).FinalURL())
	assert.Equal(t, "tel:+5515997479931", (&FooterLink{URL: "tel:+5515997479931"}).FinalURL())
	assert.Equal(t, "//wa.me/5515997479931", (&FooterLink{URL: "wa.me/5515997479931"}).FinalURL())
	assert.Equal(t, "#", (&FooterLink{URL: ""}).FinalURL())
}

func TestOrderItemsSummary(t *testing.T) {
	p := &Product{Name: "Vestido Dashiki"}
	v := &Variation{Size: "M", Product: p}
	o := &Order{Items: []OrderItem{{Quantity: 2, Variation: v}}}

	assert.Equal(t, "2x Vestido Dashiki (M)", o.ItemsSummary())
	assert.Equal(t, "N/A", (&Order{}).ItemsSummary())
}
