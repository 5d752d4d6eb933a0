package infra

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

// WhatsAppLinkBuilder formats order summaries into wa.me deep links.
// This is the storefront's only outbound channel: checkout redirects the
// customer to WhatsApp with the order text pre-filled.
type WhatsAppLinkBuilder struct {
	number string // E.164 with leading +, ex: +5515997479931
}

func NewWhatsAppLinkBuilder(number string) *WhatsAppLinkBuilder {
	return &WhatsAppLinkBuilder{number: number}
}

// OrderLine is one rendered item of the order message.
type OrderLine struct {
	Quantity int
	Product  string
	Size     string
	Subtotal decimal.Decimal
}

// BuildOrderLink renders the order message and percent-encodes it into a
// wa.me URL. Kept byte-compatible with the storefront's historic format
// so the shop's saved replies keep matching.
func (b *WhatsAppLinkBuilder) BuildOrderLink(orderNumber int, lines []OrderLine, total decimal.Decimal) string {
	msg := []string{
		"Olá! Gostaria de fazer o seguinte pedido:\n",
		fmt.Sprintf("*(Nº do Pedido: %d)*\n", orderNumber),
	}
	for _, l := range lines {
		msg = append(msg, fmt.Sprintf("- %dx %s (Tamanho: %s) - R$ %s",
			l.Quantity, l.Product, l.Size, l.Subtotal.StringFixed(2)))
	}
	msg = append(msg, fmt.Sprintf("\n*Total: R$ %s*", total.StringFixed(2)))

	return fmt.Sprintf("https://wa.me/%s?text=%s", b.number, url.QueryEscape(strings.Join(msg, "\n")))
}

// BuildCartPreview renders the message shown on the cart page before an
// order exists (no order number yet).
func (b *WhatsAppLinkBuilder) BuildCartPreview(lines []OrderLine, total decimal.Decimal) string {
	msg := []string{"Olá! Gostaria de fazer o seguinte pedido:\n"}
	for _, l := range lines {
		msg = append(msg, fmt.Sprintf("- %dx %s (Tamanho: %s) - R$ %s",
			l.Quantity, l.Product, l.Size, l.Subtotal.StringFixed(2)))
	}
	msg = append(msg, fmt.Sprintf("\n*Total: R$ %s*", total.StringFixed(2)))
	return strings.Join(msg, "\n")
}
