// Package whatsapp builds wa.me deep links and the storefront's canned
// messages.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildLink builds a wa.me link that opens a chat with the merchant,
// prefilled with text. The merchant number keeps only digits and a leading
// "+", then drops the "+" (wa.me addresses numbers without it). The text is
// query-encoded so decoding the link's text parameter reproduces it exactly.
func BuildLink(phoneE164, text string) string {
	var cleaned strings.Builder
	for _, r := range phoneE164 {
		if (r >= '0' && r <= '9') || r == '+' {
			cleaned.WriteRune(r)
		}
	}

	number := strings.TrimPrefix(cleaned.String(), "+")
	query := url.Values{"text": {text}}
	return fmt.Sprintf("https://wa.me/%s?%s", number, query.Encode())
}

// ProductInquiry is the single-product availability message offered from a
// product page, independent of the cart.
func ProductInquiry(productName, unit, priceLabel, merchantName string) string {
	return fmt.Sprintf(`Hola! 👋 Soy cliente de %s.

Quiero pedir:
• %s (%s)
• Precio: %s

¿Me confirmas disponibilidad y cómo coordinar la entrega/recogida? 🙌`, merchantName, productName, unit, priceLabel)
}
