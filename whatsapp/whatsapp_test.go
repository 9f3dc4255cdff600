package whatsapp_test

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/whatsapp"
)

func TestBuildLinkNormalizesPhone(t *testing.T) {
	link := whatsapp.BuildLink("+53 (5) 555-5555", "hola")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5355555555?"), link)

	// no leading plus
	link = whatsapp.BuildLink("5355555555", "hola")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5355555555?"), link)
}

func TestBuildLinkTextRoundTrips(t *testing.T) {
	message := "Hola! 👋 Soy cliente de Trattoria Demo.\n\nQuiero pedir:\n• 2× Spaghetti (500g): $13.00\nTotal: *$13.00*\n"

	link := whatsapp.BuildLink("+5355555555", message)

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "wa.me", parsed.Host)
	assert.Equal(t, "/5355555555", parsed.Path)
	assert.Equal(t, message, parsed.Query().Get("text"))
}

func TestProductInquiry(t *testing.T) {
	msg := whatsapp.ProductInquiry("Penne Rigate", "500g", "$6.90", "Trattoria Demo")

	assert.Contains(t, msg, "Trattoria Demo")
	assert.Contains(t, msg, "Penne Rigate (500g)")
	assert.Contains(t, msg, "Precio: $6.90")
}
