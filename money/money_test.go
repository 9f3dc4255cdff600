package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/money"
)

func TestFormatKnownCurrencies(t *testing.T) {
	assert.Equal(t, "$13.00", money.Format(13, "USD"))
	assert.Equal(t, "€6.50", money.Format(6.5, "EUR"))
	assert.Equal(t, "$250.00", money.Format(250, "CUP"))
}

func TestFormatFallback(t *testing.T) {
	assert.Equal(t, "13.00 GBP", money.Format(13, "GBP"))
	assert.Equal(t, "0.00 ", money.Format(0, ""))
}

func TestFormatRounding(t *testing.T) {
	assert.Equal(t, "$6.90", money.Format(6.9, "USD"))
	assert.Equal(t, "$19.90", money.Format(19.900000001, "USD"))
}
