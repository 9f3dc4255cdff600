// Package money formats amounts for display. Formatting never fails: an
// unknown currency degrades to a plain amount-plus-code string so order
// composition is never blocked on a label.
package money

import "fmt"

// The storefront's closed currency set.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"CUP": "$",
}

// Format renders an amount with its currency symbol, e.g. "$13.00".
// Unknown currency codes fall back to "13.00 XYZ".
func Format(amount float64, currency string) string {
	symbol, ok := symbols[currency]
	if !ok {
		return fmt.Sprintf("%.2f %s", amount, currency)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
