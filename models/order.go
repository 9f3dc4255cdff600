package models

import "time"

// OrderSnapshot is an immutable read of the cart and checkout form taken at
// submit time. It is consumed once by the order composer and never persisted.
//
// Subtotal, Fee and Total are computed once when the snapshot is taken; the
// message body and the outbound link always use these values, never a
// recomputation.
type OrderSnapshot struct {
	ID        string       `json:"id"`
	Lines     []CartLine   `json:"lines"`
	Form      CheckoutForm `json:"form"`
	Subtotal  float64      `json:"subtotal"`
	Fee       float64      `json:"fee"`
	Total     float64      `json:"total"`
	Currency  string       `json:"currency"`
	ZoneName  string       `json:"zoneName,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
}
