package models

// CartLine pairs one product with a quantity. A line never exists with
// Qty <= 0; the ledger deletes it instead.
type CartLine struct {
	Product Product `json:"product"`
	Qty     int     `json:"qty"`
}

// CartRecord is the persisted cart blob: lines keyed by product id.
type CartRecord struct {
	ItemsByID map[string]CartLine `json:"itemsById"`
}
