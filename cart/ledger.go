// Package cart implements the in-memory cart ledger: one line per product,
// quantities always >= 1, totals derived on every read.
package cart

import (
	"sort"
	"sync"

	"go.uber.org/zap"

	"storefront-service/models"
)

// Subscriber receives a snapshot of the cart record after every mutation.
// The persistence mirror is attached as a subscriber at startup.
type Subscriber func(models.CartRecord)

// Ledger owns the mapping of product id to cart line. All mutations are
// total: they never fail, and each one notifies subscribers with the state
// that resulted. Reads recompute derived values from the live lines.
//
// The original storefront ran single-threaded; HTTP handlers do not, so the
// ledger carries its own mutex.
type Ledger struct {
	mu          sync.Mutex
	lines       map[string]*models.CartLine
	subscribers []Subscriber
	logger      *zap.Logger
}

// New builds a ledger from a previously persisted record. A nil record (no
// saved state, or a malformed blob the caller discarded) yields an empty
// ledger. Lines with a non-positive quantity are dropped on rehydration.
func New(record *models.CartRecord, logger *zap.Logger) *Ledger {
	l := &Ledger{
		lines:  make(map[string]*models.CartLine),
		logger: logger,
	}
	if record != nil {
		for id, line := range record.ItemsByID {
			if line.Qty <= 0 || id == "" {
				continue
			}
			cp := line
			l.lines[id] = &cp
		}
	}
	return l
}

// Subscribe registers a callback invoked after every mutation.
func (l *Ledger) Subscribe(fn Subscriber) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.subscribers = append(l.subscribers, fn)
}

// AddToCart adds qty units of product, merging into the existing line when
// one is present. Quantities below 1 are clamped to 1: decrements go through
// Decrement or SetQty only.
func (l *Ledger) AddToCart(product models.Product, qty int) {
	if qty < 1 {
		qty = 1
	}

	l.mu.Lock()
	if existing, ok := l.lines[product.ID]; ok {
		existing.Qty += qty
	} else {
		l.lines[product.ID] = &models.CartLine{Product: product, Qty: qty}
	}
	l.mu.Unlock()

	l.logger.Debug("Added to cart", zap.String("product_id", product.ID), zap.Int("qty", qty))
	l.notify()
}

// Decrement reduces the line's quantity by one, deleting the line when the
// quantity reaches zero. No-op for unknown products.
func (l *Ledger) Decrement(productID string) {
	l.mu.Lock()
	if line, ok := l.lines[productID]; ok {
		line.Qty--
		if line.Qty <= 0 {
			delete(l.lines, productID)
		}
	}
	l.mu.Unlock()

	l.notify()
}

// SetQty sets the line's quantity outright. qty <= 0 deletes the line. SetQty
// never creates a line: it only adjusts products already added via AddToCart.
func (l *Ledger) SetQty(productID string, qty int) {
	l.mu.Lock()
	if qty <= 0 {
		delete(l.lines, productID)
	} else if line, ok := l.lines[productID]; ok {
		line.Qty = qty
	}
	l.mu.Unlock()

	l.notify()
}

// RemoveFromCart deletes the line unconditionally. No-op if absent.
func (l *Ledger) RemoveFromCart(productID string) {
	l.mu.Lock()
	delete(l.lines, productID)
	l.mu.Unlock()

	l.notify()
}

// ClearCart empties the ledger.
func (l *Ledger) ClearCart() {
	l.mu.Lock()
	l.lines = make(map[string]*models.CartLine)
	l.mu.Unlock()

	l.logger.Debug("Cart cleared")
	l.notify()
}

// Items returns the current lines sorted by product name (id as tiebreak),
// so receipts and listings iterate in a stable order.
func (l *Ledger) Items() []models.CartLine {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.itemsLocked()
}

func (l *Ledger) itemsLocked() []models.CartLine {
	items := make([]models.CartLine, 0, len(l.lines))
	for _, line := range l.lines {
		items = append(items, *line)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Product.Name != items[j].Product.Name {
			return items[i].Product.Name < items[j].Product.Name
		}
		return items[i].Product.ID < items[j].Product.ID
	})
	return items
}

// Count returns the sum of all line quantities.
func (l *Ledger) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	count := 0
	for _, line := range l.lines {
		count += line.Qty
	}
	return count
}

// Total returns the sum of qty * unit price over all lines. Carts are
// single-currency by construction (single-merchant catalog), so no
// conversion happens here.
func (l *Ledger) Total() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	total := 0.0
	for _, line := range l.lines {
		total += float64(line.Qty) * line.Product.Price
	}
	return total
}

// Currency returns the display currency: the first line's, or USD for an
// empty cart.
func (l *Ledger) Currency() string {
	l.mu.Lock()
	defer l.mu.Unlock()
	items := l.itemsLocked()
	if len(items) == 0 {
		return "USD"
	}
	return items[0].Product.Currency
}

// Empty reports whether the ledger has no lines.
func (l *Ledger) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.lines) == 0
}

// Record returns the persistable snapshot of the ledger.
func (l *Ledger) Record() models.CartRecord {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.recordLocked()
}

func (l *Ledger) recordLocked() models.CartRecord {
	record := models.CartRecord{ItemsByID: make(map[string]models.CartLine, len(l.lines))}
	for id, line := range l.lines {
		record.ItemsByID[id] = *line
	}
	return record
}

func (l *Ledger) notify() {
	l.mu.Lock()
	record := l.recordLocked()
	subscribers := l.subscribers
	l.mu.Unlock()

	for _, fn := range subscribers {
		fn(record)
	}
}
