package database

import (
	"context"
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"storefront-service/models"
)

// Blob keys. Bump the version suffix when the stored layout changes; old
// blobs then read as "no saved state".
const (
	cartKey     = "storefront:cart:v1"
	checkoutKey = "storefront:checkout:v1"
)

const saveTimeout = 2 * time.Second

// Mirror is the best-effort persistence mirror for cart and checkout state.
// Loads treat missing, malformed or type-invalid blobs as no prior state.
// Save failures are logged and swallowed: the in-memory state stays
// authoritative for the session.
type Mirror struct {
	store  BlobStore
	logger *zap.Logger
}

func NewMirror(store BlobStore, logger *zap.Logger) *Mirror {
	return &Mirror{store: store, logger: logger}
}

// LoadCart returns the persisted cart record, or nil when there is none.
func (m *Mirror) LoadCart(ctx context.Context) *models.CartRecord {
	data, err := m.store.Load(ctx, cartKey)
	if err != nil || data == nil {
		if err != nil {
			m.logger.Warn("Cart blob load failed, starting empty", zap.Error(err))
		}
		return nil
	}
	var record models.CartRecord
	if err := json.Unmarshal(data, &record); err != nil {
		m.logger.Warn("Cart blob malformed, starting empty", zap.Error(err))
		return nil
	}
	return &record
}

// LoadCheckout returns the persisted checkout form, or nil when there is none.
func (m *Mirror) LoadCheckout(ctx context.Context) *models.CheckoutForm {
	data, err := m.store.Load(ctx, checkoutKey)
	if err != nil || data == nil {
		if err != nil {
			m.logger.Warn("Checkout blob load failed, starting with defaults", zap.Error(err))
		}
		return nil
	}
	var form models.CheckoutForm
	if err := json.Unmarshal(data, &form); err != nil {
		m.logger.Warn("Checkout blob malformed, starting with defaults", zap.Error(err))
		return nil
	}
	return &form
}

// SaveCart mirrors the cart record. Failures are swallowed.
func (m *Mirror) SaveCart(record models.CartRecord) {
	m.save(cartKey, record)
}

// SaveCheckout mirrors the checkout form. Failures are swallowed.
func (m *Mirror) SaveCheckout(form models.CheckoutForm) {
	m.save(checkoutKey, form)
}

func (m *Mirror) save(key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		m.logger.Warn("State serialize failed", zap.String("key", key), zap.Error(err))
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := m.store.Save(ctx, key, data); err != nil {
		m.logger.Warn("State save failed", zap.String("key", key), zap.Error(err))
	}
}
