package database_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront-service/database"
	"storefront-service/models"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()

	data, err := store.Load(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, store.Save(ctx, "k", []byte(`{"a":1}`)))
	data, err = store.Load(ctx, "k")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"a":1}`), data)
}

func TestMirrorRoundTrip(t *testing.T) {
	mirror := database.NewMirror(database.NewMemoryStore(), zap.NewNop())

	record := models.CartRecord{ItemsByID: map[string]models.CartLine{
		"p1": {Product: models.Product{ID: "p1", Name: "Spaghetti", Price: 6.5, Currency: "USD"}, Qty: 2},
	}}
	mirror.SaveCart(record)

	loaded := mirror.LoadCart(context.Background())
	assert.NotNil(t, loaded)
	assert.Equal(t, 2, loaded.ItemsByID["p1"].Qty)
	assert.Equal(t, "Spaghetti", loaded.ItemsByID["p1"].Product.Name)

	form := models.CheckoutForm{FirstName: "Ana", Method: models.MethodPickup}
	mirror.SaveCheckout(form)

	loadedForm := mirror.LoadCheckout(context.Background())
	assert.NotNil(t, loadedForm)
	assert.Equal(t, "Ana", loadedForm.FirstName)
}

func TestMirrorMissingStateLoadsAsNil(t *testing.T) {
	mirror := database.NewMirror(database.NewMemoryStore(), zap.NewNop())

	assert.Nil(t, mirror.LoadCart(context.Background()))
	assert.Nil(t, mirror.LoadCheckout(context.Background()))
}

func TestMirrorMalformedBlobLoadsAsNil(t *testing.T) {
	store := database.NewMemoryStore()
	ctx := context.Background()
	_ = store.Save(ctx, "storefront:cart:v1", []byte("not json"))
	_ = store.Save(ctx, "storefront:checkout:v1", []byte(`[1,2,3]`))

	mirror := database.NewMirror(store, zap.NewNop())
	assert.Nil(t, mirror.LoadCart(ctx))
	assert.Nil(t, mirror.LoadCheckout(ctx))
}

type failingStore struct{}

func (failingStore) Load(context.Context, string) ([]byte, error) {
	return nil, errors.New("store down")
}
func (failingStore) Save(context.Context, string, []byte) error {
	return errors.New("quota exceeded")
}

func TestMirrorSwallowsStoreFailures(t *testing.T) {
	mirror := database.NewMirror(failingStore{}, zap.NewNop())

	// neither panics nor surfaces an error
	assert.Nil(t, mirror.LoadCart(context.Background()))
	mirror.SaveCart(models.CartRecord{})
	mirror.SaveCheckout(models.CheckoutForm{})
}
