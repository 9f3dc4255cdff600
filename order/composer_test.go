package order_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"storefront-service/cart"
	"storefront-service/checkout"
	"storefront-service/models"
	"storefront-service/order"
	"storefront-service/pricing"
)

type stubZones struct {
	zones map[string]models.DeliveryZone
}

func (s stubZones) ZoneByID(id string) (models.DeliveryZone, bool) {
	z, ok := s.zones[id]
	return z, ok
}

type recordingOpener struct {
	opened []string
}

func (o *recordingOpener) Open(url string) { o.opened = append(o.opened, url) }

type fixture struct {
	ledger   *cart.Ledger
	form     *checkout.Form
	composer *order.Composer
	opener   *recordingOpener
}

func newFixture() *fixture {
	log := zap.NewNop()
	zones := stubZones{zones: map[string]models.DeliveryZone{
		"cerro": {ID: "cerro", Name: "Cerro", Fee: 3.0},
	}}

	ledger := cart.New(nil, log)
	form := checkout.New(nil, zones, log)
	opener := &recordingOpener{}
	composer := order.NewComposer(
		ledger, form, pricing.NewResolver(zones),
		"Trattoria Demo", "+53 (5) 555-5555",
		opener, log,
	)
	return &fixture{ledger: ledger, form: form, composer: composer, opener: opener}
}

func (f *fixture) addSpaghetti(qty int) {
	f.ledger.AddToCart(models.Product{
		ID:       "p1",
		Name:     "Spaghetti di Grano Duro",
		Price:    6.5,
		Currency: "USD",
		Unit:     "500g",
	}, qty)
}

func (f *fixture) fillValidContact() {
	_ = f.form.Set(models.FieldFirstName, "Ana")
	_ = f.form.Set(models.FieldLastName, "García")
	_ = f.form.Set(models.FieldPhone, "+53 5 5555555")
}

func TestSubmitPickupOrder(t *testing.T) {
	f := newFixture()
	f.addSpaghetti(2)
	f.fillValidContact()
	assert.True(t, f.composer.CanSubmit())

	snap, link, serr := f.composer.Submit()
	assert.Nil(t, serr)
	assert.NotNil(t, snap)

	assert.InDelta(t, 13.0, snap.Subtotal, 1e-9)
	assert.Equal(t, 0.0, snap.Fee)
	assert.InDelta(t, 13.0, snap.Total, 1e-9)

	message := f.composer.BuildMessage(*snap)
	assert.Contains(t, message, "Hola! 👋 Soy cliente de Trattoria Demo.")
	assert.Contains(t, message, "• 2× Spaghetti di Grano Duro (500g): $13.00")
	assert.Contains(t, message, "Total: *$13.00*")
	assert.Contains(t, message, "Entrega: Recogida")
	assert.NotContains(t, message, "Envío")
	assert.NotContains(t, message, "Dirección")

	// the link was handed off exactly once
	assert.Equal(t, []string{link}, f.opener.opened)
}

func TestSubmitDeliveryOrder(t *testing.T) {
	f := newFixture()
	f.addSpaghetti(2)
	f.fillValidContact()
	_ = f.form.Set(models.FieldMethod, models.MethodDelivery)
	_ = f.form.Set(models.FieldMunicipioID, "cerro")
	_ = f.form.Set(models.FieldAddress, "Calle 1 #23, Cerro")

	snap, _, serr := f.composer.Submit()
	assert.Nil(t, serr)

	assert.InDelta(t, 13.0, snap.Subtotal, 1e-9)
	assert.InDelta(t, 3.0, snap.Fee, 1e-9)
	assert.InDelta(t, 16.0, snap.Total, 1e-9)
	assert.Equal(t, "Cerro", snap.ZoneName)

	message := f.composer.BuildMessage(*snap)
	assert.Contains(t, message, "Envío (Cerro): $3.00")
	assert.Contains(t, message, "Total: *$16.00*")
	assert.Contains(t, message, "Entrega: Domicilio")
	assert.Contains(t, message, "Municipio: Cerro")
	assert.Contains(t, message, "Dirección: Calle 1 #23, Cerro")
}

func TestSubmitLinkTextRoundTrips(t *testing.T) {
	f := newFixture()
	f.addSpaghetti(2)
	f.fillValidContact()

	snap, link, serr := f.composer.Submit()
	assert.Nil(t, serr)

	parsed, err := url.Parse(link)
	assert.NoError(t, err)
	assert.Equal(t, "/5355555555", parsed.Path)
	assert.Equal(t, f.composer.BuildMessage(*snap), parsed.Query().Get("text"))
}

func TestSubmitRefusedWithEmptyCart(t *testing.T) {
	f := newFixture()
	f.fillValidContact()
	assert.True(t, f.form.Valid())
	assert.False(t, f.composer.CanSubmit())

	snap, link, serr := f.composer.Submit()
	assert.Nil(t, snap)
	assert.Empty(t, link)
	assert.NotNil(t, serr)
	assert.Equal(t, 422, serr.StatusCode)
	assert.Empty(t, f.opener.opened)
}

func TestSubmitRefusedWithInvalidForm(t *testing.T) {
	f := newFixture()
	f.addSpaghetti(2)
	f.fillValidContact()
	_ = f.form.Set(models.FieldMethod, models.MethodDelivery)
	_ = f.form.Set(models.FieldMunicipioID, "cerro")
	// address left empty

	assert.False(t, f.composer.CanSubmit())

	snap, link, serr := f.composer.Submit()
	assert.Nil(t, snap)
	assert.Empty(t, link)
	assert.NotNil(t, serr)
	assert.Equal(t, 422, serr.StatusCode)
	assert.Contains(t, serr.Fields, models.FieldAddress)
	assert.Empty(t, f.opener.opened)
}

func TestSnapshotTotalsComputedOnce(t *testing.T) {
	f := newFixture()
	f.addSpaghetti(2)
	f.fillValidContact()

	snap := f.composer.Snapshot()

	// later mutations do not affect an already-taken snapshot
	f.addSpaghetti(10)
	assert.InDelta(t, 13.0, snap.Subtotal, 1e-9)
	assert.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].Qty)
}
