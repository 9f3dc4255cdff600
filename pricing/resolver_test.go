package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/models"
	"storefront-service/pricing"
)

type stubZones struct {
	zones map[string]models.DeliveryZone
}

func (s stubZones) ZoneByID(id string) (models.DeliveryZone, bool) {
	z, ok := s.zones[id]
	return z, ok
}

func newResolver() *pricing.Resolver {
	return pricing.NewResolver(stubZones{zones: map[string]models.DeliveryZone{
		"playa": {ID: "playa", Name: "Playa", Fee: 4.0},
		"cerro": {ID: "cerro", Name: "Cerro", Fee: 3.0},
	}})
}

func TestFeePickupIsFree(t *testing.T) {
	r := newResolver()
	// zone is ignored for pickup, even a valid one
	assert.Equal(t, 0.0, r.Fee(models.MethodPickup, "playa"))
	assert.Equal(t, 0.0, r.Fee(models.MethodPickup, ""))
}

func TestFeeDelivery(t *testing.T) {
	r := newResolver()
	assert.Equal(t, 4.0, r.Fee(models.MethodDelivery, "playa"))
	assert.Equal(t, 3.0, r.Fee(models.MethodDelivery, "cerro"))
}

func TestFeeUnknownZoneResolvesToZero(t *testing.T) {
	r := newResolver()
	assert.Equal(t, 0.0, r.Fee(models.MethodDelivery, ""))
	assert.Equal(t, 0.0, r.Fee(models.MethodDelivery, "atlantis"))
}

func TestZoneName(t *testing.T) {
	r := newResolver()
	assert.Equal(t, "Playa", r.ZoneName("playa"))
	assert.Equal(t, "", r.ZoneName("atlantis"))
}
