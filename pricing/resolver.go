// Package pricing resolves the flat delivery fee for an order.
package pricing

import "storefront-service/models"

// ZoneLookup is the read side of the delivery zone table.
type ZoneLookup interface {
	ZoneByID(id string) (models.DeliveryZone, bool)
}

// Resolver maps a delivery method and zone to a fee.
type Resolver struct {
	zones ZoneLookup
}

func NewResolver(zones ZoneLookup) *Resolver {
	return &Resolver{zones: zones}
}

// Fee returns the delivery fee for the given method and zone. Pickup is
// always free. An unset or unknown zone resolves to zero rather than an
// error: rejecting unknown zones is the validator's job, upstream of pricing.
func (r *Resolver) Fee(method, zoneID string) float64 {
	if method != models.MethodDelivery {
		return 0
	}
	zone, ok := r.zones.ZoneByID(zoneID)
	if !ok {
		return 0
	}
	return zone.Fee
}

// ZoneName returns the zone's display name, or "" when unknown.
func (r *Resolver) ZoneName(zoneID string) string {
	zone, ok := r.zones.ZoneByID(zoneID)
	if !ok {
		return ""
	}
	return zone.Name
}
