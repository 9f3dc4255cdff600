// Package catalog provides the read-only product and delivery-zone data the
// storefront sells against. Products come either from the static seed table
// or from MongoDB when configured; zones are always static.
package catalog

import (
	"context"
	"sort"

	"storefront-service/models"
)

// Source provides the full product list at startup. The catalog is never
// mutated by this service.
type Source interface {
	Products(ctx context.Context) ([]models.Product, error)
}

// StaticSource serves the built-in seed products.
type StaticSource struct{}

func NewStaticSource() *StaticSource { return &StaticSource{} }

func (s *StaticSource) Products(_ context.Context) ([]models.Product, error) {
	out := make([]models.Product, len(seedProducts))
	copy(out, seedProducts)
	return out, nil
}

// Catalog is the loaded, immutable view used by the rest of the service.
type Catalog struct {
	products []models.Product
	byID     map[string]models.Product
	bySlug   map[string]models.Product
	zones    []models.DeliveryZone
	zoneByID map[string]models.DeliveryZone
}

// Load reads the full product list from the source and indexes it together
// with the static zone table.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	products, err := src.Products(ctx)
	if err != nil {
		return nil, err
	}

	c := &Catalog{
		products: products,
		byID:     make(map[string]models.Product, len(products)),
		bySlug:   make(map[string]models.Product, len(products)),
		zones:    Zones(),
		zoneByID: make(map[string]models.DeliveryZone),
	}
	for _, p := range products {
		c.byID[p.ID] = p
		c.bySlug[p.Slug] = p
	}
	for _, z := range c.zones {
		c.zoneByID[z.ID] = z
	}
	return c, nil
}

// Products returns all catalog products, sorted by name for stable listings.
func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func (c *Catalog) ProductByID(id string) (models.Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalog) ProductBySlug(slug string) (models.Product, bool) {
	p, ok := c.bySlug[slug]
	return p, ok
}

func (c *Catalog) Zones() []models.DeliveryZone {
	out := make([]models.DeliveryZone, len(c.zones))
	copy(out, c.zones)
	return out
}

func (c *Catalog) ZoneByID(id string) (models.DeliveryZone, bool) {
	z, ok := c.zoneByID[id]
	return z, ok
}
