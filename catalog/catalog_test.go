package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"storefront-service/catalog"
)

func TestLoadStaticCatalog(t *testing.T) {
	cat, err := catalog.Load(context.Background(), catalog.NewStaticSource())
	assert.NoError(t, err)
	assert.NotEmpty(t, cat.Products())

	p, ok := cat.ProductByID("p1")
	assert.True(t, ok)
	assert.Equal(t, "Spaghetti di Grano Duro", p.Name)

	p, ok = cat.ProductBySlug("penne-rigate-500g")
	assert.True(t, ok)
	assert.Equal(t, "p2", p.ID)

	_, ok = cat.ProductByID("ghost")
	assert.False(t, ok)
}

func TestProductsSortedByName(t *testing.T) {
	cat, err := catalog.Load(context.Background(), catalog.NewStaticSource())
	assert.NoError(t, err)

	products := cat.Products()
	for i := 1; i < len(products); i++ {
		assert.LessOrEqual(t, products[i-1].Name, products[i].Name)
	}
}

func TestZoneLookup(t *testing.T) {
	cat, err := catalog.Load(context.Background(), catalog.NewStaticSource())
	assert.NoError(t, err)

	z, ok := cat.ZoneByID("playa")
	assert.True(t, ok)
	assert.Equal(t, "Playa", z.Name)
	assert.Equal(t, 4.0, z.Fee)

	_, ok = cat.ZoneByID("atlantis")
	assert.False(t, ok)

	assert.Len(t, cat.Zones(), 13)
}
