package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"storefront-service/catalog"
	"storefront-service/money"
	"storefront-service/whatsapp"
)

type CatalogController struct {
	Catalog       *catalog.Catalog
	MerchantName  string
	WhatsAppPhone string
}

func NewCatalogController(cat *catalog.Catalog, merchantName, whatsAppPhone string) *CatalogController {
	return &CatalogController{
		Catalog:       cat,
		MerchantName:  merchantName,
		WhatsAppPhone: whatsAppPhone,
	}
}

// ListProducts returns the full catalog
func (cc *CatalogController) ListProducts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"products": cc.Catalog.Products()})
}

// GetProduct returns one product by slug
func (cc *CatalogController) GetProduct(c *gin.Context) {
	product, ok := cc.Catalog.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// ProductInquiry returns a prefilled availability message and wa.me link
// for a single product, independent of the cart.
func (cc *CatalogController) ProductInquiry(c *gin.Context) {
	product, ok := cc.Catalog.ProductBySlug(c.Param("slug"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	priceLabel := money.Format(product.Price, product.Currency)
	message := whatsapp.ProductInquiry(product.Name, product.Unit, priceLabel, cc.MerchantName)
	link := whatsapp.BuildLink(cc.WhatsAppPhone, message)

	c.JSON(http.StatusOK, gin.H{
		"message": message,
		"link":    link,
	})
}

// ListZones returns the delivery zone table
func (cc *CatalogController) ListZones(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"zones": cc.Catalog.Zones()})
}
