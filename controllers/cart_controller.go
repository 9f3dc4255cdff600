package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/cart"
	"storefront-service/catalog"
	"storefront-service/models"
	"storefront-service/money"
)

type CartController struct {
	Ledger  *cart.Ledger
	Catalog *catalog.Catalog
	Logger  *zap.Logger
}

func NewCartController(ledger *cart.Ledger, cat *catalog.Catalog, logger *zap.Logger) *CartController {
	return &CartController{
		Ledger:  ledger,
		Catalog: cat,
		Logger:  logger,
	}
}

type cartView struct {
	Items         []models.CartLine `json:"items"`
	Count         int               `json:"count"`
	Subtotal      float64           `json:"subtotal"`
	SubtotalLabel string            `json:"subtotalLabel"`
	Currency      string            `json:"currency"`
}

func (cc *CartController) view() cartView {
	subtotal := cc.Ledger.Total()
	currency := cc.Ledger.Currency()
	return cartView{
		Items:         cc.Ledger.Items(),
		Count:         cc.Ledger.Count(),
		Subtotal:      subtotal,
		SubtotalLabel: money.Format(subtotal, currency),
		Currency:      currency,
	}
}

// GetCart returns the current cart with derived totals
func (cc *CartController) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, cc.view())
}

type addItemRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

// AddItem adds qty units of a catalog product to the cart (default 1)
func (cc *CartController) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	product, ok := cc.Catalog.ProductByID(req.ProductID)
	if !ok {
		cc.Logger.Warn("AddItem for unknown product", zap.String("product_id", req.ProductID))
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}

	qty := req.Qty
	if qty == 0 {
		qty = 1
	}
	cc.Ledger.AddToCart(product, qty)

	c.JSON(http.StatusOK, cc.view())
}

type productIDRequest struct {
	ProductID string `json:"productId" binding:"required"`
}

// DecrementItem reduces a line's quantity by one
func (cc *CartController) DecrementItem(c *gin.Context) {
	var req productIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cc.Ledger.Decrement(req.ProductID)
	c.JSON(http.StatusOK, cc.view())
}

type setQtyRequest struct {
	ProductID string `json:"productId" binding:"required"`
	Qty       int    `json:"qty"`
}

// SetQty sets a line's quantity outright; zero or less removes the line
func (cc *CartController) SetQty(c *gin.Context) {
	var req setQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	cc.Ledger.SetQty(req.ProductID, req.Qty)
	c.JSON(http.StatusOK, cc.view())
}

// RemoveItem removes a specific line from the cart
func (cc *CartController) RemoveItem(c *gin.Context) {
	cc.Ledger.RemoveFromCart(c.Param("product_id"))
	c.JSON(http.StatusOK, cc.view())
}

// ClearCart removes all lines from the cart
func (cc *CartController) ClearCart(c *gin.Context) {
	cc.Ledger.ClearCart()
	c.JSON(http.StatusOK, cc.view())
}
