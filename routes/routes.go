package routes

import (
	"github.com/gin-gonic/gin"

	"storefront-service/controllers"
	"storefront-service/middleware"
)

// Register wires all storefront routes onto the router.
func Register(
	r *gin.Engine,
	catalogCtl *controllers.CatalogController,
	cartCtl *controllers.CartController,
	checkoutCtl *controllers.CheckoutController,
) {
	api := r.Group("/")
	api.Use(middleware.RateLimit())
	{
		api.GET("/products", catalogCtl.ListProducts)
		api.GET("/products/:slug", catalogCtl.GetProduct)
		api.GET("/products/:slug/inquiry", catalogCtl.ProductInquiry)
		api.GET("/zones", catalogCtl.ListZones)

		api.GET("/cart", cartCtl.GetCart)
		api.POST("/cart/add", cartCtl.AddItem)
		api.POST("/cart/decrement", cartCtl.DecrementItem)
		api.POST("/cart/qty", cartCtl.SetQty)
		api.DELETE("/cart/remove/:product_id", cartCtl.RemoveItem)
		api.DELETE("/cart/clear", cartCtl.ClearCart)

		api.GET("/checkout", checkoutCtl.GetCheckout)
		api.PUT("/checkout/field", checkoutCtl.SetField)
		api.POST("/checkout/submit", checkoutCtl.Submit)
	}
}
