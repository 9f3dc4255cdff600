package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"storefront-service/checkout"
	"storefront-service/models"
	"storefront-service/order"
)

type CheckoutController struct {
	Form     *checkout.Form
	Composer *order.Composer
	Logger   *zap.Logger
}

func NewCheckoutController(form *checkout.Form, composer *order.Composer, logger *zap.Logger) *CheckoutController {
	return &CheckoutController{
		Form:     form,
		Composer: composer,
		Logger:   logger,
	}
}

type checkoutView struct {
	Form      models.CheckoutForm `json:"form"`
	Errors    map[string]string   `json:"errors"`
	CanSubmit bool                `json:"canSubmit"`
}

func (cc *CheckoutController) view() checkoutView {
	return checkoutView{
		Form:      cc.Form.Snapshot(),
		Errors:    cc.Form.Errors(),
		CanSubmit: cc.Composer.CanSubmit(),
	}
}

// GetCheckout returns the form state, field errors and submit availability
func (cc *CheckoutController) GetCheckout(c *gin.Context) {
	c.JSON(http.StatusOK, cc.view())
}

type setFieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// SetField replaces one form field and returns the revalidated state
func (cc *CheckoutController) SetField(c *gin.Context) {
	var req setFieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if err := cc.Form.Set(req.Field, req.Value); err != nil {
		cc.Logger.Warn("SetField for unknown field", zap.String("field", req.Field))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, cc.view())
}

// Submit composes the order and returns the wa.me link
func (cc *CheckoutController) Submit(c *gin.Context) {
	snap, link, serr := cc.Composer.Submit()
	if serr != nil {
		c.JSON(serr.StatusCode, gin.H{
			"error":     serr.Message,
			"fields":    serr.Fields,
			"canSubmit": false,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"order": snap,
		"link":  link,
	})
}
