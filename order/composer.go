// Package order turns a cart and checkout snapshot into the outbound
// WhatsApp order message and deep link.
package order

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"storefront-service/cart"
	"storefront-service/checkout"
	"storefront-service/models"
	"storefront-service/money"
	"storefront-service/pricing"
	"storefront-service/whatsapp"
)

// ServiceError is a typed error with an HTTP status code.
type ServiceError struct {
	StatusCode int
	Message    string
	Fields     map[string]string
}

func (e *ServiceError) Error() string { return e.Message }

// Opener hands a built order link to an external context. The composer does
// not wait for or observe the outcome.
type Opener interface {
	Open(url string)
}

// LogOpener logs the link. The browser client opens the returned link
// itself; the log is the server-side trace of the handoff.
type LogOpener struct {
	Logger *zap.Logger
}

func (o *LogOpener) Open(url string) {
	o.Logger.Info("Order link handed off", zap.String("url", url))
}

// Composer reads the ledger and form, resolves the delivery fee, and builds
// the order message and wa.me link.
type Composer struct {
	ledger        *cart.Ledger
	form          *checkout.Form
	pricing       *pricing.Resolver
	merchantName  string
	merchantPhone string
	opener        Opener
	logger        *zap.Logger
}

func NewComposer(
	ledger *cart.Ledger,
	form *checkout.Form,
	resolver *pricing.Resolver,
	merchantName, merchantPhone string,
	opener Opener,
	logger *zap.Logger,
) *Composer {
	return &Composer{
		ledger:        ledger,
		form:          form,
		pricing:       resolver,
		merchantName:  merchantName,
		merchantPhone: merchantPhone,
		opener:        opener,
		logger:        logger,
	}
}

// CanSubmit reports whether an order can be submitted right now: the cart
// has at least one line and the form validates.
func (c *Composer) CanSubmit() bool {
	return !c.ledger.Empty() && c.form.Valid()
}

// Snapshot captures the cart lines, form fields and resolved fee at this
// instant. Subtotal, fee and total are computed here, once; the message and
// link built from the snapshot reuse these values and never recompute them.
func (c *Composer) Snapshot() models.OrderSnapshot {
	lines := c.ledger.Items()
	form := c.form.Snapshot()

	subtotal := 0.0
	for _, line := range lines {
		subtotal += float64(line.Qty) * line.Product.Price
	}
	fee := c.pricing.Fee(form.Method, form.MunicipioID)

	return models.OrderSnapshot{
		ID:        uuid.NewString(),
		Lines:     lines,
		Form:      form,
		Subtotal:  subtotal,
		Fee:       fee,
		Total:     subtotal + fee,
		Currency:  c.ledger.Currency(),
		ZoneName:  c.pricing.ZoneName(form.MunicipioID),
		CreatedAt: time.Now(),
	}
}

// BuildMessage renders the snapshot as the order text sent to the merchant.
// The output is deterministic for a given snapshot: line order follows the
// ledger's stable iteration order, and all amounts come from the snapshot.
func (c *Composer) BuildMessage(snap models.OrderSnapshot) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Hola! 👋 Soy cliente de %s.\n\n", c.merchantName)
	b.WriteString("Quiero pedir:\n")
	for _, line := range snap.Lines {
		lineTotal := float64(line.Qty) * line.Product.Price
		fmt.Fprintf(&b, "• %d× %s (%s): %s\n",
			line.Qty, line.Product.Name, line.Product.Unit,
			money.Format(lineTotal, snap.Currency))
	}

	fmt.Fprintf(&b, "\nSubtotal: %s\n", money.Format(snap.Subtotal, snap.Currency))
	if snap.Form.Method == models.MethodDelivery {
		fmt.Fprintf(&b, "Envío (%s): %s\n", snap.ZoneName, money.Format(snap.Fee, snap.Currency))
	}
	fmt.Fprintf(&b, "Total: *%s*\n", money.Format(snap.Total, snap.Currency))

	name := strings.TrimSpace(strings.TrimSpace(snap.Form.FirstName) + " " + strings.TrimSpace(snap.Form.LastName))
	fmt.Fprintf(&b, "\nNombre: %s\n", name)
	fmt.Fprintf(&b, "Teléfono: %s\n", strings.TrimSpace(snap.Form.Phone))
	if snap.Form.Method == models.MethodDelivery {
		b.WriteString("Entrega: Domicilio\n")
		fmt.Fprintf(&b, "Municipio: %s\n", snap.ZoneName)
		fmt.Fprintf(&b, "Dirección: %s\n", strings.TrimSpace(snap.Form.Address))
	} else {
		b.WriteString("Entrega: Recogida\n")
	}

	return b.String()
}

// Submit validates, captures a snapshot and builds the outbound link. When
// the order cannot be submitted no link is constructed at all. On success
// the link is handed to the opener (fire-and-forget) and returned.
func (c *Composer) Submit() (*models.OrderSnapshot, string, *ServiceError) {
	if c.ledger.Empty() {
		return nil, "", &ServiceError{StatusCode: 422, Message: "El carrito está vacío"}
	}
	if !c.form.Valid() {
		return nil, "", &ServiceError{
			StatusCode: 422,
			Message:    "Revisa los datos del pedido",
			Fields:     c.form.Errors(),
		}
	}

	snap := c.Snapshot()
	message := c.BuildMessage(snap)
	link := whatsapp.BuildLink(c.merchantPhone, message)

	c.opener.Open(link)
	c.logger.Info("Order composed",
		zap.String("order_id", snap.ID),
		zap.Int("lines", len(snap.Lines)),
		zap.Float64("total", snap.Total),
		zap.String("method", snap.Form.Method),
	)

	return &snap, link, nil
}
