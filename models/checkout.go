package models

// Delivery methods.
const (
	MethodPickup   = "pickup"
	MethodDelivery = "delivery"
)

// CheckoutForm holds the customer and delivery fields entered during
// checkout. It is persisted verbatim as the checkout blob, so the JSON tags
// are part of the stored format.
//
// Address and MunicipioID are only meaningful when Method is delivery; they
// are cleared when the customer switches back to pickup.
type CheckoutForm struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	Phone       string `json:"phone" validate:"required,phone"`
	Method      string `json:"method" validate:"required,oneof=pickup delivery"`
	Address     string `json:"address" validate:"required_if=Method delivery,omitempty,min=5"`
	MunicipioID string `json:"municipioId" validate:"required_if=Method delivery,omitempty,zone"`
}

// Checkout form field names, as used in the validation error map and the
// HTTP field-update payload.
const (
	FieldFirstName   = "firstName"
	FieldLastName    = "lastName"
	FieldPhone       = "phone"
	FieldMethod      = "method"
	FieldAddress     = "address"
	FieldMunicipioID = "municipioId"
)
