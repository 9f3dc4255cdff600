// Package checkout holds the checkout form state machine: field storage,
// wholesale revalidation on every change, and the delivery/pickup branching.
package checkout

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"storefront-service/models"
	"storefront-service/pricing"
)

// Permissive phone pattern: digits, +, spaces, parentheses, hyphens, at
// least 7 characters.
var phonePattern = regexp.MustCompile(`^[0-9+\s()\-]{7,}$`)

// Subscriber receives the form snapshot after every mutation. The
// persistence mirror is attached as a subscriber at startup.
type Subscriber func(models.CheckoutForm)

// Form is the checkout form state machine. Every Set replaces one field,
// re-runs full validation (the error map is rebuilt wholesale, never patched)
// and notifies subscribers. Validity is derived, never stored.
type Form struct {
	mu          sync.Mutex
	fields      models.CheckoutForm
	errors      map[string]string
	validate    *validator.Validate
	subscribers []Subscriber
	logger      *zap.Logger
}

// New builds the form from a previously persisted record, or defaults when
// record is nil. The initial state is validated immediately so Errors is
// coherent from the first read.
func New(record *models.CheckoutForm, zones pricing.ZoneLookup, logger *zap.Logger) *Form {
	f := &Form{
		validate: newValidator(zones),
		logger:   logger,
	}
	if record != nil {
		f.fields = *record
	}
	if f.fields.Method != models.MethodPickup && f.fields.Method != models.MethodDelivery {
		f.fields.Method = models.MethodPickup
	}
	f.revalidateLocked()
	return f
}

func newValidator(zones pricing.ZoneLookup) *validator.Validate {
	v := validator.New()

	// Error keys are the JSON field names of the form.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("zone", func(fl validator.FieldLevel) bool {
		_, ok := zones.ZoneByID(fl.Field().String())
		return ok
	})

	return v
}

// Subscribe registers a callback invoked after every mutation.
func (f *Form) Subscribe(fn Subscriber) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subscribers = append(f.subscribers, fn)
}

// Set replaces one field and revalidates the whole form. Switching the
// delivery method from delivery to pickup also resets address and municipio,
// so stale delivery data never reaches a submitted order.
func (f *Form) Set(field, value string) error {
	f.mu.Lock()
	switch field {
	case models.FieldFirstName:
		f.fields.FirstName = value
	case models.FieldLastName:
		f.fields.LastName = value
	case models.FieldPhone:
		f.fields.Phone = value
	case models.FieldAddress:
		f.fields.Address = value
	case models.FieldMunicipioID:
		f.fields.MunicipioID = value
	case models.FieldMethod:
		prev := f.fields.Method
		f.fields.Method = value
		if prev == models.MethodDelivery && value == models.MethodPickup {
			f.fields.Address = ""
			f.fields.MunicipioID = ""
		}
	default:
		f.mu.Unlock()
		return fmt.Errorf("unknown checkout field %q", field)
	}
	f.revalidateLocked()
	snapshot := f.fields
	subscribers := f.subscribers
	f.mu.Unlock()

	for _, fn := range subscribers {
		fn(snapshot)
	}
	return nil
}

// revalidateLocked rebuilds the error map from the current fields. Values
// are trimmed before validation, matching how they are rendered into the
// order message.
func (f *Form) revalidateLocked() {
	trimmed := models.CheckoutForm{
		FirstName:   strings.TrimSpace(f.fields.FirstName),
		LastName:    strings.TrimSpace(f.fields.LastName),
		Phone:       strings.TrimSpace(f.fields.Phone),
		Method:      strings.TrimSpace(f.fields.Method),
		Address:     strings.TrimSpace(f.fields.Address),
		MunicipioID: strings.TrimSpace(f.fields.MunicipioID),
	}
	// Address and zone only exist for delivery; pickup never validates them.
	if trimmed.Method != models.MethodDelivery {
		trimmed.Address = ""
		trimmed.MunicipioID = ""
	}

	f.errors = make(map[string]string)
	err := f.validate.Struct(trimmed)
	if err == nil {
		return
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		f.logger.Error("Checkout validation failed unexpectedly", zap.Error(err))
		f.errors[models.FieldMethod] = "Formulario inválido"
		return
	}
	for _, fe := range validationErrors {
		if _, exists := f.errors[fe.Field()]; !exists {
			f.errors[fe.Field()] = messageFor(fe)
		}
	}
}

func messageFor(fe validator.FieldError) string {
	switch fe.Field() {
	case models.FieldFirstName:
		return "Nombre requerido"
	case models.FieldLastName:
		return "Apellido requerido"
	case models.FieldPhone:
		if fe.Tag() == "required" {
			return "Teléfono requerido"
		}
		return "Teléfono inválido"
	case models.FieldMunicipioID:
		return "Selecciona un municipio"
	case models.FieldAddress:
		return "Escribe una dirección válida"
	case models.FieldMethod:
		return "Selecciona un método de entrega"
	}
	return "Campo inválido"
}

// Errors returns a copy of the current field error map. An empty map means
// the form is valid.
func (f *Form) Errors() map[string]string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make(map[string]string, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// Valid reports whether the current form has no validation errors.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.errors) == 0
}

// Snapshot returns the current field values.
func (f *Form) Snapshot() models.CheckoutForm {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.fields
}
