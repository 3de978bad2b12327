package orders

import (
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// phonePattern matches international phone numbers without separators, e.g.
// +919876543210.
var phonePattern = regexp.MustCompile(`^\+?[1-9][0-9]{7,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	return v
}

// CustomerSession holds the contact details a customer enters once per
// browsing session. It is passed explicitly to the composer rather than read
// from ambient state, and it is attached to every order placed in the
// session.
type CustomerSession struct {
	Name    string `json:"name" validate:"min=2"`
	Phone   string `json:"phone" validate:"phone"`
	Address string `json:"address" validate:"min=10"`
}

var customerFieldMessages = map[string]string{
	"Name":    "Name must be at least 2 characters.",
	"Phone":   "Please enter a valid phone number (e.g., +919876543210).",
	"Address": "Address must be at least 10 characters.",
}

var customerFieldNames = map[string]string{
	"Name":    "name",
	"Phone":   "phone",
	"Address": "address",
}

// ValidateCustomer checks the session fields and returns a ValidationError
// listing every offending field, or nil when all pass.
func ValidateCustomer(session CustomerSession) error {
	err := validate.Struct(session)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := map[string]string{}
	for _, fe := range verrs {
		fields[customerFieldNames[fe.StructField()]] = customerFieldMessages[fe.StructField()]
	}
	return ValidationError{Fields: fields}
}
