package checkoutControllers

import (
	"fmt"
	"regexp"

	"github.com/HA2345567/buttonhaus/models"
)

// FieldError is a validation failure tied to one customer-info field. The
// handler surfaces Field so the storefront can highlight the input.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	nonDigits = regexp.MustCompile(`\D`)
	emailRe   = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// NormalizePhone strips everything but digits.
func NormalizePhone(phone string) string {
	return nonDigits.ReplaceAllString(phone, "")
}

// ValidateCustomerInfo enforces the checkout contract: all six fields
// present, phone normalizing to exactly 10 digits, email in a basic
// local@domain.tld shape. Returns the first failure or nil.
func ValidateCustomerInfo(info models.CustomerInfo) *FieldError {
	required := []struct {
		field, value, message string
	}{
		{"name", info.Name, "Name is required"},
		{"email", info.Email, "Email is required"},
		{"phone", info.Phone, "Phone number is required"},
		{"address", info.Address, "Address is required"},
		{"city", info.City, "City is required"},
		{"pincode", info.Pincode, "Pincode is required"},
	}
	for _, r := range required {
		if r.value == "" {
			return &FieldError{Field: r.field, Message: r.message}
		}
	}

	if len(NormalizePhone(info.Phone)) != 10 {
		return &FieldError{Field: "phone", Message: "Phone number must be 10 digits"}
	}
	if !emailRe.MatchString(info.Email) {
		return &FieldError{Field: "email", Message: "Enter a valid email address"}
	}
	return nil
}
