// Package validate checks the plan request form before it leaves the client.
package validate

import (
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/Iron-Ham/studyplan/internal/errors"
)

// CountryPrefix is prepended to accepted WhatsApp numbers.
const CountryPrefix = "+91"

// InvalidPhoneMessage is the chat message posted when the number is rejected.
const InvalidPhoneMessage = "Please enter a valid 10-digit mobile number for WhatsApp."

var tenDigits = regexp.MustCompile(`^[0-9]{10}$`)

var (
	once     sync.Once
	instance *validator.Validate
)

// engine returns the shared validator with the custom rules registered.
func engine() *validator.Validate {
	once.Do(func() {
		instance = validator.New()
		_ = instance.RegisterValidation("phone10", func(fl validator.FieldLevel) bool {
			return tenDigits.MatchString(fl.Field().String())
		})
	})
	return instance
}

// contact holds the raw contact fields as typed by the user.
type contact struct {
	WhatsApp string `validate:"phone10"`
}

// NormalizeWhatsApp trims raw and accepts it iff it is exactly ten ASCII
// digits, returning CountryPrefix followed by the digits. Any other input
// yields a *errors.ValidationError whose Message is InvalidPhoneMessage.
func NormalizeWhatsApp(raw string) (string, error) {
	c := contact{WhatsApp: strings.TrimSpace(raw)}
	if err := engine().Struct(c); err != nil {
		return "", errors.NewValidationError(InvalidPhoneMessage).
			WithField("whatsapp").
			WithValue(raw).
			WithCause(errors.ErrInvalidPhone)
	}
	return CountryPrefix + c.WhatsApp, nil
}

// IsValidWhatsApp reports whether raw would be accepted by NormalizeWhatsApp.
func IsValidWhatsApp(raw string) bool {
	_, err := NormalizeWhatsApp(raw)
	return err == nil
}

// IsValidEmail reports whether raw, trimmed, is a well-formed address.
// The form sends email as-is, so this only backs config validation.
func IsValidEmail(raw string) bool {
	return engine().Var(strings.TrimSpace(raw), "required,email") == nil
}
