package session

import (
	"encoding/json"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/nyaruka/phonenumbers"
)

// LoginPayload is the credential exchange request body
type LoginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(
			&r.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&r.Password,
			validation.Required,
			validation.Length(1, 100),
		),
	)
}

// RegisterPayload is the signup request body
type RegisterPayload struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
	Password  string `json:"password"`
}

// Validate will run validation rules
func (r RegisterPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 200)),
		validation.Field(&r.Email, validation.Required, validation.Length(6, 100), is.Email),
		validation.Field(&r.Phone, validation.By(ValidatePhoneNumber("US"))),
		validation.Field(&r.Password, validation.Required, validation.Length(10, 100)),
	)
}

// ValidatePhoneNumber will check the value parses as a dialable number for
// the given default region. Empty values pass; Required handles presence.
func ValidatePhoneNumber(region string) validation.RuleFunc {
	return func(value any) error {
		raw, _ := value.(string)
		if raw == "" {
			return nil
		}

		number, err := phonenumbers.Parse(raw, region)
		if err != nil {
			return fmt.Errorf("must be a valid phone number")
		}

		if !phonenumbers.IsValidNumber(number) {
			return fmt.Errorf("must be a valid phone number")
		}

		return nil
	}
}

// AuthExchange is the backend's response to a successful login or signup.
// The user profile is an opaque blob to this package; it is cached verbatim
// next to the token and handed back to the UI layer on demand.
type AuthExchange struct {
	Token string          `json:"token"`
	User  json.RawMessage `json:"user"`
}

// RoleResponse is the backend's answer to a role lookup.
type RoleResponse struct {
	Role string `json:"role"`
}
