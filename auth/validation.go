package auth

import (
	"fmt"
	"strings"

	"github.com/vetdesk/client-go/users"
)

// ValidateCredentials validates login credentials before any network call.
func ValidateCredentials(email, password string) error {
	if err := users.ValidateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return fmt.Errorf("password is required")
	}
	return nil
}

// ValidateRegistration validates a new-account payload before any network
// call. Registration enforces password strength; login does not.
func ValidateRegistration(input RegisterInput) error {
	if err := users.ValidateEmail(input.Email); err != nil {
		return err
	}
	if strings.TrimSpace(input.Password) == "" {
		return fmt.Errorf("password is required")
	}
	return users.ValidatePasswordStrength(input.Password)
}
