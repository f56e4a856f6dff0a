package patients

import (
	"fmt"
	"strings"

	"github.com/vetdesk/client-go/users"
)

// Gender values the API accepts for a patient.
const (
	GenderMale    = "male"
	GenderFemale  = "female"
	GenderUnknown = "unknown"
)

// Patient is an animal under the clinic's care together with its owner's
// contact details. OwnerFullName, DisplayName and AgeYears are derived by the
// server and only appear in responses.
type Patient struct {
	ID       int64 `json:"id"`
	TenantID int64 `json:"tenant_id"`

	PetName     string   `json:"pet_name"`
	Species     string   `json:"species"`
	Breed       string   `json:"breed,omitempty"`
	Color       string   `json:"color,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"` // YYYY-MM-DD
	ChipNumber  string   `json:"chip_number,omitempty"`
	Weight      *float64 `json:"weight,omitempty"` // kg

	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
	OwnerEmail     string `json:"owner_email,omitempty"`
	OwnerPhone     string `json:"owner_phone,omitempty"`
	OwnerAddress   string `json:"owner_address,omitempty"`

	MedicalHistory string `json:"medical_history,omitempty"`
	Allergies      string `json:"allergies,omitempty"`
	SpecialNotes   string `json:"special_notes,omitempty"`

	AgeYears      *int   `json:"age_years,omitempty"`
	OwnerFullName string `json:"owner_full_name,omitempty"`
	DisplayName   string `json:"display_name,omitempty"`
}

// CreateInput is the new-patient payload.
type CreateInput struct {
	PetName     string   `json:"pet_name"`
	Species     string   `json:"species"`
	Breed       string   `json:"breed,omitempty"`
	Color       string   `json:"color,omitempty"`
	Gender      string   `json:"gender,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	ChipNumber  string   `json:"chip_number,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`

	OwnerFirstName string `json:"owner_first_name"`
	OwnerLastName  string `json:"owner_last_name"`
	OwnerEmail     string `json:"owner_email,omitempty"`
	OwnerPhone     string `json:"owner_phone,omitempty"`
	OwnerAddress   string `json:"owner_address,omitempty"`

	MedicalHistory string `json:"medical_history,omitempty"`
	Allergies      string `json:"allergies,omitempty"`
	SpecialNotes   string `json:"special_notes,omitempty"`
}

// UpdateInput is a partial update: only non-nil fields are sent.
type UpdateInput struct {
	PetName     *string  `json:"pet_name,omitempty"`
	Species     *string  `json:"species,omitempty"`
	Breed       *string  `json:"breed,omitempty"`
	Color       *string  `json:"color,omitempty"`
	Gender      *string  `json:"gender,omitempty"`
	DateOfBirth *string  `json:"date_of_birth,omitempty"`
	ChipNumber  *string  `json:"chip_number,omitempty"`
	Weight      *float64 `json:"weight,omitempty"`

	OwnerFirstName *string `json:"owner_first_name,omitempty"`
	OwnerLastName  *string `json:"owner_last_name,omitempty"`
	OwnerEmail     *string `json:"owner_email,omitempty"`
	OwnerPhone     *string `json:"owner_phone,omitempty"`
	OwnerAddress   *string `json:"owner_address,omitempty"`

	MedicalHistory *string `json:"medical_history,omitempty"`
	Allergies      *string `json:"allergies,omitempty"`
	SpecialNotes   *string `json:"special_notes,omitempty"`
}

// Validate checks the payload before any network call.
func (in CreateInput) Validate() error {
	if strings.TrimSpace(in.PetName) == "" {
		return fmt.Errorf("pet name is required")
	}
	if strings.TrimSpace(in.Species) == "" {
		return fmt.Errorf("species is required")
	}
	if strings.TrimSpace(in.OwnerFirstName) == "" {
		return fmt.Errorf("owner first name is required")
	}
	if strings.TrimSpace(in.OwnerLastName) == "" {
		return fmt.Errorf("owner last name is required")
	}
	if in.Gender != "" {
		if err := validateGender(in.Gender); err != nil {
			return err
		}
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	if in.OwnerEmail != "" {
		if err := users.ValidateEmail(in.OwnerEmail); err != nil {
			return fmt.Errorf("owner email: %w", err)
		}
	}
	return nil
}

// Validate checks the partial payload before any network call.
func (in UpdateInput) Validate() error {
	if in.PetName != nil && strings.TrimSpace(*in.PetName) == "" {
		return fmt.Errorf("pet name cannot be empty")
	}
	if in.Species != nil && strings.TrimSpace(*in.Species) == "" {
		return fmt.Errorf("species cannot be empty")
	}
	if in.Gender != nil && *in.Gender != "" {
		if err := validateGender(*in.Gender); err != nil {
			return err
		}
	}
	if in.Weight != nil && *in.Weight <= 0 {
		return fmt.Errorf("weight must be greater than zero")
	}
	if in.OwnerEmail != nil && *in.OwnerEmail != "" {
		if err := users.ValidateEmail(*in.OwnerEmail); err != nil {
			return fmt.Errorf("owner email: %w", err)
		}
	}
	return nil
}

func validateGender(gender string) error {
	switch gender {
	case GenderMale, GenderFemale, GenderUnknown:
		return nil
	}
	return fmt.Errorf("gender must be %q, %q or %q", GenderMale, GenderFemale, GenderUnknown)
}
