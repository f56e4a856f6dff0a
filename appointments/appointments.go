package appointments

import (
	"fmt"
	"time"
)

// Status of an appointment in the clinic's workflow.
type Status string

const (
	StatusScheduled Status = "scheduled"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
	StatusNoShow    Status = "no_show"
)

const (
	defaultDurationMinutes = 30

	// dateLayout is the YYYY-MM-DD form the API's date filters expect.
	dateLayout = "2006-01-02"
)

// Appointment is a scheduled visit for a patient.
type Appointment struct {
	ID              int64     `json:"id"`
	TenantID        int64     `json:"tenant_id"`
	PatientID       int64     `json:"patient_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	DurationMinutes int       `json:"duration_minutes"`
	Status          Status    `json:"status,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Diagnosis       string    `json:"diagnosis,omitempty"`
}

// CreateInput is the new-appointment payload. DurationMinutes defaults to 30
// when left zero.
type CreateInput struct {
	PatientID       int64     `json:"patient_id"`
	AppointmentTime time.Time `json:"appointment_time"`
	DurationMinutes int       `json:"duration_minutes,omitempty"`
	Notes           string    `json:"notes,omitempty"`
}

// UpdateInput is a partial update: only non-nil fields are sent.
type UpdateInput struct {
	AppointmentTime *time.Time `json:"appointment_time,omitempty"`
	DurationMinutes *int       `json:"duration_minutes,omitempty"`
	Status          *Status    `json:"status,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
	Diagnosis       *string    `json:"diagnosis,omitempty"`
}

func (in CreateInput) validate(now time.Time) error {
	if in.PatientID <= 0 {
		return fmt.Errorf("patient id is required")
	}
	if in.AppointmentTime.IsZero() {
		return fmt.Errorf("appointment time is required")
	}
	if !in.AppointmentTime.After(now) {
		return fmt.Errorf("appointment time must be in the future")
	}
	if in.DurationMinutes < 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

func (in UpdateInput) validate() error {
	if in.DurationMinutes != nil && *in.DurationMinutes <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	if in.Status != nil {
		switch *in.Status {
		case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled, StatusNoShow:
		default:
			return fmt.Errorf("unknown status %q", *in.Status)
		}
	}
	return nil
}
