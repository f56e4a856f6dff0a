package stats

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/api"
)

// DashboardSummary is the headline dashboard payload.
type DashboardSummary struct {
	TotalPatients       int     `json:"total_patients"`
	PatientsThisMonth   int     `json:"patients_this_month"`
	TodayAppointments   int     `json:"today_appointments"`
	TodayCompleted      int     `json:"today_completed"`
	PendingAppointments int     `json:"pending_appointments"`
	RevenueThisMonth    float64 `json:"revenue_this_month"`
}

// AppointmentSummary is the appointment analytics payload.
// AverageDurationMinutes is null when no completed appointments exist yet.
type AppointmentSummary struct {
	TotalAppointments      int      `json:"total_appointments"`
	AppointmentsThisWeek   int      `json:"appointments_this_week"`
	AppointmentsThisMonth  int      `json:"appointments_this_month"`
	NoShowRate             float64  `json:"no_show_rate"`
	AverageDurationMinutes *float64 `json:"average_duration_minutes"`
}

type Service struct {
	api *api.Client
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	return &Service{api: apiClient}, nil
}

func (s *Service) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	raw, err := s.api.Get(ctx, "/stats/dashboard")
	if err != nil {
		return nil, err
	}
	var summary DashboardSummary
	if err := api.DecodeJSON(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

func (s *Service) Appointments(ctx context.Context) (*AppointmentSummary, error) {
	raw, err := s.api.Get(ctx, "/appointments/stats")
	if err != nil {
		return nil, err
	}
	var summary AppointmentSummary
	if err := api.DecodeJSON(raw, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}
