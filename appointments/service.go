package appointments

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/api"
)

// Service maps appointment operations one-to-one onto the API. Creation is
// validated client-side (the slot must be strictly in the future) before any
// network call; updates use partial (PATCH) semantics.
type Service struct {
	api     *api.Client
	nowTime func() time.Time
}

type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

func NewService(apiClient *api.Client, options ...ServiceOption) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[NewService] api client is required")
	}

	service := &Service{
		api:     apiClient,
		nowTime: time.Now,
	}
	for _, opt := range options {
		opt(service)
	}
	return service, nil
}

func (s *Service) List(ctx context.Context) ([]Appointment, error) {
	return s.list(ctx, "/appointments")
}

// ListRange lists appointments whose date falls within [from, to].
func (s *Service) ListRange(ctx context.Context, from, to time.Time) ([]Appointment, error) {
	query := url.Values{}
	query.Set("date_from", from.Format(dateLayout))
	query.Set("date_to", to.Format(dateLayout))
	return s.list(ctx, "/appointments?"+query.Encode())
}

// Today lists today's appointments by passing today's date as both bounds.
func (s *Service) Today(ctx context.Context) ([]Appointment, error) {
	today := s.nowTime()
	return s.ListRange(ctx, today, today)
}

func (s *Service) list(ctx context.Context, path string) ([]Appointment, error) {
	raw, err := s.api.Get(ctx, path)
	if err != nil {
		return nil, err
	}
	var list []Appointment
	if err := api.DecodeJSON(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Appointment, error) {
	raw, err := s.api.Get(ctx, fmt.Sprintf("/appointments/%d", id))
	if err != nil {
		return nil, err
	}
	var appointment Appointment
	if err := api.DecodeJSON(raw, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Appointment, error) {
	if err := input.validate(s.nowTime()); err != nil {
		return nil, err
	}
	if input.DurationMinutes == 0 {
		input.DurationMinutes = defaultDurationMinutes
	}

	raw, err := s.api.Post(ctx, "/appointments", input)
	if err != nil {
		return nil, err
	}
	var appointment Appointment
	if err := api.DecodeJSON(raw, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch UpdateInput) (*Appointment, error) {
	if err := patch.validate(); err != nil {
		return nil, err
	}
	raw, err := s.api.Patch(ctx, fmt.Sprintf("/appointments/%d", id), patch)
	if err != nil {
		return nil, err
	}
	var appointment Appointment
	if err := api.DecodeJSON(raw, &appointment); err != nil {
		return nil, err
	}
	return &appointment, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/appointments/%d", id))
	return err
}
