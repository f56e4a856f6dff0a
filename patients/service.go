package patients

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/api"
)

// Service maps patient operations one-to-one onto the API. Updates use
// partial (PATCH) semantics throughout.
type Service struct {
	api *api.Client
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	return &Service{api: apiClient}, nil
}

func (s *Service) List(ctx context.Context) ([]Patient, error) {
	raw, err := s.api.Get(ctx, "/patients")
	if err != nil {
		return nil, err
	}
	var list []Patient
	if err := api.DecodeJSON(raw, &list); err != nil {
		return nil, err
	}
	return list, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*Patient, error) {
	raw, err := s.api.Get(ctx, fmt.Sprintf("/patients/%d", id))
	if err != nil {
		return nil, err
	}
	var patient Patient
	if err := api.DecodeJSON(raw, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Service) Create(ctx context.Context, input CreateInput) (*Patient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	raw, err := s.api.Post(ctx, "/patients", input)
	if err != nil {
		return nil, err
	}
	var patient Patient
	if err := api.DecodeJSON(raw, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Service) Update(ctx context.Context, id int64, patch UpdateInput) (*Patient, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	raw, err := s.api.Patch(ctx, fmt.Sprintf("/patients/%d", id), patch)
	if err != nil {
		return nil, err
	}
	var patient Patient
	if err := api.DecodeJSON(raw, &patient); err != nil {
		return nil, err
	}
	return &patient, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	_, err := s.api.Delete(ctx, fmt.Sprintf("/patients/%d", id))
	return err
}
