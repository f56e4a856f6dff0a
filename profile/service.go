package profile

import (
	"context"
	"fmt"

	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/internal/apierrors"
	"github.com/vetdesk/client-go/internal/utils"
	"github.com/vetdesk/client-go/users"
)

// Service manages the authenticated user's own account.
type Service struct {
	api *api.Client
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	return &Service{api: apiClient}, nil
}

// UpdateInput holds the editable profile fields. Empty fields are left out of
// the diff entirely.
type UpdateInput struct {
	FullName string `json:"full_name,omitempty"`
	Email    string `json:"email,omitempty"`
	PhotoURL string `json:"photo_url,omitempty"`
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (s *Service) Get(ctx context.Context) (*users.User, error) {
	raw, err := s.api.Get(ctx, "/auth/me")
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := api.DecodeJSON(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Update sends only the fields of desired that differ from current. When
// nothing differs, current is returned and no request is made.
func (s *Service) Update(ctx context.Context, current *users.User, desired UpdateInput) (*users.User, error) {
	if current == nil {
		return nil, apierrors.ErrNotAuthenticated
	}
	if desired.Email != "" {
		if err := users.ValidateEmail(desired.Email); err != nil {
			return nil, err
		}
	}

	delta, err := utils.Diff(current, desired)
	if err != nil {
		return nil, err
	}
	if len(delta) == 0 {
		return current, nil
	}

	raw, err := s.api.Patch(ctx, "/auth/me", delta)
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := api.DecodeJSON(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ChangePassword submits a password change. The new password is checked for
// strength client-side; the old one only for presence.
func (s *Service) ChangePassword(ctx context.Context, oldPassword, newPassword string) (*users.User, error) {
	if oldPassword == "" {
		return nil, fmt.Errorf("current password is required")
	}
	if err := users.ValidatePasswordStrength(newPassword); err != nil {
		return nil, err
	}

	raw, err := s.api.Patch(ctx, "/auth/me/password", changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := api.DecodeJSON(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}
