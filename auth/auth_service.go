package auth

import (
	"context"

	"github.com/pkg/errors"

	"github.com/vetdesk/client-go/api"
	"github.com/vetdesk/client-go/internal/apierrors"
	"github.com/vetdesk/client-go/session"
	"github.com/vetdesk/client-go/users"
)

// Service maps authentication operations onto the API. It never touches the
// session manager itself; callers decide when a returned session.Data gets
// installed. Logout has no operation here because it is purely local.
type Service struct {
	api *api.Client
}

func NewService(apiClient *api.Client) (*Service, error) {
	if apiClient == nil {
		return nil, errors.New("[NewService] api client is required")
	}
	return &Service{api: apiClient}, nil
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// RegisterInput is the new-account payload. Registration never
// auto-authenticates; the user logs in explicitly afterwards.
type RegisterInput struct {
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Password string `json:"password"`
}

// Login exchanges credentials for a bearer token and fetches the account it
// belongs to, so the caller always receives user and token together.
func (s *Service) Login(ctx context.Context, email, password string) (*session.Data, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}

	raw, err := s.api.Post(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	var tokenResp loginResponse
	if err := api.DecodeJSON(raw, &tokenResp); err != nil {
		return nil, err
	}
	if tokenResp.AccessToken == "" {
		return nil, apierrors.ErrInvalidResponse
	}

	// The login response carries only the token; the session needs the user
	// record too. The explicit header covers the window before the caller
	// installs the session.
	raw, err = s.api.Get(ctx, "/auth/me", api.WithHeader("Authorization", "Bearer "+tokenResp.AccessToken))
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := api.DecodeJSON(raw, &user); err != nil {
		return nil, err
	}

	return &session.Data{User: &user, Token: tokenResp.AccessToken}, nil
}

// Register creates an account and returns the created record. The session is
// deliberately left alone.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*users.User, error) {
	if err := ValidateRegistration(input); err != nil {
		return nil, err
	}

	raw, err := s.api.Post(ctx, "/auth/register", input)
	if err != nil {
		return nil, err
	}
	var user users.User
	if err := api.DecodeJSON(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// CurrentUser fetches the account behind the active session's token.
func (s *Service) CurrentUser(ctx context.Context) (*users.User, error) {
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
