package service

import (
	"context"
	"fmt"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

const tokenPath = "/auth/token"

// AuthService runs the OAuth2 password grant against the farm API and keeps
// the resulting token in the session.
type AuthService struct {
	api          ports.API
	session      ports.Session
	clientID     string
	clientSecret string
}

func NewAuthService(api ports.API, session ports.Session, clientID, clientSecret string) *AuthService {
	return &AuthService{api: api, session: session, clientID: clientID, clientSecret: clientSecret}
}

// Login exchanges credentials for a token. The token is stored only when the
// response carries one.
func (s *AuthService) Login(ctx context.Context, username, password string) (*domain.Token, error) {
	fields := []domain.FormField{
		{Key: "grant_type", Value: "password"},
		{Key: "username", Value: username},
		{Key: "password", Value: password},
		{Key: "scope", Value: ""},
		{Key: "client_id", Value: s.clientID},
		{Key: "client_secret", Value: s.clientSecret},
	}

	var tok domain.Token
	if err := s.api.PostForm(ctx, tokenPath, fields, &tok); err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if tok.AccessToken != "" {
		if err := s.session.Set(ctx, tok.AccessToken); err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
	}
	return &tok, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

func (s *AuthService) Token(ctx context.Context) (string, error) {
	return s.session.Token(ctx)
}

func (s *AuthService) IsAuthenticated(ctx context.Context) bool {
	return s.session.State(ctx) == domain.StateAuthenticated
}
