// Package session owns the bearer token used by the API client. A Session is
// created once by the composition root and injected into the client; the
// token itself lives in a pluggable TokenStore.
package session

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
	"github.com/kalaiarasan0/farmdesk/internal/core/ports"
)

// DefaultKey is the slot name the token is stored under.
const DefaultKey = "access_token"

// Session reads and writes a single token slot of a TokenStore.
type Session struct {
	store ports.TokenStore
	key   string
	log   zerolog.Logger
}

// New returns a Session bound to the given slot. An empty key means DefaultKey.
func New(store ports.TokenStore, key string, log zerolog.Logger) *Session {
	if key == "" {
		key = DefaultKey
	}
	return &Session{store: store, key: key, log: log}
}

// Token returns the stored token, or "" when unauthenticated.
func (s *Session) Token(ctx context.Context) (string, error) {
	tok, err := s.store.Load(ctx, s.key)
	if err != nil {
		return "", fmt.Errorf("session: load token: %w", err)
	}
	return strings.TrimSpace(tok), nil
}

// Set stores token, replacing any previous one. An empty token clears the slot.
func (s *Session) Set(ctx context.Context, token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return s.Clear(ctx)
	}
	if err := s.store.Save(ctx, s.key, token); err != nil {
		return fmt.Errorf("session: save token: %w", err)
	}
	s.log.Debug().Str("key", s.key).Msg("session token stored")
	return nil
}

// Clear removes the token. Clearing an empty slot is not an error.
func (s *Session) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, s.key); err != nil {
		return fmt.Errorf("session: delete token: %w", err)
	}
	s.log.Debug().Str("key", s.key).Msg("session token cleared")
	return nil
}

// State reports whether a token is currently stored. A store that cannot be
// read counts as unauthenticated.
func (s *Session) State(ctx context.Context) domain.SessionState {
	tok, err := s.Token(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("session state unavailable")
		return domain.StateUnauthenticated
	}
	if tok == "" {
		return domain.StateUnauthenticated
	}
	return domain.StateAuthenticated
}
