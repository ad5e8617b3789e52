package session

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

// Info describes the stored token without contacting the backend. JWT claims
// are decoded but NOT verified; they are only used for display. Opaque tokens
// report the state alone.
func (s *Session) Info(ctx context.Context) (domain.SessionInfo, error) {
	tok, err := s.Token(ctx)
	if err != nil {
		return domain.SessionInfo{State: domain.StateUnauthenticated}, err
	}
	if tok == "" {
		return domain.SessionInfo{State: domain.StateUnauthenticated}, nil
	}

	info := domain.SessionInfo{State: domain.StateAuthenticated}
	claims, err := unverifiedClaims(tok)
	if err != nil {
		s.log.Debug().Err(err).Msg("session token is not a readable jwt")
		return info, nil
	}

	if sub, err := claims.GetSubject(); err == nil && sub != "" {
		info.Subject = sub
	} else if name, ok := claims["username"].(string); ok {
		info.Subject = name
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time.UTC()
		info.ExpiresAt = &t
	}
	return info, nil
}

func unverifiedClaims(tok string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tok, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}
