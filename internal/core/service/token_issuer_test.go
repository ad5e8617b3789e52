package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/kalaiarasan0/farmdesk/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Username]; exists {
		return nil, domain.ErrUserExists
	}
	copy := cloneUser(user)
	if copy.ID == "" {
		copy.ID = user.Username
	}
	r.users[copy.Username] = cloneUser(copy)
	return cloneUser(copy), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := r.users[username]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func TestTokenIssuer_Register_Success(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)

	user, err := svc.Register(context.Background(), "alice", "pass123", "Alice", "alice@example.com", domain.RoleViewer)
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
	if user.Role != domain.RoleViewer || user.FullName != "Alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestTokenIssuer_Register_Validation(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "", "pass", "", "", domain.RoleViewer); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "pass", "", "", "wrong"); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestTokenIssuer_Register_Duplicate(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)

	_, _ = svc.Register(context.Background(), "bob", "pass", "", "", "")
	if _, err := svc.Register(context.Background(), "bob", "pass2", "", "", ""); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestTokenIssuer_Issue_Success(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)

	if _, err := svc.Register(context.Background(), "carol", "s3cret", "", "", domain.RoleAdmin); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	tok, err := svc.Issue(context.Background(), "carol", "s3cret")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if tok.AccessToken == "" || tok.TokenType != "bearer" {
		t.Fatalf("unexpected token: %+v", tok)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(tok.AccessToken, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["sub"] != "carol" || claims["role"] != domain.RoleAdmin {
		t.Fatalf("unexpected claims: %v", claims)
	}

	user, err := svc.Verify(tok.AccessToken)
	if err != nil {
		t.Fatalf("verify: %v", err)
	}
	if user.Username != "carol" || user.Role != domain.RoleAdmin {
		t.Fatalf("unexpected identity: %+v", user)
	}
}

func TestTokenIssuer_Issue_BadCredentials(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)
	_, _ = svc.Register(context.Background(), "dave", "goodpass", "", "", "")

	if _, err := svc.Issue(context.Background(), "dave", "badpass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if _, err := svc.Issue(context.Background(), "ghost", "pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown user should look like bad credentials, got %v", err)
	}
}

func TestTokenIssuer_Verify_Rejects(t *testing.T) {
	svc := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)
	_, _ = svc.Register(context.Background(), "erin", "pw", "", "", "")
	tok, _ := svc.Issue(context.Background(), "erin", "pw")

	other := NewTokenIssuer(newStubUserRepo(), "other-secret", time.Hour)
	if _, err := other.Verify(tok.AccessToken); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("wrong secret should fail, got %v", err)
	}

	later := NewTokenIssuer(newStubUserRepo(), "secret", time.Hour)
	later.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
	if _, err := later.Verify(tok.AccessToken); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("expired token should fail, got %v", err)
	}

	if _, err := svc.Verify("garbage"); !errors.Is(err, domain.ErrNotAuthenticated) {
		t.Fatalf("garbage should fail, got %v", err)
	}
}
