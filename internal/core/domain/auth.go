package domain

import (
	"strings"
	"time"
)

// SessionState is the token lifecycle: a login moves it to authenticated,
// a logout or any 401 moves it back.
type SessionState string

const (
	StateUnauthenticated SessionState = "unauthenticated"
	StateAuthenticated   SessionState = "authenticated"
)

// Token is the response of the password-grant exchange.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type,omitempty"`
}

// FormField is one key/value pair of a form-encoded body. Order is preserved
// on the wire.
type FormField struct {
	Key   string
	Value string
}

// AuthLost is raised when the backend rejected the session token. RedirectTo
// is the login location under the application base path.
type AuthLost struct {
	Method     string
	Path       string
	Status     int
	RedirectTo string
}

// LoginPath builds "<base>/login" for an application base path, tolerating a
// missing or doubled trailing slash.
func LoginPath(appBasePath string) string {
	if appBasePath == "" {
		appBasePath = "/"
	}
	if !strings.HasSuffix(appBasePath, "/") {
		appBasePath += "/"
	}
	return appBasePath + "login"
}

// SessionInfo is what can be told about the stored token without asking the
// backend. Opaque tokens leave Subject and ExpiresAt empty.
type SessionInfo struct {
	State     SessionState `json:"state" yaml:"state"`
	Subject   string       `json:"subject,omitempty" yaml:"subject,omitempty"`
	ExpiresAt *time.Time   `json:"expires_at,omitempty" yaml:"expires_at,omitempty"`
}

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

// User is an operator account of the development backend.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	Email        string    `json:"email,omitempty"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
