// Package vault implements the encrypted-at-rest credential store: typed
// credentials, CRUD with redacted listings, and URL-pattern matching.
package vault

import (
	"errors"
	"time"
)

// Type is the credential kind. The set is closed.
type Type string

// Credential types, ordered by resolution preference (strongest first).
const (
	TypeOAuth       Type = "oauth"
	TypeBearerToken Type = "bearer_token"
	TypeAPIKey      Type = "api_key"
	TypeLogin       Type = "login"
)

// typePreference ranks credential types for ResolveForURL. Lower is better.
var typePreference = map[Type]int{
	TypeOAuth:       0,
	TypeBearerToken: 1,
	TypeAPIKey:      2,
	TypeLogin:       3,
}

// Valid reports whether t is a known credential type.
func (t Type) Valid() bool {
	_, ok := typePreference[t]
	return ok
}

// Sentinel errors. Corrupt is fatal for vault operations; the others are
// recoverable by the caller.
var (
	ErrVaultLocked        = errors.New("vault key unavailable")
	ErrVaultCorrupt       = errors.New("vault file failed integrity verification")
	ErrNotFound           = errors.New("credential not found")
	ErrCredentialConflict = errors.New("credential with this name and service already exists")
	ErrPatternConflict    = errors.New("credential pattern conflicts with an existing credential")
)

// OAuthMaterial is the secret material of an oauth credential.
type OAuthMaterial struct {
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token,omitempty"`
	ExpiresAt    *time.Time `json:"expires_at,omitempty"`
	ClientID     string     `json:"client_id"`
	ClientSecret string     `json:"client_secret,omitempty"`
	TokenURL     string     `json:"token_url,omitempty"`
}

// LoginMaterial is the secret material of a login credential.
type LoginMaterial struct {
	Username   string `json:"username"`
	Password   string `json:"password"`
	TOTPSecret string `json:"totp_secret,omitempty"`
	SessionRef string `json:"session_ref,omitempty"`
}

// Credential is the full vault record, secret material included. It never
// leaves the vault except to the resolver.
type Credential struct {
	ID       string   `json:"id"`
	Type     Type     `json:"type"`
	Name     string   `json:"name"`
	Service  string   `json:"service"`
	Patterns []string `json:"patterns,omitempty"`

	APIKey string         `json:"api_key,omitempty"`
	Token  string         `json:"token,omitempty"`
	OAuth  *OAuthMaterial `json:"oauth,omitempty"`
	Login  *LoginMaterial `json:"login,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Summary is the redacted listing shape; it carries no secret material.
type Summary struct {
	ID        string    `json:"id"`
	Type      Type      `json:"type"`
	Name      string    `json:"name"`
	Service   string    `json:"service"`
	Patterns  []string  `json:"patterns,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// summarize strips secret material from a credential.
func summarize(c *Credential) Summary {
	return Summary{
		ID:        c.ID,
		Type:      c.Type,
		Name:      c.Name,
		Service:   c.Service,
		Patterns:  append([]string(nil), c.Patterns...),
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// AddInput is the payload for Vault.Add.
type AddInput struct {
	Type     Type     `json:"type"`
	Name     string   `json:"name"`
	Service  string   `json:"service"`
	Patterns []string `json:"patterns,omitempty"`

	APIKey string         `json:"api_key,omitempty"`
	Token  string         `json:"token,omitempty"`
	OAuth  *OAuthMaterial `json:"oauth,omitempty"`
	Login  *LoginMaterial `json:"login,omitempty"`
}

// UpdateInput is the partial-update payload for Vault.Update. Nil fields are
// left unchanged.
type UpdateInput struct {
	Name     *string   `json:"name,omitempty"`
	Service  *string   `json:"service,omitempty"`
	Patterns *[]string `json:"patterns,omitempty"`

	APIKey *string        `json:"api_key,omitempty"`
	Token  *string        `json:"token,omitempty"`
	OAuth  *OAuthMaterial `json:"oauth,omitempty"`
	Login  *LoginMaterial `json:"login,omitempty"`
}
