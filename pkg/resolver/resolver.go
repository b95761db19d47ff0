// Package resolver turns vault credentials into request auth material and
// keeps OAuth tokens fresh.
package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/codecoder-dev/codecoder/pkg/vault"
)

// refreshSkew: an OAuth token this close to expiry is refreshed before use.
const refreshSkew = 60 * time.Second

// Resolution is the outcome of resolving a URL or service to auth material.
type Resolution struct {
	Credential   *vault.Credential `json:"credential"`
	Headers      map[string]string `json:"headers"`
	NeedsRefresh bool              `json:"needs_refresh"`
	// UseSession signals the caller to load the stored browser session blob
	// instead of sending headers (login credentials only).
	UseSession bool `json:"use_session"`
}

// TokenSet is what a refresh handler returns.
type TokenSet struct {
	AccessToken  string
	RefreshToken string
	ExpiresAt    *time.Time
}

// RefreshHandler performs an OAuth refresh for one credential.
type RefreshHandler func(ctx context.Context, cred *vault.Credential) (*TokenSet, error)

// Resolver resolves URLs and service names to credentials and headers.
// Concurrent refreshes of the same credential collapse into one in-flight
// call (single-flight); additional callers wait on its result.
type Resolver struct {
	vault    *vault.Vault
	clock    *ident.Clock
	handlers map[string]RefreshHandler
	fallback RefreshHandler
	group    singleflight.Group
}

// New creates a Resolver with the default HTTP refresh handler as fallback.
func New(v *vault.Vault, clock *ident.Clock) *Resolver {
	return &Resolver{
		vault:    v,
		clock:    clock,
		handlers: make(map[string]RefreshHandler),
		fallback: NewHTTPRefreshHandler(nil),
	}
}

// RegisterRefreshHandler installs a per-service refresh handler.
func (r *Resolver) RegisterRefreshHandler(service string, handler RefreshHandler) {
	r.handlers[service] = handler
}

// Resolve looks up the credential for a URL or bare service name and builds
// its headers. It does not refresh; see HeadersForURL for the auto-refresh
// path. Returns (nil, nil) when nothing matches.
func (r *Resolver) Resolve(urlOrService string) (*Resolution, error) {
	var cred *vault.Credential
	var err error
	if strings.Contains(urlOrService, "://") || strings.Contains(urlOrService, ".") {
		cred, err = r.vault.ResolveForURL(urlOrService)
	} else {
		cred, err = r.vault.ResolveForService(urlOrService)
	}
	if err != nil {
		return nil, err
	}
	if cred == nil {
		return nil, nil
	}
	return r.resolution(cred), nil
}

func (r *Resolver) resolution(cred *vault.Credential) *Resolution {
	res := &Resolution{Credential: cred, Headers: map[string]string{}}
	switch cred.Type {
	case vault.TypeAPIKey:
		res.Headers["X-API-Key"] = cred.APIKey
	case vault.TypeBearerToken:
		res.Headers["Authorization"] = "Bearer " + cred.Token
	case vault.TypeOAuth:
		res.Headers["Authorization"] = "Bearer " + cred.OAuth.AccessToken
		res.NeedsRefresh = r.needsRefresh(cred)
	case vault.TypeLogin:
		res.UseSession = true
	}
	return res
}

func (r *Resolver) needsRefresh(cred *vault.Credential) bool {
	if cred.OAuth == nil || cred.OAuth.ExpiresAt == nil {
		return false
	}
	return cred.OAuth.ExpiresAt.Sub(r.clock.Now()) < refreshSkew
}

// HeadersForURL resolves a URL, refreshing the OAuth token first when it is
// within the expiry skew, and returns the headers to attach. A failed
// refresh returns the stale headers with NeedsRefresh left for the caller to
// observe through Resolve; the caller decides whether to retry.
func (r *Resolver) HeadersForURL(ctx context.Context, rawURL string) (map[string]string, error) {
	res, err := r.Resolve(rawURL)
	if err != nil {
		return nil, err
	}
	if res == nil {
		return map[string]string{}, nil
	}
	if res.Credential.Type != vault.TypeOAuth || !res.NeedsRefresh {
		return res.Headers, nil
	}

	refreshed, err := r.refresh(ctx, res.Credential)
	if err != nil {
		slog.Warn("OAuth refresh failed, returning stale token",
			"credential_id", res.Credential.ID, "service", res.Credential.Service, "error", err)
		return res.Headers, nil
	}
	return map[string]string{"Authorization": "Bearer " + refreshed.AccessToken}, nil
}

// refresh runs the service's refresh handler under single-flight per
// credential and persists the new tokens to the vault.
func (r *Resolver) refresh(ctx context.Context, cred *vault.Credential) (*TokenSet, error) {
	result, err, _ := r.group.Do(cred.ID, func() (any, error) {
		handler := r.handlers[cred.Service]
		if handler == nil {
			handler = r.fallback
		}
		tokens, err := handler(ctx, cred)
		if err != nil {
			return nil, err
		}
		if err := r.vault.UpdateOAuthTokens(cred.ID, tokens.AccessToken, tokens.RefreshToken, tokens.ExpiresAt); err != nil {
			return nil, fmt.Errorf("persisting refreshed tokens: %w", err)
		}
		return tokens, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*TokenSet), nil
}

// Inject resolves the request URL and attaches auth headers without
// overriding any header the request already carries.
func (r *Resolver) Inject(ctx context.Context, req *http.Request) error {
	headers, err := r.HeadersForURL(ctx, req.URL.String())
	if err != nil {
		return err
	}
	for k, v := range headers {
		if req.Header.Get(k) == "" {
			req.Header.Set(k, v)
		}
	}
	return nil
}
