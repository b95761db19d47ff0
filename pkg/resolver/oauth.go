package resolver

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/vault"
)

// ServiceTokenURLs maps well-known services to their OAuth token endpoints.
// A credential's own token_url takes precedence.
var ServiceTokenURLs = map[string]string{
	"google":    "https://oauth2.googleapis.com/token",
	"github":    "https://github.com/login/oauth/access_token",
	"microsoft": "https://login.microsoftonline.com/common/oauth2/v2.0/token",
	"slack":     "https://slack.com/api/oauth.v2.access",
	"discord":   "https://discord.com/api/oauth2/token",
}

// retryBackoffs is the network-error retry schedule for the refresh grant.
var retryBackoffs = []time.Duration{250 * time.Millisecond, time.Second}

// tokenResponse is the OAuth2 token endpoint response subset we consume.
type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Error        string `json:"error"`
	ErrorDesc    string `json:"error_description"`
}

// NewHTTPRefreshHandler returns the default refresh handler: an OAuth2
// refresh_token grant POSTed form-encoded to the service's token endpoint.
// Network-class failures are retried twice (250 ms, 1 s); HTTP error
// responses are not.
func NewHTTPRefreshHandler(client *http.Client) RefreshHandler {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}

	return func(ctx context.Context, cred *vault.Credential) (*TokenSet, error) {
		if cred.OAuth == nil {
			return nil, fmt.Errorf("credential %s has no oauth material", cred.ID)
		}
		if cred.OAuth.RefreshToken == "" {
			return nil, fmt.Errorf("credential %s has no refresh token", cred.ID)
		}

		tokenURL := cred.OAuth.TokenURL
		if tokenURL == "" {
			tokenURL = ServiceTokenURLs[cred.Service]
		}
		if tokenURL == "" {
			return nil, fmt.Errorf("no token endpoint known for service %q", cred.Service)
		}

		form := url.Values{}
		form.Set("grant_type", "refresh_token")
		form.Set("refresh_token", cred.OAuth.RefreshToken)
		form.Set("client_id", cred.OAuth.ClientID)
		if cred.OAuth.ClientSecret != "" {
			form.Set("client_secret", cred.OAuth.ClientSecret)
		}
		body := form.Encode()

		var lastErr error
		for attempt := 0; attempt <= len(retryBackoffs); attempt++ {
			if attempt > 0 {
				slog.Debug("Retrying OAuth refresh",
					"service", cred.Service, "attempt", attempt, "error", lastErr)
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(retryBackoffs[attempt-1]):
				}
			}

			tokens, retryable, err := doRefresh(ctx, client, tokenURL, body)
			if err == nil {
				return tokens, nil
			}
			lastErr = err
			if !retryable {
				break
			}
		}
		return nil, fmt.Errorf("oauth refresh for %s: %w", cred.Service, lastErr)
	}
}

// doRefresh performs one token request. The bool result reports whether the
// failure is network-class and worth retrying.
func doRefresh(ctx context.Context, client *http.Client, tokenURL, body string) (*TokenSet, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, tokenURL, strings.NewReader(body))
	if err != nil {
		return nil, false, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, true, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, true, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("token endpoint returned %d: %s", resp.StatusCode, truncate(string(data), 200))
	}

	var tr tokenResponse
	if err := json.Unmarshal(data, &tr); err != nil {
		return nil, false, fmt.Errorf("decoding token response: %w", err)
	}
	if tr.Error != "" {
		return nil, false, fmt.Errorf("token endpoint error %s: %s", tr.Error, tr.ErrorDesc)
	}
	if tr.AccessToken == "" {
		return nil, false, fmt.Errorf("token response missing access_token")
	}

	tokens := &TokenSet{AccessToken: tr.AccessToken, RefreshToken: tr.RefreshToken}
	if tr.ExpiresIn > 0 {
		t := time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)
		tokens.ExpiresAt = &t
	}
	return tokens, false, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "…"
}
