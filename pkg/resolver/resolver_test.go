package resolver

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/codecoder-dev/codecoder/pkg/vault"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T) *vault.Vault {
	t.Helper()
	dir := t.TempDir()
	v, err := vault.Open(
		filepath.Join(dir, "vault.enc"),
		&vault.FileKeySource{Path: filepath.Join(dir, "vault.key")},
		ident.NewClock(),
	)
	require.NoError(t, err)
	return v
}

func TestHeadersPerCredentialType(t *testing.T) {
	v := newTestVault(t)
	r := New(v, ident.NewClock())

	_, err := v.Add(vault.AddInput{Type: vault.TypeAPIKey, Name: "k", Service: "svc",
		Patterns: []string{"api.example.com"}, APIKey: "key-123"})
	require.NoError(t, err)
	_, err = v.Add(vault.AddInput{Type: vault.TypeBearerToken, Name: "b", Service: "other",
		Patterns: []string{"*.bearer.io"}, Token: "tok-456"})
	require.NoError(t, err)
	_, err = v.Add(vault.AddInput{Type: vault.TypeLogin, Name: "l", Service: "shop",
		Patterns: []string{"shop.example.org"}, Login: &vault.LoginMaterial{Username: "u", Password: "p"}})
	require.NoError(t, err)

	res, err := r.Resolve("https://api.example.com/v1")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "key-123", res.Headers["X-API-Key"])

	res, err = r.Resolve("https://www.bearer.io/x")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "Bearer tok-456", res.Headers["Authorization"])

	res, err = r.Resolve("https://shop.example.org/")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Empty(t, res.Headers)
	assert.True(t, res.UseSession)
}

func TestResolveByServiceName(t *testing.T) {
	v := newTestVault(t)
	r := New(v, ident.NewClock())

	_, err := v.Add(vault.AddInput{Type: vault.TypeAPIKey, Name: "k", Service: "backend", APIKey: "x"})
	require.NoError(t, err)

	res, err := r.Resolve("backend")
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "x", res.Headers["X-API-Key"])

	res, err = r.Resolve("missing")
	require.NoError(t, err)
	assert.Nil(t, res)
}

func addExpiringOAuth(t *testing.T, v *vault.Vault, tokenURL string, ttl time.Duration) string {
	t.Helper()
	expires := time.Now().Add(ttl)
	id, err := v.Add(vault.AddInput{
		Type: vault.TypeOAuth, Name: "g", Service: "google",
		Patterns: []string{"*.googleapis.com"},
		OAuth: &vault.OAuthMaterial{
			AccessToken: "stale", RefreshToken: "refresh-1",
			ExpiresAt: &expires, ClientID: "cid", TokenURL: tokenURL,
		},
	})
	require.NoError(t, err)
	return id
}

func TestHeadersForURLRefreshesExpiringToken(t *testing.T) {
	var calls atomic.Int32
	var gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		body, _ := io.ReadAll(req.Body)
		gotBody = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","refresh_token":"refresh-2","expires_in":3600}`))
	}))
	defer srv.Close()

	v := newTestVault(t)
	r := New(v, ident.NewClock())
	id := addExpiringOAuth(t, v, srv.URL, 30*time.Second)

	headers, err := r.HeadersForURL(context.Background(), "https://www.googleapis.com/oauth2/v3/userinfo")
	require.NoError(t, err)
	assert.Equal(t, "Bearer fresh", headers["Authorization"])
	assert.Equal(t, int32(1), calls.Load())

	form, err := url.ParseQuery(gotBody)
	require.NoError(t, err)
	assert.Equal(t, "refresh_token", form.Get("grant_type"))
	assert.Equal(t, "refresh-1", form.Get("refresh_token"))
	assert.Equal(t, "cid", form.Get("client_id"))

	// The vault was updated with the new tokens.
	cred, err := v.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "fresh", cred.OAuth.AccessToken)
	assert.Equal(t, "refresh-2", cred.OAuth.RefreshToken)
}

func TestConcurrentRefreshSingleFlight(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		calls.Add(1)
		time.Sleep(50 * time.Millisecond) // hold the flight open
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"fresh","expires_in":3600}`))
	}))
	defer srv.Close()

	v := newTestVault(t)
	r := New(v, ident.NewClock())
	addExpiringOAuth(t, v, srv.URL, 10*time.Second)

	const k = 8
	var wg sync.WaitGroup
	for i := 0; i < k; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			headers, err := r.HeadersForURL(context.Background(), "https://www.googleapis.com/x")
			assert.NoError(t, err)
			assert.Equal(t, "Bearer fresh", headers["Authorization"])
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load(), "K concurrent callers must trigger exactly one refresh")
}

func TestRefreshFailureReturnsStaleToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
	}))
	defer srv.Close()

	v := newTestVault(t)
	r := New(v, ident.NewClock())
	addExpiringOAuth(t, v, srv.URL, 5*time.Second)

	headers, err := r.HeadersForURL(context.Background(), "https://www.googleapis.com/x")
	require.NoError(t, err)
	assert.Equal(t, "Bearer stale", headers["Authorization"])
}

func TestFreshTokenNotRefreshed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Fatal("token endpoint must not be called for a fresh token")
	}))
	defer srv.Close()

	v := newTestVault(t)
	r := New(v, ident.NewClock())
	addExpiringOAuth(t, v, srv.URL, time.Hour)

	headers, err := r.HeadersForURL(context.Background(), "https://www.googleapis.com/x")
	require.NoError(t, err)
	assert.Equal(t, "Bearer stale", headers["Authorization"])
}

func TestInjectNeverOverridesExistingHeaders(t *testing.T) {
	v := newTestVault(t)
	r := New(v, ident.NewClock())

	_, err := v.Add(vault.AddInput{Type: vault.TypeBearerToken, Name: "b", Service: "svc",
		Patterns: []string{"api.example.com"}, Token: "vault-token"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "https://api.example.com/v1", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer caller-token")

	require.NoError(t, r.Inject(context.Background(), req))
	assert.Equal(t, "Bearer caller-token", req.Header.Get("Authorization"))
}
