package vault

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/ident"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVault(t *testing.T) *Vault {
	t.Helper()
	dir := t.TempDir()
	v, err := Open(
		filepath.Join(dir, "vault.enc"),
		&FileKeySource{Path: filepath.Join(dir, "vault.key")},
		ident.NewClock(),
	)
	require.NoError(t, err)
	return v
}

func TestAddGetRoundtrip(t *testing.T) {
	v := newTestVault(t)

	id, err := v.Add(AddInput{
		Type:     TypeAPIKey,
		Name:     "ci",
		Service:  "github",
		Patterns: []string{"*.github.com"},
		APIKey:   "ghp_secret",
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	cred, err := v.Get(id)
	require.NoError(t, err)
	assert.Equal(t, TypeAPIKey, cred.Type)
	assert.Equal(t, "ghp_secret", cred.APIKey)
	assert.Equal(t, "github", cred.Service)
}

func TestPersistenceAcrossOpens(t *testing.T) {
	dir := t.TempDir()
	keys := &FileKeySource{Path: filepath.Join(dir, "vault.key")}
	path := filepath.Join(dir, "vault.enc")

	v, err := Open(path, keys, ident.NewClock())
	require.NoError(t, err)
	id, err := v.Add(AddInput{Type: TypeBearerToken, Name: "bot", Service: "slack", Token: "xoxb-123"})
	require.NoError(t, err)

	reopened, err := Open(path, keys, ident.NewClock())
	require.NoError(t, err)
	cred, err := reopened.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "xoxb-123", cred.Token)
}

func TestVaultFileIsEncrypted(t *testing.T) {
	dir := t.TempDir()
	keys := &FileKeySource{Path: filepath.Join(dir, "vault.key")}
	path := filepath.Join(dir, "vault.enc")

	v, err := Open(path, keys, ident.NewClock())
	require.NoError(t, err)
	_, err = v.Add(AddInput{Type: TypeAPIKey, Name: "k", Service: "svc", APIKey: "super-secret-value"})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "super-secret-value")

	var env map[string]string
	require.NoError(t, json.Unmarshal(raw, &env))
	assert.Equal(t, "v1", env["version"])
	assert.NotEmpty(t, env["salt"])
	assert.NotEmpty(t, env["nonce"])
	assert.NotEmpty(t, env["ciphertext"])
}

func TestTamperedFileIsCorrupt(t *testing.T) {
	dir := t.TempDir()
	keys := &FileKeySource{Path: filepath.Join(dir, "vault.key")}
	path := filepath.Join(dir, "vault.enc")

	v, err := Open(path, keys, ident.NewClock())
	require.NoError(t, err)
	_, err = v.Add(AddInput{Type: TypeAPIKey, Name: "k", Service: "svc", APIKey: "x"})
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var env envelope
	require.NoError(t, json.Unmarshal(raw, &env))
	env.Ciphertext = "AAAA" + env.Ciphertext[4:]
	tampered, err := json.Marshal(&env)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, tampered, 0o600))

	_, err = Open(path, keys, ident.NewClock())
	require.ErrorIs(t, err, ErrVaultCorrupt)
}

func TestDuplicateNameServiceRejected(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Add(AddInput{Type: TypeAPIKey, Name: "ci", Service: "github", APIKey: "a"})
	require.NoError(t, err)

	_, err = v.Add(AddInput{Type: TypeBearerToken, Name: "ci", Service: "github", Token: "b"})
	require.ErrorIs(t, err, ErrCredentialConflict)

	// Same name on a different service is allowed.
	_, err = v.Add(AddInput{Type: TypeAPIKey, Name: "ci", Service: "gitlab", APIKey: "c"})
	require.NoError(t, err)
}

func TestListNeverRevealsSecrets(t *testing.T) {
	v := newTestVault(t)

	expires := time.Now().Add(time.Hour)
	_, err := v.Add(AddInput{Type: TypeAPIKey, Name: "k1", Service: "s1", APIKey: "apiKey-AAA"})
	require.NoError(t, err)
	_, err = v.Add(AddInput{Type: TypeOAuth, Name: "k2", Service: "s2", OAuth: &OAuthMaterial{
		AccessToken: "accessToken-BBB", RefreshToken: "refreshToken-CCC",
		ExpiresAt: &expires, ClientID: "cid", ClientSecret: "csec",
	}})
	require.NoError(t, err)
	_, err = v.Add(AddInput{Type: TypeLogin, Name: "k3", Service: "s3", Login: &LoginMaterial{
		Username: "u", Password: "password-DDD", TOTPSecret: "totpSecret-EEE",
	}})
	require.NoError(t, err)

	listed, err := json.Marshal(v.List())
	require.NoError(t, err)
	for _, secret := range []string{"apiKey-AAA", "accessToken-BBB", "refreshToken-CCC", "password-DDD", "totpSecret-EEE"} {
		assert.False(t, strings.Contains(string(listed), secret), "list leaked %s", secret)
	}
	assert.Len(t, v.List(), 3)
}

func TestDescribeIsRedacted(t *testing.T) {
	v := newTestVault(t)

	id, err := v.Add(AddInput{Type: TypeAPIKey, Name: "ci", Service: "github", APIKey: "ghp_secret"})
	require.NoError(t, err)

	summary, err := v.Describe(id)
	require.NoError(t, err)
	assert.Equal(t, id, summary.ID)
	assert.Equal(t, TypeAPIKey, summary.Type)

	raw, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "ghp_secret")

	_, err = v.Describe("crd_missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateOAuthTokens(t *testing.T) {
	v := newTestVault(t)

	id, err := v.Add(AddInput{Type: TypeOAuth, Name: "g", Service: "google", OAuth: &OAuthMaterial{
		AccessToken: "old", RefreshToken: "refresh-1", ClientID: "cid",
	}})
	require.NoError(t, err)

	expires := time.Now().Add(time.Hour).UTC()
	require.NoError(t, v.UpdateOAuthTokens(id, "new-access", "", &expires))

	cred, err := v.Get(id)
	require.NoError(t, err)
	assert.Equal(t, "new-access", cred.OAuth.AccessToken)
	assert.Equal(t, "refresh-1", cred.OAuth.RefreshToken, "empty refresh keeps the old one")
	require.NotNil(t, cred.OAuth.ExpiresAt)
}

func TestDelete(t *testing.T) {
	v := newTestVault(t)

	id, err := v.Add(AddInput{Type: TypeAPIKey, Name: "k", Service: "s", APIKey: "x"})
	require.NoError(t, err)
	require.NoError(t, v.Delete(id))

	_, err = v.Get(id)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, v.Delete(id), ErrNotFound)
}

func TestResolveForURLPreference(t *testing.T) {
	v := newTestVault(t)

	_, err := v.Add(AddInput{Type: TypeAPIKey, Name: "weak", Service: "github",
		Patterns: []string{"*.github.com"}, APIKey: "a"})
	require.NoError(t, err)
	oauthID, err := v.Add(AddInput{Type: TypeOAuth, Name: "strong", Service: "github",
		Patterns: []string{"*.github.com"}, OAuth: &OAuthMaterial{AccessToken: "t", ClientID: "c"}})
	require.NoError(t, err)

	cred, err := v.ResolveForURL("https://api.github.com/user")
	require.NoError(t, err)
	require.NotNil(t, cred)
	assert.Equal(t, oauthID, cred.ID, "oauth preferred over api_key")

	cred, err = v.ResolveForURL("https://gitlab.com/x")
	require.NoError(t, err)
	assert.Nil(t, cred)
}

func TestMatchHost(t *testing.T) {
	tests := []struct {
		pattern string
		host    string
		want    bool
	}{
		{"*.github.com", "api.github.com", true},
		{"*.github.com", "github.com", true},
		{"*.github.com", "a.b.github.com", true},
		{"*.github.com", "evilgithub.com", false},
		{"*.github.com", "githubXcom", false},
		{"github.com", "github.com", true},
		{"github.com", "api.github.com", false},
		{"api.*.example.com", "api.eu.example.com", true},
		{"api.*.example.com", "api.eu.west.example.com", false},
		{"*.GitHub.com", "API.github.COM", true},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MatchHost(tt.pattern, tt.host), "%s vs %s", tt.pattern, tt.host)
	}
}
