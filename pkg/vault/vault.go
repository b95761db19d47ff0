package vault

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/codecoder-dev/codecoder/pkg/ident"
)

// Vault is the encrypted credential store. One instance per install; writes
// are serialized through an internal mutex, reads are allowed concurrently
// once no write is in flight.
type Vault struct {
	path  string
	keys  KeySource
	clock *ident.Clock
	gen   *ident.Generator

	mu    sync.RWMutex
	creds map[string]*Credential
}

// Open loads (or initializes) the vault file at path.
func Open(path string, keys KeySource, clock *ident.Clock) (*Vault, error) {
	v := &Vault{
		path:  path,
		keys:  keys,
		clock: clock,
		gen:   ident.NewGenerator(clock),
		creds: make(map[string]*Credential),
	}
	if err := v.load(); err != nil {
		return nil, err
	}
	return v, nil
}

// load decrypts the vault file into memory. A missing file is an empty vault.
func (v *Vault) load() error {
	data, err := os.ReadFile(v.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading vault file: %w", err)
	}

	secret, err := v.keys.Secret()
	if err != nil {
		return err
	}
	plaintext, err := open(secret, data)
	if err != nil {
		return err
	}

	creds := make(map[string]*Credential)
	if err := json.Unmarshal(plaintext, &creds); err != nil {
		return fmt.Errorf("%w: interior decode: %v", ErrVaultCorrupt, err)
	}
	v.creds = creds
	return nil
}

// save atomically persists the in-memory map: encrypt → write tmp → fsync →
// rename. Caller must hold v.mu for writing.
func (v *Vault) save() error {
	plaintext, err := json.Marshal(v.creds)
	if err != nil {
		return fmt.Errorf("encoding vault interior: %w", err)
	}
	secret, err := v.keys.Secret()
	if err != nil {
		return err
	}
	data, err := seal(secret, plaintext)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(v.path), ".vault-*")
	if err != nil {
		return fmt.Errorf("creating temp vault file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("setting vault file mode: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("writing vault file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("syncing vault file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing vault file: %w", err)
	}
	if err := os.Rename(tmpName, v.path); err != nil {
		return fmt.Errorf("committing vault file: %w", err)
	}
	return nil
}

// Add validates and stores a new credential, returning its id. Duplicate
// (name, service) pairs are rejected.
func (v *Vault) Add(input AddInput) (string, error) {
	if !input.Type.Valid() {
		return "", fmt.Errorf("unknown credential type %q", input.Type)
	}
	if input.Name == "" {
		return "", fmt.Errorf("credential name is required")
	}
	if input.Service == "" {
		return "", fmt.Errorf("credential service is required")
	}
	if err := validateMaterial(input); err != nil {
		return "", err
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	for _, c := range v.creds {
		if c.Name == input.Name && c.Service == input.Service {
			return "", ErrCredentialConflict
		}
	}

	now := v.clock.Now()
	cred := &Credential{
		ID:        v.gen.New(ident.PrefixCredential),
		Type:      input.Type,
		Name:      input.Name,
		Service:   input.Service,
		Patterns:  append([]string(nil), input.Patterns...),
		APIKey:    input.APIKey,
		Token:     input.Token,
		OAuth:     input.OAuth,
		Login:     input.Login,
		CreatedAt: now,
		UpdatedAt: now,
	}
	v.creds[cred.ID] = cred

	if err := v.save(); err != nil {
		delete(v.creds, cred.ID)
		return "", err
	}
	slog.Info("Credential stored", "id", cred.ID, "type", cred.Type, "service", cred.Service)
	return cred.ID, nil
}

func validateMaterial(input AddInput) error {
	switch input.Type {
	case TypeAPIKey:
		if input.APIKey == "" {
			return fmt.Errorf("api_key credential requires api_key material")
		}
	case TypeBearerToken:
		if input.Token == "" {
			return fmt.Errorf("bearer_token credential requires token material")
		}
	case TypeOAuth:
		if input.OAuth == nil || input.OAuth.AccessToken == "" || input.OAuth.ClientID == "" {
			return fmt.Errorf("oauth credential requires access_token and client_id")
		}
	case TypeLogin:
		if input.Login == nil || input.Login.Username == "" {
			return fmt.Errorf("login credential requires username")
		}
	}
	return nil
}

// Get returns the full credential, secret material included.
func (v *Vault) Get(id string) (*Credential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	cred, ok := v.creds[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := *cred
	return &clone, nil
}

// Describe returns the redacted summary of one credential. This is the shape
// handed to untrusted surfaces; Get stays internal to credential injection.
func (v *Vault) Describe(id string) (Summary, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	cred, ok := v.creds[id]
	if !ok {
		return Summary{}, ErrNotFound
	}
	return summarize(cred), nil
}

// List returns redacted summaries ordered by service then name. Secret
// material never appears in the result.
func (v *Vault) List() []Summary {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]Summary, 0, len(v.creds))
	for _, c := range v.creds {
		out = append(out, summarize(c))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Service != out[j].Service {
			return out[i].Service < out[j].Service
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Update applies a partial update to an existing credential.
func (v *Vault) Update(id string, input UpdateInput) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	cred, ok := v.creds[id]
	if !ok {
		return ErrNotFound
	}

	name, service := cred.Name, cred.Service
	if input.Name != nil {
		name = *input.Name
	}
	if input.Service != nil {
		service = *input.Service
	}
	for otherID, c := range v.creds {
		if otherID != id && c.Name == name && c.Service == service {
			return ErrCredentialConflict
		}
	}

	prev := *cred
	cred.Name, cred.Service = name, service
	if input.Patterns != nil {
		cred.Patterns = append([]string(nil), (*input.Patterns)...)
	}
	if input.APIKey != nil {
		cred.APIKey = *input.APIKey
	}
	if input.Token != nil {
		cred.Token = *input.Token
	}
	if input.OAuth != nil {
		cred.OAuth = input.OAuth
	}
	if input.Login != nil {
		cred.Login = input.Login
	}
	cred.UpdatedAt = v.clock.Now()

	if err := v.save(); err != nil {
		*cred = prev
		return err
	}
	return nil
}

// UpdateOAuthTokens replaces an oauth credential's tokens after a refresh.
// refresh may be empty to keep the existing refresh token.
func (v *Vault) UpdateOAuthTokens(id, access, refresh string, expiresAt *time.Time) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	cred, ok := v.creds[id]
	if !ok {
		return ErrNotFound
	}
	if cred.Type != TypeOAuth || cred.OAuth == nil {
		return fmt.Errorf("credential %s is not an oauth credential", id)
	}

	prev := *cred
	prevOAuth := *cred.OAuth
	cred.OAuth.AccessToken = access
	if refresh != "" {
		cred.OAuth.RefreshToken = refresh
	}
	cred.OAuth.ExpiresAt = expiresAt
	cred.UpdatedAt = v.clock.Now()

	if err := v.save(); err != nil {
		*cred.OAuth = prevOAuth
		cred.UpdatedAt = prev.UpdatedAt
		return err
	}
	return nil
}

// Delete removes a credential.
func (v *Vault) Delete(id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	cred, ok := v.creds[id]
	if !ok {
		return ErrNotFound
	}
	delete(v.creds, id)
	if err := v.save(); err != nil {
		v.creds[id] = cred
		return err
	}
	slog.Info("Credential deleted", "id", id, "service", cred.Service)
	return nil
}

// ResolveForURL finds the best credential whose patterns match the URL's
// host. Preference: oauth > bearer_token > api_key > login, then most
// recently updated. Returns (nil, nil) when nothing matches.
func (v *Vault) ResolveForURL(rawURL string) (*Credential, error) {
	host, err := hostOf(rawURL)
	if err != nil {
		return nil, err
	}

	v.mu.RLock()
	defer v.mu.RUnlock()

	var best *Credential
	for _, c := range v.creds {
		if len(c.Patterns) == 0 {
			continue
		}
		matched := false
		for _, pattern := range c.Patterns {
			if MatchHost(pattern, host) {
				matched = true
				break
			}
		}
		if !matched {
			continue
		}
		if best == nil || betterMatch(c, best) {
			best = c
		}
	}
	if best == nil {
		return nil, nil
	}
	clone := *best
	return &clone, nil
}

// ResolveForService finds the most recently updated credential for a service
// name. Returns (nil, nil) when none exists.
func (v *Vault) ResolveForService(service string) (*Credential, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	var best *Credential
	for _, c := range v.creds {
		if c.Service != service {
			continue
		}
		if best == nil || betterMatch(c, best) {
			best = c
		}
	}
	if best == nil {
		return nil, nil
	}
	clone := *best
	return &clone, nil
}

// betterMatch reports whether a beats b under the resolution preference.
func betterMatch(a, b *Credential) bool {
	pa, pb := typePreference[a.Type], typePreference[b.Type]
	if pa != pb {
		return pa < pb
	}
	return a.UpdatedAt.After(b.UpdatedAt)
}
