// Package sessionstore persists browser session blobs (cookies plus origin
// local storage) bound to login credentials.
package sessionstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"time"
)

// maxSessionAge is the mtime-based validity window.
const maxSessionAge = 30 * 24 * time.Hour

// Cookie is one browser cookie in the Playwright-compatible blob format.
// Expires of -1 means a session cookie.
type Cookie struct {
	Name     string  `json:"name"`
	Value    string  `json:"value"`
	Domain   string  `json:"domain"`
	Path     string  `json:"path"`
	Expires  float64 `json:"expires"`
	HTTPOnly bool    `json:"httpOnly"`
	Secure   bool    `json:"secure"`
	SameSite string  `json:"sameSite"`
}

// OriginState carries localStorage entries for one origin.
type OriginState struct {
	Origin       string         `json:"origin"`
	LocalStorage []StorageEntry `json:"localStorage"`
}

// StorageEntry is one localStorage key/value pair.
type StorageEntry struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Blob is the persisted session state.
type Blob struct {
	Cookies []Cookie      `json:"cookies"`
	Origins []OriginState `json:"origins"`
}

// Info describes one stored session.
type Info struct {
	Service      string    `json:"service"`
	CredentialID string    `json:"credential_id"`
	UpdatedAt    time.Time `json:"updated_at"`
	Valid        bool      `json:"valid"`
}

// record is the on-disk wrapper binding a blob to its credential.
type record struct {
	CredentialID string `json:"credential_id"`
	Service      string `json:"service"`
	Blob         Blob   `json:"blob"`
}

var sanitizeRe = regexp.MustCompile(`[^A-Za-z0-9_-]`)

// Store keeps session blobs under <workspace>/sessions, one file per
// service, mode 0600 in a 0700 directory.
type Store struct {
	dir string
}

// New creates the store, ensuring the directory exists.
func New(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, fmt.Errorf("creating sessions dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

func (s *Store) pathFor(service string) string {
	return filepath.Join(s.dir, sanitizeRe.ReplaceAllString(service, "_")+".json")
}

// Save persists a blob for a credential's service and returns the file path.
func (s *Store) Save(credID, service string, blob Blob) (string, error) {
	data, err := json.MarshalIndent(record{CredentialID: credID, Service: service, Blob: blob}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("encoding session blob: %w", err)
	}
	path := s.pathFor(service)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("writing session blob: %w", err)
	}
	return path, nil
}

// Load returns the stored blob for a service, or nil if none exists.
func (s *Store) Load(service string) (*Blob, error) {
	rec, _, err := s.read(service)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, nil
	}
	return &rec.Blob, nil
}

func (s *Store) read(service string) (*record, time.Time, error) {
	path := s.pathFor(service)
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, time.Time{}, nil
		}
		return nil, time.Time{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, time.Time{}, err
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, time.Time{}, fmt.Errorf("decoding session blob %s: %w", path, err)
	}
	return &rec, info.ModTime(), nil
}

// HasValid reports whether the service has a usable session: the file
// exists, its mtime is within 30 days, the blob holds at least one cookie,
// and at least one cookie is session-scoped or unexpired. Either aging rule
// failing is sufficient to invalidate; the rule that fired is logged for
// diagnosability.
func (s *Store) HasValid(service string) bool {
	rec, mtime, err := s.read(service)
	if err != nil || rec == nil {
		return false
	}
	now := time.Now()

	if now.Sub(mtime) >= maxSessionAge {
		slog.Debug("Session invalid: file age exceeds window",
			"service", service, "mtime", mtime)
		return false
	}
	if len(rec.Blob.Cookies) == 0 {
		slog.Debug("Session invalid: no cookies", "service", service)
		return false
	}
	for _, c := range rec.Blob.Cookies {
		if c.Expires < 0 || time.Unix(int64(c.Expires), 0).After(now) {
			return true
		}
	}
	slog.Debug("Session invalid: all cookies expired", "service", service)
	return false
}

// Clear removes the stored session for a service. Clearing a missing
// session is a no-op.
func (s *Store) Clear(service string) error {
	err := os.Remove(s.pathFor(service))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

// List returns info for all stored sessions.
func (s *Store) List() ([]Info, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, err
	}

	var out []Info
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		service := entry.Name()[:len(entry.Name())-len(".json")]
		rec, mtime, err := s.read(service)
		if err != nil || rec == nil {
			continue
		}
		out = append(out, Info{
			Service:      rec.Service,
			CredentialID: rec.CredentialID,
			UpdatedAt:    mtime,
			Valid:        s.HasValid(service),
		})
	}
	return out, nil
}

// CleanupExpired removes sessions that are no longer valid and returns how
// many were removed.
func (s *Store) CleanupExpired() (int, error) {
	infos, err := s.List()
	if err != nil {
		return 0, err
	}
	removed := 0
	for _, info := range infos {
		if info.Valid {
			continue
		}
		name := sanitizeRe.ReplaceAllString(info.Service, "_")
		if err := s.Clear(name); err != nil {
			slog.Warn("Failed to remove expired session", "service", info.Service, "error", err)
			continue
		}
		removed++
	}
	return removed, nil
}
