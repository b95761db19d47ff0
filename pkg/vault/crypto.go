package vault

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"golang.org/x/crypto/scrypt"
)

// envelopeAAD authenticates the envelope version; a mismatch surfaces as
// vault_corrupt.
const envelopeAAD = "codecoder-vault-v1"

const envelopeVersion = "v1"

// scrypt parameters (interactive profile).
const (
	scryptN       = 1 << 15
	scryptR       = 8
	scryptP       = 1
	derivedKeyLen = 32
)

// envelope is the on-disk vault file layout.
type envelope struct {
	Version    string `json:"version"`
	Salt       string `json:"salt"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
}

// KeySource supplies the per-install secret the vault key is derived from.
type KeySource interface {
	Secret() ([]byte, error)
}

// FileKeySource keeps the per-install secret in a 0600 file, creating it with
// 32 random bytes on first use. Used where no OS keychain is available.
type FileKeySource struct {
	Path string
}

// Secret reads the secret file, creating it on first use.
func (s *FileKeySource) Secret() ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if err == nil {
		return data, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %v", ErrVaultLocked, err)
	}

	secret := make([]byte, 32)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("%w: generating install secret: %v", ErrVaultLocked, err)
	}
	if err := os.WriteFile(s.Path, secret, 0o600); err != nil {
		return nil, fmt.Errorf("%w: persisting install secret: %v", ErrVaultLocked, err)
	}
	return secret, nil
}

// seal encrypts plaintext into an envelope using a key derived from secret
// with a fresh salt and nonce.
func seal(secret, plaintext []byte) ([]byte, error) {
	salt := make([]byte, 16)
	if _, err := rand.Read(salt); err != nil {
		return nil, fmt.Errorf("generating salt: %w", err)
	}
	aead, err := newAEAD(secret, salt)
	if err != nil {
		return nil, err
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, fmt.Errorf("generating nonce: %w", err)
	}

	ciphertext := aead.Seal(nil, nonce, plaintext, []byte(envelopeAAD))
	env := envelope{
		Version:    envelopeVersion,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		Nonce:      base64.StdEncoding.EncodeToString(nonce),
		Ciphertext: base64.StdEncoding.EncodeToString(ciphertext),
	}
	return json.Marshal(&env)
}

// open decrypts an envelope. Any structural or integrity failure maps to
// ErrVaultCorrupt; no partial recovery.
func open(secret, data []byte) ([]byte, error) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVaultCorrupt, err)
	}
	if env.Version != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported version %q", ErrVaultCorrupt, env.Version)
	}

	salt, err := base64.StdEncoding.DecodeString(env.Salt)
	if err != nil {
		return nil, fmt.Errorf("%w: bad salt encoding", ErrVaultCorrupt)
	}
	nonce, err := base64.StdEncoding.DecodeString(env.Nonce)
	if err != nil {
		return nil, fmt.Errorf("%w: bad nonce encoding", ErrVaultCorrupt)
	}
	ciphertext, err := base64.StdEncoding.DecodeString(env.Ciphertext)
	if err != nil {
		return nil, fmt.Errorf("%w: bad ciphertext encoding", ErrVaultCorrupt)
	}

	aead, err := newAEAD(secret, salt)
	if err != nil {
		return nil, err
	}
	if len(nonce) != aead.NonceSize() {
		return nil, fmt.Errorf("%w: bad nonce length", ErrVaultCorrupt)
	}
	plaintext, err := aead.Open(nil, nonce, ciphertext, []byte(envelopeAAD))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrVaultCorrupt, err)
	}
	return plaintext, nil
}

func newAEAD(secret, salt []byte) (cipher.AEAD, error) {
	key, err := scrypt.Key(secret, salt, scryptN, scryptR, scryptP, derivedKeyLen)
	if err != nil {
		return nil, fmt.Errorf("deriving vault key: %w", err)
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("initializing cipher: %w", err)
	}
	return cipher.NewGCM(block)
}
