// Package secrets encrypts small credential strings for storage at rest.
// It uses NaCl secretbox (XSalsa20-Poly1305) with a random nonce per value
// and a base64url envelope, so ciphertexts are safe to put in text columns.
package secrets

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/nacl/secretbox"
)

// KeySize is the required length of the symmetric key in bytes.
const KeySize = 32

const nonceSize = 24

// ErrInvalidCiphertext is returned when a stored value cannot be opened,
// either because it was tampered with or encrypted under a different key.
var ErrInvalidCiphertext = errors.New("invalid ciphertext")

// Box seals and opens values under a fixed symmetric key.
type Box struct {
	key [KeySize]byte
}

// New creates a Box from a base64-encoded (std or url, padded or raw)
// 32-byte key.
func New(encodedKey string) (*Box, error) {
	var raw []byte
	var err error
	for _, enc := range []*base64.Encoding{
		base64.StdEncoding, base64.URLEncoding, base64.RawStdEncoding, base64.RawURLEncoding,
	} {
		raw, err = enc.DecodeString(encodedKey)
		if err == nil {
			break
		}
	}
	if err != nil {
		return nil, fmt.Errorf("could not decode key: %w", err)
	}
	if len(raw) != KeySize {
		return nil, fmt.Errorf("key must be %d bytes, got %d", KeySize, len(raw))
	}

	b := &Box{}
	copy(b.key[:], raw)

	return b, nil
}

// Encrypt seals the plaintext and returns a base64url envelope of nonce||box.
func (b *Box) Encrypt(plaintext string) (string, error) {
	var nonce [nonceSize]byte
	if _, err := rand.Read(nonce[:]); err != nil {
		return "", fmt.Errorf("could not generate nonce: %w", err)
	}

	sealed := secretbox.Seal(nonce[:], []byte(plaintext), &nonce, &b.key)

	return base64.RawURLEncoding.EncodeToString(sealed), nil
}

// Decrypt opens a value produced by Encrypt.
func (b *Box) Decrypt(envelope string) (string, error) {
	raw, err := base64.RawURLEncoding.DecodeString(envelope)
	if err != nil {
		return "", fmt.Errorf("could not decode envelope: %w", err)
	}
	if len(raw) <= nonceSize {
		return "", ErrInvalidCiphertext
	}

	var nonce [nonceSize]byte
	copy(nonce[:], raw[:nonceSize])

	plain, ok := secretbox.Open(nil, raw[nonceSize:], &nonce, &b.key)
	if !ok {
		return "", ErrInvalidCiphertext
	}

	return string(plain), nil
}

// GenerateKey returns a fresh random key encoded for configuration files.
func GenerateKey() (string, error) {
	key := make([]byte, KeySize)
	if _, err := rand.Read(key); err != nil {
		return "", fmt.Errorf("could not generate key: %w", err)
	}

	return base64.RawURLEncoding.EncodeToString(key), nil
}
