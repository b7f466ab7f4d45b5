package helpers

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"

	"golang.org/x/crypto/pbkdf2"
)

const (
	// SaltSize is the length of the per-user random salt in bytes.
	SaltSize = 16
	// KeySize is the length of the derived key in bytes.
	KeySize = 32
	// DefaultIterations is the PBKDF2 iteration count used when no count is
	// configured. Stored records carry the count they were derived with.
	DefaultIterations = 100_000
)

// GenerateSalt returns a fresh cryptographically secure random salt.
// If secure randomness is unavailable the error must be treated as fatal;
// there is no fallback to a weaker source.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// DerivePassword derives a store-safe credential from a plaintext password
// and salt using PBKDF2-SHA256, returned base64-encoded.
func DerivePassword(plain string, salt []byte, iterations int) string {
	if iterations <= 0 {
		iterations = DefaultIterations
	}
	key := pbkdf2.Key([]byte(plain), salt, iterations, KeySize, sha256.New)
	return base64.StdEncoding.EncodeToString(key)
}

// EncodeSalt returns the storage encoding of a raw salt.
func EncodeSalt(salt []byte) string {
	return base64.StdEncoding.EncodeToString(salt)
}

// VerifyPassword re-derives the credential from plain and the stored salt
// and compares it to the stored hash. Used by the companion auth service
// contract tests.
func VerifyPassword(plain, encodedSalt, storedHash string, iterations int) bool {
	salt, err := base64.StdEncoding.DecodeString(encodedSalt)
	if err != nil {
		return false
	}
	return DerivePassword(plain, salt, iterations) == storedHash
}
