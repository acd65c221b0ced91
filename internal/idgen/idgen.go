package idgen

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/viant/idmint/internal/clock"
	"golang.org/x/crypto/blake2b"
)

const (
	// MinLength is the smallest digest size in bytes.
	MinLength = 1
	// MaxLength is the largest digest size BLAKE2b can produce.
	MaxLength = blake2b.Size
)

// ErrInvalidLength is returned for digest sizes outside MinLength..MaxLength.
var ErrInvalidLength = errors.New("idgen: invalid digest length")

// Input returns the hash input: the ISO stamp of when followed by content.
func Input(content []byte, when time.Time) []byte {
	stamp := clock.ISOFormat(when)
	data := make([]byte, 0, len(stamp)+len(content))
	data = append(data, stamp...)
	return append(data, content...)
}

// Sum returns the lowercase hex BLAKE2b digest of data sized to length bytes.
func Sum(data []byte, length int) (string, error) {
	if length < MinLength || length > MaxLength {
		return "", fmt.Errorf("%w: %d (expected %d..%d)", ErrInvalidLength, length, MinLength, MaxLength)
	}
	hash, err := blake2b.New(length, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create hash: %w", err)
	}
	hash.Write(data)
	return hex.EncodeToString(hash.Sum(nil)), nil
}

// Format renders an identifier: /namespace/digest, or /digest for the default namespace.
func Format(namespace, digest string) string {
	if namespace == "" {
		return "/" + digest
	}
	return "/" + namespace + "/" + digest
}
