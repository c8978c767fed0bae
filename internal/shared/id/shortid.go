// Package id generates identifiers: short random suffixes for human-facing
// ids and K-sortable TypeIDs for ledger rows.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	// LowerAlphanumeric is the 36-symbol alphabet used for case id suffixes.
	LowerAlphanumeric = "abcdefghijklmnopqrstuvwxyz0123456789"

	// DefaultLength is the default length for generated short IDs
	DefaultLength = 6
)

// Generate creates a random short ID of the given length drawn from alphabet.
// The generated ID is cryptographically random.
func Generate(alphabet string, length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	if alphabet == "" {
		alphabet = LowerAlphanumeric
	}

	result := make([]byte, length)
	alphabetLen := big.NewInt(int64(len(alphabet)))

	for i := 0; i < length; i++ {
		num, err := rand.Int(rand.Reader, alphabetLen)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[num.Int64()]
	}

	return string(result), nil
}

// MustGenerate creates a random short ID and panics on error.
func MustGenerate(alphabet string, length int) string {
	id, err := Generate(alphabet, length)
	if err != nil {
		panic(err)
	}
	return id
}
