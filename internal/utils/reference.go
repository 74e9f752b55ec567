package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// ReferenceNumberLength is the fixed length of public reference numbers.
const ReferenceNumberLength = 6

var referenceSpan = big.NewInt(900000) // 100000..999999

// GenerateReferenceNumber returns a random 6-digit numeric token drawn
// from crypto/rand. Uniqueness is the caller's responsibility (check and
// regenerate on collision).
func GenerateReferenceNumber() (string, error) {
	n, err := rand.Int(rand.Reader, referenceSpan)
	if err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}

// GenerateSecureRandomString generates a cryptographically secure random
// hex string of lengthInBytes*2 characters. Used for anti-forgery tokens.
func GenerateSecureRandomString(lengthInBytes int) (string, error) {
	if lengthInBytes <= 0 {
		return "", fmt.Errorf("lengthInBytes must be positive")
	}
	b := make([]byte, lengthInBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return fmt.Sprintf("%x", b), nil
}
