package utils

import (
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
)

const (
	orderCodeLetters    = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	orderCodeDigits     = "0123456789"
	orderCodeMaxRetries = 10
)

// ErrCodeGenerationExhausted is returned when every draw within the retry cap
// collided with an existing order code.
var ErrCodeGenerationExhausted = errors.New("order code generation exhausted retries")

func randomFrom(alphabet string, n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// GenerateOrderCode draws a human-readable order code of three uppercase
// letters followed by six digits, retrying while exists reports a collision.
// Retries are capped; the storage layer's unique index remains the real
// guarantee under concurrent creation.
func GenerateOrderCode(exists func(code string) (bool, error)) (string, error) {
	for attempt := 0; attempt < orderCodeMaxRetries; attempt++ {
		letters, err := randomFrom(orderCodeLetters, 3)
		if err != nil {
			return "", fmt.Errorf("draw order code: %w", err)
		}
		digits, err := randomFrom(orderCodeDigits, 6)
		if err != nil {
			return "", fmt.Errorf("draw order code: %w", err)
		}
		code := letters + digits

		taken, err := exists(code)
		if err != nil {
			return "", fmt.Errorf("check order code uniqueness: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", ErrCodeGenerationExhausted
}

// GenerateCode returns a random hex token of n bytes, used for account
// activation and password reset links.
func GenerateCode(n int) (string, error) {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("%x", buf), nil
}
