package utils

import (
	"errors"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderCodePattern = regexp.MustCompile(`^[A-Z]{3}[0-9]{6}$`)

func neverExists(code string) (bool, error) {
	return false, nil
}

func TestGenerateOrderCodeFormat(t *testing.T) {
	for i := 0; i < 50; i++ {
		code, err := GenerateOrderCode(neverExists)
		require.NoError(t, err)
		assert.Regexp(t, orderCodePattern, code)
	}
}

func TestGenerateOrderCodeRetriesOnCollision(t *testing.T) {
	calls := 0
	code, err := GenerateOrderCode(func(code string) (bool, error) {
		calls++
		return calls < 3, nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
	assert.Regexp(t, orderCodePattern, code)
}

func TestGenerateOrderCodeExhaustsRetries(t *testing.T) {
	calls := 0
	_, err := GenerateOrderCode(func(code string) (bool, error) {
		calls++
		return true, nil
	})

	assert.ErrorIs(t, err, ErrCodeGenerationExhausted)
	assert.Equal(t, 10, calls)
}

func TestGenerateOrderCodePropagatesLookupError(t *testing.T) {
	lookupErr := errors.New("db gone")
	_, err := GenerateOrderCode(func(code string) (bool, error) {
		return false, lookupErr
	})

	assert.ErrorIs(t, err, lookupErr)
}

func TestGenerateOrderCodeProducesDistinctCodes(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := GenerateOrderCode(neverExists)
		require.NoError(t, err)
		seen[code] = true
	}
	// 17.5 million combinations; 100 draws colliding would point at a broken
	// random source.
	assert.Greater(t, len(seen), 95)
}

func TestGenerateCode(t *testing.T) {
	code, err := GenerateCode(32)
	require.NoError(t, err)
	assert.Len(t, code, 64)
	assert.Regexp(t, `^[0-9a-f]+$`, code)

	other, err := GenerateCode(32)
	require.NoError(t, err)
	assert.NotEqual(t, code, other)
}
