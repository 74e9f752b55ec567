package utils_test

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickfunds/loanflow_backend/internal/utils"
)

func TestGenerateReferenceNumber_Format(t *testing.T) {
	pattern := regexp.MustCompile(`^[1-9]\d{5}$`)

	for i := 0; i < 1000; i++ {
		ref, err := utils.GenerateReferenceNumber()
		require.NoError(t, err)
		assert.Len(t, ref, utils.ReferenceNumberLength)
		assert.Regexp(t, pattern, ref)
	}
}

func TestGenerateReferenceNumber_Spread(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		ref, err := utils.GenerateReferenceNumber()
		require.NoError(t, err)
		seen[ref] = struct{}{}
	}
	// 10k draws from a 900k space should rarely collide; a heavily
	// collapsed set indicates broken randomness.
	assert.Greater(t, len(seen), 9000)
}

func TestGenerateSecureRandomString(t *testing.T) {
	a, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)
	b, err := utils.GenerateSecureRandomString(32)
	require.NoError(t, err)

	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)

	_, err = utils.GenerateSecureRandomString(0)
	assert.Error(t, err)
}
