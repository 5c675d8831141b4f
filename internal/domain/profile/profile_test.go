package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeUsername(t *testing.T) {
	assert.Equal(t, "ada_lovelace", NormalizeUsername("  Ada_Lovelace  "))
	assert.Equal(t, "dev-01", NormalizeUsername("DEV-01"))
}

func TestValidateUsername(t *testing.T) {
	valid := []string{"ada", "ada_lovelace", "dev-01", "abc123", "a_b-c"}
	for _, u := range valid {
		assert.NoError(t, ValidateUsername(u), u)
	}

	invalid := []string{
		"",
		"ab",           // too short
		"Ada",          // uppercase must be normalized first
		"ada lovelace", // spaces
		"ada!",         // punctuation
		strings.Repeat("a", 31),
	}
	for _, u := range invalid {
		assert.Error(t, ValidateUsername(u), u)
	}
}
