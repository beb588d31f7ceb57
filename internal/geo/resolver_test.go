package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveExactNames(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "de", r.Resolve("Germany"))
	assert.Equal(t, "de", r.Resolve("Allemagne"))
	assert.Equal(t, "de", r.Resolve("allemagne "))
	assert.Equal(t, "es", r.Resolve("Spain"))
	assert.Equal(t, "es", r.Resolve("Espagne"))
}

func TestResolveTwoLetterCodes(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "de", r.Resolve("DE"))
	assert.Equal(t, "de", r.Resolve("de"))
	assert.Equal(t, "fr", r.Resolve(" FR "))
}

func TestResolveDisambiguationRules(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "us", r.Resolve("United States of America"))
	assert.Equal(t, "gb", r.Resolve("Royaume-Uni"))
	assert.Equal(t, "cz", r.Resolve("Czech Republic"))
	assert.Equal(t, "ci", r.Resolve("Côte d'Ivoire"))
	assert.Equal(t, "nl", r.Resolve("Holland"))
}

func TestResolvePrefixGuess(t *testing.T) {
	r := NewResolver()

	// No table entry and no rule matches, so the first two characters
	// of the normalized value come back.
	assert.Equal(t, "at", r.Resolve("Atlantis"))
}

func TestResolveUnresolvable(t *testing.T) {
	r := NewResolver()

	assert.Equal(t, "", r.Resolve(""))
	assert.Equal(t, "", r.Resolve("   "))
	assert.Equal(t, "", r.Resolve("x"))
}

func TestResolveDeterministic(t *testing.T) {
	r := NewResolver()

	first := r.Resolve("Deutschland")
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, r.Resolve("Deutschland"))
	}
}

func TestCountryTableComplete(t *testing.T) {
	codes := CountryCodes()
	assert.Len(t, codes, 197)

	seen := make(map[string]bool, len(codes))
	for _, code := range codes {
		assert.Len(t, code, 2)
		assert.False(t, seen[code], "duplicate code %s", code)
		seen[code] = true
	}
}
