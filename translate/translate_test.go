package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"golang.org/x/text/language"
)

func TestUsing(t *testing.T) {
	assert := assert.New(t)

	en := Using(language.AmericanEnglish)
	assert.Equal("stack full", en("stack full"))
	assert.Equal("label LOOP missing", en("label %v missing", "LOOP"))

	de := Using(language.German)
	assert.Equal("Stapel voll", de("stack full"))
	assert.Equal("Marke LOOP fehlt", de("label %v missing", "LOOP"))
	assert.Equal("Zeile 3 pc 0x204 x", de("line %d pc 0x%03x %v", 3, 0x204, "x"))

	assert.Equal("not in catalog", de("not in catalog"))
}

func TestCatalog(t *testing.T) {
	assert := assert.New(t)

	seen := map[string]bool{}
	for _, entry := range catalogDe {
		assert.False(seen[entry.key], entry.key)
		seen[entry.key] = true
		assert.NotEmpty(entry.msg, entry.key)
	}
}
