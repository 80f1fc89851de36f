package internal

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIterSeq2Concat(t *testing.T) {
	assert := assert.New(t)

	a := slices.All([]string{"x", "y"})
	b := slices.All([]string{"z"})

	var keys []int
	var values []string
	for key, value := range IterSeq2Concat(a, b) {
		keys = append(keys, key)
		values = append(values, value)
	}
	assert.Equal([]int{0, 1, 0}, keys)
	assert.Equal([]string{"x", "y", "z"}, values)

	count := 0
	for range IterSeq2Concat(a, b) {
		count++
		if count == 2 {
			break
		}
	}
	assert.Equal(2, count)

	merged := maps.Collect(IterSeq2Concat(
		maps.All(map[string]int{"A": 1}),
		maps.All(map[string]int{"A": 2}),
	))
	assert.Equal(map[string]int{"A": 2}, merged)

	assert.Empty(maps.Collect(IterSeq2Concat[string, int]()))
}
