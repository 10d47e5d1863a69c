package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetSortedKeys(t *testing.T) {
	m := map[string]int{"b": 1, "a": 2, "c": 3}
	assert.Equal(t, []string{"a", "b", "c"}, GetSortedKeys(m))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, 2, Min(2, 5))
	assert.Equal(t, 5, Max(2, 5))
	assert.Equal(t, -1, Min(-1, 0))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 4, Clamp(2, 4, 8))
	assert.Equal(t, 8, Clamp(11, 4, 8))
	assert.Equal(t, 6, Clamp(6, 4, 8))
}

func TestAbs(t *testing.T) {
	assert.Equal(t, 3, Abs(-3))
	assert.Equal(t, 3, Abs(3))
	assert.Equal(t, 0, Abs(0))
}
