package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsInRange(t *testing.T) {
	assert.True(t, IsInRange(1, 1, 3))
	assert.True(t, IsInRange(1, 3, 3))
	assert.False(t, IsInRange(1, 0, 3))
	assert.False(t, IsInRange(1, 4, 3))
	assert.True(t, IsInRange(0.5, 0.75, 1.0))
}
