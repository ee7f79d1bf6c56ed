package impl

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNonce(t *testing.T) {
	first := newNonce()
	second := newNonce()

	assert.Len(t, first, nonceLength)
	assert.NotEqual(t, first, second)
	for _, r := range first {
		assert.True(t, strings.ContainsRune(nonceAlphabet, r))
	}
}
