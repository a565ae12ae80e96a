package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestContent_Stable(t *testing.T) {
	a := DigestContent("hello world")
	b := DigestContent("hello world")
	assert.Equal(t, a, b)
	assert.True(t, a.Valid())
}

func TestDigestContent_DiffersOnSingleByte(t *testing.T) {
	a := DigestContent("hello world")
	b := DigestContent("hello world!")
	assert.NotEqual(t, a, b)
}

func TestDigestContent_EmptyContent(t *testing.T) {
	d := DigestContent("")
	require.True(t, d.Valid())
	assert.Equal(t, d, DigestContent(""))
}

func TestDigest_Valid(t *testing.T) {
	assert.False(t, Digest("").Valid())
	assert.False(t, Digest("abc").Valid())
	// Right length, not hex.
	assert.False(t, Digest("zzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzzz").Valid())
	assert.True(t, DigestContent("x").Valid())
}
