package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailValid(t *testing.T) {
	assert.True(t, isEmailValid("dana@example.com"))
	assert.True(t, isEmailValid("dana.wells+studio@example.co.uk"))
	assert.True(t, isEmailValid("list%owner@example.com"))

	assert.False(t, isEmailValid("dana@example"))
	assert.False(t, isEmailValid("not-an-email"))
	assert.False(t, isEmailValid("@example.com"))
	assert.False(t, isEmailValid("dana wells@example.com"))
}

func TestIsPasswordStrong(t *testing.T) {
	assert.True(t, isPasswordStrong("harbor2026"))

	assert.False(t, isPasswordStrong("short1"))
	assert.False(t, isPasswordStrong("lettersonly"))
	assert.False(t, isPasswordStrong("12345678"))
}
