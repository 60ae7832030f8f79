package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword(t *testing.T) {
	hashed, err := HashPassword("Pw1@exchange")
	require.NoError(t, err)
	assert.NotEqual(t, "Pw1@exchange", hashed)

	cost, err := bcrypt.Cost([]byte(hashed))
	require.NoError(t, err)
	assert.Equal(t, PasswordCost, cost)

	again, err := HashPassword("Pw1@exchange")
	require.NoError(t, err)
	assert.NotEqual(t, hashed, again, "salted hashes differ")
}

func TestHashPassword_TooLong(t *testing.T) {
	_, err := HashPassword(string(make([]byte, 73)))
	assert.Error(t, err)
}

func TestCheckPasswordHash(t *testing.T) {
	hashed, err := HashPassword("Pw1@exchange")
	require.NoError(t, err)

	assert.True(t, CheckPasswordHash("Pw1@exchange", hashed))
	assert.False(t, CheckPasswordHash("pw1@exchange", hashed))
	assert.False(t, CheckPasswordHash("", hashed))
	assert.False(t, CheckPasswordHash("Pw1@exchange", "not-a-hash"))
}

func TestIsEmail(t *testing.T) {
	testCases := []struct {
		email string
		want  bool
	}{
		{"admin@exchange.com", true},
		{"first.last@sub.exchange.co.uk", true},
		{"admin", false},
		{"@exchange.com", false},
		{"admin@", false},
		{"Admin <admin@exchange.com>", false},
		{" admin@exchange.com", false},
		{"", false},
	}
	for _, tc := range testCases {
		t.Run(tc.email, func(t *testing.T) {
			assert.Equal(t, tc.want, IsEmail(tc.email))
		})
	}
}
