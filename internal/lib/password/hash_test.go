package password

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestGetHash_RoundTrip(t *testing.T) {
	tests := []struct {
		name     string
		password string
	}{
		{name: "demo password", password: "password"},
		{name: "special chars", password: "p@ssw0rd!@#$%^&*()"},
		{name: "unicode", password: "пароль-автосервиса"},
		{name: "short", password: "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hash, err := GetHashWithCost(tt.password, bcrypt.MinCost)
			require.NoError(t, err)
			assert.NotEmpty(t, hash)
			assert.NotEqual(t, tt.password, hash)
			assert.NoError(t, CompareHash(hash, tt.password))
		})
	}
}

func TestGetHashWithCost_OutOfRangeFallsBackToDefault(t *testing.T) {
	hash, err := GetHashWithCost("secret", 1)
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.DefaultCost, cost)
}

func TestCompareHash(t *testing.T) {
	correct, err := GetHashWithCost("correct_password", bcrypt.MinCost)
	require.NoError(t, err)
	another, err := GetHashWithCost("another_password", bcrypt.MinCost)
	require.NoError(t, err)

	tests := []struct {
		name     string
		hash     string
		password string
		mismatch bool
		wantErr  bool
	}{
		{name: "matching password", hash: correct, password: "correct_password"},
		{name: "wrong password", hash: correct, password: "wrong_password", mismatch: true, wantErr: true},
		{name: "other hash", hash: another, password: "correct_password", mismatch: true, wantErr: true},
		{name: "empty password", hash: correct, password: "", mismatch: true, wantErr: true},
		{name: "garbage hash", hash: "not-a-hash", password: "correct_password", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CompareHash(tt.hash, tt.password)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.mismatch, errors.Is(err, ErrMismatch))
		})
	}
}

func TestGetHash_Salted(t *testing.T) {
	first, err := GetHashWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)
	second, err := GetHashWithCost("same", bcrypt.MinCost)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}
