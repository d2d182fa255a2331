// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateAdminKey(t *testing.T) {
	tests := []struct {
		name  string
		scope string
		salt  string
	}{
		{"standard", ScopeAnalytics, "secret-salt"},
		{"empty scope", "", "salt"},
		{"empty salt", ScopeAnalytics, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := GenerateAdminKey(tt.scope, tt.salt)
			assert.NotEmpty(t, key)

			// Should be deterministic
			assert.Equal(t, key, GenerateAdminKey(tt.scope, tt.salt))

			// Different inputs should produce different keys
			assert.NotEqual(t, key, GenerateAdminKey(tt.scope+"x", tt.salt))
			assert.NotEqual(t, key, GenerateAdminKey(tt.scope, tt.salt+"x"))

			// URL-safe, unpadded
			assert.False(t, strings.ContainsAny(key, "+/="), "key %q", key)
		})
	}
}

func TestValidateAdminKey(t *testing.T) {
	salt := "test-salt"
	key := GenerateAdminKey(ScopeAnalytics, salt)

	tests := []struct {
		name    string
		scope   string
		key     string
		salt    string
		wantErr bool
	}{
		{"valid key", ScopeAnalytics, key, salt, false},
		{"wrong key", ScopeAnalytics, "wrong-key", salt, true},
		{"wrong scope", "other", key, salt, true},
		{"wrong salt", ScopeAnalytics, key, "other-salt", true},
		{"empty key", ScopeAnalytics, "", salt, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAdminKey(tt.scope, tt.key, tt.salt)
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidAdminKey), "got %v", err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestHashIP(t *testing.T) {
	h := HashIP("192.0.2.1", "salt")

	assert.Len(t, h, 16)
	assert.Equal(t, h, HashIP("192.0.2.1", "salt"))
	assert.NotEqual(t, h, HashIP("192.0.2.2", "salt"))
	assert.NotEqual(t, h, HashIP("192.0.2.1", "pepper"))
}
