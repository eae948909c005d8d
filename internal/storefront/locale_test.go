package storefront_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/guestconcierge/storefront-client/internal/storefront"
)

func TestResolveLanguage(t *testing.T) {
	tests := map[string]string{
		"en": "en",
		"es": "es",
		"":   "en",
		"fr": "en",
		"EN": "en",
	}

	for segment, want := range tests {
		assert.Equal(t, want, storefront.ResolveLanguage(segment), "segment %q", segment)
	}
}

func TestIsValidLanguage(t *testing.T) {
	assert.True(t, storefront.IsValidLanguage("en"))
	assert.True(t, storefront.IsValidLanguage("es"))
	assert.False(t, storefront.IsValidLanguage("de"))
	assert.False(t, storefront.IsValidLanguage(""))
}

func TestAdminLoginPath(t *testing.T) {
	assert.Equal(t, "/es/admin", storefront.AdminLoginPath("es"))
	assert.Equal(t, "/en/admin", storefront.AdminLoginPath("en"))
	assert.Equal(t, "/en/admin", storefront.AdminLoginPath("nope"))
}
