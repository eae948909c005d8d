package storefront

var supportedLanguages = []string{"en", "es"}

const DefaultLanguage = "en"

func IsValidLanguage(lang string) bool {
	for _, supported := range supportedLanguages {
		if lang == supported {
			return true
		}
	}

	return false
}

// ResolveLanguage maps a route's locale segment to a supported language. An
// unsupported or missing segment falls back to the default; it is never an
// error state.
func ResolveLanguage(segment string) string {
	if IsValidLanguage(segment) {
		return segment
	}

	return DefaultLanguage
}

// AdminLoginPath is the locale-scoped route the client abandons to when an
// admin session expires.
func AdminLoginPath(lang string) string {
	return "/" + ResolveLanguage(lang) + "/admin"
}
