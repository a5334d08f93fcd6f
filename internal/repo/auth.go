package repo

import (
	"fmt"
	"strings"
)

const httpsScheme = "https://"

// redactedToken replaces the token when a URL is shown to the user.
const redactedToken = "****"

// AddAuth injects token into an HTTPS clone URL as userinfo.
//
// With no token the URL is returned unchanged. A URL that already contains
// "@" is rejected rather than overwritten, as is a non-HTTPS URL, so the
// scheme is never downgraded and existing credentials are never dropped.
// The result always ends in ".git".
func AddAuth(rawURL, token string) (string, error) {
	if token == "" {
		return rawURL, nil
	}
	if strings.Contains(rawURL, "@") || !strings.HasPrefix(rawURL, httpsScheme) {
		return "", fmt.Errorf("add token to %q: %w", rawURL, ErrCredentialsPresent)
	}

	authed := httpsScheme + token + "@" + strings.TrimPrefix(rawURL, httpsScheme)
	if !strings.HasSuffix(authed, ".git") {
		authed += ".git"
	}
	return authed, nil
}

// Redact masks every occurrence of token in rawURL.
func Redact(rawURL, token string) string {
	if token == "" {
		return rawURL
	}
	return strings.ReplaceAll(rawURL, token, redactedToken)
}
