package config

import (
	"fmt"
	"net/url"
	"strings"
)

// URLError reports a release base URL the launcher refuses to download from.
type URLError struct {
	URL    string // redacted
	Reason string
}

func (e *URLError) Error() string {
	return fmt.Sprintf("invalid release base URL %q: %s", e.URL, e.Reason)
}

// ValidateReleaseBaseURL checks that raw can have an asset name appended:
// an absolute http or https URL with a host and no query or fragment.
func ValidateReleaseBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return &URLError{URL: RedactURL(raw), Reason: "not a URL"}
	}

	switch strings.ToLower(u.Scheme) {
	case "https", "http":
	case "":
		return &URLError{URL: RedactURL(raw), Reason: "missing scheme, expected https://"}
	default:
		return &URLError{URL: RedactURL(raw), Reason: fmt.Sprintf("unsupported scheme %q", u.Scheme)}
	}

	if u.Host == "" {
		return &URLError{URL: RedactURL(raw), Reason: "missing host"}
	}

	if u.RawQuery != "" || u.Fragment != "" {
		return &URLError{URL: RedactURL(raw), Reason: "query and fragment are not allowed"}
	}

	return nil
}

// IsInsecureURL reports whether raw is fetched without TLS.
func IsInsecureURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Scheme, "http")
}

// RedactURL hides any password embedded in raw so it can be logged.
func RedactURL(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.User == nil {
		return raw
	}
	return u.Redacted()
}
