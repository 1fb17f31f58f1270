package httpclient

import (
	"fmt"
	"net/url"
	"strings"
)

// BuildURL constructs a URL with query parameters.
func BuildURL(baseURL, path string, params map[string]string) string {
	u, err := url.Parse(baseURL + path)
	if err != nil {
		return baseURL + path
	}

	if len(params) > 0 {
		q := u.Query()
		for key, value := range params {
			q.Set(key, value)
		}
		u.RawQuery = q.Encode()
	}

	return u.String()
}

// NormalizeURL trims a trailing slash and defaults to https if no scheme is
// present.
func NormalizeURL(rawURL string) string {
	rawURL = strings.TrimSuffix(rawURL, "/")
	if !strings.HasPrefix(rawURL, "http://") && !strings.HasPrefix(rawURL, "https://") {
		rawURL = "https://" + rawURL
	}
	return rawURL
}

// MergeHeaders merges multiple header maps, with later maps overriding
// earlier ones.
func MergeHeaders(headerMaps ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, headers := range headerMaps {
		for key, value := range headers {
			result[key] = value
		}
	}
	return result
}

// FormatPath ensures path starts with a forward slash.
func FormatPath(path string) string {
	if !strings.HasPrefix(path, "/") {
		return "/" + path
	}
	return path
}

// RetryableError reports whether err looks like a transient transport
// failure worth retrying.
func RetryableError(err error) bool {
	if err == nil {
		return false
	}

	errStr := strings.ToLower(err.Error())
	retryableErrors := []string{
		"timeout",
		"connection refused",
		"connection reset",
		"temporary failure",
		"too many requests",
	}
	for _, retryable := range retryableErrors {
		if strings.Contains(errStr, retryable) {
			return true
		}
	}
	return false
}

// ValidateURL checks that rawURL is a well-formed http(s) URL with a host.
func ValidateURL(rawURL string) error {
	if rawURL == "" {
		return fmt.Errorf("URL cannot be empty")
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("URL scheme must be http or https")
	}
	if u.Host == "" {
		return fmt.Errorf("URL must have a host")
	}
	return nil
}
