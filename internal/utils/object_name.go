package utils

import (
	"net/url"
	"strings"
)

// ObjectNameFromURL recovers the storage object name from a public
// delivery URL. Returns "" when the URL does not point into one of the
// known storage prefixes.
func ObjectNameFromURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	path := strings.TrimPrefix(u.Path, "/")
	for _, prefix := range []string{"images/", "avatars/"} {
		if idx := strings.Index(path, prefix); idx >= 0 {
			return path[idx:]
		}
	}
	return ""
}
