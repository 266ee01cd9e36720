// Package urlutil resolves link targets against base document references.
package urlutil

import (
	"net/url"
	"path"
	"strings"
)

// HasScheme reports whether ref carries a URL scheme (http, https, s3, ...).
func HasScheme(ref string) bool {
	u, err := url.Parse(ref)
	return err == nil && u.Scheme != ""
}

// IsHTTP reports whether ref is an http or https URL.
func IsHTTP(ref string) bool {
	return strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://")
}

// Resolve returns an absolute reference for target. Absolute targets pass
// through untouched; relative targets resolve against base, the reference
// of the document the link appeared in, by joining path segments, so "./"
// and "../" segments collapse properly for both URLs and local paths.
func Resolve(base, target string) string {
	if HasScheme(target) {
		return target
	}
	if IsHTTP(base) {
		baseURL, err := url.Parse(base)
		if err != nil {
			return joinPath(base, target)
		}
		targetURL, err := url.Parse(target)
		if err != nil {
			return joinPath(base, target)
		}
		return baseURL.ResolveReference(targetURL).String()
	}
	return joinPath(base, target)
}

// joinPath drops the final segment of base and joins target onto what
// remains, collapsing any relative segments.
func joinPath(base, target string) string {
	dir := path.Dir(base)
	if dir == "." {
		return path.Clean(target)
	}
	return path.Join(dir, target)
}
