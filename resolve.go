package servedir

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// ResolvePath turns a raw URL path into a root-relative slash path suitable
// for sandboxed filesystem access. It percent-decodes the input and walks
// its components, accepting only normal names: the leading slash and "."
// are no-ops, empty segments are skipped, and ".." anywhere is rejected.
// This walk is the sole traversal defense; callers must not touch the
// filesystem with request-derived paths that have not passed through it.
//
// The returned path is "." for the root, otherwise a clean relative path
// like "a/b/c.txt". Errors wrap ErrBadEncoding (undecodable or non-UTF-8
// input) or ErrForbidden (parent directory component).
func ResolvePath(rawPath string) (string, error) {
	decoded, err := url.PathUnescape(rawPath)
	if err != nil {
		return "", fmt.Errorf("resolve path %q: %w", rawPath, ErrBadEncoding)
	}
	if !utf8.ValidString(decoded) {
		return "", fmt.Errorf("resolve path %q: not utf-8: %w", rawPath, ErrBadEncoding)
	}

	var parts []string
	for _, part := range strings.Split(decoded, "/") {
		switch part {
		case "", ".":
			// root marker, duplicate slash, or current directory
		case "..":
			return "", fmt.Errorf("resolve path %q: parent component: %w", rawPath, ErrForbidden)
		default:
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return ".", nil
	}
	return strings.Join(parts, "/"), nil
}
