package servedir

import "strings"

// SanitizeFilename reduces a client-supplied file name to a single safe
// path component. It is a pure string function: no filesystem lookups.
//
// Path separators (both slash flavors) are dropped along with everything
// before the last one, ".." sequences and control characters are removed,
// and surrounding whitespace is trimmed. The empty string is returned when
// nothing usable remains; callers substitute their fallback name.
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, "\\", "/")
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}

	name = strings.ReplaceAll(name, "..", "")

	var b strings.Builder
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			continue
		}
		b.WriteRune(r)
	}
	name = strings.TrimSpace(b.String())

	if name == "" || name == "." {
		return ""
	}
	return name
}
