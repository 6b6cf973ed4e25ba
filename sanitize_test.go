package servedir_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sagarc03/servedir"
)

func TestSanitizeFilename(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain name unchanged", input: "report.pdf", want: "report.pdf"},
		{name: "unicode name unchanged", input: "世界.txt", want: "世界.txt"},
		{name: "spaces kept inside", input: "my file.txt", want: "my file.txt"},
		{name: "surrounding whitespace trimmed", input: "  a.txt  ", want: "a.txt"},

		{name: "unix path keeps basename", input: "dir/sub/a.txt", want: "a.txt"},
		{name: "windows path keeps basename", input: `C:\Users\me\a.txt`, want: "a.txt"},
		{name: "traversal prefix stripped", input: "../../evil.sh", want: "evil.sh"},
		{name: "traversal without separators stripped", input: "..evil", want: "evil"},
		{name: "interleaved traversal", input: "a..b..c", want: "abc"},

		{name: "control characters removed", input: "a\x00b\x1f\x7fc.txt", want: "abc.txt"},

		{name: "empty input", input: "", want: ""},
		{name: "only separators", input: "///", want: ""},
		{name: "only dots", input: "..", want: ""},
		{name: "single dot", input: ".", want: ""},
		{name: "only whitespace", input: "   ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := servedir.SanitizeFilename(tt.input)

			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "/")
			assert.NotContains(t, got, `\`)
			assert.NotContains(t, got, "..")
		})
	}
}

func TestSanitizeFilenameNeverEscapes(t *testing.T) {
	// Whatever the client sends, the result is a single path component or
	// empty; the upload handler substitutes its fallback for empty.
	hostile := []string{
		"../../../../etc/passwd",
		"..\\..\\windows\\system32\\cmd.exe",
		"/etc/shadow",
		"....//....//x",
		"\x00../boot",
	}

	for _, input := range hostile {
		got := servedir.SanitizeFilename(input)
		assert.False(t, strings.ContainsAny(got, `/\`), "input %q produced %q", input, got)
		assert.NotContains(t, got, "..", "input %q produced %q", input, got)
	}
}
