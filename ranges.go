package servedir

import (
	"strconv"
	"strings"
)

const rangePrefix = "bytes="

// ParseRange interprets a Range header against a known file size.
//
// The grammar is the single-range form "bytes=<start>-<end>" with either
// side optionally empty. A missing header, a malformed prefix, more or
// fewer than one dash, or non-numeric values all yield NoRange, and the
// caller falls back to a full-content response. A header that parses but
// describes an interval outside [0, size) yields Unsatisfiable, which maps
// to HTTP 416.
//
// The suffix-length form "bytes=-N" takes the last min(N, size) bytes and
// is rejected when N is zero. The open-ended form "bytes=<start>-"
// requires start < size.
func ParseRange(header string, size int64) (ByteRange, RangeVerdict) {
	if !strings.HasPrefix(header, rangePrefix) {
		return ByteRange{}, NoRange
	}

	spec := strings.TrimPrefix(header, rangePrefix)
	parts := strings.Split(spec, "-")
	if len(parts) != 2 {
		return ByteRange{}, NoRange
	}

	start, startErr := strconv.ParseInt(parts[0], 10, 64)
	end, endErr := strconv.ParseInt(parts[1], 10, 64)
	hasStart := parts[0] != "" && startErr == nil && start >= 0
	hasEnd := parts[1] != "" && endErr == nil && end >= 0

	var r ByteRange
	switch {
	case hasStart && hasEnd && start <= end:
		r = ByteRange{Start: start, End: end}
	case hasStart && !hasEnd && parts[1] == "" && start < size:
		r = ByteRange{Start: start, End: size - 1}
	case !hasStart && parts[0] == "" && hasEnd && end != 0:
		n := min(end, size)
		r = ByteRange{Start: size - n, End: size - 1}
	default:
		return ByteRange{}, NoRange
	}

	// Re-check the computed interval against the file size; a parsed
	// range that falls outside it is unsatisfiable rather than ignored.
	if r.Start >= size || r.End >= size || r.Start > r.End {
		return ByteRange{}, Unsatisfiable
	}
	return r, Satisfiable
}
