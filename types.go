package servedir

// ByteRange is a closed interval of file byte offsets,
// 0 <= Start <= End < file size.
type ByteRange struct {
	Start int64
	End   int64
}

// Length returns the number of bytes covered by the range.
func (r ByteRange) Length() int64 {
	return r.End - r.Start + 1
}

// RangeVerdict classifies a Range header against a known file size.
type RangeVerdict int

const (
	// NoRange means the header is absent or fails the single-range
	// grammar; the caller serves the full file.
	NoRange RangeVerdict = iota
	// Satisfiable means the header parsed to a valid interval.
	Satisfiable
	// Unsatisfiable means the header parsed but the interval falls
	// outside the file; the caller answers 416.
	Unsatisfiable
)

// Entry is one child of a listed directory. Name is the raw filesystem
// name, not escaped for any output context.
type Entry struct {
	Name  string
	IsDir bool
}

// SaveResult reports a completed upload write.
type SaveResult struct {
	BytesWritten int64
	Etag         string
}
