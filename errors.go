package servedir

import "errors"

var (
	// ErrBadEncoding is returned when a request path is not valid
	// percent-encoded UTF-8
	ErrBadEncoding = errors.New("bad encoding")
	// ErrForbidden is returned when a path tries to escape the served root
	ErrForbidden = errors.New("forbidden")
	// ErrNotFound is returned when a resolved path does not exist
	ErrNotFound = errors.New("not found")
	// ErrConflict is returned when an upload target collides with an
	// existing regular file
	ErrConflict = errors.New("conflict")
	// ErrBadMultipart is returned when an upload body is not usable
	// multipart/form-data
	ErrBadMultipart = errors.New("bad multipart body")
	// ErrMissingFile is returned when a multipart body has no "file" field
	ErrMissingFile = errors.New("no file field")
)
