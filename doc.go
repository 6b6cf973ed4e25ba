// Package servedir implements the core request pipeline of a directory
// sharing HTTP server: root-confined path resolution, byte-range parsing,
// and upload filename sanitization.
//
// The package holds the pure, transport-free pieces. Filesystem access
// lives in the filesystem subpackage and the HTTP surface in the http
// subpackage; both consume the types and verdicts defined here.
//
// # Path resolution
//
// ResolvePath turns a raw URL path into a relative path guaranteed to stay
// under the served root. It is the single traversal defense: any parent
// directory component is rejected, and no other code builds filesystem
// paths from request input.
//
// # Byte ranges
//
// ParseRange understands single-range "bytes=" headers and classifies them
// as a concrete interval, no range (full response), or unsatisfiable
// (HTTP 416). Multi-range headers fail the grammar and degrade to a full
// response.
package servedir
