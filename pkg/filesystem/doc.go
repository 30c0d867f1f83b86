// Package filesystem provides filesystem implementations for itergen.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and the afero-backed in-memory
// and overlay filesystems used by tests and dry runs.
package filesystem
