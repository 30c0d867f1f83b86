// Package types defines the interfaces shared across itergen packages that
// must not depend on each other, such as the filesystem abstraction used by
// generation and manifest loading.
package types
