// Package testutil provides utilities for testing itergen components.
//
// Key components:
//   - MemoryFS: in-memory types.FS with per-path error injection and
//     operation counters
//   - WriteTree / WriteFiles: declarative file setup on disk or in a FS
//
// All test data should be defined inline, not in external files.
package testutil
