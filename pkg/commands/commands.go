// Package commands provides high-level command implementations for itergen.
//
// This package contains the orchestration layer between the CLI and the
// generation packages: it resolves configuration against manifests, runs
// discovery and turns per-manifest outcomes into reports.
package commands
