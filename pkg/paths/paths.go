// Package paths resolves the project root itergen works from.
package paths

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
)

const (
	// EnvRoot overrides root discovery.
	EnvRoot = "ITERGEN_ROOT"
	// EnvHome is used when the home directory cannot be determined otherwise.
	EnvHome = "HOME"
	// RootMarker identifies a project root when walking up from the working
	// directory.
	RootMarker = ".itergen.toml"
)

// FindRoot resolves the project root. In order of precedence:
//
//  1. explicit, usually the --root flag
//  2. the ITERGEN_ROOT environment variable
//  3. the nearest ancestor of the working directory holding .itergen.toml
//  4. the enclosing git repository
//  5. the working directory itself
//
// The returned path is absolute. fallback reports that step 5 was used.
func FindRoot(explicit string) (root string, fallback bool, err error) {
	logger := logging.GetLogger("paths")

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, errors.Wrap(err, errors.ErrNotFound, "failed to get current directory")
	}

	switch {
	case explicit != "":
		root = ExpandHome(explicit)
	case os.Getenv(EnvRoot) != "":
		root = ExpandHome(os.Getenv(EnvRoot))
	default:
		if marked, ok := findMarkedAncestor(cwd); ok {
			root = marked
		} else if gitRoot, gitErr := findGitRoot(); gitErr == nil {
			root = gitRoot
		} else {
			root = cwd
			fallback = true
		}
	}

	abs, err := filepath.Abs(root)
	if err != nil {
		return "", false, errors.Wrapf(err, errors.ErrInvalidInput, "failed to get absolute path for root %s", root)
	}

	logger.Debug().
		Str("root", abs).
		Bool("fallback", fallback).
		Msg("Resolved project root")

	return abs, fallback, nil
}

// findMarkedAncestor walks up from dir looking for RootMarker
func findMarkedAncestor(dir string) (string, bool) {
	for {
		if info, err := os.Stat(filepath.Join(dir, RootMarker)); err == nil && !info.IsDir() {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// findGitRoot attempts to find the root of the current git repository
func findGitRoot() (string, error) {
	output, err := exec.Command("git", "rev-parse", "--show-toplevel").Output()
	if err != nil {
		// Git command failed - not in a git repo or git not installed
		return "", err
	}

	gitRoot := strings.TrimSpace(string(output))
	if gitRoot == "" {
		return "", errors.New(errors.ErrNotFound, "git root is empty")
	}
	return gitRoot, nil
}

// ExpandHome expands a leading ~ to the home directory
func ExpandHome(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		// Fallback to HOME env var
		homeDir = os.Getenv(EnvHome)
		if homeDir == "" {
			// Can't expand, return as-is
			return path
		}
	}

	if len(path) == 1 {
		return homeDir
	}

	// Handle both ~/ and ~
	if path[1] == '/' || path[1] == filepath.Separator {
		return filepath.Join(homeDir, path[2:])
	}

	// ~something (not the user's home)
	return path
}
