// Package discovery finds manifest files below a project root.
package discovery

import (
	"io/fs"
	"sort"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPatterns match manifests anywhere below the root.
var DefaultPatterns = []string{
	"**/itergen.toml",
	"**/itergen.yaml",
	"**/itergen.yml",
	"**/*.itergen.toml",
	"**/*.itergen.yaml",
	"**/*.itergen.yml",
}

// DefaultExclude skips directories that never hold manifests.
var DefaultExclude = []string{
	"**/.git/**",
	"**/node_modules/**",
	"**/vendor/**",
}

// Find returns the slash-separated paths in fsys matching any of patterns
// and none of exclude. The result is sorted and free of duplicates.
func Find(fsys fs.FS, patterns, exclude []string) ([]string, error) {
	logger := logging.GetLogger("discovery")

	for _, p := range exclude {
		if !doublestar.ValidatePattern(p) {
			return nil, errors.Newf(errors.ErrInvalidInput, "invalid exclude pattern %q", p).
				WithDetail("pattern", p)
		}
	}

	seen := make(map[string]struct{})
	var found []string

	for _, pattern := range patterns {
		matches, err := doublestar.Glob(fsys, pattern)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrInvalidInput, "invalid pattern %q", pattern).
				WithDetail("pattern", pattern)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			if excluded(m, exclude) {
				logger.Trace().Str("path", m).Msg("excluded")
				continue
			}
			seen[m] = struct{}{}
			found = append(found, m)
		}
	}

	sort.Strings(found)

	logger.Debug().
		Int("patterns", len(patterns)).
		Int("found", len(found)).
		Msg("discovered manifests")

	return found, nil
}

func excluded(path string, exclude []string) bool {
	for _, p := range exclude {
		if ok, _ := doublestar.Match(p, path); ok {
			return true
		}
	}
	return false
}
