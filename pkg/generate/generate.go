// Package generate renders dispatch groups and splices the results into a
// host document, either in memory or from a skeleton file to an output file.
package generate

import (
	"context"
	"io/fs"
	"path/filepath"
	"time"

	"github.com/arthur-debert/itergen/pkg/dispatcher"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/filesystem"
	"github.com/arthur-debert/itergen/pkg/formatter"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/source"
	"github.com/arthur-debert/itergen/pkg/types"
)

// DefaultFileMode is used for output files when Options.FileMode is zero.
const DefaultFileMode fs.FileMode = 0644

// Source applies groups to host in order. Each group's rendered text
// replaces every occurrence of that group's marker, so a later group may
// target a marker emitted by an earlier one.
func Source(host string, groups []dispatcher.Group) (string, error) {
	logger := logging.GetLogger("generate")

	for i, g := range groups {
		if err := g.Validate(); err != nil {
			logger.Error().Err(err).Int("group", i).Msg("invalid dispatch group")
			return "", err
		}

		rendered, err := g.Render()
		if err != nil {
			logger.Error().Err(err).Int("group", i).Str("marker", g.Marker).Msg("cannot render dispatch group")
			return "", err
		}

		if !source.Contains(host, g.Marker) {
			logger.Warn().
				Str("marker", g.Marker).
				Msg("marker not found in source, group output discarded")
		}
		host = source.Insert(host, g.Marker, rendered.String())
	}

	return host, nil
}

// Options describes one file generation run.
type Options struct {
	// InputPath is the skeleton file holding the markers.
	InputPath string
	// OutputPath receives the generated text.
	OutputPath string
	// Groups are applied in order.
	Groups []dispatcher.Group
	// FormatCommand, when set, is run with OutputPath appended after the
	// file is written.
	FormatCommand string
	// FormatTimeout bounds the formatter run.
	FormatTimeout time.Duration
	// FileMode for the output file (defaults to DefaultFileMode).
	FileMode fs.FileMode
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Result reports what a file generation run produced.
type Result struct {
	OutputPath string
	Content    string
	Formatted  bool
	// FormatErr holds a formatter failure. The output file is kept
	// unformatted when it is set.
	FormatErr error
}

// File reads the skeleton, generates, writes the output and optionally runs
// the formatter. I/O failures are returned; a formatter failure is logged and
// reported in Result.FormatErr without undoing the write.
func File(ctx context.Context, opts Options) (*Result, error) {
	logger := logging.GetLogger("generate")
	done := logging.LogOperationStart(logger, "generate_file")
	defer done()

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	mode := opts.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}

	data, err := fsys.ReadFile(opts.InputPath)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read skeleton %s", opts.InputPath).
			WithDetail("path", opts.InputPath)
	}

	content, err := Source(string(data), opts.Groups)
	if err != nil {
		return nil, err
	}

	if dir := filepath.Dir(opts.OutputPath); dir != "." && dir != "" {
		if err := fsys.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot create output directory %s", dir).
				WithDetail("path", dir)
		}
	}
	if err := fsys.WriteFile(opts.OutputPath, []byte(content), mode); err != nil {
		return nil, errors.Wrapf(err, errors.ErrFileWrite, "cannot write output %s", opts.OutputPath).
			WithDetail("path", opts.OutputPath)
	}

	logger.Info().
		Str("input", opts.InputPath).
		Str("output", opts.OutputPath).
		Int("groups", len(opts.Groups)).
		Int("bytes", len(content)).
		Msg("generated file")

	result := &Result{OutputPath: opts.OutputPath, Content: content}
	if opts.FormatCommand == "" {
		return result, nil
	}

	if err := formatter.New(opts.FormatCommand, opts.FormatTimeout).Run(ctx, opts.OutputPath); err != nil {
		logger.Error().
			Err(err).
			Str("command", opts.FormatCommand).
			Str("output", opts.OutputPath).
			Msg("Formatter failed, output left unformatted")
		result.FormatErr = err
		return result, nil
	}
	result.Formatted = true

	return result, nil
}
