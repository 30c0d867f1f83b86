package commands

import (
	"context"
	"os"
	"path/filepath"

	"github.com/arthur-debert/itergen/pkg/config"
	"github.com/arthur-debert/itergen/pkg/discovery"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/filesystem"
	"github.com/arthur-debert/itergen/pkg/generate"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/manifest"
	"github.com/arthur-debert/itergen/pkg/types"
)

// GenerateOptions holds options for the generate command
type GenerateOptions struct {
	// Root is searched for manifests when Manifests is empty.
	Root string
	// Manifests to generate, in order.
	Manifests []string
	// Config supplies formatter, file mode and discovery defaults.
	Config *config.Config
	// Format and FormatScript, when set, beat both config and manifest.
	Format       *bool
	FormatScript string
	// DryRun renders into memory and never runs the formatter.
	DryRun bool
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// GenerateResult holds one report per manifest
type GenerateResult struct {
	Reports []types.Report
	Failed  int
}

// Generate runs every manifest and reports each outcome. A failing manifest
// does not stop the others; the caller decides what Failed > 0 means.
func Generate(ctx context.Context, opts GenerateOptions) (*GenerateResult, error) {
	logger := logging.GetLogger("commands.generate")
	done := logging.LogOperationStart(logger, "generate")
	defer done()

	cfg := opts.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(opts.Root, nil); err != nil {
			return nil, err
		}
	}

	fsys := opts.FileSystem
	switch {
	case fsys == nil && opts.DryRun:
		fsys = filesystem.NewOverlay()
	case fsys == nil:
		fsys = filesystem.NewOS()
	}

	paths := opts.Manifests
	if len(paths) == 0 {
		found, err := DiscoverManifests(opts.Root, cfg)
		if err != nil {
			return nil, err
		}
		paths = found
	}

	result := &GenerateResult{}
	for _, path := range paths {
		report := generateOne(ctx, fsys, cfg, opts, path)
		if report.Status == types.ReportFailed {
			result.Failed++
			logger.Error().Err(report.Err).Str("manifest", path).Msg("Manifest failed")
		}
		result.Reports = append(result.Reports, report)
	}

	logger.Info().
		Int("manifests", len(paths)).
		Int("failed", result.Failed).
		Bool("dry_run", opts.DryRun).
		Msg("Generation finished")

	return result, nil
}

// DiscoverManifests finds manifests below root using the configured globs.
// The returned paths are joined with root.
func DiscoverManifests(root string, cfg *config.Config) ([]string, error) {
	if root == "" {
		root = "."
	}
	info, err := os.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, errors.Newf(errors.ErrNotFound, "project root %s is not a directory", root).
			WithDetail("path", root)
	}

	found, err := discovery.Find(os.DirFS(root), cfg.Discovery.Patterns, cfg.Discovery.Exclude)
	if err != nil {
		return nil, err
	}

	paths := make([]string, len(found))
	for i, f := range found {
		paths[i] = filepath.Join(root, filepath.FromSlash(f))
	}
	return paths, nil
}

func generateOne(ctx context.Context, fsys types.FS, cfg *config.Config, opts GenerateOptions, path string) types.Report {
	report := types.Report{Manifest: path, Status: types.ReportFailed}

	m, err := manifest.Load(fsys, path)
	if err != nil {
		report.Err = err
		return report
	}
	report.Output = m.OutputPath()

	groups, err := m.Build(fsys)
	if err != nil {
		report.Err = err
		return report
	}
	report.Groups = len(groups)

	res, err := generate.File(ctx, generate.Options{
		InputPath:     m.InputPath(),
		OutputPath:    m.OutputPath(),
		Groups:        groups,
		FormatCommand: formatCommand(cfg, m, opts),
		FormatTimeout: cfg.Format.Timeout,
		FileMode:      cfg.Output.FileMode,
		FileSystem:    fsys,
	})
	if err != nil {
		report.Err = err
		return report
	}
	report.Bytes = len(res.Content)

	switch {
	case opts.DryRun:
		report.Status = types.ReportDryRun
	case res.FormatErr != nil:
		report.Status = types.ReportFormatFailed
		report.Err = res.FormatErr
	case res.Formatted:
		report.Status = types.ReportFormatted
	default:
		report.Status = types.ReportGenerated
	}
	return report
}

// formatCommand resolves the formatter for one manifest. Precedence is
// command line, then manifest, then configuration.
func formatCommand(cfg *config.Config, m *manifest.Manifest, opts GenerateOptions) string {
	if opts.DryRun {
		return ""
	}

	enabled := cfg.Format.Enabled
	if m.Format != nil {
		enabled = *m.Format
	}
	if opts.Format != nil {
		enabled = *opts.Format
	}
	if !enabled {
		return ""
	}

	script := cfg.Format.Script
	if m.FormatScript != "" {
		script = m.FormatScript
	}
	if opts.FormatScript != "" {
		script = opts.FormatScript
	}
	return script
}
