package commands

import (
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/filesystem"
	"github.com/arthur-debert/itergen/pkg/generate"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/manifest"
	"github.com/arthur-debert/itergen/pkg/types"
)

// RenderOptions holds options for the render command
type RenderOptions struct {
	Manifest string
	// FileSystem is the filesystem to use (optional, defaults to OS filesystem)
	FileSystem types.FS
}

// Render produces the text a manifest would write, without writing it.
func Render(opts RenderOptions) (string, error) {
	logger := logging.GetLogger("commands.render")

	fsys := opts.FileSystem
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	m, err := manifest.Load(fsys, opts.Manifest)
	if err != nil {
		return "", err
	}
	groups, err := m.Build(fsys)
	if err != nil {
		return "", err
	}

	data, err := fsys.ReadFile(m.InputPath())
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFileRead, "cannot read skeleton %s", m.InputPath()).
			WithDetail("path", m.InputPath())
	}

	logger.Debug().
		Str("manifest", opts.Manifest).
		Str("input", m.InputPath()).
		Int("groups", len(groups)).
		Msg("Rendering manifest")

	return generate.Source(string(data), groups)
}
