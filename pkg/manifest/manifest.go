package manifest

import (
	"bytes"
	stderrors "errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/arthur-debert/itergen/pkg/binding"
	"github.com/arthur-debert/itergen/pkg/dispatcher"
	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/arthur-debert/itergen/pkg/iters"
	"github.com/arthur-debert/itergen/pkg/logging"
	"github.com/arthur-debert/itergen/pkg/template"
	"github.com/arthur-debert/itergen/pkg/types"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format identifies the manifest encoding.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// InputSuffix is stripped from the input path to derive a default output path.
const InputSuffix = ".in"

// FormatFromPath picks the encoding from the file extension. Anything that
// is not .yaml or .yml is read as TOML.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// BindingSpec is the declarative form of a binding.Binding.
type BindingSpec struct {
	Key    string   `toml:"key" yaml:"key"`
	Values []string `toml:"values" yaml:"values"`
	Mode   string   `toml:"mode" yaml:"mode"`
	Size   int      `toml:"size" yaml:"size"`
	Comma  bool     `toml:"comma" yaml:"comma"`
}

// GroupSpec is the declarative form of a dispatcher.Group. Exactly one of
// Template and TemplateFile must be set.
type GroupSpec struct {
	Marker       string        `toml:"marker" yaml:"marker"`
	Template     string        `toml:"template" yaml:"template"`
	TemplateFile string        `toml:"template_file" yaml:"template_file"`
	Combine      bool          `toml:"combine" yaml:"combine"`
	Insert       []BindingSpec `toml:"insert" yaml:"insert"`
	Remove       []BindingSpec `toml:"remove" yaml:"remove"`
}

// Manifest describes one skeleton file, where its output goes, and the
// groups that fill its markers.
type Manifest struct {
	Input        string      `toml:"input" yaml:"input"`
	Output       string      `toml:"output" yaml:"output"`
	Format       *bool       `toml:"format" yaml:"format"`
	FormatScript string      `toml:"format_script" yaml:"format_script"`
	Groups       []GroupSpec `toml:"groups" yaml:"groups"`

	// Path is the file the manifest was loaded from, if any.
	Path string `toml:"-" yaml:"-"`
}

// Load reads and parses the manifest at path.
func Load(fs types.FS, path string) (*Manifest, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrManifestLoad, "cannot read manifest %s", path).
			WithDetail("path", path)
	}

	m, err := Parse(data, FormatFromPath(path))
	if err != nil {
		if ie, ok := err.(*errors.ItergenError); ok {
			ie.WithDetail("path", path)
		}
		return nil, err
	}
	m.Path = path

	logger := logging.GetLogger("manifest")
	logger.Debug().
		Str("path", path).
		Int("groups", len(m.Groups)).
		Msg("loaded manifest")

	return m, nil
}

// Parse decodes a manifest. Unknown fields are rejected so that typos in
// keys surface instead of silently generating nothing.
func Parse(data []byte, format Format) (*Manifest, error) {
	var m Manifest

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&m); err != nil && !stderrors.Is(err, io.EOF) {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid YAML manifest")
		}
	case FormatTOML:
		dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
		if err := dec.Decode(&m); err != nil {
			return nil, errors.Wrap(err, errors.ErrManifestParse, "invalid TOML manifest")
		}
	default:
		return nil, errors.Newf(errors.ErrManifestParse, "unsupported manifest format %q", format)
	}

	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the parts of the manifest that do not need the filesystem.
func (m *Manifest) Validate() error {
	if m.Input == "" {
		return errors.New(errors.ErrManifestInvalid, "manifest has no input")
	}
	if len(m.Groups) == 0 {
		return errors.New(errors.ErrManifestInvalid, "manifest has no groups")
	}
	for i, g := range m.Groups {
		if g.Marker == "" {
			return errors.Newf(errors.ErrManifestInvalid, "group %d has no marker", i)
		}
		if (g.Template == "") == (g.TemplateFile == "") {
			return errors.Newf(errors.ErrManifestInvalid,
				"group %q must set exactly one of template and template_file", g.Marker)
		}
		if len(g.Remove) > 0 && len(g.Remove) != len(g.Insert) {
			return errors.Newf(errors.ErrRemovalMismatch,
				"group %q has %d insert bindings but %d remove bindings", g.Marker, len(g.Insert), len(g.Remove)).
				WithDetail("marker", g.Marker)
		}
	}
	return nil
}

// Dir is the directory relative paths in the manifest resolve against.
func (m *Manifest) Dir() string {
	if m.Path == "" {
		return "."
	}
	return filepath.Dir(m.Path)
}

// InputPath returns the skeleton path resolved against Dir.
func (m *Manifest) InputPath() string {
	return m.resolve(m.Input)
}

// OutputPath returns the output path resolved against Dir. When no output is
// configured the input path without its ".in" suffix is used.
func (m *Manifest) OutputPath() string {
	if m.Output != "" {
		return m.resolve(m.Output)
	}
	return strings.TrimSuffix(m.InputPath(), InputSuffix)
}

func (m *Manifest) resolve(p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(m.Dir(), p)
}

// Build converts the declarative groups into dispatch groups. Template files
// are read through fs.
func (m *Manifest) Build(fs types.FS) ([]dispatcher.Group, error) {
	logger := logging.GetLogger("manifest")
	groups := make([]dispatcher.Group, 0, len(m.Groups))

	for _, spec := range m.Groups {
		text := spec.Template
		if spec.TemplateFile != "" {
			path := m.resolve(spec.TemplateFile)
			data, err := fs.ReadFile(path)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrFileRead, "cannot read template %s", path).
					WithDetail("marker", spec.Marker)
			}
			text = string(data)
		}
		tmpl := template.New(text)

		insertions, err := buildBindings(spec.Insert)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "group %q insert", spec.Marker)
		}
		for _, b := range insertions {
			if b.Key() != "" && !tmpl.Has(b.Key()) {
				logger.Warn().
					Str("marker", spec.Marker).
					Str("key", b.Key()).
					Msg("binding key does not appear in template")
			}
		}

		var removals []binding.Binding
		if len(spec.Remove) > 0 {
			removals, err = buildBindings(spec.Remove)
			if err != nil {
				return nil, errors.Wrapf(err, errors.ErrManifestInvalid, "group %q remove", spec.Marker)
			}
		}

		groups = append(groups, dispatcher.Group{
			Marker:     spec.Marker,
			Template:   tmpl,
			Insertions: insertions,
			Removals:   removals,
			Combine:    spec.Combine,
		})
	}

	return groups, nil
}

func buildBindings(specs []BindingSpec) ([]binding.Binding, error) {
	out := make([]binding.Binding, 0, len(specs))
	for _, s := range specs {
		b, err := s.Binding()
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, nil
}

// Binding builds the binding described by s. An empty mode means product
// and a zero size means 1.
func (s BindingSpec) Binding() (binding.Binding, error) {
	mode := iters.ModeProduct
	if s.Mode != "" {
		m, err := iters.ParseMode(s.Mode)
		if err != nil {
			return binding.Binding{}, err
		}
		mode = m
	}

	opts := []binding.Option{binding.WithCommaFormat(s.Comma)}
	if s.Size != 0 {
		opts = append(opts, binding.WithGroupSize(s.Size))
	}
	return binding.New(s.Key, s.Values, mode, opts...)
}
