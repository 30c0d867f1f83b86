package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/arthur-debert/itergen/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the user config at an empty directory so a developer's own
// settings cannot leak into the tests.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir(), nil)
	require.NoError(t, err)

	assert.True(t, cfg.Format.Enabled)
	assert.Empty(t, cfg.Format.Script)
	assert.Equal(t, 2*time.Minute, cfg.Format.Timeout)
	assert.Equal(t, os.FileMode(0644), cfg.Output.FileMode)
	assert.Contains(t, cfg.Discovery.Patterns, "**/*.itergen.toml")
	assert.Contains(t, cfg.Discovery.Exclude, "**/.git/**")
}

func TestLoadLayers(t *testing.T) {
	t.Run("user_file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, "itergen"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(home, "itergen", "config.toml"), []byte(`
[format]
script = "clang-format -i"
`), 0644))

		cfg, err := Load(t.TempDir(), nil)
		require.NoError(t, err)
		assert.Equal(t, "clang-format -i", cfg.Format.Script)
		assert.True(t, cfg.Format.Enabled)
	})

	t.Run("project_file_beats_user_file", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", home)
		require.NoError(t, os.MkdirAll(filepath.Join(home, "itergen"), 0755))
		require.NoError(t, os.WriteFile(filepath.Join(home, "itergen", "config.toml"), []byte(`
[format]
script = "clang-format -i"
`), 0644))

		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFile), []byte(`
[format]
script = "gofmt -w"
timeout = "15s"

[discovery]
patterns = ["gen/*.toml"]
`), 0644))

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "gofmt -w", cfg.Format.Script)
		assert.Equal(t, 15*time.Second, cfg.Format.Timeout)
		assert.Equal(t, []string{"gen/*.toml"}, cfg.Discovery.Patterns)
	})

	t.Run("env_beats_files", func(t *testing.T) {
		isolate(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFile), []byte("[format]\nscript = \"gofmt -w\"\n"), 0644))

		t.Setenv("ITERGEN_FORMAT_SCRIPT", "black -q")
		t.Setenv("ITERGEN_FORMAT_ENABLED", "false")
		t.Setenv("ITERGEN_OUTPUT_FILE_MODE", "0600")
		t.Setenv("ITERGEN_DISCOVERY_EXCLUDE", "build/**,dist/**")

		cfg, err := Load(root, nil)
		require.NoError(t, err)
		assert.Equal(t, "black -q", cfg.Format.Script)
		assert.False(t, cfg.Format.Enabled)
		assert.Equal(t, os.FileMode(0600), cfg.Output.FileMode)
		assert.Equal(t, []string{"build/**", "dist/**"}, cfg.Discovery.Exclude)
	})

	t.Run("overrides_beat_env", func(t *testing.T) {
		isolate(t)
		t.Setenv("ITERGEN_FORMAT_SCRIPT", "black -q")

		cfg, err := Load(t.TempDir(), map[string]interface{}{
			"format.script":  "yapf -i",
			"format.enabled": true,
		})
		require.NoError(t, err)
		assert.Equal(t, "yapf -i", cfg.Format.Script)
		assert.True(t, cfg.Format.Enabled)
	})
}

func TestLoadErrors(t *testing.T) {
	t.Run("broken_project_file", func(t *testing.T) {
		isolate(t)
		root := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(root, ProjectFile), []byte("[format\n"), 0644))

		_, err := Load(root, nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("bad_duration", func(t *testing.T) {
		isolate(t)
		t.Setenv("ITERGEN_FORMAT_TIMEOUT", "soon")

		_, err := Load(t.TempDir(), nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("negative_timeout", func(t *testing.T) {
		isolate(t)
		t.Setenv("ITERGEN_FORMAT_TIMEOUT", "-1s")

		_, err := Load(t.TempDir(), nil)
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "format.script", envKey("ITERGEN_FORMAT_SCRIPT"))
	assert.Equal(t, "output.file_mode", envKey("ITERGEN_OUTPUT_FILE_MODE"))
	assert.Equal(t, "verbose", envKey("ITERGEN_VERBOSE"))
}

func TestMarshal(t *testing.T) {
	isolate(t)

	cfg, err := Load(t.TempDir(), map[string]interface{}{"format.script": "gofmt -w"})
	require.NoError(t, err)

	data, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(data), "gofmt -w")

	_, err = (&Config{}).Marshal()
	assert.Error(t, err)
}

func TestDefaultContent(t *testing.T) {
	content := DefaultContent()

	assert.Contains(t, content, "[format]")
	assert.Contains(t, content, "# enabled = true")
	assert.Contains(t, content, `# file_mode = "0644"`)

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		assert.True(t, strings.HasPrefix(trimmed, "["), "uncommented value line: %q", line)
	}
}

func TestBytesProvider(t *testing.T) {
	p := &bytesProvider{data: defaultConfig}

	data, err := p.ReadBytes()
	require.NoError(t, err)
	assert.Contains(t, string(data), `file_mode = "0644"`)

	_, err = p.Read()
	assert.Error(t, err)
}
