package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/matzehuels/dotgen/pkg/dot"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
fontname = "Helvetica"
dark = true

[suppress]
node_labels = true
arrows = true
`)

	cfg, err := loadConfig(path, true)
	require.NoError(t, err)
	require.Equal(t, "Helvetica", cfg.Fontname)
	require.True(t, cfg.Dark)
	require.True(t, cfg.Suppress.NodeLabels)
	require.True(t, cfg.Suppress.Arrows)
	require.False(t, cfg.Suppress.EdgeLabels)

	opts := cfg.options()
	want := dot.Options{
		NoNodeLabels: true,
		NoArrows:     true,
		Fontname:     "Helvetica",
		DarkTheme:    true,
	}
	require.Equal(t, want, opts)
}

func TestLoadConfigMissingDefault(t *testing.T) {
	// The default config location is allowed to be absent.
	cfg, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), false)
	require.NoError(t, err)
	require.Equal(t, fileConfig{}, cfg)
}

func TestLoadConfigMissingExplicit(t *testing.T) {
	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml"), true)
	require.Error(t, err)
}

func TestLoadConfigBadTOML(t *testing.T) {
	path := writeConfig(t, `fontname = [not toml`)
	_, err := loadConfig(path, true)
	require.ErrorContains(t, err, "config")
}

func TestLoadConfigEmptyPath(t *testing.T) {
	cfg, err := loadConfig("", false)
	require.NoError(t, err)
	require.Equal(t, fileConfig{}, cfg)
}
