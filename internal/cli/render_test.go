package cli

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// execute runs the CLI with the given arguments, discarding terminal output.
func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir()) // isolate from a real user config

	c := New(io.Discard, LogInfo)
	root := c.RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	return root.ExecuteContext(context.Background())
}

const sampleDoc = `{
  "name": "deps",
  "nodes": [
    {"id": "app"},
    {"id": "lib", "label": "library", "style": "bold", "color": "blue"}
  ],
  "edges": [
    {"from": "app", "to": "lib", "label": "uses", "head": ["vee"]}
  ]
}`

func writeSampleDoc(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleDoc), 0o644))
	return path
}

func TestRenderCommand(t *testing.T) {
	input := writeSampleDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")

	require.NoError(t, execute(t, "render", input, "-o", output))

	got, err := os.ReadFile(output)
	require.NoError(t, err)

	want := `digraph deps {
    app[label="app"];
    lib[label="library"][style="bold"][color="blue"];
    app -> lib[label="uses"][arrowhead="vee"];
}
`
	require.Equal(t, want, string(got))
}

func TestRenderCommandSuppressFlags(t *testing.T) {
	input := writeSampleDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")

	require.NoError(t, execute(t, "render", input, "-o", output,
		"--no-node-labels", "--no-edge-labels", "--no-styles", "--no-colors", "--no-arrows"))

	got, err := os.ReadFile(output)
	require.NoError(t, err)

	want := `digraph deps {
    app;
    lib;
    app -> lib;
}
`
	require.Equal(t, want, string(got))
}

func TestRenderCommandGlobalAttrFlags(t *testing.T) {
	input := writeSampleDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")

	require.NoError(t, execute(t, "render", input, "-o", output, "--fontname", "Courier", "--dark"))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(got), `fontname="Courier"`)
	require.Contains(t, string(got), `bgcolor="black"`)
}

func TestRenderCommandConfigFile(t *testing.T) {
	input := writeSampleDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")
	config := writeConfig(t, `
fontname = "Helvetica"

[suppress]
edge_labels = true
`)

	require.NoError(t, execute(t, "render", input, "-o", output, "--config", config))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(got), `fontname="Helvetica"`)
	require.NotContains(t, string(got), `label="uses"`)
}

func TestRenderCommandFlagOverridesConfig(t *testing.T) {
	input := writeSampleDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")
	config := writeConfig(t, `fontname = "Helvetica"`)

	require.NoError(t, execute(t, "render", input, "-o", output,
		"--config", config, "--fontname", "Courier"))

	got, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Contains(t, string(got), `fontname="Courier"`)
	require.NotContains(t, string(got), "Helvetica")
}

func TestRenderCommandMissingInput(t *testing.T) {
	require.Error(t, execute(t, "render", filepath.Join(t.TempDir(), "nope.json")))
}

func TestRenderCommandInvalidDocument(t *testing.T) {
	input := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(input, []byte(`{"name": "not a dot id"}`), 0o644))

	err := execute(t, "render", input)
	require.ErrorContains(t, err, "invalid DOT identifier")
}

func TestRootCommandSubcommands(t *testing.T) {
	c := New(io.Discard, LogInfo)
	root := c.RootCommand()

	for _, name := range []string{"render", "check", "completion"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}
}
