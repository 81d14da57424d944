package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/matzehuels/dotgen/pkg/dot"
	"github.com/matzehuels/dotgen/pkg/graph"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output       string // output file path; empty means stdout
	config       string // config file path; empty means the default location
	noNodeLabels bool   // drop node label attributes
	noEdgeLabels bool   // drop edge label attributes
	noStyles     bool   // drop node and edge style attributes
	noColors     bool   // drop node and edge color attributes
	noArrows     bool   // drop custom arrowhead/arrowtail attributes
	fontname     string // graph-wide fontname attribute
	dark         bool   // white-on-black theme
}

// renderCommand creates the render command for emitting DOT text.
//
// Flags override the config file, which overrides the defaults (everything
// on, default fonts and colors).
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render a JSON graph document as DOT text",
		Long: `Render reads a JSON graph document and emits Graphviz DOT text.

Pass "-" to read the document from stdin. Without --output the DOT text
goes to stdout.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&opts.config, "config", "", "config file (default: ~/.config/dotgen/config.toml)")
	cmd.Flags().BoolVar(&opts.noNodeLabels, "no-node-labels", false, "omit node labels")
	cmd.Flags().BoolVar(&opts.noEdgeLabels, "no-edge-labels", false, "omit edge labels")
	cmd.Flags().BoolVar(&opts.noStyles, "no-styles", false, "omit node and edge styles")
	cmd.Flags().BoolVar(&opts.noColors, "no-colors", false, "omit node and edge colors")
	cmd.Flags().BoolVar(&opts.noArrows, "no-arrows", false, "omit custom arrowheads and arrowtails")
	cmd.Flags().StringVar(&opts.fontname, "fontname", "", "graph-wide font name")
	cmd.Flags().BoolVar(&opts.dark, "dark", false, "white-on-black theme")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, cmd *cobra.Command, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	options, err := buildOptions(cmd, opts)
	if err != nil {
		return err
	}

	g, err := readDocument(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded graph %q: %d nodes, %d edges", g.Name, len(g.NodeList), len(g.EdgeList))

	out := os.Stdout
	if opts.output != "" {
		f, err := os.Create(opts.output)
		if err != nil {
			return fmt.Errorf("create %s: %w", opts.output, err)
		}
		defer f.Close()
		out = f
	}

	if err := g.WriteDOT(out, options); err != nil {
		return err
	}

	if opts.output != "" {
		// Close errors carry deferred flush failures (e.g. a full disk).
		if err := out.Close(); err != nil {
			return fmt.Errorf("close %s: %w", opts.output, err)
		}
		prog.done(fmt.Sprintf("Rendered %s", g.Name))
		printSuccess("Wrote DOT output")
		printFile(opts.output)
		printStats(len(g.NodeList), len(g.EdgeList), len(g.SubgraphList))
	}
	return nil
}

// buildOptions merges the config file and command-line flags into render
// options. A flag that was set on the command line wins over the config.
func buildOptions(cmd *cobra.Command, opts *renderOpts) (dot.Options, error) {
	path := opts.config
	explicit := path != ""
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return dot.Options{}, err
	}

	merged := cfg.options()
	flags := cmd.Flags()
	if flags.Changed("no-node-labels") {
		merged.NoNodeLabels = opts.noNodeLabels
	}
	if flags.Changed("no-edge-labels") {
		merged.NoEdgeLabels = opts.noEdgeLabels
	}
	if flags.Changed("no-styles") {
		merged.NoNodeStyles = opts.noStyles
		merged.NoEdgeStyles = opts.noStyles
	}
	if flags.Changed("no-colors") {
		merged.NoNodeColors = opts.noColors
		merged.NoEdgeColors = opts.noColors
	}
	if flags.Changed("no-arrows") {
		merged.NoArrows = opts.noArrows
	}
	if flags.Changed("fontname") {
		merged.Fontname = opts.fontname
	}
	if flags.Changed("dark") {
		merged.DarkTheme = opts.dark
	}
	return merged, nil
}

// readDocument loads a graph document from a file path, or from stdin
// when the path is "-".
func readDocument(input string) (*graph.Graph, error) {
	if input == "-" {
		return graph.ReadGraph(os.Stdin)
	}
	return graph.ReadGraphFile(input)
}
