package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"
	"github.com/spf13/cobra"
)

// checkOpts holds the command-line flags for the check command.
type checkOpts struct {
	svg string // write an SVG preview to this path
}

// checkCommand creates the check command. It feeds DOT text through the
// embedded Graphviz engine to confirm Graphviz accepts it, optionally
// producing an SVG preview.
func (c *CLI) checkCommand() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate DOT text with the Graphviz parser",
		Long: `Check parses a DOT file with an embedded Graphviz engine and reports
whether Graphviz accepts it. Pass "-" to read the DOT text from stdin.

With --svg the graph is also laid out and written as an SVG preview.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVar(&opts.svg, "svg", "", "write an SVG preview to this file")

	return cmd
}

func (c *CLI) runCheck(ctx context.Context, input string, opts *checkOpts) error {
	logger := loggerFromContext(ctx)

	data, err := readDOT(input)
	if err != nil {
		return err
	}
	logger.Debugf("Read %d bytes of DOT", len(data))

	g, err := graphviz.ParseBytes(data)
	if err != nil {
		printError("Graphviz rejected the input")
		return fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()
	printSuccess("Valid DOT")

	if opts.svg == "" {
		return nil
	}

	prog := newProgress(logger)
	svg, err := renderSVG(ctx, data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.svg, svg, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", opts.svg, err)
	}
	prog.done("Rendered SVG preview")
	printFile(opts.svg)
	return nil
}

// readDOT loads DOT text from a file path, or from stdin when the path is "-".
func readDOT(input string) ([]byte, error) {
	if input == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(input)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", input, err)
	}
	return data, nil
}

// renderSVG lays out DOT text with Graphviz and returns the SVG bytes.
func renderSVG(ctx context.Context, dot []byte) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes(dot)
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root tag so the viewBox starts at the
// origin, which keeps previews consistent across Graphviz versions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
