package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dotgen/pkg/dot"
)

// fileConfig mirrors the TOML config file. All keys are optional:
//
//	fontname = "Helvetica"
//	dark = true
//
//	[suppress]
//	node_labels = true
//	edge_labels = true
//	node_styles = true
//	edge_styles = true
//	node_colors = true
//	edge_colors = true
//	arrows = true
type fileConfig struct {
	Fontname string         `toml:"fontname"`
	Dark     bool           `toml:"dark"`
	Suppress suppressConfig `toml:"suppress"`
}

type suppressConfig struct {
	NodeLabels bool `toml:"node_labels"`
	EdgeLabels bool `toml:"edge_labels"`
	NodeStyles bool `toml:"node_styles"`
	EdgeStyles bool `toml:"edge_styles"`
	NodeColors bool `toml:"node_colors"`
	EdgeColors bool `toml:"edge_colors"`
	Arrows     bool `toml:"arrows"`
}

// loadConfig reads a TOML config file. An explicitly requested path must
// exist; the default path is allowed to be absent and yields a zero config.
func loadConfig(path string, explicit bool) (fileConfig, error) {
	var cfg fileConfig
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) && !explicit {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// options converts the config into render options.
func (c fileConfig) options() dot.Options {
	return dot.Options{
		NoNodeLabels: c.Suppress.NodeLabels,
		NoEdgeLabels: c.Suppress.EdgeLabels,
		NoNodeStyles: c.Suppress.NodeStyles,
		NoEdgeStyles: c.Suppress.EdgeStyles,
		NoNodeColors: c.Suppress.NodeColors,
		NoEdgeColors: c.Suppress.EdgeColors,
		NoArrows:     c.Suppress.Arrows,
		Fontname:     c.Fontname,
		DarkTheme:    c.Dark,
	}
}
