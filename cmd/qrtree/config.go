package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// loadGeometry reads a YAML geometry file. Unset fields keep their zero
// value and are filled from flag defaults by mergeGeometry.
func loadGeometry(path string) (geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return geometry{}, fmt.Errorf("read config: %w", err)
	}
	var g geometry
	if err := yaml.Unmarshal(data, &g); err != nil {
		return geometry{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return g, nil
}

// mergeGeometry overlays the file geometry with flag values: a flag the user
// set explicitly always wins; otherwise a non-zero file field wins over the
// flag default.
func mergeGeometry(file, flags geometry, cmd *cobra.Command) geometry {
	set := func(name string) bool { return cmd.Flags().Changed(name) || cmd.InheritedFlags().Changed(name) }

	out := file
	if set("rows") || file.Rows == 0 {
		out.Rows = flags.Rows
	}
	if set("cols") || file.Cols == 0 {
		out.Cols = flags.Cols
	}
	if set("local-tree") || file.LocalTree == "" {
		out.LocalTree = flags.LocalTree
	}
	if set("global-tree") || file.GlobalTree == "" {
		out.GlobalTree = flags.GlobalTree
	}
	if set("local-size") || file.LocalSize == 0 {
		out.LocalSize = flags.LocalSize
	}
	if set("global-size") {
		out.GlobalSize = flags.GlobalSize
	}
	if set("grid-rows") || file.GridRows == 0 {
		out.GridRows = flags.GridRows
	}
	if set("grid-cols") || file.GridCols == 0 {
		out.GridCols = flags.GridCols
	}
	if set("domino") {
		out.Domino = flags.Domino
	}
	if set("round-robin") {
		out.RoundRobin = flags.RoundRobin
	}
	return out
}
