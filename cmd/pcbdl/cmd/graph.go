package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/netgraph"
)

var (
	graphOutput   string
	graphFormat   string
	graphDetailed bool
)

var netlistGraphCmd = &cobra.Command{
	Use:   "graph <netlist_file>",
	Short: "Render the connectivity graph",
	Long: `Render the loaded design's part/net connectivity as a Graphviz
node-link diagram, either as DOT source or rendered SVG.`,
	Args: cobra.ExactArgs(1),
	RunE: runNetlistGraph,
}

func init() {
	netlistCmd.AddCommand(netlistGraphCmd)
	netlistGraphCmd.Flags().StringVarP(&graphOutput, "output", "o", "", "output file (default stdout)")
	netlistGraphCmd.Flags().StringVarP(&graphFormat, "format", "f", "dot", "output format: dot or svg")
	netlistGraphCmd.Flags().BoolVar(&graphDetailed, "detailed", false, "include value and package in part labels")
}

func runNetlistGraph(cmd *cobra.Command, args []string) error {
	result, err := newLoader().LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("error loading netlist: %w", err)
	}

	dot := netgraph.ToDOT(result.Design, netgraph.Options{Detailed: graphDetailed})

	var out []byte
	switch strings.ToLower(graphFormat) {
	case "dot":
		out = []byte(dot)
	case "svg":
		out, err = netgraph.RenderSVG(dot)
		if err != nil {
			return fmt.Errorf("error rendering graph: %w", err)
		}
	default:
		return fmt.Errorf("unknown format %q: expected dot or svg", graphFormat)
	}

	if graphOutput == "" {
		_, err = os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(graphOutput, out, 0o644); err != nil {
		return fmt.Errorf("error writing output: %w", err)
	}
	logger.Info("wrote connectivity graph", "file", graphOutput, "format", graphFormat)
	return nil
}
