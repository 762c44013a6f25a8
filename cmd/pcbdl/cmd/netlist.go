package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/circuit"
	"github.com/Infinite-Blue-1042/pcbdl/pkg/netlist"
)

var netlistCmd = &cobra.Command{
	Use:   "netlist",
	Short: "KiCad netlist operations",
	Long:  `Commands for working with KiCad netlist exports (.net)`,
}

var netlistInfoCmd = &cobra.Command{
	Use:   "info <netlist_file>",
	Short: "Show netlist summary",
	Args:  cobra.ExactArgs(1),
	RunE:  runNetlistInfo,
}

var netlistPartsCmd = &cobra.Command{
	Use:   "parts <netlist_file> [refdes]",
	Short: "List part instances",
	Long: `List the part instances loaded from a netlist.

Without refdes argument: lists all parts
With refdes argument: shows details for that part`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runNetlistParts,
}

var netlistNetsCmd = &cobra.Command{
	Use:   "nets <netlist_file> [net_name]",
	Short: "List nets and their connections",
	Args:  cobra.RangeArgs(1, 2),
	RunE:  runNetlistNets,
}

func init() {
	rootCmd.AddCommand(netlistCmd)
	netlistCmd.AddCommand(netlistInfoCmd)
	netlistCmd.AddCommand(netlistPartsCmd)
	netlistCmd.AddCommand(netlistNetsCmd)
}

// newLoader builds a loader wired to the CLI's logger and config
func newLoader() *netlist.Loader {
	l := netlist.NewLoader()
	l.Log = logger
	if cfg.NoConnectPrefix != "" {
		l.NoConnectPrefix = cfg.NoConnectPrefix
	}
	return l
}

func runNetlistInfo(cmd *cobra.Command, args []string) error {
	filename := args[0]
	result, err := newLoader().LoadFile(filename)
	if err != nil {
		return fmt.Errorf("error loading netlist: %w", err)
	}

	fmt.Printf("Netlist: %s\n", filename)
	fmt.Println()
	fmt.Println("Statistics:")
	fmt.Printf("  Library templates: %d\n", len(result.Catalog))
	fmt.Printf("  Parts: %d\n", len(result.Parts))
	fmt.Printf("  Nets: %d\n", len(result.Design.Nets))

	pins := 0
	connections := 0
	for _, part := range result.Parts {
		pins += len(part.Pins)
	}
	for _, net := range result.Design.Nets {
		connections += len(net.Connections())
	}
	fmt.Printf("  Logical pins: %d\n", pins)
	fmt.Printf("  Connections: %d\n", connections)

	// Group parts by refdes prefix
	byPrefix := make(map[string]int)
	for _, part := range result.Parts {
		byPrefix[part.RefdesPrefix]++
	}
	if len(byPrefix) > 0 {
		fmt.Println()
		fmt.Println("Parts by prefix:")
		prefixes := make([]string, 0, len(byPrefix))
		for prefix := range byPrefix {
			prefixes = append(prefixes, prefix)
		}
		sort.Strings(prefixes)
		for _, prefix := range prefixes {
			fmt.Printf("  %-4s %d\n", prefix, byPrefix[prefix])
		}
	}

	return nil
}

func runNetlistParts(cmd *cobra.Command, args []string) error {
	result, err := newLoader().LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("error loading netlist: %w", err)
	}

	if len(args) >= 2 {
		return showPartDetails(result, args[1])
	}

	refdeses := make([]string, 0, len(result.Parts))
	for refdes := range result.Parts {
		refdeses = append(refdeses, refdes)
	}
	sort.Strings(refdeses)

	fmt.Printf("%-8s %-16s %-32s %s\n", "Refdes", "Value", "Package", "Behavior")
	for _, refdes := range refdeses {
		part := result.Parts[refdes]
		fmt.Printf("%-8s %-16s %-32s %s\n", part.Refdes, part.Value, part.Package, part.Behavior)
	}
	return nil
}

func showPartDetails(result *netlist.Result, refdes string) error {
	part, ok := result.Parts[refdes]
	if !ok {
		return fmt.Errorf("part %q not found in netlist", refdes)
	}

	fmt.Printf("Part: %s\n", part.Refdes)
	fmt.Printf("Value: %s\n", part.Value)
	fmt.Printf("Package: %s\n", part.Package)
	fmt.Printf("Behavior: %s\n", part.Behavior)
	fmt.Printf("Defined at: %s\n", part.DefinedAt)
	fmt.Println()
	fmt.Printf("Pins (%d):\n", len(part.Pins))
	for _, pin := range part.Pins {
		fmt.Printf("  %-12s %v\n", strings.Join(pin.Numbers, ","), pin.Names)
	}
	return nil
}

func runNetlistNets(cmd *cobra.Command, args []string) error {
	result, err := newLoader().LoadFile(args[0])
	if err != nil {
		return fmt.Errorf("error loading netlist: %w", err)
	}

	if len(args) >= 2 {
		net := result.Design.NetByName(args[1])
		if net == nil {
			return fmt.Errorf("net %q not found in netlist", args[1])
		}
		showNet(net)
		return nil
	}

	for _, net := range result.Design.Nets {
		showNet(net)
	}
	return nil
}

func showNet(net *circuit.Net) {
	fmt.Printf("%s (%d connections)\n", net.Name, len(net.Connections()))
	for _, pin := range net.Connections() {
		fmt.Printf("  %-10s %s\n", pin, pin.Name())
	}
}
