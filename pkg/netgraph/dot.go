// Package netgraph renders a loaded design's connectivity as a Graphviz
// node-link diagram: parts as boxes, nets as ellipses, one edge per
// logical pin connection.
package netgraph

import (
	"bytes"
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Infinite-Blue-1042/pcbdl/pkg/circuit"
)

// Options configures connectivity rendering.
type Options struct {
	// Detailed adds value and package lines to part node labels.
	// When false, only the refdes is shown.
	Detailed bool
}

// ToDOT converts a design to Graphviz DOT format. Parts are emitted in
// refdes order and nets in registration order so output is stable.
func ToDOT(d *circuit.Design, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph connectivity {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, refdes := range slices.Sorted(maps.Keys(d.Parts)) {
		part := d.Parts[refdes]
		fmt.Fprintf(&buf, "  %q [label=%q];\n", refdes, partLabel(part, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, net := range d.Nets {
		fmt.Fprintf(&buf, "  %q [shape=ellipse, fillcolor=lightgrey];\n", netID(net))
	}

	buf.WriteString("\n")
	for _, net := range d.Nets {
		for _, pin := range net.Connections() {
			fmt.Fprintf(&buf, "  %q -- %q [label=%q];\n",
				pin.Part.Refdes, netID(net), pinLabel(pin))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func partLabel(p *circuit.Part, detailed bool) string {
	if !detailed {
		return p.Refdes
	}

	lines := []string{p.Refdes}
	if p.Value != "" {
		lines = append(lines, p.Value)
	}
	if p.Package != "" {
		lines = append(lines, p.Package)
	}
	return strings.Join(lines, "\n")
}

func netID(n *circuit.Net) string {
	return "net:" + n.Name
}

func pinLabel(pin *circuit.Pin) string {
	if name := pin.Name(); name != "" {
		return name
	}
	if len(pin.Numbers) > 0 {
		return pin.Numbers[0]
	}
	return ""
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
