// netlist-dump is a debugging aid: it parses a KiCad netlist with the
// generic chewxy/sexp parser and prints the raw section structure,
// independent of the import pipeline. Useful when a netlist fails to
// load and the question is whether the file or the loader is at fault.
package main

import (
	"fmt"
	"os"

	"github.com/chewxy/sexp"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: netlist-dump <netlist_file>")
		os.Exit(1)
	}

	filename := os.Args[1]
	file, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		os.Exit(1)
	}
	defer file.Close()

	info, _ := file.Stat()
	fmt.Printf("File: %s (%d bytes)\n", filename, info.Size())

	sexps, err := sexp.Parse(file)
	if err != nil {
		fmt.Printf("Error parsing s-expression: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Top-level s-expressions: %d\n", len(sexps))
	if len(sexps) == 0 {
		return
	}

	root := sexps[0]
	if root.IsLeaf() {
		fmt.Printf("Root is a bare atom: %s\n", root)
		return
	}

	fmt.Printf("Root elements: %d\n\n", root.LeafCount())
	fmt.Println("Sections:")
	for _, section := range children(root) {
		if section.IsLeaf() {
			fmt.Printf("  %-16s (atom)\n", fmt.Sprintf("%s", section))
			continue
		}
		entries := children(section)
		tag := "?"
		if len(entries) > 0 && entries[0].IsLeaf() {
			tag = fmt.Sprintf("%s", entries[0])
		}
		fmt.Printf("  %-16s %d entries\n", tag, len(entries)-1)
	}
}

// children flattens a list via Head/Tail traversal
func children(s sexp.Sexp) []sexp.Sexp {
	var items []sexp.Sexp
	for s != nil && !s.IsLeaf() {
		if s.LeafCount() == 0 {
			break
		}
		if head := s.Head(); head != nil {
			items = append(items, head)
		}
		if s.LeafCount() <= 1 {
			break
		}
		s = s.Tail()
	}
	return items
}
