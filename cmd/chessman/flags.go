// flags.go - Command-line flag definitions
package main

import "flag"

var (
	// Rendering options
	fenOnly  = flag.Bool("fen", false, "Print the canonical FEN encoding instead of the board")
	figurine = flag.Bool("unicode", false, "Render pieces as Unicode figurines")
	noColor  = flag.Bool("no-color", false, "Disable coloured output")

	// Batch validation
	checkMode = flag.Bool("check", false, "Validate files of FEN positions, one per line (stdin when no files)")
	workers   = flag.Int("workers", 0, "Number of worker threads for -check (0 = auto-detect based on CPU cores)")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)
