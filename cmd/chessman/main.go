// chessman is a tool for inspecting and validating chess positions in FEN format.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/griggsjared/chessman/internal/fen"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessman version %s\n", programVersion)
		os.Exit(0)
	}

	if *noColor {
		color.NoColor = true
	}

	if *checkMode {
		os.Exit(runCheck(flag.Args()))
	}

	board, err := fen.Decode(positionFromArgs(flag.Args()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "chessman: %v\n", err)
		os.Exit(1)
	}

	if *fenOnly {
		fmt.Println(fen.Encode(board))
		return
	}

	writePosition(os.Stdout, board, *figurine)
}

// positionFromArgs joins the positional arguments into a single FEN
// string, so the board and side-to-move fields need not be quoted.
// With no arguments the standard starting position is used.
func positionFromArgs(args []string) string {
	if len(args) == 0 {
		return fen.Initial
	}
	return strings.Join(args, " ")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessman [options] [FEN ...]\n\n")
	fmt.Fprintf(os.Stderr, "A tool for inspecting and validating chess positions in FEN format.\n\n")
	fmt.Fprintf(os.Stderr, "The positional arguments are joined into a single FEN string, so the\n")
	fmt.Fprintf(os.Stderr, "board and side-to-move fields need not be quoted. With no arguments\n")
	fmt.Fprintf(os.Stderr, "the standard starting position is shown.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nWith -check, the arguments name files of positions (one FEN per line,\n")
	fmt.Fprintf(os.Stderr, "stdin when none); blank lines and lines starting with '#' are skipped.\n")
}
