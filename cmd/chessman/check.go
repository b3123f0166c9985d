// check.go - Batch validation of FEN position files
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/griggsjared/chessman/internal/errors"
	"github.com/griggsjared/chessman/internal/fen"
	"github.com/griggsjared/chessman/internal/worker"
)

// checkBuffer is the work/result channel buffer size for batch checks.
const checkBuffer = 100

// resolveWorkers returns the pool size for -check. A zero or negative
// flag value means one worker per CPU core.
func resolveWorkers() int {
	if *workers > 0 {
		return *workers
	}
	return runtime.NumCPU()
}

// runCheck validates every position in the named files (stdin when
// none) and returns the process exit code.
func runCheck(paths []string) int {
	numWorkers := resolveWorkers()

	var checked, invalid int
	readFailed := false

	if len(paths) == 0 {
		var err error
		checked, invalid, err = checkInput(os.Stdin, "stdin", numWorkers, os.Stderr)
		if err != nil {
			fmt.Fprintf(os.Stderr, "chessman: reading stdin: %v\n", err)
			readFailed = true
		}
	} else {
		for _, name := range paths {
			file, err := os.Open(name) //nolint:gosec // G304: CLI tool opens user-specified files
			if err != nil {
				fmt.Fprintf(os.Stderr, "chessman: %v\n", err)
				readFailed = true
				continue
			}

			lines, bad, err := checkInput(file, name, numWorkers, os.Stderr)
			checked += lines
			invalid += bad
			if err != nil {
				fmt.Fprintf(os.Stderr, "chessman: reading %s: %v\n", name, err)
				readFailed = true
			}

			file.Close() //nolint:errcheck,gosec // G104: read-only file
		}
	}

	fmt.Fprintf(os.Stderr, "%d invalid position(s) out of %d.\n", invalid, checked)
	if invalid > 0 || readFailed {
		return 1
	}
	return 0
}

// checkInput validates every FEN line from r, skipping blank lines and
// '#' comments. Failures are written to errW as the workers report
// them; the returned error is a broken read, not a bad position.
func checkInput(r io.Reader, name string, numWorkers int, errW io.Writer) (checked, invalid int, err error) {
	pool := worker.NewPool(numWorkers, checkBuffer, checkPosition)
	pool.Start()

	// The single consumer owns the counters and the error writer while
	// the pool runs; they are read again only after it drains.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for result := range pool.Results() {
			checked++
			if result.Err != nil {
				invalid++
				fmt.Fprintf(errW, "%v\n", result.Err)
			}
		}
	}()

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		pool.Submit(worker.Item{Source: name, Line: line, Text: text})
	}
	pool.Close()
	<-done

	return checked, invalid, scanner.Err()
}

// checkPosition decodes one submitted line, attaching its origin to
// any failure.
func checkPosition(item worker.Item) worker.Result {
	result := worker.Result{Item: item}
	if _, err := fen.Decode(item.Text); err != nil {
		result.Err = &errors.ParseError{Err: err, File: item.Source, Line: item.Line}
	}
	return result
}
