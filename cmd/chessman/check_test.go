package main

import (
	"bytes"
	stderrors "errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/griggsjared/chessman/internal/errors"
	"github.com/griggsjared/chessman/internal/testutil"
	"github.com/griggsjared/chessman/internal/worker"
)

func TestCheckPosition(t *testing.T) {
	t.Run("valid position", func(t *testing.T) {
		item := worker.Item{Source: "good.fen", Line: 3, Text: "8/8/8/3k4/8/8/4K3/8 b"}
		result := checkPosition(item)
		testutil.AssertNoError(t, result.Err)
		testutil.AssertEqual(t, result.Item, item)
	})

	t.Run("invalid position carries its origin", func(t *testing.T) {
		result := checkPosition(worker.Item{Source: "bad.fen", Line: 7, Text: "9/8/8/8/8/8/8/8 w"})
		testutil.AssertError(t, result.Err)

		var parseErr *errors.ParseError
		if !stderrors.As(result.Err, &parseErr) {
			t.Fatalf("result.Err = %T; want *errors.ParseError", result.Err)
		}
		testutil.AssertEqual(t, parseErr.File, "bad.fen")
		testutil.AssertEqual(t, parseErr.Line, 7)
		testutil.AssertTrue(t, stderrors.Is(result.Err, errors.ErrInvalidFEN), "should wrap ErrInvalidFEN")
		testutil.AssertContains(t, result.Err.Error(), "bad.fen:7")
	})
}

func TestCheckInput(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		wantChecked int
		wantInvalid int
		wantErrs    []string
	}{
		{
			name:        "all valid",
			input:       "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w\n8/8/8/3k4/8/8/4K3/8 b\n",
			wantChecked: 2,
		},
		{
			name:        "blank lines and comments skipped",
			input:       "# test positions\n\n8/8/8/8/8/8/8/8 w\n\n# done\n",
			wantChecked: 1,
		},
		{
			name:        "failures reported with file and line",
			input:       "8/8/8/8/8/8/8/8 w\nnot_a_position\n9/8/8/8/8/8/8/8 w\n",
			wantChecked: 3,
			wantInvalid: 2,
			wantErrs: []string{
				"positions.fen:2",
				"not enough fields",
				"positions.fen:3",
				"rank 8 does not expand to 8 squares",
			},
		},
		{
			name:        "empty input",
			input:       "",
			wantChecked: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var errBuf bytes.Buffer
			checked, invalid, err := checkInput(strings.NewReader(tt.input), "positions.fen", 2, &errBuf)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, checked, tt.wantChecked, "checked positions")
			testutil.AssertEqual(t, invalid, tt.wantInvalid, "invalid positions")
			for _, want := range tt.wantErrs {
				testutil.AssertContains(t, errBuf.String(), want)
			}
			if tt.wantInvalid == 0 {
				testutil.AssertEqual(t, errBuf.String(), "", "no failures should be reported")
			}
		})
	}
}

// TestResolveWorkers verifies that -workers 0 falls back to one worker
// per CPU core and explicit counts pass through.
func TestResolveWorkers(t *testing.T) {
	old := *workers
	t.Cleanup(func() { *workers = old })

	tests := []struct {
		name  string
		value int
		want  int
	}{
		{"zero defaults to CPU count", 0, runtime.NumCPU()},
		{"negative defaults to CPU count", -2, runtime.NumCPU()},
		{"explicit count passes through", 3, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			*workers = tt.value
			if got := resolveWorkers(); got != tt.want {
				t.Errorf("resolveWorkers() with -workers=%d = %d; want %d", tt.value, got, tt.want)
			}
		})
	}
}

// writeCheckFile writes a temporary file of FEN lines for runCheck tests.
func writeCheckFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunCheck(t *testing.T) {
	dir := t.TempDir()
	good := writeCheckFile(t, dir, "good.fen",
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w\n8/8/8/3k4/8/8/4K3/8 b\n")
	bad := writeCheckFile(t, dir, "bad.fen",
		"8/8/8/8/8/8/8/8 w\n8/8/8/8/8/8/8/8 x\n")

	tests := []struct {
		name  string
		paths []string
		want  int
	}{
		{"valid file exits 0", []string{good}, 0},
		{"invalid line exits 1", []string{bad}, 1},
		{"mixed files exit 1", []string{good, bad}, 1},
		{"missing file exits 1", []string{filepath.Join(dir, "absent.fen")}, 1},
		{"missing file then valid file still exits 1", []string{filepath.Join(dir, "absent.fen"), good}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := runCheck(tt.paths); got != tt.want {
				t.Errorf("runCheck(%v) = %d; want %d", tt.paths, got, tt.want)
			}
		})
	}
}
