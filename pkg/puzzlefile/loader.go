// Package puzzlefile loads Slitherlink puzzles from the plain-text
// format understood by the original repository: one puzzle per line,
// whitespace-separated integers, dimensions first, then hints in
// row-major order.
package puzzlefile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/ppvan/slitherlink/pkg/slither"
)

// LoadReader parses every non-blank line of r as one puzzle and
// returns the resulting boards in file order. Unlike the source this
// is grounded on, it holds no process-wide cache: it is a pure
// function of r's contents, so callers needing memoization can add
// their own.
func LoadReader(r io.Reader) ([]*slither.Board, error) {
	var boards []*slither.Board

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		b, err := parseLine(line)
		if err != nil {
			return nil, fmt.Errorf("puzzlefile: line %d: %w", lineNo, err)
		}
		boards = append(boards, b)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}

	return boards, nil
}

// Load opens path and parses it via LoadReader.
func Load(path string) ([]*slither.Board, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	defer f.Close()

	return LoadReader(f)
}

// parseLine parses "R C v00 v01 ... v_{R-1,C-1}" into a Board.
func parseLine(line string) (*slither.Board, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return nil, fmt.Errorf("expected at least 2 fields, got %d", len(fields))
	}

	ints := make([]int64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("field %d (%q): %w", i, f, err)
		}
		ints[i] = v
	}

	rows, cols := int(ints[0]), int(ints[1])
	want := rows * cols
	if len(ints)-2 != want {
		return nil, fmt.Errorf("expected %d hints for a %dx%d board, got %d", want, rows, cols, len(ints)-2)
	}

	hints := make([]int8, want)
	for i, v := range ints[2:] {
		hints[i] = int8(v)
	}

	return slither.NewBoard(rows, cols, hints)
}
