// Package levels parses the plain-text level grid format and loads level
// packs from disk or from the levels built into the binary.
//
// A level file is read line by line. Every '#' is a block, any other
// character is empty space. The grid is as wide as its longest line and as
// tall as its line count; row 0 is the top of the grid.
package levels

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// BlockRune marks a block cell in a level file.
const BlockRune = '#'

var (
	// ErrEmptyGrid is returned for a level with no lines or only empty lines.
	ErrEmptyGrid = errors.New("levels: empty grid")
	// ErrNoBlocks is returned for a level that contains no blocks.
	ErrNoBlocks = errors.New("levels: grid has no blocks")
)

// Grid is a parsed level. Cells[row][col] reports whether a block is there.
// Rows shorter than Width are padded with empty cells.
type Grid struct {
	Width  int
	Height int
	Cells  [][]bool
}

// Cell is a block position in grid coordinates.
type Cell struct {
	Col, Row int
}

// ParseGrid reads a level grid from r.
func ParseGrid(r io.Reader) (Grid, error) {
	var lines [][]rune
	width := 0

	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := []rune(strings.TrimRight(sc.Text(), "\r"))
		width = max(width, len(line))
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return Grid{}, fmt.Errorf("levels: read grid: %w", err)
	}
	if len(lines) == 0 || width == 0 {
		return Grid{}, ErrEmptyGrid
	}

	g := Grid{Width: width, Height: len(lines), Cells: make([][]bool, len(lines))}
	blocks := 0
	for row, line := range lines {
		g.Cells[row] = make([]bool, width)
		for col, ch := range line {
			if ch == BlockRune {
				g.Cells[row][col] = true
				blocks++
			}
		}
	}
	if blocks == 0 {
		return Grid{}, ErrNoBlocks
	}
	return g, nil
}

// Blocks returns the block positions in reading order (top row first, left
// to right).
func (g Grid) Blocks() []Cell {
	var out []Cell
	for row, cells := range g.Cells {
		for col, ok := range cells {
			if ok {
				out = append(out, Cell{Col: col, Row: row})
			}
		}
	}
	return out
}

// BlockCount returns the number of blocks in the grid.
func (g Grid) BlockCount() int {
	n := 0
	for _, cells := range g.Cells {
		for _, ok := range cells {
			if ok {
				n++
			}
		}
	}
	return n
}

// String renders the grid back into the level file format.
func (g Grid) String() string {
	var sb strings.Builder
	for row, cells := range g.Cells {
		if row > 0 {
			sb.WriteByte('\n')
		}
		line := make([]rune, len(cells))
		for col, ok := range cells {
			line[col] = ' '
			if ok {
				line[col] = BlockRune
			}
		}
		sb.WriteString(strings.TrimRight(string(line), " "))
	}
	return sb.String()
}
