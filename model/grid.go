package model

import (
	"crypto/md5"
	"fmt"
	"unsafe"

	"github.com/sheikhrachel/go-wireworld/rules"
)

// Grid is a fixed-size torus of Wireworld cells stored in row-major order:
// the cell at (row, col) lives at index row*width + col.
type Grid struct {
	width  uint32
	height uint32
	cells  []rules.Cell
}

// Census counts the cells of a grid by state.
type Census struct {
	Empty      int
	Heads      int
	Tails      int
	Conductors int
}

// NewGrid creates a grid with the specified dimensions, every cell Empty
func NewGrid(width, height uint32) *Grid {
	mustHaveDimensions(width, height)
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]rules.Cell, int(width)*int(height)),
	}
}

func mustHaveDimensions(width, height uint32) {
	if width == 0 || height == 0 {
		panic(fmt.Sprintf("model: grid dimensions must be positive, got %dx%d", width, height))
	}
}

// Width returns the number of columns
func (g *Grid) Width() uint32 {
	return g.width
}

// Height returns the number of rows
func (g *Grid) Height() uint32 {
	return g.height
}

// Reset resizes the grid and sets every cell to Empty
func (g *Grid) Reset(width, height uint32) {
	mustHaveDimensions(width, height)
	g.width = width
	g.height = height

	size := int(width) * int(height)
	if len(g.cells) != size {
		g.cells = make([]rules.Cell, size)
		return
	}
	g.Clear()
}

// Clear sets every cell to Empty
func (g *Grid) Clear() {
	clear(g.cells)
}

// Index returns the linear index of (row, col). Out-of-range coordinates are
// a caller bug and panic.
func (g *Grid) Index(row, col uint32) int {
	if row >= g.height || col >= g.width {
		panic(fmt.Sprintf("model: cell (%d, %d) out of range for %dx%d grid", row, col, g.width, g.height))
	}
	return int(row)*int(g.width) + int(col)
}

// Get returns the state of a cell
func (g *Grid) Get(row, col uint32) rules.Cell {
	return g.cells[g.Index(row, col)]
}

// Set writes the state of a cell
func (g *Grid) Set(row, col uint32, cell rules.Cell) {
	if !cell.Valid() {
		panic(fmt.Sprintf("model: invalid cell value %d at (%d, %d)", uint8(cell), row, col))
	}
	g.cells[g.Index(row, col)] = cell
}

// Cells exposes the backing slice. Callers must treat it as read-only.
func (g *Grid) Cells() []rules.Cell {
	return g.cells
}

// Bytes exposes the backing slice as raw bytes without copying.
func (g *Grid) Bytes() []byte {
	if len(g.cells) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&g.cells[0])), len(g.cells))
}

// HeadCount returns the number of electron heads among the eight Moore
// neighbors of (row, col), wrapping around the edges. Offsets of -1 are
// expressed as +(dim-1) so unsigned coordinates never underflow.
func (g *Grid) HeadCount(row, col uint32) uint8 {
	_ = g.Index(row, col)

	var count uint8
	for _, dRow := range [3]uint32{g.height - 1, 0, 1} {
		for _, dCol := range [3]uint32{g.width - 1, 0, 1} {
			if dRow == 0 && dCol == 0 {
				continue
			}
			r := (row + dRow) % g.height
			c := (col + dCol) % g.width
			if g.cells[int(r)*int(g.width)+int(c)] == rules.ElectronHead {
				count++
			}
		}
	}
	return count
}

// stepRows writes the next state of rows [startRow, endRow) into next,
// reading only from g.
func (g *Grid) stepRows(next *Grid, startRow, endRow uint32) {
	for row := startRow; row < endRow; row++ {
		base := int(row) * int(g.width)
		for col := range g.width {
			cell := g.cells[base+int(col)]

			// Only conductors look at their neighbors.
			var heads uint8
			if cell == rules.Conductor {
				heads = g.HeadCount(row, col)
			}
			next.cells[base+int(col)] = rules.ApplyWireworldRules(cell, heads)
		}
	}
}

// Census counts cells by state
func (g *Grid) Census() (census Census) {
	for _, cell := range g.cells {
		switch cell {
		case rules.ElectronHead:
			census.Heads++
		case rules.ElectronTail:
			census.Tails++
		case rules.Conductor:
			census.Conductors++
		default:
			census.Empty++
		}
	}
	return
}

// Hash returns an MD5 hash of the current grid state
func (g *Grid) Hash() string {
	h := md5.New()
	h.Write(g.Bytes())
	return fmt.Sprintf("%x", h.Sum(nil))
}
