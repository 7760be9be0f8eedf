package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-wireworld/rules"
)

// Placement assigns a state to a single cell.
type Placement struct {
	Row  uint32
	Col  uint32
	Cell rules.Cell
}

// Options tunes how a World computes generations. The zero value gives a
// single-threaded world that allocates a fresh buffer every tick.
type Options struct {
	// Workers is the number of goroutines used per tick. Values below 2 keep
	// the tick on the calling goroutine.
	Workers int
	// Pool, when set, supplies and recycles the tick's second buffer.
	Pool *GridPool
}

// DefaultWorkers returns a worker count suited to the current machine
func DefaultWorkers() int {
	return runtime.NumCPU()
}

// World is the Wireworld engine. It owns one grid and advances it a
// generation at a time. A World is not safe for concurrent use; hosts must
// serialize their calls.
type World struct {
	grid       *Grid
	pool       *GridPool
	workers    int
	generation uint64
}

// NewWorld creates a single-threaded world with every cell Empty
func NewWorld(width, height uint32) *World {
	return NewWorldWithOptions(width, height, Options{})
}

// NewWorldWithOptions creates a world with every cell Empty
func NewWorldWithOptions(width, height uint32, opts Options) *World {
	w := &World{
		pool:    opts.Pool,
		workers: max(opts.Workers, 1),
	}
	if w.pool != nil {
		w.grid = w.pool.Get(width, height)
	} else {
		w.grid = NewGrid(width, height)
	}
	return w
}

// Width returns the number of columns
func (w *World) Width() uint32 {
	return w.grid.width
}

// Height returns the number of rows
func (w *World) Height() uint32 {
	return w.grid.height
}

// Generation returns the number of ticks since the world was created
func (w *World) Generation() uint64 {
	return w.generation
}

// Cells returns a read-only view of the cell buffer in row-major order. The
// view is only valid until the next ToggleCell, SetElectronHead, SetCells,
// Place or Tick call.
func (w *World) Cells() []rules.Cell {
	return w.grid.Cells()
}

// Bytes returns the same view as Cells as raw bytes, using the fixed
// encoding Empty=0, ElectronHead=1, ElectronTail=2, Conductor=3.
func (w *World) Bytes() []byte {
	return w.grid.Bytes()
}

// CopyBytes appends the cell buffer to dst and returns the result. Unlike
// Bytes, the returned slice belongs to the caller and survives mutation.
func (w *World) CopyBytes(dst []byte) []byte {
	return append(dst, w.grid.Bytes()...)
}

// Get returns the state of a cell
func (w *World) Get(row, col uint32) rules.Cell {
	return w.grid.Get(row, col)
}

// Census counts the current cells by state
func (w *World) Census() Census {
	return w.grid.Census()
}

// Hash returns an MD5 hash of the current cell buffer
func (w *World) Hash() string {
	return w.grid.Hash()
}

// ToggleCell flips Empty and Conductor into each other. Electron heads and
// tails are left alone.
func (w *World) ToggleCell(row, col uint32) {
	idx := w.grid.Index(row, col)
	switch w.grid.cells[idx] {
	case rules.Empty:
		w.grid.cells[idx] = rules.Conductor
	case rules.Conductor:
		w.grid.cells[idx] = rules.Empty
	}
}

// SetElectronHead ignites a conductor. Any other cell is left alone.
func (w *World) SetElectronHead(row, col uint32) {
	idx := w.grid.Index(row, col)
	if w.grid.cells[idx] == rules.Conductor {
		w.grid.cells[idx] = rules.ElectronHead
	}
}

// SetCells writes every placement in order, so the last write to a
// coordinate wins.
func (w *World) SetCells(placements []Placement) {
	for _, p := range placements {
		w.grid.Set(p.Row, p.Col, p.Cell)
	}
}

// Place writes a pattern with its origin at (row, col). Coordinates that run
// past an edge wrap around the torus.
func (w *World) Place(pattern Pattern, row, col uint32) {
	w.SetCells(pattern.wrapped(row, col, w.grid.width, w.grid.height))
}

// Tick advances the world by exactly one generation. Every cell's next state
// is computed from the pre-tick grid into a second buffer which then replaces
// the current one.
func (w *World) Tick() {
	var next *Grid
	if w.pool != nil {
		next = w.pool.Get(w.grid.width, w.grid.height)
	} else {
		next = NewGrid(w.grid.width, w.grid.height)
	}

	if w.workers > 1 && w.grid.height > 1 {
		w.tickParallel(next)
	} else {
		w.grid.stepRows(next, 0, w.grid.height)
	}

	GridToPool(w.grid, w.pool)
	w.grid = next
	w.generation++
}

// tickParallel splits the rows into contiguous bands, one per worker. Bands
// are disjoint in next and all workers only read w.grid.
func (w *World) tickParallel(next *Grid) {
	var (
		eg            errgroup.Group
		height        = w.grid.height
		numWorkers    = uint32(min(w.workers, int(height)))
		rowsPerWorker = (height + numWorkers - 1) / numWorkers // Ceiling division
	)

	for i := range numWorkers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, height)
		)
		if startRow >= height {
			break
		}

		eg.Go(func() error {
			w.grid.stepRows(next, startRow, endRow)
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		panic(fmt.Sprintf("model: parallel tick failed: %v", err))
	}
}
