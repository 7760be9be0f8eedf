package model

import (
	"testing"

	"github.com/sheikhrachel/go-wireworld/rules"
)

func TestIndexIsRowMajor(t *testing.T) {
	g := NewGrid(5, 3)
	if got := g.Index(0, 0); got != 0 {
		t.Fatalf("Index(0, 0) = %d", got)
	}
	if got := g.Index(2, 4); got != 14 {
		t.Fatalf("Index(2, 4) = %d, expected 14", got)
	}
	if got := g.Index(1, 0); got != 5 {
		t.Fatalf("Index(1, 0) = %d, expected 5", got)
	}
}

func TestHeadCountWrapsAroundCorners(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(2, 2, rules.ElectronHead)

	if got := g.HeadCount(0, 0); got != 1 {
		t.Fatalf("HeadCount(0, 0) = %d, expected 1 through the corner", got)
	}
	if got := g.HeadCount(2, 2); got != 0 {
		t.Fatalf("HeadCount(2, 2) = %d, a cell is not its own neighbor", got)
	}
}

func TestHeadCountIgnoresTailsAndConductors(t *testing.T) {
	g := NewGrid(4, 4)
	g.Set(0, 0, rules.ElectronTail)
	g.Set(0, 1, rules.Conductor)
	g.Set(0, 2, rules.ElectronHead)
	g.Set(2, 2, rules.ElectronHead)

	if got := g.HeadCount(1, 1); got != 2 {
		t.Fatalf("HeadCount(1, 1) = %d, expected 2", got)
	}
}

func TestHeadCountAllNeighbors(t *testing.T) {
	g := NewGrid(3, 3)
	for row := range uint32(3) {
		for col := range uint32(3) {
			g.Set(row, col, rules.ElectronHead)
		}
	}
	if got := g.HeadCount(1, 1); got != 8 {
		t.Fatalf("HeadCount(1, 1) = %d, expected 8", got)
	}
}

// On a one-column grid every horizontal neighbor is the cell's own column,
// so neighbors along that axis are counted more than once.
func TestHeadCountOneWideGrid(t *testing.T) {
	g := NewGrid(1, 3)
	g.Set(0, 0, rules.ElectronHead)

	if got := g.HeadCount(1, 0); got != 3 {
		t.Fatalf("HeadCount(1, 0) = %d, expected 3", got)
	}
	if got := g.HeadCount(0, 0); got != 1 {
		t.Fatalf("HeadCount(0, 0) = %d, expected 1", got)
	}
}

func TestCensusAndHash(t *testing.T) {
	a := NewGrid(4, 2)
	a.Set(0, 0, rules.ElectronHead)
	a.Set(0, 1, rules.ElectronTail)
	a.Set(1, 2, rules.Conductor)
	a.Set(1, 3, rules.Conductor)

	census := a.Census()
	if census != (Census{Empty: 4, Heads: 1, Tails: 1, Conductors: 2}) {
		t.Fatalf("Census() = %+v", census)
	}

	b := NewGrid(4, 2)
	if a.Hash() == b.Hash() {
		t.Fatal("different grids hash the same")
	}
	b.Set(0, 0, rules.ElectronHead)
	b.Set(0, 1, rules.ElectronTail)
	b.Set(1, 2, rules.Conductor)
	b.Set(1, 3, rules.Conductor)
	if a.Hash() != b.Hash() {
		t.Fatal("equal grids hash differently")
	}
}

func TestGridPoolResetsGrids(t *testing.T) {
	pool := NewGridPool()

	g := pool.Get(3, 2)
	if g.Width() != 3 || g.Height() != 2 || len(g.Cells()) != 6 {
		t.Fatalf("pooled grid is %dx%d with %d cells", g.Width(), g.Height(), len(g.Cells()))
	}
	g.Set(1, 1, rules.Conductor)
	GridToPool(g, pool)

	g = pool.Get(3, 2)
	for i, cell := range g.Cells() {
		if cell != rules.Empty {
			t.Fatalf("pooled grid cell %d = %v, expected Empty", i, cell)
		}
	}

	g = pool.Get(5, 5)
	if len(g.Cells()) != 25 {
		t.Fatalf("resized pooled grid has %d cells", len(g.Cells()))
	}
}
