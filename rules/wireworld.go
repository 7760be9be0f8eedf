package rules

import "fmt"

// Cell is the state of a single Wireworld cell. The numeric values are part
// of the byte buffer exposed to hosts and must not change.
type Cell uint8

const (
	Empty        Cell = 0
	ElectronHead Cell = 1
	ElectronTail Cell = 2
	Conductor    Cell = 3
)

// Valid reports whether c is one of the four defined states.
func (c Cell) Valid() bool {
	return c <= Conductor
}

func (c Cell) String() string {
	switch c {
	case Empty:
		return "Empty"
	case ElectronHead:
		return "ElectronHead"
	case ElectronTail:
		return "ElectronTail"
	case Conductor:
		return "Conductor"
	}
	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Glyph returns the single character used for c in text patterns.
func (c Cell) Glyph() byte {
	switch c {
	case ElectronHead:
		return 'H'
	case ElectronTail:
		return 'T'
	case Conductor:
		return 'C'
	}
	return '.'
}

// ParseGlyph maps a text pattern character back to a Cell.
func ParseGlyph(b byte) (Cell, bool) {
	switch b {
	case '.', ' ':
		return Empty, true
	case 'H', 'h':
		return ElectronHead, true
	case 'T', 't':
		return ElectronTail, true
	case 'C', 'c', '#':
		return Conductor, true
	}
	return Empty, false
}

/*
ApplyWireworldRules returns the next state of a cell given its current state
and the number of electron heads among its eight Moore neighbors.

	Empty        -> Empty
	ElectronHead -> ElectronTail
	ElectronTail -> Conductor
	Conductor    -> ElectronHead if 1 <= heads <= 2, else Conductor
*/
func ApplyWireworldRules(cell Cell, heads uint8) Cell {
	switch cell {
	case ElectronHead:
		return ElectronTail
	case ElectronTail:
		return Conductor
	case Conductor:
		if heads == 1 || heads == 2 {
			return ElectronHead
		}
		return Conductor
	}
	return Empty
}
