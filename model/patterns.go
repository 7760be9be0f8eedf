package model

import (
	"os"
	"sort"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-wireworld/rules"
)

// Pattern is a set of non-empty cells relative to an origin at (0, 0).
type Pattern []Placement

var builtinPatterns = map[string]string{
	// Loop circuit seeded with one head; settles into a cycle of period 18
	// after 7 generations.
	"clock": `
...CC...
CCCC.CCC
C..CC..C
H......C
C..CC..C
CCC.CCCC
...CC...`,
	"diode": `
..CC....
THC.CCCC
..CC....`,
	"wire": `THCCCCCCCCCCCCCC`,
}

// BuiltinPatternNames lists the names accepted by BuiltinPattern
func BuiltinPatternNames() []string {
	names := make([]string, 0, len(builtinPatterns))
	for name := range builtinPatterns {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinPattern returns one of the bundled circuits by name
func BuiltinPattern(name string) (Pattern, error) {
	text, ok := builtinPatterns[name]
	if !ok {
		return nil, errors.Errorf("[BuiltinPattern] unknown pattern %q, want one of %v", name, BuiltinPatternNames())
	}
	return ParsePattern(text)
}

// LoadPatternFile reads a text pattern from disk
func LoadPatternFile(filename string) (Pattern, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] failed to read file: %+v", filename)
	}

	pattern, err := ParsePattern(string(data))
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPatternFile] failed to parse file: %+v", filename)
	}
	return pattern, nil
}

/*
ParsePattern reads a pattern drawn as text, one line per row:

	'.' or ' '  Empty
	'C' or '#'  Conductor
	'H'         ElectronHead
	'T'         ElectronTail

Lines starting with '!' are comments. Leading and trailing blank lines are
dropped so patterns can be written as raw string literals.
*/
func ParsePattern(text string) (Pattern, error) {
	lines := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	var rows []string
	for _, line := range lines {
		if strings.HasPrefix(line, "!") {
			continue
		}
		rows = append(rows, line)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[0]) == "" {
		rows = rows[1:]
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	var pattern Pattern
	for r, line := range rows {
		for c := 0; c < len(line); c++ {
			cell, ok := rules.ParseGlyph(line[c])
			if !ok {
				return nil, errors.Errorf("[ParsePattern] unexpected %q at line %d, column %d", line[c], r+1, c+1)
			}
			if cell == rules.Empty {
				continue
			}
			pattern = append(pattern, Placement{Row: uint32(r), Col: uint32(c), Cell: cell})
		}
	}
	return pattern, nil
}

// Translate returns a copy of the pattern shifted by (dRow, dCol)
func (p Pattern) Translate(dRow, dCol uint32) Pattern {
	out := make(Pattern, len(p))
	for i, pl := range p {
		out[i] = Placement{Row: pl.Row + dRow, Col: pl.Col + dCol, Cell: pl.Cell}
	}
	return out
}

// Bounds returns the number of rows and columns the pattern spans from its
// origin.
func (p Pattern) Bounds() (rows, cols uint32) {
	for _, pl := range p {
		rows = max(rows, pl.Row+1)
		cols = max(cols, pl.Col+1)
	}
	return
}

// String draws the pattern back as text
func (p Pattern) String() string {
	rows, cols := p.Bounds()
	lines := make([][]byte, rows)
	for i := range lines {
		lines[i] = []byte(strings.Repeat(".", int(cols)))
	}
	for _, pl := range p {
		lines[pl.Row][pl.Col] = pl.Cell.Glyph()
	}

	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.Write(line)
	}
	return sb.String()
}

func (p Pattern) wrapped(row, col, width, height uint32) []Placement {
	out := make([]Placement, len(p))
	for i, pl := range p {
		out[i] = Placement{
			Row:  uint32((uint64(row) + uint64(pl.Row)) % uint64(height)),
			Col:  uint32((uint64(col) + uint64(pl.Col)) % uint64(width)),
			Cell: pl.Cell,
		}
	}
	return out
}
