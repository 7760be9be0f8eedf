package model

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/sheikhrachel/go-wireworld/rules"
)

const (
	gridPos    = "  "
	colorReset = "\x1b[0m"

	macosClearCmd = "clear"
)

// Same palette as the browser renderer.
var cellColors = map[rules.Cell]string{
	rules.ElectronHead: "\x1b[48;2;255;169;0m",
	rules.ElectronTail: "\x1b[48;2;205;17;59m",
	rules.Conductor:    "\x1b[48;2;82;0;106m",
}

// TerminalRenderer implements basic terminal rendering
type TerminalRenderer struct {
	Out io.Writer
}

func (r *TerminalRenderer) out() io.Writer {
	if r.Out == nil {
		return os.Stdout
	}
	return r.Out
}

// Display renders the world to the terminal, one row per line
func (r *TerminalRenderer) Display(w *World) {
	var (
		sb    strings.Builder
		cells = w.Cells()
		width = int(w.Width())
	)
	for i, cell := range cells {
		if cell == rules.Empty {
			sb.WriteString(gridPos)
		} else {
			sb.WriteString(cellColors[cell])
			sb.WriteString(gridPos)
			sb.WriteString(colorReset)
		}
		if (i+1)%width == 0 {
			sb.WriteByte('\n')
		}
	}
	fmt.Fprint(r.out(), sb.String())
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(macosClearCmd)
	cmd.Stdout = r.out()
	if err := cmd.Run(); err != nil {
		fmt.Fprintln(r.out(), "Error clearing terminal:", err)
	}
}
