package model

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	gridPosBlock = "██"
	gridPosEmpty = "  "

	clearCmd = "clear"
)

// TerminalRenderer implements basic terminal rendering. It reads only the
// committed bit of interior cells; ghost rows and sentinel groups are
// padding and never drawn.
type TerminalRenderer struct {
	// Out receives the rendered frames; defaults to stdout.
	Out io.Writer
}

// Display renders the board interior
func (r *TerminalRenderer) Display(b *Board) {
	out := r.Out
	if out == nil {
		out = os.Stdout
	}
	w := bufio.NewWriter(out)

	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			if b.Get(x, y) {
				w.WriteString(gridPosBlock)
			} else {
				w.WriteString(gridPosEmpty)
			}
		}
		w.WriteByte('\n')
	}
	w.Flush()
}

// Clear clears the terminal screen
func (r *TerminalRenderer) Clear() {
	cmd := exec.Command(clearCmd)
	cmd.Stdout = os.Stdout
	if err := cmd.Run(); err != nil {
		fmt.Println("Error clearing terminal:", err)
	}
}
