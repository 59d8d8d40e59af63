package logging

import (
	"io"
	"strings"
	"sync"

	"github.com/renato0307/gitdu/internal/theme"
)

// Console writes diagnostic lines and a single rewritable status line.
// A pending status line is erased before any other line is written.
type Console struct {
	Styles theme.Styles

	mu        sync.Mutex
	out       io.Writer
	statusLen int
}

// NewConsole creates a Console writing to w
func NewConsole(w io.Writer) *Console {
	return &Console{
		Styles: theme.NewStyles(w),
		out:    w,
	}
}

// Println writes a full line
func (c *Console) Println(line string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked()
	io.WriteString(c.out, line+"\n")
}

// Status replaces the current status line. width is the printable width
// of line, which may differ from len(line) when it carries styling.
func (c *Console) Status(line string, width int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	io.WriteString(c.out, "\r"+line)
	if width < c.statusLen {
		// Overwrite the tail of a longer previous status
		io.WriteString(c.out, strings.Repeat(" ", c.statusLen-width)+"\r"+line)
	}
	c.statusLen = width
}

// Clear erases the status line, if any
func (c *Console) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.clearLocked()
}

func (c *Console) clearLocked() {
	if c.statusLen == 0 {
		return
	}
	io.WriteString(c.out, "\r"+strings.Repeat(" ", c.statusLen)+"\r")
	c.statusLen = 0
}
