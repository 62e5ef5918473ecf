package warehouse

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// DefaultFPS is the default frame rate cap for interactive rendering
const DefaultFPS int = 4

// Renderer draws the current state of a Warehouse. Renderers are
// stateless from the simulation's perspective: the environment hands
// over the floor to draw and consumes nothing in return.
type Renderer interface {
	Render(w *Warehouse)
}

// Text renders the warehouse floor as a grid of tile labels written to
// an io.Writer, one row per line, followed by the last action taken:
//
//	_ _ _ T _
//	_ R _ _ _
//	_ _ _ _ _
//	_ _ _ _ _
//	Action: RIGHT
//
// After each frame, Text sleeps to cap the frame rate at the
// configured frames per second. The delay is a rendering concern only;
// the simulation never waits unless a Text renderer is attached.
type Text struct {
	out   io.Writer
	delay time.Duration
}

// NewText returns a new Text renderer writing frames to out at no more
// than fps frames per second. An fps of 0 or less disables the frame
// delay entirely.
func NewText(out io.Writer, fps int) *Text {
	var delay time.Duration
	if fps > 0 {
		delay = time.Second / time.Duration(fps)
	}

	return &Text{out, delay}
}

// Render draws a single frame of the warehouse floor
func (t *Text) Render(w *Warehouse) {
	var frame strings.Builder

	rows, cols := w.Dims()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			fmt.Fprintf(&frame, "%v ", w.At(r, c))
		}
		fmt.Fprintln(&frame)
	}

	if action, acted := w.LastAction(); acted {
		fmt.Fprintf(&frame, "Action: %v\n", action)
	}
	fmt.Fprintln(&frame)

	fmt.Fprint(t.out, frame.String())

	if t.delay > 0 {
		time.Sleep(t.delay)
	}
}
