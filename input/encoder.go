// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"io"
	"strconv"

	"github.com/katalvlaran/trackswitch/track"
)

// Encoder writes track systems in the format read by Decoder: the system
// count, then per system its switch count and one line per switch.
type Encoder struct {
	w *bufio.Writer
}

// NewEncoder returns an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: bufio.NewWriter(w)}
}

// line writes the integers of vals separated by spaces and a newline.
func (e *Encoder) line(vals ...int) {
	for i, v := range vals {
		if i > 0 {
			_ = e.w.WriteByte(' ')
		}
		_, _ = e.w.WriteString(strconv.Itoa(v))
	}
	_ = e.w.WriteByte('\n')
}

// Encode writes systems and flushes. Write errors surface from the flush.
func (e *Encoder) Encode(systems []track.System) error {
	e.line(len(systems))
	var vals []int
	for _, sys := range systems {
		e.line(sys.Size())
		for _, decl := range sys.Switches {
			vals = append(vals[:0], decl.Default, len(decl.Targets))
			vals = append(vals, decl.Targets...)
			e.line(vals...)
		}
	}

	return e.w.Flush()
}
