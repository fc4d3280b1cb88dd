// SPDX-License-Identifier: MIT

package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/trackswitch/track"
)

var (
	// ErrUnexpectedEOF indicates the input ended inside a declaration.
	ErrUnexpectedEOF = errors.New("input: unexpected end of input")

	// ErrBadToken indicates a token that is not a valid non-negative integer,
	// or a connection count larger than the system's switch count.
	ErrBadToken = errors.New("input: bad token")

	// ErrTooManySwitches indicates a switch count above the decoder limit.
	ErrTooManySwitches = errors.New("input: too many switches")
)

// preallocCap bounds slice capacity taken from counts in the stream; larger
// systems grow by append as their tokens actually arrive.
const preallocCap = 1024

// Option configures a Decoder.
type Option func(*Decoder)

// WithMaxSwitches rejects systems declaring more than n switches before any
// of their declarations are read; 0 disables the limit.
func WithMaxSwitches(n int) Option {
	return func(d *Decoder) { d.maxSwitches = n }
}

// Decoder reads track systems from an input stream.
type Decoder struct {
	sc          *bufio.Scanner
	pos         int // 1-based index of the last token read
	total       int // declared system count, -1 until the header is read
	served      int // systems returned by Next
	maxSwitches int
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	d := &Decoder{sc: sc, total: -1}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// readInt reads the next token as a non-negative integer; what names the field
// for error messages.
func (d *Decoder) readInt(what string) (int, error) {
	if !d.sc.Scan() {
		if err := d.sc.Err(); err != nil {
			return 0, fmt.Errorf("input: reading %s: %w", what, err)
		}

		return 0, fmt.Errorf("%w: expected %s after token %d", ErrUnexpectedEOF, what, d.pos)
	}
	d.pos++
	v, err := strconv.Atoi(d.sc.Text())
	if err != nil || v < 0 {
		return 0, fmt.Errorf("%w: %s %q at token %d", ErrBadToken, what, d.sc.Text(), d.pos)
	}

	return v, nil
}

// Count reads the header and returns the number of systems in the stream.
// It is idempotent; Next calls it on first use.
func (d *Decoder) Count() (int, error) {
	if d.total >= 0 {
		return d.total, nil
	}
	n, err := d.readInt("system count")
	if err != nil {
		return 0, err
	}
	d.total = n

	return n, nil
}

// Next decodes the next system. It returns io.EOF once the declared number
// of systems has been read; trailing tokens are ignored.
//
// Returns:
//   - ErrTooManySwitches if the switch count exceeds the configured limit.
//   - ErrBadToken for a malformed token or a connection count above the
//     switch count.
//   - ErrUnexpectedEOF if the stream ends inside the system.
//
// Allocation is bounded by the tokens read, never by the counts declared.
func (d *Decoder) Next() (track.System, error) {
	total, err := d.Count()
	if err != nil {
		return track.System{}, err
	}
	if d.served >= total {
		return track.System{}, io.EOF
	}

	n, err := d.readInt("switch count")
	if err != nil {
		return track.System{}, err
	}
	if d.maxSwitches > 0 && n > d.maxSwitches {
		return track.System{}, fmt.Errorf("%w: %d > %d at token %d", ErrTooManySwitches, n, d.maxSwitches, d.pos)
	}
	sys := track.System{Switches: make([]track.Declaration, 0, min(n, preallocCap))}

	var (
		sw, k, count, to int
		decl             track.Declaration
	)
	for sw = 0; sw < n; sw++ {
		decl = track.Declaration{}
		if decl.Default, err = d.readInt("default target"); err != nil {
			return track.System{}, err
		}
		if count, err = d.readInt("connection count"); err != nil {
			return track.System{}, err
		}
		if count > n {
			return track.System{}, fmt.Errorf("%w: connection count %d exceeds %d switches at token %d",
				ErrBadToken, count, n, d.pos)
		}
		if count > 0 {
			decl.Targets = make([]int, 0, min(count, preallocCap))
		}
		for k = 0; k < count; k++ {
			if to, err = d.readInt("target switch"); err != nil {
				return track.System{}, err
			}
			decl.Targets = append(decl.Targets, to)
		}
		sys.Switches = append(sys.Switches, decl)
	}
	d.served++

	return sys, nil
}

// ReadAll decodes every system in r.
func ReadAll(r io.Reader, opts ...Option) ([]track.System, error) {
	d := NewDecoder(r, opts...)
	total, err := d.Count()
	if err != nil {
		return nil, err
	}
	systems := make([]track.System, 0, min(total, preallocCap))
	for {
		sys, err := d.Next()
		if errors.Is(err, io.EOF) {
			return systems, nil
		}
		if err != nil {
			return nil, err
		}
		systems = append(systems, sys)
	}
}
