// SPDX-License-Identifier: MIT

package annotate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/trackswitch/track"
)

var (
	// ErrNilNetwork is returned when Annotate receives a nil network.
	ErrNilNetwork = errors.New("annotate: network is nil")

	// ErrEmptyPath is returned for a route without switches.
	ErrEmptyPath = errors.New("annotate: empty path")

	// ErrBrokenPath indicates two consecutive switches without a track between them.
	ErrBrokenPath = errors.New("annotate: no track between consecutive switches")

	// ErrNotExit indicates the route stops at a switch that still has tracks.
	ErrNotExit = errors.New("annotate: path does not end at an exit")
)

// Token is one printed switch. Before and After hold the switch shown in
// parentheses on either side, 0 when unmarked; at most one is set.
type Token struct {
	Switch int
	Before int
	After  int
}

// Thrown reports whether the token marks a thrown switch.
func (t Token) Thrown() bool { return t.Before != 0 || t.After != 0 }

// String renders t as "X", "(P)X" or "X(N)".
func (t Token) String() string {
	var b strings.Builder
	if t.Before != 0 {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(t.Before))
		b.WriteByte(')')
	}
	b.WriteString(strconv.Itoa(t.Switch))
	if t.After != 0 {
		b.WriteByte('(')
		b.WriteString(strconv.Itoa(t.After))
		b.WriteByte(')')
	}

	return b.String()
}

// Annotate walks path over nw and returns one token per switch.
// A diverging switch leaving on a track other than its rest position is
// marked X(N); a converging switch or exit that must be thrown to accept the
// cart is marked (P)X.
//
// Parameters:
//   - nw:   network the route runs on.
//   - path: switches from entry to exit, as returned by search.Solve.
//
// Errors:
//   - ErrNilNetwork, ErrEmptyPath for missing input.
//   - ErrBrokenPath if two consecutive switches have no track between them.
//   - ErrNotExit if the last switch still has forward tracks.
//
// Complexity: O(len(path)).
func Annotate(nw *track.Network, path []int) ([]Token, error) {
	// 1. Validate the route shape.
	if nw == nil {
		return nil, ErrNilNetwork
	}
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	var k int
	for k = 1; k < len(path); k++ {
		if !nw.At(path[k-1], path[k]).IsTraversable() {
			return nil, fmt.Errorf("%w: %d->%d at step %d", ErrBrokenPath, path[k-1], path[k], k)
		}
	}
	last := path[len(path)-1]
	if nw.OutDegree(last) != 0 {
		return nil, fmt.Errorf("%w: switch %d", ErrNotExit, last)
	}

	// 2. One token per switch.
	tokens := make([]Token, len(path))
	var sw int
	for k, sw = range path {
		tok := Token{Switch: sw}
		if nw.OutDegree(sw) > 1 {
			// Diverging: the route leaves toward path[k+1]; a diverging switch
			// is never last, so the index is valid.
			if next := path[k+1]; !nw.At(sw, next).IsDefault() {
				tok.After = next
			}
		} else if k > 0 && nw.ArrivalThrow(sw, path[k-1]) {
			tok.Before = path[k-1]
		}
		tokens[k] = tok
	}

	return tokens, nil
}

// Format joins the rendered tokens with single spaces.
func Format(tokens []Token) string {
	parts := make([]string, len(tokens))
	for i, t := range tokens {
		parts[i] = t.String()
	}

	return strings.Join(parts, " ")
}

// Throws counts the marked tokens.
func Throws(tokens []Token) int {
	n := 0
	for _, t := range tokens {
		if t.Thrown() {
			n++
		}
	}

	return n
}
