// SPDX-License-Identifier: MIT

package track

import "fmt"

// Build constructs the Network declared by sys. For every switch the tracks
// are declared first and the rest position last, so a default over one of
// the switch's own tracks yields DefaultManual rather than being overwritten.
//
// Parameters:
//   - sys: one declaration per switch, switch i at index i-1.
//
// Errors:
//   - ErrBadSize for an empty system.
//   - ErrSwitchOutOfRange, ErrSelfLoop wrapped with the declaring switch.
//
// Complexity: O(N²) for the table plus O(total tracks).
func Build(sys System) (*Network, error) {
	nw, err := NewNetwork(sys.Size())
	if err != nil {
		return nil, err
	}

	var (
		sw, to int
		decl   Declaration
	)
	for sw = 1; sw <= nw.n; sw++ {
		decl = sys.Switches[sw-1]
		for _, to = range decl.Targets {
			if err = nw.DeclareEdge(sw, to); err != nil {
				return nil, fmt.Errorf("track: build switch %d: %w", sw, err)
			}
		}
		if err = nw.DeclareDefault(sw, decl.Default); err != nil {
			return nil, fmt.Errorf("track: build switch %d: %w", sw, err)
		}
	}

	return nw, nil
}
