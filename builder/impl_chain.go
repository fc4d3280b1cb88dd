// SPDX-License-Identifier: MIT

package builder

import "github.com/katalvlaran/trackswitch/track"

// buildChain assumes n ≥ 1. The exit rests back toward its predecessor.
func buildChain(n int) track.System {
	sw := make([]track.Declaration, n)
	for i := 1; i < n; i++ {
		sw[i-1] = track.Declaration{Default: i + 1, Targets: []int{i + 1}}
	}
	if n > 1 {
		sw[n-1] = track.Declaration{Default: n - 1}
	}

	return track.System{Switches: sw}
}
