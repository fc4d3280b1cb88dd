// SPDX-License-Identifier: MIT

// impl_random_system.go - random layered DAG of switches.
//
// Model:
//  1. Spanning tracks: every switch j ≥ 2 receives one incoming track from a
//     uniformly chosen i < j that still has fan-out capacity. This makes 1 the
//     unique entry and every switch reachable.
//  2. Extra tracks: each remaining pair i < j gets a track with probability
//     cfg.extraTracks while i has capacity. Switch n has no higher neighbour,
//     so it stays an exit.
//  3. Rest positions: diverging switches rest on a random forward track;
//     converging switches with several incoming tracks rest backward with
//     probability cfg.backwardRest; other switches rest on their single forward
//     track or back toward their single incoming track.
//
// Complexity: O(n²) trials. Determinism: fixed trial order (i asc, j asc).

package builder

import (
	"sort"

	"github.com/katalvlaran/trackswitch/track"
)

// buildRandom assumes n ≥ 1 and a validated cfg.
func buildRandom(n int, cfg config) track.System {
	var (
		i, j  int
		cands []int
	)
	out := make([][]int, n+1)
	in := make([][]int, n+1)
	has := make([]bool, (n+1)*(n+1))

	link := func(from, to int) {
		out[from] = append(out[from], to)
		in[to] = append(in[to], from)
		has[from*(n+1)+to] = true
	}

	// 1) Spanning tracks.
	for j = 2; j <= n; j++ {
		cands = cands[:0]
		for i = 1; i < j; i++ {
			if len(out[i]) < cfg.fanOut {
				cands = append(cands, i)
			}
		}
		// With fanOut ≥ 1, j-1 switches share j-2 tracks: one is always free.
		link(cands[cfg.rng.Intn(len(cands))], j)
	}

	// 2) Extra tracks.
	for i = 1; i < n; i++ {
		for j = i + 1; j <= n; j++ {
			if len(out[i]) >= cfg.fanOut {
				break
			}
			if has[i*(n+1)+j] {
				continue
			}
			if cfg.rng.Float64() < cfg.extraTracks {
				link(i, j)
			}
		}
	}

	// 3) Rest positions.
	sw := make([]track.Declaration, n)
	for i = 1; i <= n; i++ {
		sort.Ints(out[i])
		d := track.Declaration{Targets: out[i]}
		switch {
		case len(out[i]) > 1:
			d.Default = out[i][cfg.rng.Intn(len(out[i]))]
		case len(in[i]) > 1 && cfg.rng.Float64() < cfg.backwardRest:
			d.Default = in[i][cfg.rng.Intn(len(in[i]))]
		case len(out[i]) == 1:
			d.Default = out[i][0]
		case len(in[i]) == 1:
			d.Default = in[i][0]
		}
		sw[i-1] = d
	}

	return track.System{Switches: sw}
}
