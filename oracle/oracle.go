// Package oracle implements a slow, quadratic reference DP for LCSk and
// LCSk++, independent of the sparse engine, used to validate that the
// sparse engine's reconstructions are optimal.
package oracle

// LcskSlow computes the LCSk length and reconstruction between a and b with
// block size k, using an O(|a|*|b|) DP (a diagonal-run cache avoids the
// naive O(k) per-cell block-equality check, but the recurrence is the
// textbook "non-overlapping k-blocks" DP).
func LcskSlow(a, b string, k int) (int, [][2]int) {
	return solve(a, b, k, false)
}

// LcskppSlow computes the LCSk++ length and reconstruction, allowing
// single-character continuations between adjacent k-blocks.
func LcskppSlow(a, b string, k int) (int, [][2]int) {
	return solve(a, b, k, true)
}

type step int8

const (
	stepInvalid step = iota
	stepBlock
	stepContinuation
)

// solve runs a single O(|a|*|b|) pass computing, for every matched pair
// (i,j) with a[i]==b[j]:
//
//   - end[i][j]: the best LCSk(++) score of an alignment whose last
//     matched pair is exactly (i,j); invalid (unusable) if neither a fresh
//     k-block nor (for LCSk++) a continuation reaches it.
//   - best[i+1][j+1]: the best score achievable using only a[0:i+1],
//     b[0:j+1], ending anywhere.
//
// best and end are computed in the same row-major pass: end[i][j] only
// ever reads best/end entries from strictly earlier (i,j), which the
// row-major order already guarantees are populated.
func solve(a, b string, k int, lcskpp bool) (int, [][2]int) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 || n < k || m < k || k <= 0 {
		return 0, nil
	}

	// diag[i][j]: length of the matching run ending at (i,j) along the
	// main diagonal, i.e. how far a[i-r+1..i] == b[j-r+1..j] extends.
	diag := make([][]int, n)
	end := make([][]int, n)
	endFrom := make([][]step, n)
	for i := range diag {
		diag[i] = make([]int, m)
		end[i] = make([]int, m)
		endFrom[i] = make([]step, m)
	}
	best := make([][]int, n+1)
	for i := range best {
		best[i] = make([]int, m+1)
	}

	for i := 0; i < n; i++ {
		for j := 0; j < m; j++ {
			// best[i+1][j+1] must dominate best[i][j+1] and best[i+1][j]
			// regardless of whether a[i]==b[j]; skipping this on a mismatch
			// would drop scores already achieved by shorter prefixes.
			v := best[i][j+1]
			if best[i+1][j] > v {
				v = best[i+1][j]
			}

			if a[i] == b[j] {
				if i > 0 && j > 0 {
					diag[i][j] = diag[i-1][j-1] + 1
				} else {
					diag[i][j] = 1
				}

				candidate, via := -1, stepInvalid
				if diag[i][j] >= k {
					if c := best[i-k+1][j-k+1] + k; c > candidate {
						candidate, via = c, stepBlock
					}
				}
				if lcskpp && i > 0 && j > 0 && end[i-1][j-1] >= k {
					if c := end[i-1][j-1] + 1; c > candidate {
						candidate, via = c, stepContinuation
					}
				}
				end[i][j] = candidate
				endFrom[i][j] = via

				if candidate >= k && candidate > v {
					v = candidate
				}
			}

			best[i+1][j+1] = v
		}
	}

	length := best[n][m]
	if length == 0 {
		return 0, nil
	}
	return length, reconstruct(k, end, endFrom, best)
}

// reconstruct walks best/end/endFrom backwards from (n,m) to recover one
// optimal alignment. Ties are broken arbitrarily (skip-row, then
// skip-column, then end-here); any such path is a valid optimal
// reconstruction.
func reconstruct(k int, end [][]int, endFrom [][]step, best [][]int) [][2]int {
	n, m := len(best)-1, len(best[0])-1
	i, j := n, m
	var pairs [][2]int

	for i > 0 && j > 0 {
		switch {
		case best[i][j] == best[i-1][j]:
			i--
		case best[i][j] == best[i][j-1]:
			j--
		default:
			// best[i][j] must equal end[i-1][j-1].
			r, c := i-1, j-1
			for {
				pairs = append(pairs, [2]int{r, c})
				if endFrom[r][c] == stepContinuation {
					r, c = r-1, c-1
					continue
				}
				// stepBlock: emit the remaining k-1 pairs of this block.
				for step := 1; step < k; step++ {
					r, c = r-1, c-1
					pairs = append(pairs, [2]int{r, c})
				}
				break
			}
			i, j = r, c
		}
	}

	for l, rgt := 0, len(pairs)-1; l < rgt; l, rgt = l+1, rgt-1 {
		pairs[l], pairs[rgt] = pairs[rgt], pairs[l]
	}
	return pairs
}
