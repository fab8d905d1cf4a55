package engine

// reconstruct walks the prev chain from best back to the sentinel, emitting
// either a full k-block (k consecutive (row,col) pairs counting down from
// the end) or a single continuation pair, then reverses the result into
// forward order.
func reconstruct(k int, best int32, a *arena) [][2]int {
	if best == NoPrev {
		return nil
	}

	var out [][2]int
	for cur := best; cur != NoPrev; {
		mp := a.at(cur)
		r, c := mp.EndRow, mp.EndCol

		fullBlock := mp.Prev == NoPrev
		if !fullBlock {
			prev := a.at(mp.Prev)
			fullBlock = prev.EndRow+k <= mp.EndRow && prev.EndCol+k <= mp.EndCol
		}

		if fullBlock {
			for j := 0; j < k; j++ {
				out = append(out, [2]int{r, c})
				r--
				c--
			}
		} else {
			prev := a.at(mp.Prev)
			if prev.EndRow+1 != mp.EndRow || prev.EndCol+1 != mp.EndCol {
				panic("lcskpp: internal invariant violation: non-adjacent continuation edge")
			}
			out = append(out, [2]int{r, c})
		}

		cur = mp.Prev
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
