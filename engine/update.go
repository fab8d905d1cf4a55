package engine

import "github.com/fpavetic/lcskpp/events"

// rowUpdate drains every end event scheduled for row, in queue order
// (non-decreasing column). For LCSk++ it first checks whether the ending
// match-pair can be extended by one character from a match-pair that ended
// in the immediately preceding row (continuation), then folds each ended
// pair into the compressed threshold table. prevRow is replaced with the
// match-pairs that ended on this row, for use as next row's continuation
// source.
func rowUpdate(k, row int, q *events.Queue, t *table, a *arena, prevRow []int32, lcskpp bool) []int32 {
	var currRow []int32
	contIdx := 0

	for {
		e, ok := q.PopEnd(row)
		if !ok {
			break
		}
		mp := a.at(e.Pair)

		if lcskpp {
			for contIdx < len(prevRow) && a.at(prevRow[contIdx]).EndCol+1 < mp.EndCol {
				contIdx++
			}
			if contIdx < len(prevRow) && a.at(prevRow[contIdx]).EndCol+1 == mp.EndCol {
				contDP := a.at(prevRow[contIdx]).DP + 1
				if contDP > mp.DP {
					mp.DP = contDP
					mp.Prev = prevRow[contIdx]
				}
			}
		}

		pairIdx := a.add(mp)
		currRow = append(currRow, pairIdx)

		if lcskpp {
			updateTableLcskpp(k, e.Row, e.Col, mp, pairIdx, t, a)
		} else {
			updateTableLcsk(k, e.Col, mp, pairIdx, t, a)
		}
	}

	return currRow
}

// updateTableLcskpp extends T up to index mp.DP with dummy placeholders if
// needed, then fans a newly-ended pair down across every slot it dominates:
// slot idx (for dp-k < idx <= dp) is dominated when the pair achieves value
// idx at a column no greater than the slot's current best column.
func updateTableLcskpp(k, row, col int, mp MatchPair, pairIdx int32, t *table, a *arena) {
	dp := mp.DP
	for t.len() <= dp {
		idx := t.len()
		dummy := a.add(MatchPair{EndRow: row + 1, EndCol: col + 1, DP: idx, Prev: NoPrev})
		t.push(dummy)
	}

	for idx := dp; idx > dp-k && idx >= 0 && col < a.at(t.at(idx)).EndCol; idx-- {
		t.set(idx, pairIdx)
	}
}

// updateTableLcsk places a newly-ended pair at its single dp/k slot; no
// fan-out is needed because LCSk dp values only ever advance by exactly k.
func updateTableLcsk(k, col int, mp MatchPair, pairIdx int32, t *table, a *arena) {
	idx := mp.DP / k
	switch {
	case idx == t.len():
		t.push(pairIdx)
	case col < a.at(t.at(idx)).EndCol:
		t.set(idx, pairIdx)
	}
	// idx > t.len() is unreachable: dp advances by at most k per match, so
	// the table can never need to grow by more than one slot per update.
}
