package engine

import (
	"math"
	"sort"

	"github.com/fpavetic/lcskpp/events"
)

// chooseAmortized picks between a single O(S+M) amortized cursor pass over
// the whole threshold table and M independent O(log S) binary searches,
// whichever costs less for the current row's density of begin events.
// S<=1 (only the sentinel populated, or an empty table) is guarded
// explicitly rather than evaluating log2(1)=0 and risking the wrong branch
// on a degenerate table.
func chooseAmortized(tableSize, beginCount int) bool {
	if tableSize <= 1 {
		return true
	}
	if beginCount == 0 {
		return true
	}
	s := float64(tableSize)
	m := float64(beginCount)
	return s+m < 6*m*math.Log2(s)
}

// amortizedRowQuery consumes every begin event for row using a single
// cursor over T reused across the whole row (begin events are ascending in
// column), giving O(|T|+M) total work for the row.
func amortizedRowQuery(k, row int, q *events.Queue, t *table, a *arena) {
	cursor := 0
	for {
		b, ok := q.PopBegin(row)
		if !ok {
			return
		}
		for cursor < t.len() && a.at(t.at(cursor)).EndCol < b.Col {
			cursor++
		}
		prevBest := a.at(t.at(cursor - 1))

		mp := MatchPair{EndRow: b.Row + k - 1, EndCol: b.Col + k - 1, DP: k, Prev: NoPrev}
		if prevBest.DP > 0 {
			mp.DP = prevBest.DP + k
			mp.Prev = t.at(cursor - 1)
		}
		idx := a.add(mp)
		q.AddEnd(mp.EndRow, mp.EndCol, idx)
	}
}

// elementwiseRowQuery consumes every begin event for row with an
// independent binary search per event, costing O(M log|T|). Chosen when M
// is small relative to |T|.
func elementwiseRowQuery(k, row int, q *events.Queue, t *table, a *arena) {
	for {
		b, ok := q.PopBegin(row)
		if !ok {
			return
		}
		// Largest index c with T[c].EndCol < b.Col: one below the first
		// index whose EndCol is >= b.Col.
		c := sort.Search(t.len(), func(i int) bool {
			return a.at(t.at(i)).EndCol >= b.Col
		})
		prevBest := a.at(t.at(c - 1))

		mp := MatchPair{EndRow: b.Row + k - 1, EndCol: b.Col + k - 1, DP: k, Prev: NoPrev}
		if prevBest.DP > 0 {
			mp.DP = prevBest.DP + k
			mp.Prev = t.at(c - 1)
		}
		idx := a.add(mp)
		q.AddEnd(mp.EndRow, mp.EndCol, idx)
	}
}
