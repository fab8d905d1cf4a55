package engine

import (
	"errors"

	"github.com/fpavetic/lcskpp/alphabet"
	"github.com/fpavetic/lcskpp/events"
	"github.com/fpavetic/lcskpp/matchmaker"
)

// ErrInvalidK is returned when k is not a positive integer.
var ErrInvalidK = errors.New("lcskpp: k must be >= 1")

// Run executes the sparse DP engine over a and b with window size k and
// returns the optimal LCSk (lcskpp=false) or LCSk++ (lcskpp=true)
// reconstruction. It is the only exported entry point of this package; the
// root lcskpp package wraps it for its two public functions.
func Run(a, b string, k int, lcskpp bool) ([][2]int, error) {
	if k <= 0 {
		return nil, ErrInvalidK
	}
	if len(a) == 0 || len(b) == 0 {
		return nil, nil
	}

	tbl := alphabet.Build(a, b)
	if err := alphabet.Validate(tbl.Size, k); err != nil {
		return nil, err
	}
	if len(a) < k || len(b) < k {
		return nil, nil
	}

	mm := matchmaker.New(a, b, k, tbl)
	ar := newArena()
	sentinel := ar.add(MatchPair{EndRow: -1, EndCol: -1, DP: 0, Prev: NoPrev})
	t := newTable(sentinel)
	var q events.Queue
	var prevRow []int32

	for row := 0; row <= len(a); row++ {
		rowMatches, _ := mm.GetNextMatches()
		for _, col := range rowMatches {
			q.AddBegin(row, col)
		}

		if chooseAmortized(t.len(), len(rowMatches)) {
			amortizedRowQuery(k, row, &q, t, ar)
		} else {
			elementwiseRowQuery(k, row, &q, t, ar)
		}

		prevRow = rowUpdate(k, row, &q, t, ar, prevRow, lcskpp)
	}

	best := t.back()
	if ar.at(best).EndRow == -1 {
		return nil, nil
	}
	return reconstruct(k, best, ar), nil
}
