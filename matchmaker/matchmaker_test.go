package matchmaker

import (
	"reflect"
	"testing"

	"github.com/fpavetic/lcskpp/alphabet"
)

func drainAll(mm MatchMaker) [][]int {
	var rows [][]int
	for {
		matches, ok := mm.GetNextMatches()
		if !ok {
			break
		}
		cp := append([]int(nil), matches...)
		rows = append(rows, cp)
	}
	return rows
}

func TestPerfectHashAgreesWithNaive(t *testing.T) {
	tests := []struct {
		name    string
		a, b    string
		k       int
	}{
		{"identical strings", "ACGTACGT", "ACGTACGT", 2},
		{"no common 3-mer", "ACGT", "TGCA", 3},
		{"repeated base", "AAAA", "AAAA", 2},
		{"k equals len", "ACGT", "ACGT", 4},
		{"no common k-mers", "AAAA", "CCCC", 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tbl := alphabet.Build(tt.a, tt.b)
			ph := New(tt.a, tt.b, tt.k, tbl)
			naive := NewNaive(tt.a, tt.b, tt.k)

			gotPH := drainAll(ph)
			gotNaive := drainAll(naive)

			if !reflect.DeepEqual(gotPH, gotNaive) {
				t.Errorf("PerfectHash and Naive disagree:\n  PerfectHash=%v\n  Naive=%v", gotPH, gotNaive)
			}
		})
	}
}

func TestPerfectHashRowCountMatchesLenA(t *testing.T) {
	a, b := "ACGTACGT", "TTTTACGTAC"
	k := 3
	tbl := alphabet.Build(a, b)
	mm := New(a, b, k, tbl)

	rows := drainAll(mm)
	want := len(a) - k + 1
	if len(rows) != want {
		t.Fatalf("got %d rows, want %d", len(rows), want)
	}
}

func TestPerfectHashColumnsAreAscending(t *testing.T) {
	a, b := "ACGT", "ACGTACGTACGT"
	k := 2
	tbl := alphabet.Build(a, b)
	mm := New(a, b, k, tbl)

	for {
		matches, ok := mm.GetNextMatches()
		if !ok {
			break
		}
		for i := 1; i < len(matches); i++ {
			if matches[i] <= matches[i-1] {
				t.Fatalf("matches not strictly ascending: %v", matches)
			}
		}
	}
}
