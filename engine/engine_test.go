package engine

import (
	"testing"
)

// validate checks the properties any valid reconstruction must have:
// in-bounds, matching characters, strictly increasing in both
// coordinates, and maximal-run-length rules per flavor.
func validate(t *testing.T, a, b string, k int, recon [][2]int, lcskpp bool) {
	t.Helper()
	for i, p := range recon {
		r, c := p[0], p[1]
		if r < 0 || r >= len(a) || c < 0 || c >= len(b) {
			t.Fatalf("pair %d = (%d,%d) out of bounds", i, r, c)
		}
		if a[r] != b[c] {
			t.Fatalf("pair %d = (%d,%d): a[r]=%q != b[c]=%q", i, r, c, a[r], b[c])
		}
		if i > 0 {
			pr, pc := recon[i-1][0], recon[i-1][1]
			if r <= pr || c <= pc {
				t.Fatalf("not strictly increasing at %d: (%d,%d) after (%d,%d)", i, r, c, pr, pc)
			}
		}
	}

	// Maximal consecutive-in-both-coordinates runs must be a multiple of k
	// (LCSk) or at least k (LCSk++).
	i := 0
	for i < len(recon) {
		j := i + 1
		for j < len(recon) && recon[j][0] == recon[j-1][0]+1 && recon[j][1] == recon[j-1][1]+1 {
			j++
		}
		runLen := j - i
		if lcskpp {
			if runLen < k {
				t.Fatalf("LCSk++ run of length %d < k=%d at index %d", runLen, k, i)
			}
		} else {
			if runLen%k != 0 {
				t.Fatalf("LCSk run of length %d not a multiple of k=%d at index %d", runLen, k, i)
			}
		}
		i = j
	}
}

func TestScenario1IdenticalStrings(t *testing.T) {
	recon, err := Run("ACGT", "ACGT", 2, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 4 {
		t.Fatalf("len=%d, want 4: %v", len(recon), recon)
	}
	validate(t, "ACGT", "ACGT", 2, recon, true)
}

func TestScenario2LongerIdentical(t *testing.T) {
	a, b, k := "ACGTACGT", "ACGTACGT", 3
	recon, err := Run(a, b, k, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 8 {
		t.Fatalf("LCSk++ len=%d, want 8", len(recon))
	}
	validate(t, a, b, k, recon, true)

	recon, err = Run(a, b, k, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 6 {
		t.Fatalf("LCSk len=%d, want 6", len(recon))
	}
	validate(t, a, b, k, recon, false)
}

func TestScenario3RepeatedBase(t *testing.T) {
	for _, lcskpp := range []bool{false, true} {
		recon, err := Run("AAAA", "AAAA", 2, lcskpp)
		if err != nil {
			t.Fatal(err)
		}
		if len(recon) != 4 {
			t.Fatalf("lcskpp=%v len=%d, want 4", lcskpp, len(recon))
		}
		validate(t, "AAAA", "AAAA", 2, recon, lcskpp)
	}
}

func TestScenario4Continuation(t *testing.T) {
	a, b, k := "ACAC", "CACA", 2

	recon, err := Run(a, b, k, false)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 2 {
		t.Fatalf("LCSk len=%d, want 2: %v", len(recon), recon)
	}
	validate(t, a, b, k, recon, false)

	recon, err = Run(a, b, k, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 3 {
		t.Fatalf("LCSk++ len=%d, want 3: %v", len(recon), recon)
	}
	validate(t, a, b, k, recon, true)
}

func TestScenario5NoCommonKmer(t *testing.T) {
	recon, err := Run("ACGT", "TGCA", 3, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != 0 {
		t.Fatalf("len=%d, want 0: %v", len(recon), recon)
	}
}

func TestBoundaryShorterThanK(t *testing.T) {
	recon, err := Run("AC", "ACGT", 3, true)
	if err != nil {
		t.Fatal(err)
	}
	if recon != nil {
		t.Fatalf("expected nil reconstruction, got %v", recon)
	}
}

func TestBoundaryEmptyInputs(t *testing.T) {
	for _, lcskpp := range []bool{false, true} {
		recon, err := Run("", "ACGT", 2, lcskpp)
		if err != nil || recon != nil {
			t.Fatalf("a empty: recon=%v err=%v", recon, err)
		}
		recon, err = Run("ACGT", "", 2, lcskpp)
		if err != nil || recon != nil {
			t.Fatalf("b empty: recon=%v err=%v", recon, err)
		}
		recon, err = Run("", "", 2, lcskpp)
		if err != nil || recon != nil {
			t.Fatalf("both empty: recon=%v err=%v", recon, err)
		}
	}
}

func TestInvalidK(t *testing.T) {
	if _, err := Run("ACGT", "ACGT", 0, true); err != ErrInvalidK {
		t.Fatalf("k=0: err=%v, want ErrInvalidK", err)
	}
	if _, err := Run("ACGT", "ACGT", -1, true); err != ErrInvalidK {
		t.Fatalf("k=-1: err=%v, want ErrInvalidK", err)
	}
}

func TestLcskppNeverShorterThanLcsk(t *testing.T) {
	cases := []struct {
		a, b string
		k    int
	}{
		{"ACGTACGT", "ACGTACGT", 3},
		{"ACAC", "CACA", 2},
		{"AAAA", "AAAA", 2},
		{"ACGTGGCATGCA", "GCATGACGTGGA", 2},
	}
	for _, c := range cases {
		k, err := Run(c.a, c.b, c.k, false)
		if err != nil {
			t.Fatal(err)
		}
		kpp, err := Run(c.a, c.b, c.k, true)
		if err != nil {
			t.Fatal(err)
		}
		if len(kpp) < len(k) {
			t.Errorf("%+v: LCSk++ len %d < LCSk len %d", c, len(kpp), len(k))
		}
	}
}

func TestK1MatchesClassicLCS(t *testing.T) {
	a, b := "ACGTACGT", "TACGTAGT"
	reconK, err := Run(a, b, 1, false)
	if err != nil {
		t.Fatal(err)
	}
	reconKpp, err := Run(a, b, 1, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(reconK) != len(reconKpp) {
		t.Fatalf("k=1: LCSk len=%d != LCSk++ len=%d", len(reconK), len(reconKpp))
	}
	// Classic LCS of a and b is 7: "ACGTA" (a[0:5], b[1:6]) then "GT".
	if len(reconK) != 7 {
		t.Fatalf("k=1: len=%d, want classic LCS length 7", len(reconK))
	}
	validate(t, a, b, 1, reconK, false)
}

func TestLargeDenseInputExercisesBothQueryModes(t *testing.T) {
	// A long run of a single repeated base gives every row of the run many
	// begin events, so chooseAmortized picks the amortized branch there. The
	// trailing 'C' leaves row n-3 ("AAAC") with a single begin event against
	// a threshold table of about n slots, which picks the elementwise branch.
	n := 200
	a := make([]byte, n+1)
	b := make([]byte, n+1)
	for i := 0; i < n; i++ {
		a[i] = 'A'
		b[i] = 'A'
	}
	a[n], b[n] = 'C', 'C'
	recon, err := Run(string(a), string(b), 4, true)
	if err != nil {
		t.Fatal(err)
	}
	if len(recon) != n+1 {
		t.Fatalf("len=%d, want %d", len(recon), n+1)
	}
	validate(t, string(a), string(b), 4, recon, true)
}
