package engine

// table is the compressed threshold table T: T[i] is the arena index of the
// currently-cheapest (lowest end-column) match-pair achieving DP value i
// (LCSk++) or k*i (LCSk). T is strictly increasing in EndCol across index
// by construction (RowUpdate never breaks that invariant).
type table struct {
	slots []int32
}

func newTable(sentinel int32) *table {
	return &table{slots: []int32{sentinel}}
}

func (t *table) len() int { return len(t.slots) }

func (t *table) at(i int) int32 { return t.slots[i] }

func (t *table) set(i int, v int32) { t.slots[i] = v }

func (t *table) push(v int32) { t.slots = append(t.slots, v) }

// back returns the last slot, representing the best solution found so far.
func (t *table) back() int32 { return t.slots[len(t.slots)-1] }
