package testutil

// Rand is a deterministic randomness source for tests: it replays the
// configured draws in order, cycling when they run out.
type Rand struct {
	Draws []float64
	next  int
}

func (r *Rand) NextFloat64() float64 {
	if len(r.Draws) == 0 {
		return 0
	}
	f := r.Draws[r.next%len(r.Draws)]
	r.next += 1
	return f
}
