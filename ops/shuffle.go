package ops

import (
	"context"
	"sort"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Shuffle returns a new table with the same rows in a uniformly random
// order: each row is keyed with an independent draw from the session's
// randomness source and the rows ordered by the draws. The source table is
// not modified.
func Shuffle(ctx context.Context, ses *Session, tbl fx.Value) (fx.Value, error) {
	t, errv := asTable("shuffle", tbl)
	if t == nil {
		return errv, nil
	}

	rows, err := table.AllRows(ctx, t)
	if err != nil {
		return nil, err
	}

	rnd := ses.randSource()
	draws := make([]float64, len(rows))
	for ddx := range draws {
		draws[ddx] = rnd.NextFloat64()
	}

	sr := &shuffleRows{rows: append([]fx.Value(nil), rows...), draws: draws}
	sort.Stable(sr)
	return table.NewValues(sr.rows), nil
}

type shuffleRows struct {
	rows  []fx.Value
	draws []float64
}

func (sr *shuffleRows) Len() int {
	return len(sr.rows)
}

func (sr *shuffleRows) Swap(i, j int) {
	sr.rows[i], sr.rows[j] = sr.rows[j], sr.rows[i]
	sr.draws[i], sr.draws[j] = sr.draws[j], sr.draws[i]
}

func (sr *shuffleRows) Less(i, j int) bool {
	return sr.draws[i] < sr.draws[j]
}
