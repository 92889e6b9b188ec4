package ordered

import (
	"context"
	"fmt"

	"github.com/google/btree"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Table is an in-memory table kept ordered by one key column. It delegates
// first-N, and sort when the sort key is a bare reference to the key column,
// by iterating the tree in either direction; everything else it declines.
type Table struct {
	keyCol string
	kind   fx.Kind
	tree   *btree.BTree
	seq    int
}

type rowItem struct {
	key fx.Value
	seq int
	row *fx.Record
}

func (ri rowItem) Less(item btree.Item) bool {
	other := item.(rowItem)
	cmp, _ := fx.Compare(ri.key, other.key)
	if cmp != 0 {
		return cmp < 0
	}
	return ri.seq < other.seq
}

func NewTable(keyCol string) *Table {
	return &Table{keyCol: keyCol, tree: btree.New(16)}
}

// Insert adds a record; the key column must be present, non-blank, and the
// same sortable kind for every row.
func (tbl *Table) Insert(rec *fx.Record) error {
	key, ok := rec.Get(tbl.keyCol)
	if !ok || fx.IsBlank(key) {
		return fmt.Errorf("ordered: row must have a non-blank %s key: %s", tbl.keyCol, rec)
	}
	kk := fx.KindOf(key)
	if !kk.Sortable() {
		return fmt.Errorf("ordered: cannot order %s values", kk)
	}
	if tbl.kind == fx.UnknownKind {
		tbl.kind = kk
	} else if tbl.kind != kk {
		return fmt.Errorf("ordered: want a %s key; got %v", tbl.kind, fx.Format(key))
	}

	tbl.tree.ReplaceOrInsert(rowItem{key: key, seq: tbl.seq, row: rec})
	tbl.seq += 1
	return nil
}

func (tbl *Table) String() string {
	return fmt.Sprintf("ordered table keyed by %s", tbl.keyCol)
}

func (tbl *Table) ascend(n int) []fx.Value {
	rows := []fx.Value{}
	tbl.tree.Ascend(func(item btree.Item) bool {
		rows = append(rows, item.(rowItem).row)
		return n < 0 || len(rows) < n
	})
	if n >= 0 && len(rows) > n {
		rows = rows[:n]
	}
	return rows
}

func (tbl *Table) Rows(ctx context.Context) (fx.Rows, error) {
	return table.NewValues(tbl.ascend(-1)).Rows(ctx)
}

func (tbl *Table) Count(ctx context.Context) (int, error) {
	return tbl.tree.Len(), nil
}

func (tbl *Table) At(ctx context.Context, idx int) (fx.Value, error) {
	if idx < 0 || idx >= tbl.tree.Len() {
		return fx.NewError(fx.NotFoundError, "ordered: row %d out of range; have %d rows",
			idx+1, tbl.tree.Len()), nil
	}
	var row fx.Value
	tbl.tree.Ascend(func(item btree.Item) bool {
		if idx == 0 {
			row = item.(rowItem).row
			return false
		}
		idx -= 1
		return true
	})
	return row, nil
}

func (tbl *Table) PushFirstN(ctx context.Context, n int) (fx.Table, bool, error) {
	if n < 0 {
		n = 0
	}
	return table.NewValues(tbl.ascend(n)), true, nil
}

func (tbl *Table) PushFilter(ctx context.Context, pred fx.Lambda) (fx.Table, bool, error) {
	return nil, false, nil
}

func (tbl *Table) PushSort(ctx context.Context, key fx.Lambda, descending bool) (fx.Table,
	bool, error) {

	ref, ok := key.(fx.FieldReferencer)
	if !ok {
		return nil, false, nil
	}
	nam, ok := ref.FieldRef()
	if !ok || nam != tbl.keyCol {
		return nil, false, nil
	}

	if !descending {
		return table.NewValues(tbl.ascend(-1)), true, nil
	}
	return table.NewValues(tbl.descendKeys()), true, nil
}

// descendKeys returns the rows ordered by descending key, keeping rows with
// equal keys in insertion order to match a stable sort.
func (tbl *Table) descendKeys() []fx.Value {
	items := make([]rowItem, 0, tbl.tree.Len())
	tbl.tree.Ascend(func(item btree.Item) bool {
		items = append(items, item.(rowItem))
		return true
	})

	rows := make([]fx.Value, 0, len(items))
	end := len(items)
	for end > 0 {
		start := end - 1
		for start > 0 {
			cmp, _ := fx.Compare(items[start-1].key, items[end-1].key)
			if cmp != 0 {
				break
			}
			start -= 1
		}
		for idx := start; idx < end; idx += 1 {
			rows = append(rows, items[idx].row)
		}
		end = start
	}
	return rows
}
