package bolt

import (
	"context"
	"fmt"
	"io"

	"go.etcd.io/bbolt"

	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/table"
)

// Store is a bbolt backed table store: each table is a bucket of encoded
// rows keyed by sequence number. Its tables delegate first-N requests,
// which stream off a cursor without realizing the table, and decline
// filter and sort.
type Store struct {
	db *bbolt.DB
}

func Open(path string) (*Store, error) {
	db, err := bbolt.Open(path, 0644, nil)
	if err != nil {
		return nil, err
	}
	return &Store{db: db}, nil
}

func (st *Store) Close() error {
	return st.db.Close()
}

// CreateTable stores rows as a new table, replacing any existing table of
// the same name.
func (st *Store) CreateTable(nam string, rows []fx.Value) error {
	return st.db.Update(func(tx *bbolt.Tx) error {
		err := tx.DeleteBucket([]byte(nam))
		if err != nil && err != bbolt.ErrBucketNotFound {
			return err
		}
		bkt, err := tx.CreateBucket([]byte(nam))
		if err != nil {
			return err
		}
		for rdx, row := range rows {
			val, err := EncodeRow(row)
			if err != nil {
				return err
			}
			err = bkt.Put(rowKey(rdx), val)
			if err != nil {
				return err
			}
		}
		return nil
	})
}

func (st *Store) Table(nam string) (fx.Table, error) {
	err := st.db.View(func(tx *bbolt.Tx) error {
		if tx.Bucket([]byte(nam)) == nil {
			return fmt.Errorf("bolt: table not found: %s", nam)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &Table{st: st, nam: nam}, nil
}

func (st *Store) Tables() ([]string, error) {
	var nams []string
	err := st.db.View(func(tx *bbolt.Tx) error {
		return tx.ForEach(func(nam []byte, bkt *bbolt.Bucket) error {
			nams = append(nams, string(nam))
			return nil
		})
	})
	if err != nil {
		return nil, err
	}
	return nams, nil
}

type Table struct {
	st  *Store
	nam string
}

func (tbl *Table) String() string {
	return fmt.Sprintf("bolt table %s", tbl.nam)
}

func (tbl *Table) Rows(ctx context.Context) (fx.Rows, error) {
	tx, err := tbl.st.db.Begin(false)
	if err != nil {
		return nil, err
	}
	bkt := tx.Bucket([]byte(tbl.nam))
	if bkt == nil {
		tx.Rollback()
		return nil, fmt.Errorf("bolt: table not found: %s", tbl.nam)
	}
	return &rows{tx: tx, cursor: bkt.Cursor()}, nil
}

func (tbl *Table) Count(ctx context.Context) (int, error) {
	var cnt int
	err := tbl.st.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(tbl.nam))
		if bkt == nil {
			return fmt.Errorf("bolt: table not found: %s", tbl.nam)
		}
		cnt = bkt.Stats().KeyN
		return nil
	})
	if err != nil {
		return 0, err
	}
	return cnt, nil
}

func (tbl *Table) At(ctx context.Context, idx int) (fx.Value, error) {
	if idx < 0 {
		return fx.NewError(fx.NotFoundError, "bolt: row %d out of range", idx+1), nil
	}
	var row fx.Value
	err := tbl.st.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(tbl.nam))
		if bkt == nil {
			return fmt.Errorf("bolt: table not found: %s", tbl.nam)
		}
		val := bkt.Get(rowKey(idx))
		if val == nil {
			row = fx.NewError(fx.NotFoundError, "bolt: row %d out of range", idx+1)
			return nil
		}
		var err error
		row, err = DecodeRow(val)
		return err
	})
	if err != nil {
		return nil, err
	}
	return row, nil
}

func (tbl *Table) PushFirstN(ctx context.Context, n int) (fx.Table, bool, error) {
	all := []fx.Value{}
	err := tbl.st.db.View(func(tx *bbolt.Tx) error {
		bkt := tx.Bucket([]byte(tbl.nam))
		if bkt == nil {
			return fmt.Errorf("bolt: table not found: %s", tbl.nam)
		}
		cursor := bkt.Cursor()
		for key, val := cursor.First(); key != nil && len(all) < n; key, val = cursor.Next() {
			row, err := DecodeRow(val)
			if err != nil {
				return err
			}
			all = append(all, row)
		}
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return table.NewValues(all), true, nil
}

// Filter and sort need per row lambda evaluation, which the store cannot
// do; it declines and the caller evaluates locally.
func (tbl *Table) PushFilter(ctx context.Context, pred fx.Lambda) (fx.Table, bool, error) {
	return nil, false, nil
}

func (tbl *Table) PushSort(ctx context.Context, key fx.Lambda, descending bool) (fx.Table,
	bool, error) {

	return nil, false, nil
}

type rows struct {
	tx     *bbolt.Tx
	cursor *bbolt.Cursor
	key    []byte
	val    []byte
	first  bool
}

func (r *rows) Next(ctx context.Context) (fx.Value, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.tx == nil {
		return nil, io.EOF
	}
	if !r.first {
		r.first = true
		r.key, r.val = r.cursor.First()
	} else {
		r.key, r.val = r.cursor.Next()
	}
	if r.key == nil {
		return nil, io.EOF
	}
	return DecodeRow(r.val)
}

func (r *rows) Close() error {
	if r.tx == nil {
		return nil
	}
	tx := r.tx
	r.tx = nil
	return tx.Rollback()
}
