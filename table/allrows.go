package table

import (
	"context"
	"io"

	"github.com/folio-lang/folio/fx"
)

// AllRows realizes all of the rows of a table as a slice.
func AllRows(ctx context.Context, tbl fx.Table) ([]fx.Value, error) {
	rows, err := tbl.Rows(ctx)
	if err != nil {
		return nil, err
	}

	all := []fx.Value{}
	for {
		row, err := rows.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			rows.Close()
			return nil, err
		}
		all = append(all, row)
	}
	err = rows.Close()
	if err != nil {
		return nil, err
	}
	return all, nil
}

// FirstRows realizes at most n rows of a table.
func FirstRows(ctx context.Context, tbl fx.Table, n int) ([]fx.Value, error) {
	rows, err := tbl.Rows(ctx)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	all := []fx.Value{}
	for len(all) < n {
		row, err := rows.Next(ctx)
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		all = append(all, row)
	}
	return all, nil
}
