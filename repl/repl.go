package repl

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/folio-lang/folio/expr"
	"github.com/folio-lang/folio/fx"
	"github.com/folio-lang/folio/ops"
	"github.com/folio-lang/folio/storage/bolt"
	"github.com/folio-lang/folio/storage/ordered"
	"github.com/folio-lang/folio/table"
)

type Repl struct {
	ses    *ops.Session
	store  *bolt.Store
	tables map[string]fx.Value
	w      io.Writer
}

func NewRepl(ses *ops.Session, store *bolt.Store, w io.Writer) *Repl {
	return &Repl{ses: ses, store: store, tables: map[string]fx.Value{}, w: w}
}

const replHelp = `commands:
    load NAME FILE.csv              load a csv file as an in-memory table
    loadbolt NAME FILE.csv          load a csv file into the bolt store
    loadordered NAME KEY FILE.csv   load a csv file as a key-ordered table
    tables                          list tables
    show NAME                       print a table
    filter NAME EXPR                rows where EXPR is true
    lookup NAME EXPR                first row where EXPR is true
    countif NAME EXPR               count rows where EXPR is true
    sort NAME KEY [descending]      order rows by the KEY column
    distinct NAME KEY               distinct KEY values, first occurrence order
    addcol NAME COL EXPR            append a computed column
    first NAME | firstn NAME N | lastn NAME N
    countrows NAME | count NAME | counta NAME
    index NAME N                    the row at position N
    shuffle NAME                    rows in random order
`

// Run executes one command line and prints its result.
func (r *Repl) Run(ctx context.Context, line string) {
	args := strings.Fields(line)
	if len(args) == 0 {
		return
	}

	res, err := r.run(ctx, args[0], args[1:], line)
	if err != nil {
		fmt.Fprintln(r.w, err)
		return
	}
	if res != nil {
		r.print(ctx, res)
	}
}

func (r *Repl) run(ctx context.Context, cmd string, args []string, line string) (fx.Value,
	error) {

	switch cmd {
	case "help":
		fmt.Fprint(r.w, replHelp)
		return nil, nil
	case "load":
		if len(args) != 2 {
			return nil, fmt.Errorf("load: expected a table name and a csv file")
		}
		rows, err := loadCSV(args[1])
		if err != nil {
			return nil, err
		}
		r.tables[args[0]] = table.NewValues(rows)
		fmt.Fprintf(r.w, "%s: %d rows\n", args[0], len(rows))
		return nil, nil
	case "loadbolt":
		if len(args) != 2 {
			return nil, fmt.Errorf("loadbolt: expected a table name and a csv file")
		}
		if r.store == nil {
			return nil, fmt.Errorf("loadbolt: no bolt store is open")
		}
		rows, err := loadCSV(args[1])
		if err != nil {
			return nil, err
		}
		err = r.store.CreateTable(args[0], rows)
		if err != nil {
			return nil, err
		}
		tbl, err := r.store.Table(args[0])
		if err != nil {
			return nil, err
		}
		r.tables[args[0]] = tbl
		fmt.Fprintf(r.w, "%s: %d rows\n", args[0], len(rows))
		return nil, nil
	case "loadordered":
		if len(args) != 3 {
			return nil, fmt.Errorf("loadordered: expected a table name, a key column, and a csv file")
		}
		rows, err := loadCSV(args[2])
		if err != nil {
			return nil, err
		}
		tbl := ordered.NewTable(args[1])
		for _, row := range rows {
			rec, ok := row.(*fx.Record)
			if !ok {
				continue
			}
			err = tbl.Insert(rec)
			if err != nil {
				return nil, err
			}
		}
		r.tables[args[0]] = tbl
		fmt.Fprintf(r.w, "%s: %d rows\n", args[0], len(rows))
		return nil, nil
	case "tables":
		nams := make([]string, 0, len(r.tables))
		for nam := range r.tables {
			nams = append(nams, nam)
		}
		sort.Strings(nams)
		for _, nam := range nams {
			fmt.Fprintln(r.w, nam)
		}
		return nil, nil
	case "show":
		if len(args) != 1 {
			return nil, fmt.Errorf("show: expected a table name")
		}
		return r.lookupTable(args[0])
	case "filter":
		tbl, lam, err := r.tableLambda(cmd, args, line)
		if err != nil {
			return nil, err
		}
		return ops.Filter(ctx, r.ses, tbl, lam)
	case "lookup":
		tbl, lam, err := r.tableLambda(cmd, args, line)
		if err != nil {
			return nil, err
		}
		return ops.LookUp(ctx, r.ses, tbl, lam, nil)
	case "countif":
		tbl, lam, err := r.tableLambda(cmd, args, line)
		if err != nil {
			return nil, err
		}
		return ops.CountIf(ctx, r.ses, tbl, lam)
	case "sort":
		if len(args) < 2 {
			return nil, fmt.Errorf("sort: expected a table name and a key column")
		}
		tbl, err := r.lookupTable(args[0])
		if err != nil {
			return nil, err
		}
		var direction fx.Value = fx.Blank
		if len(args) > 2 {
			direction = fx.StringValue(args[2])
		}
		return ops.Sort(ctx, r.ses, tbl, expr.Ref(args[1]), direction)
	case "distinct":
		if len(args) != 2 {
			return nil, fmt.Errorf("distinct: expected a table name and a key column")
		}
		tbl, err := r.lookupTable(args[0])
		if err != nil {
			return nil, err
		}
		return ops.Distinct(ctx, r.ses, tbl, expr.Ref(args[1]))
	case "addcol":
		if len(args) < 3 {
			return nil, fmt.Errorf("addcol: expected a table name, a column name, and an expression")
		}
		tbl, err := r.lookupTable(args[0])
		if err != nil {
			return nil, err
		}
		lam, err := expr.Parse(rest(line, 3))
		if err != nil {
			return nil, err
		}
		return ops.AddColumns(ctx, r.ses, tbl, fx.StringValue(args[1]), lam)
	case "first":
		tbl, err := r.lookupTable1(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.First(ctx, r.ses, tbl)
	case "firstn":
		tbl, n, err := r.tableCount(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.FirstN(ctx, r.ses, tbl, n)
	case "lastn":
		tbl, n, err := r.tableCount(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.LastN(ctx, r.ses, tbl, n)
	case "countrows":
		tbl, err := r.lookupTable1(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.CountRows(ctx, r.ses, tbl)
	case "count":
		tbl, err := r.lookupTable1(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.Count(ctx, r.ses, tbl)
	case "counta":
		tbl, err := r.lookupTable1(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.CountA(ctx, r.ses, tbl)
	case "index":
		tbl, n, err := r.tableCount(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.Index(ctx, r.ses, tbl, n)
	case "shuffle":
		tbl, err := r.lookupTable1(cmd, args)
		if err != nil {
			return nil, err
		}
		return ops.Shuffle(ctx, r.ses, tbl)
	}
	return nil, fmt.Errorf("unknown command: %s; try help", cmd)
}

func (r *Repl) lookupTable(nam string) (fx.Value, error) {
	tbl, ok := r.tables[nam]
	if !ok {
		return nil, fmt.Errorf("unknown table: %s", nam)
	}
	return tbl, nil
}

func (r *Repl) lookupTable1(cmd string, args []string) (fx.Value, error) {
	if len(args) != 1 {
		return nil, fmt.Errorf("%s: expected a table name", cmd)
	}
	return r.lookupTable(args[0])
}

func (r *Repl) tableLambda(cmd string, args []string, line string) (fx.Value, fx.Lambda,
	error) {

	if len(args) < 2 {
		return nil, nil, fmt.Errorf("%s: expected a table name and an expression", cmd)
	}
	tbl, err := r.lookupTable(args[0])
	if err != nil {
		return nil, nil, err
	}
	lam, err := expr.Parse(rest(line, 2))
	if err != nil {
		return nil, nil, err
	}
	return tbl, lam, nil
}

func (r *Repl) tableCount(cmd string, args []string) (fx.Value, fx.Value, error) {
	if len(args) != 2 {
		return nil, nil, fmt.Errorf("%s: expected a table name and a number", cmd)
	}
	tbl, err := r.lookupTable(args[0])
	if err != nil {
		return nil, nil, err
	}
	n, err := strconv.ParseFloat(args[1], 64)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: expected a number; got %s", cmd, args[1])
	}
	return tbl, fx.NumberValue(n), nil
}

// rest returns the command line after the first n fields so that expressions
// keep their spacing.
func rest(line string, n int) string {
	fields := strings.Fields(line)
	s := line
	for fdx := 0; fdx < n && fdx < len(fields); fdx++ {
		idx := strings.Index(s, fields[fdx])
		s = s[idx+len(fields[fdx]):]
	}
	return strings.TrimSpace(s)
}

func (r *Repl) print(ctx context.Context, res fx.Value) {
	tbl, ok := res.(fx.Table)
	if !ok {
		fmt.Fprintln(r.w, fx.Format(res))
		return
	}

	rows, err := table.AllRows(ctx, tbl)
	if err != nil {
		fmt.Fprintln(r.w, err)
		return
	}

	var cols []string
	have := map[string]struct{}{}
	for _, row := range rows {
		rec, ok := row.(*fx.Record)
		if !ok {
			continue
		}
		for _, fld := range rec.Fields() {
			if _, ok := have[fld.Name]; !ok {
				have[fld.Name] = struct{}{}
				cols = append(cols, fld.Name)
			}
		}
	}

	tw := tablewriter.NewWriter(r.w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader(cols)
	for _, row := range rows {
		cells := make([]string, len(cols))
		if rec, ok := row.(*fx.Record); ok {
			for cdx, col := range cols {
				if v, ok := rec.Get(col); ok {
					cells[cdx] = fx.Format(v)
				}
			}
		} else if len(cells) > 0 {
			cells[0] = fx.Format(row)
		}
		tw.Append(cells)
	}
	tw.Render()
	fmt.Fprintf(r.w, "(%d rows)\n", len(rows))
}

func loadCSV(filename string) ([]fx.Value, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: expected a header row", filename)
	}

	cols := recs[0]
	rows := make([]fx.Value, 0, len(recs)-1)
	for _, rec := range recs[1:] {
		fields := make([]fx.Field, 0, len(rec))
		for cdx, cell := range rec {
			if cdx >= len(cols) {
				break
			}
			fields = append(fields, fx.Field{Name: cols[cdx], Value: cellValue(cell)})
		}
		rows = append(rows, fx.NewRecord(fields...))
	}
	return rows, nil
}

func cellValue(cell string) fx.Value {
	switch cell {
	case "":
		return fx.Blank
	case "true":
		return fx.BoolValue(true)
	case "false":
		return fx.BoolValue(false)
	}
	if n, err := strconv.ParseFloat(cell, 64); err == nil {
		return fx.NumberValue(n)
	}
	return fx.StringValue(cell)
}
