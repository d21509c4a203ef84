// Package data contains the column oriented table the selection
// functions of package interact operate on.
//
// A Table is a sequence of named, typed columns of equal length.
// Tables are immutable: the row-subset and column-append operations
// return a new Table and share the storage of all untouched columns.
package data

import (
	"fmt"
	"time"
)

// ----------------------------------------------------------------------------
// Kind

// Kind is the semantic type of a column. Every column has exactly one
// Kind, resolved once at construction.
type Kind int

const (
	Numeric Kind = iota
	Categorical
	Temporal
	Boolean
)

// String returns the kind of k.
func (k Kind) String() string {
	return []string{"numeric", "categorical", "temporal", "boolean"}[int(k)]
}

// ----------------------------------------------------------------------------
// Column

// A Column is one named column of a Table. The zero value is not useful,
// use one of the constructors below. Columns share their cell storage
// when copied, the slices returned by the accessors must not be modified.
type Column struct {
	Name string
	Kind Kind

	floats  []float64
	strings []string
	times   []time.Time
	bools   []bool
}

// NumericCol returns a numeric column. NaN cells are treated as missing.
func NumericCol(name string, v []float64) Column {
	return Column{Name: name, Kind: Numeric, floats: v}
}

// CategoricalCol returns a categorical (text) column.
func CategoricalCol(name string, v []string) Column {
	return Column{Name: name, Kind: Categorical, strings: v}
}

// TemporalCol returns a temporal column. The zero time is treated
// as missing.
func TemporalCol(name string, v []time.Time) Column {
	return Column{Name: name, Kind: Temporal, times: v}
}

// BoolCol returns a boolean column.
func BoolCol(name string, v []bool) Column {
	return Column{Name: name, Kind: Boolean, bools: v}
}

// Len returns the number of cells in c.
func (c Column) Len() int {
	switch c.Kind {
	case Numeric:
		return len(c.floats)
	case Categorical:
		return len(c.strings)
	case Temporal:
		return len(c.times)
	case Boolean:
		return len(c.bools)
	}
	panic(c.Kind)
}

// Floats returns the cells of a Numeric column.
func (c Column) Floats() []float64 { return c.floats }

// Strings returns the cells of a Categorical column.
func (c Column) Strings() []string { return c.strings }

// Times returns the cells of a Temporal column.
func (c Column) Times() []time.Time { return c.times }

// Bools returns the cells of a Boolean column.
func (c Column) Bools() []bool { return c.bools }

// take returns a new column containing the cells at idx in that order.
func (c Column) take(idx []int) Column {
	t := Column{Name: c.Name, Kind: c.Kind}
	switch c.Kind {
	case Numeric:
		t.floats = make([]float64, len(idx))
		for j, i := range idx {
			t.floats[j] = c.floats[i]
		}
	case Categorical:
		t.strings = make([]string, len(idx))
		for j, i := range idx {
			t.strings[j] = c.strings[i]
		}
	case Temporal:
		t.times = make([]time.Time, len(idx))
		for j, i := range idx {
			t.times[j] = c.times[i]
		}
	case Boolean:
		t.bools = make([]bool, len(idx))
		for j, i := range idx {
			t.bools[j] = c.bools[i]
		}
	default:
		panic(c.Kind)
	}
	return t
}

// ----------------------------------------------------------------------------
// Table

// A Table holds tabular data by column. Column order is the construction
// order, row order is preserved by all operations.
type Table struct {
	cols []Column
	n    int
}

// NewTable returns a table made of the given columns. All columns must
// have the same length and distinct names; NewTable panics otherwise as
// this is a construction error, not an input condition.
func NewTable(cols ...Column) *Table {
	t := &Table{cols: cols}
	seen := make(map[string]bool, len(cols))
	for i, c := range cols {
		if seen[c.Name] {
			panic(fmt.Sprintf("data: duplicate column %q", c.Name))
		}
		seen[c.Name] = true
		if i == 0 {
			t.n = c.Len()
		} else if c.Len() != t.n {
			panic(fmt.Sprintf("data: column %q has %d rows, want %d",
				c.Name, c.Len(), t.n))
		}
	}
	return t
}

// NumRows returns the number of rows of t.
func (t *Table) NumRows() int { return t.n }

// NumCols returns the number of columns of t.
func (t *Table) NumCols() int { return len(t.cols) }

// ColNames returns the column names in column order.
func (t *Table) ColNames() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Col looks up the column with the given name.
func (t *Table) Col(name string) (Column, bool) {
	for _, c := range t.cols {
		if c.Name == name {
			return c, true
		}
	}
	return Column{}, false
}

// HasCol reports whether t has a column with the given name.
func (t *Table) HasCol(name string) bool {
	_, ok := t.Col(name)
	return ok
}

// Take returns a new table containing the rows at idx in that order.
// An index may appear more than once. Take(nil) returns an empty table
// with the same columns.
func (t *Table) Take(idx []int) *Table {
	cols := make([]Column, len(t.cols))
	for i, c := range t.cols {
		cols[i] = c.take(idx)
	}
	return &Table{cols: cols, n: len(idx)}
}

// Where returns a new table containing the rows for which keep is true,
// in their original order. keep must have one entry per row.
func (t *Table) Where(keep []bool) *Table {
	idx := make([]int, 0, len(keep))
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	return t.Take(idx)
}

// WithColumn returns a new table with col appended, or replacing an
// existing column of the same name. All other columns share their
// storage with t.
func (t *Table) WithColumn(col Column) *Table {
	if col.Len() != t.n {
		panic(fmt.Sprintf("data: column %q has %d rows, want %d",
			col.Name, col.Len(), t.n))
	}
	cols := make([]Column, 0, len(t.cols)+1)
	replaced := false
	for _, c := range t.cols {
		if c.Name == col.Name {
			cols = append(cols, col)
			replaced = true
		} else {
			cols = append(cols, c)
		}
	}
	if !replaced {
		cols = append(cols, col)
	}
	return &Table{cols: cols, n: t.n}
}
