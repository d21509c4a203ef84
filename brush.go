package interact

import (
	"fmt"
	"math"
	"strings"

	"github.com/vdobler/interact/data"
)

// ----------------------------------------------------------------------------
// Region selection

// BrushOptions control BrushedRows.
type BrushOptions struct {
	// XVar and YVar name the table columns the plot's x and y
	// positions were drawn from. They take precedence over the
	// payload's Mapping; when both are empty and the axis is in use,
	// selection fails.
	XVar, YVar string

	// PanelVar1 and PanelVar2 name the facet panel columns, with the
	// same precedence over the payload's Mapping. Unlike XVar/YVar
	// they are optional: unresolved panel variables impose no
	// constraint.
	PanelVar1, PanelVar2 string

	// AllRows returns the full table with an appended boolean
	// selected_ column instead of the selected row subset.
	AllRows bool
}

// BrushedRows returns the rows of tbl contained in the brushed region.
//
// A nil brush is the "no interaction yet" state: the result is an empty
// table with tbl's columns or, with AllRows, tbl with an all-false
// selected_ column. Axes not named in the brush direction impose no
// constraint, rows with a missing value on an active axis are excluded.
// Row order is always the original order.
func BrushedRows(tbl *data.Table, b *Brush, opt BrushOptions) (*data.Table, error) {
	if b == nil {
		return noSelection(tbl, opt.AllRows), nil
	}
	if math.IsNaN(b.XMin) {
		return nil, fmt.Errorf("interact: brush payload lacks required field %q", "xmin")
	}

	useX := strings.Contains(b.Direction, "x")
	useY := strings.Contains(b.Direction, "y")

	keep := make([]bool, tbl.NumRows())
	for i := range keep {
		keep[i] = true
	}

	if useX {
		col, err := axisColumn(tbl, opt.XVar, b.Mapping.X, "x", "XVar")
		if err != nil {
			return nil, err
		}
		and(keep, withinBounds(AsNumber(col, b.DiscreteLimits.X), b.XMin, b.XMax))
	}
	if useY {
		col, err := axisColumn(tbl, opt.YVar, b.Mapping.Y, "y", "YVar")
		if err != nil {
			return nil, err
		}
		and(keep, withinBounds(AsNumber(col, b.DiscreteLimits.Y), b.YMin, b.YMax))
	}

	if err := panelFilter(tbl, keep, opt.PanelVar1, b.Mapping.PanelVar1, b.PanelVar1); err != nil {
		return nil, err
	}
	if err := panelFilter(tbl, keep, opt.PanelVar2, b.Mapping.PanelVar2, b.PanelVar2); err != nil {
		return nil, err
	}

	if opt.AllRows {
		return tbl.WithColumn(data.BoolCol(SelectedCol, keep)), nil
	}
	return tbl.Where(keep), nil
}

// withinBounds tests min <= v <= max per value. Missing values never
// pass; a non-missing value that failed to map to the axis limits is
// NaN after AsNumber and falls through this test as well.
func withinBounds(vals []float64, min, max float64) []bool {
	mask := make([]bool, len(vals))
	for i, v := range vals {
		mask[i] = !math.IsNaN(v) && min <= v && v <= max
	}
	return mask
}

// ----------------------------------------------------------------------------
// Shared selection plumbing

// axisColumn resolves the column of one positional axis: the explicit
// option wins, else the payload mapping, else the axis cannot be used.
func axisColumn(tbl *data.Table, explicit, mapped, axis, option string) (data.Column, error) {
	name := explicit
	if name == "" {
		name = mapped
	}
	if name == "" {
		return data.Column{}, fmt.Errorf("interact: cannot infer the %s variable from the payload mapping; set %s explicitly", axis, option)
	}
	col, ok := tbl.Col(name)
	if !ok {
		return data.Column{}, unknownColumn(name)
	}
	return col, nil
}

func unknownColumn(name string) error {
	return fmt.Errorf("interact: table has no column %q", name)
}

// noSelection is the result for an absent payload: nothing is selected.
func noSelection(tbl *data.Table, allRows bool) *data.Table {
	if allRows {
		return tbl.WithColumn(data.BoolCol(SelectedCol, make([]bool, tbl.NumRows())))
	}
	return tbl.Take(nil)
}

// and combines mask into keep element-wise.
func and(keep, mask []bool) {
	for i := range keep {
		keep[i] = keep[i] && mask[i]
	}
}
