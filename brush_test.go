package interact

import (
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/vdobler/interact/data"
)

func xyTable() *data.Table {
	return data.NewTable(
		data.NumericCol("x", []float64{1, 2, 10}),
		data.NumericCol("y", []float64{1, 2, 10}),
	)
}

func xyBrush(xmin, xmax, ymin, ymax float64, direction string) *Brush {
	return &Brush{
		XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax,
		Direction: direction,
		Mapping:   Mapping{X: "x", Y: "y"},
	}
}

func colFloats(t *testing.T, tbl *data.Table, name string) []float64 {
	t.Helper()
	col, ok := tbl.Col(name)
	if !ok {
		t.Fatalf("table has no column %q", name)
	}
	return col.Floats()
}

func colBools(t *testing.T, tbl *data.Table, name string) []bool {
	t.Helper()
	col, ok := tbl.Col(name)
	if !ok {
		t.Fatalf("table has no column %q", name)
	}
	return col.Bools()
}

func TestBrushedRows(t *testing.T) {
	got, err := BrushedRows(xyTable(), xyBrush(0, 3, 0, 3, "xy"), BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 2}; !equalVec(colFloats(t, got, "x"), want) {
		t.Errorf("selected x = %v, want %v", colFloats(t, got, "x"), want)
	}
}

func TestBrushedRowsDirection(t *testing.T) {
	// y values are out of the brushed y interval, but direction "x"
	// imposes no y constraint.
	tbl := data.NewTable(
		data.NumericCol("x", []float64{1, 2, 10}),
		data.NumericCol("y", []float64{100, 200, 300}),
	)

	got, err := BrushedRows(tbl, xyBrush(0, 3, 0, 3, "x"), BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 2 {
		t.Errorf("direction x selected %d rows, want 2", got.NumRows())
	}

	got, err = BrushedRows(tbl, xyBrush(0, 3, 0, 3, "y"), BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 0 {
		t.Errorf("direction y selected %d rows, want 0", got.NumRows())
	}
}

func TestBrushedRowsNoBrush(t *testing.T) {
	tbl := xyTable()

	got, err := BrushedRows(tbl, nil, BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 0 || got.NumCols() != tbl.NumCols() {
		t.Errorf("nil brush: got %d rows, %d cols; want 0 rows, %d cols",
			got.NumRows(), got.NumCols(), tbl.NumCols())
	}

	got, err = BrushedRows(tbl, nil, BrushOptions{AllRows: true})
	if err != nil {
		t.Fatal(err)
	}
	if want := []bool{false, false, false}; !reflect.DeepEqual(colBools(t, got, SelectedCol), want) {
		t.Errorf("nil brush with AllRows: selected_ = %v, want all false",
			colBools(t, got, SelectedCol))
	}
}

func TestBrushedRowsMalformed(t *testing.T) {
	b := xyBrush(0, 3, 0, 3, "xy")
	b.XMin = math.NaN()
	_, err := BrushedRows(xyTable(), b, BrushOptions{})
	if err == nil || !strings.Contains(err.Error(), "xmin") {
		t.Errorf("malformed brush: err = %v, want error naming xmin", err)
	}
}

func TestBrushedRowsVarResolution(t *testing.T) {
	tbl := xyTable()

	// Explicit option wins over the payload mapping.
	b := xyBrush(0, 3, 0, 3, "xy")
	b.Mapping.X = "nonsense"
	got, err := BrushedRows(tbl, b, BrushOptions{XVar: "x"})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 2 {
		t.Errorf("explicit XVar: got %d rows, want 2", got.NumRows())
	}

	// No option, no mapping: the axis cannot be used.
	b = xyBrush(0, 3, 0, 3, "xy")
	b.Mapping.X = ""
	_, err = BrushedRows(tbl, b, BrushOptions{})
	if err == nil || !strings.Contains(err.Error(), "x variable") {
		t.Errorf("unresolvable x: err = %v, want error naming the x axis", err)
	}

	// Resolved name not in the table.
	b = xyBrush(0, 3, 0, 3, "xy")
	b.Mapping.X = "wat"
	_, err = BrushedRows(tbl, b, BrushOptions{})
	if err == nil || !strings.Contains(err.Error(), `"wat"`) {
		t.Errorf("unknown column: err = %v, want error naming the column", err)
	}
}

func TestBrushedRowsMissingValues(t *testing.T) {
	tbl := data.NewTable(
		data.NumericCol("x", []float64{1, math.NaN(), 2}),
		data.NumericCol("y", []float64{1, 1, 2}),
	)
	got, err := BrushedRows(tbl, xyBrush(0, 3, 0, 3, "xy"), BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if want := []float64{1, 2}; !equalVec(colFloats(t, got, "x"), want) {
		t.Errorf("missing x excluded: got x = %v, want %v", colFloats(t, got, "x"), want)
	}
}

func TestBrushedRowsPanels(t *testing.T) {
	tbl := data.NewTable(
		data.NumericCol("x", []float64{1, 1, 2, 2}),
		data.NumericCol("y", []float64{1, 1, 2, 2}),
		data.CategoricalCol("grp", []string{"a", "b", "a", "b"}),
		data.NumericCol("num", []float64{1, 1, 2, 2}),
	)

	b := xyBrush(0, 3, 0, 3, "xy")
	b.Mapping.PanelVar1 = "grp"
	b.PanelVar1 = "a"
	got, err := BrushedRows(tbl, b, BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 2 {
		t.Errorf("panel a: got %d rows, want 2", got.NumRows())
	}

	// Numeric panel column with the textual panel identity of the payload.
	b = xyBrush(0, 3, 0, 3, "xy")
	b.PanelVar1 = "2"
	got, err = BrushedRows(tbl, b, BrushOptions{PanelVar1: "num"})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 2 {
		t.Errorf("numeric panel: got %d rows, want 2", got.NumRows())
	}

	// Two panel variables AND together.
	b = xyBrush(0, 3, 0, 3, "xy")
	b.PanelVar1, b.PanelVar2 = "a", "2"
	got, err = BrushedRows(tbl, b, BrushOptions{PanelVar1: "grp", PanelVar2: "num"})
	if err != nil {
		t.Fatal(err)
	}
	if got.NumRows() != 1 {
		t.Errorf("two panels: got %d rows, want 1", got.NumRows())
	}
}

func TestBrushedRowsDiscreteLimits(t *testing.T) {
	tbl := data.NewTable(
		data.CategoricalCol("x", []string{"small", "medium", "large", "huge"}),
		data.NumericCol("y", []float64{1, 1, 1, 1}),
	)
	b := xyBrush(1.5, 3.5, 0, 3, "xy")
	b.DiscreteLimits.X = []string{"small", "medium", "large"}

	got, err := BrushedRows(tbl, b, BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	// medium=2 and large=3 are inside [1.5, 3.5]; "huge" is not a
	// known level and is excluded like a missing value.
	col, _ := got.Col("x")
	if want := []string{"medium", "large"}; !reflect.DeepEqual(col.Strings(), want) {
		t.Errorf("discrete limits: got x = %v, want %v", col.Strings(), want)
	}
}

// The AllRows mask must flag exactly the rows the plain selection returns.
func TestBrushedRowsMaskAgreement(t *testing.T) {
	tbl := xyTable()
	b := xyBrush(0, 3, 0, 3, "xy")

	subset, err := BrushedRows(tbl, b, BrushOptions{})
	if err != nil {
		t.Fatal(err)
	}
	flagged, err := BrushedRows(tbl, b, BrushOptions{AllRows: true})
	if err != nil {
		t.Fatal(err)
	}
	if flagged.NumRows() != tbl.NumRows() {
		t.Fatalf("AllRows dropped rows: %d of %d", flagged.NumRows(), tbl.NumRows())
	}
	n := 0
	for _, s := range colBools(t, flagged, SelectedCol) {
		if s {
			n++
		}
	}
	if n != subset.NumRows() {
		t.Errorf("mask has %d true entries, subset has %d rows", n, subset.NumRows())
	}
}
