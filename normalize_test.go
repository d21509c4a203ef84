package interact

import (
	"testing"
	"time"

	"github.com/vdobler/interact/data"
)

func equalVec(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !equal64(a[i], b[i]) {
			return false
		}
	}
	return true
}

var asNumberTests = []struct {
	name   string
	col    data.Column
	levels []string
	want   []float64
}{
	{
		name: "categorical alphabetical ranks",
		col:  data.CategoricalCol("g", []string{"b", "a", "c"}),
		want: []float64{2, 1, 3},
	},
	{
		name: "categorical repeated values",
		col:  data.CategoricalCol("g", []string{"z", "m", "z", "a"}),
		want: []float64{3, 2, 3, 1},
	},
	{
		name:   "categorical with explicit levels",
		col:    data.CategoricalCol("g", []string{"small", "large", "medium"}),
		levels: []string{"small", "medium", "large"},
		want:   []float64{1, 3, 2},
	},
	{
		name:   "unmatched level is missing",
		col:    data.CategoricalCol("g", []string{"small", "huge"}),
		levels: []string{"small", "medium", "large"},
		want:   []float64{1, nan},
	},
	{
		name: "numeric passes through",
		col:  data.NumericCol("x", []float64{3.5, nan, -1}),
		want: []float64{3.5, nan, -1},
	},
	{
		name:   "numeric matched against levels by text form",
		col:    data.NumericCol("x", []float64{2, 1, 7}),
		levels: []string{"1", "2", "3"},
		want:   []float64{2, 1, nan},
	},
	{
		name: "boolean becomes 0/1",
		col:  data.BoolCol("b", []bool{true, false, true}),
		want: []float64{1, 0, 1},
	},
	{
		name: "temporal becomes epoch seconds",
		col: data.TemporalCol("t", []time.Time{
			time.Unix(1000, 0),
			time.Unix(1000, 500000000),
			{}, // missing
		}),
		want: []float64{1000, 1000.5, nan},
	},
}

func TestAsNumber(t *testing.T) {
	for _, tc := range asNumberTests {
		t.Run(tc.name, func(t *testing.T) {
			got := AsNumber(tc.col, tc.levels)
			if !equalVec(got, tc.want) {
				t.Errorf("AsNumber(%v, %v) = %v, want %v",
					tc.col.Name, tc.levels, got, tc.want)
			}
		})
	}
}

// AsNumber returns a fresh vector even for numeric columns: mutating
// the result must not leak into the table.
func TestAsNumberCopies(t *testing.T) {
	raw := []float64{1, 2, 3}
	col := data.NumericCol("x", raw)
	v := AsNumber(col, nil)
	v[0] = 99
	if raw[0] != 1 {
		t.Errorf("AsNumber aliases the column storage")
	}
}
