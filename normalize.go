package interact

import (
	"math"
	"sort"
	"strconv"
	"time"

	"github.com/vdobler/interact/data"
)

// epochSeconds returns t as seconds since the Unix epoch. Temporal
// columns take part in scaling and distance computation through this
// encoding.
func epochSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

// AsNumber coerces a table column into a plain numeric vector so that
// every column kind can enter the coordinate scaler and the distance
// computation.
//
// If levels is non-nil it is the ordered list of known discrete values
// for the column's axis and every cell is replaced by its 1-based
// position within levels; unmatched cells become NaN. Without levels,
// categorical cells map to their 1-based index in the sorted set of
// distinct values, numeric cells pass through unchanged, temporal cells
// become epoch seconds and boolean cells 0 or 1.
func AsNumber(col data.Column, levels []string) []float64 {
	if levels != nil {
		return matchLevels(col, levels)
	}

	switch col.Kind {
	case data.Numeric:
		v := col.Floats()
		out := make([]float64, len(v))
		copy(out, v)
		return out
	case data.Categorical:
		return rankLevels(col.Strings())
	case data.Temporal:
		ts := col.Times()
		out := make([]float64, len(ts))
		for i, t := range ts {
			if t.IsZero() {
				out[i] = math.NaN()
			} else {
				out[i] = epochSeconds(t)
			}
		}
		return out
	case data.Boolean:
		bs := col.Bools()
		out := make([]float64, len(bs))
		for i, b := range bs {
			if b {
				out[i] = 1
			}
		}
		return out
	}
	panic(col.Kind)
}

// matchLevels maps every cell of col to its 1-based position in levels.
// Non-text cells are matched through their text form, mirroring the
// level lists the rendering layer builds from formatted axis values.
func matchLevels(col data.Column, levels []string) []float64 {
	pos := make(map[string]float64, len(levels))
	for i, l := range levels {
		if _, ok := pos[l]; !ok {
			pos[l] = float64(i + 1)
		}
	}

	out := make([]float64, col.Len())
	for i := range out {
		s, ok := cellText(col, i)
		if !ok {
			out[i] = math.NaN()
			continue
		}
		if p, ok := pos[s]; ok {
			out[i] = p
		} else {
			out[i] = math.NaN()
		}
	}
	return out
}

// cellText returns the text form of cell i of col, ok == false for a
// missing cell.
func cellText(col data.Column, i int) (string, bool) {
	switch col.Kind {
	case data.Categorical:
		return col.Strings()[i], true
	case data.Numeric:
		v := col.Floats()[i]
		if math.IsNaN(v) {
			return "", false
		}
		return strconv.FormatFloat(v, 'g', -1, 64), true
	case data.Temporal:
		t := col.Times()[i]
		if t.IsZero() {
			return "", false
		}
		return strconv.FormatFloat(epochSeconds(t), 'g', -1, 64), true
	case data.Boolean:
		return strconv.FormatBool(col.Bools()[i]), true
	}
	panic(col.Kind)
}

// rankLevels maps every value to its 1-based index in the sorted set of
// distinct values.
func rankLevels(vals []string) []float64 {
	distinct := make([]string, 0, len(vals))
	seen := make(map[string]bool, len(vals))
	for _, v := range vals {
		if !seen[v] {
			seen[v] = true
			distinct = append(distinct, v)
		}
	}
	sort.Strings(distinct)

	rank := make(map[string]float64, len(distinct))
	for i, v := range distinct {
		rank[v] = float64(i + 1)
	}

	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = rank[v]
	}
	return out
}
