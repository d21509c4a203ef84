package interact

import (
	"strconv"

	"github.com/vdobler/interact/data"
)

// ----------------------------------------------------------------------------
// Panel matching

// panelMatch reports per row whether the facet column value equals the
// panel identity recorded in an interaction payload. Panel identities
// arrive as text even when the underlying column is numeric, so the
// search value is coerced to the column's kind before comparing. A
// search value that cannot be coerced matches no row.
func panelMatch(search string, col data.Column) []bool {
	mask := make([]bool, col.Len())

	switch col.Kind {
	case data.Numeric:
		want, err := strconv.ParseFloat(search, 64)
		if err != nil {
			return mask
		}
		for i, v := range col.Floats() {
			mask[i] = v == want
		}
	case data.Categorical:
		for i, s := range col.Strings() {
			mask[i] = s == search
		}
	case data.Temporal:
		want, err := strconv.ParseFloat(search, 64)
		if err != nil {
			return mask
		}
		for i, t := range col.Times() {
			mask[i] = !t.IsZero() && epochSeconds(t) == want
		}
	case data.Boolean:
		want, err := strconv.ParseBool(search)
		if err != nil {
			return mask
		}
		for i, b := range col.Bools() {
			mask[i] = b == want
		}
	default:
		panic(col.Kind)
	}
	return mask
}

// panelFilter ANDs the panel-match mask for one configured panel
// variable into keep. The variable name resolves from the explicit
// option, else from the payload mapping; an unconfigured panel variable
// imposes no constraint.
func panelFilter(tbl *data.Table, keep []bool, explicit, mapped, value string) error {
	name := explicit
	if name == "" {
		name = mapped
	}
	if name == "" {
		return nil
	}
	col, ok := tbl.Col(name)
	if !ok {
		return unknownColumn(name)
	}
	and(keep, panelMatch(value, col))
	return nil
}
