package interact

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/vdobler/interact/data"
)

// ----------------------------------------------------------------------------
// Proximity selection

// DefaultThreshold is the selection radius in CSS pixels used when
// NearOptions.Threshold is unset.
const DefaultThreshold = 5

// NearOptions control NearRows.
type NearOptions struct {
	// XVar and YVar name the table columns the plot's x and y
	// positions were drawn from. They take precedence over the
	// payload's Mapping; when both are empty, selection fails.
	// Both axes are mandatory for proximity selection.
	XVar, YVar string

	// PanelVar1 and PanelVar2 name the facet panel columns, optional
	// as in BrushOptions.
	PanelVar1, PanelVar2 string

	// Threshold is the maximal distance to the interaction point in
	// CSS pixels. Values <= 0 select DefaultThreshold.
	Threshold float64

	// MaxPoints caps the number of selected rows, keeping the nearest.
	// Values <= 0 mean no cap.
	MaxPoints int

	// AddDist appends the raw per-row distance as a dist_ column,
	// before any filtering.
	AddDist bool

	// AllRows returns the full table in original order with an
	// appended boolean selected_ column instead of the
	// distance-sorted row subset.
	AllRows bool
}

// NearRows returns the rows of tbl within the threshold distance of the
// interaction point, nearest first with ties in original row order.
//
// A nil point is the "no interaction yet" state: nothing is selected
// and a requested dist_ column is all-missing. Each row is mapped
// through the point's ScaleInfo into image-pixel space and its Euclidean
// distance to the point is measured in CSS pixels, dividing the per-axis
// pixel delta by the recorded device pixel ratio first.
func NearRows(tbl *data.Table, p *Point, opt NearOptions) (*data.Table, error) {
	if p == nil {
		res := tbl
		if opt.AddDist {
			dist := make([]float64, tbl.NumRows())
			for i := range dist {
				dist[i] = math.NaN()
			}
			res = res.WithColumn(data.NumericCol(DistCol, dist))
		}
		return noSelection(res, opt.AllRows), nil
	}
	if math.IsNaN(p.X) {
		return nil, fmt.Errorf("interact: point payload lacks required field %q", "x")
	}

	xcol, err := axisColumn(tbl, opt.XVar, p.Mapping.X, "x", "XVar")
	if err != nil {
		return nil, err
	}
	ycol, err := axisColumn(tbl, opt.YVar, p.Mapping.Y, "y", "YVar")
	if err != nil {
		return nil, err
	}

	xs := AsNumber(xcol, p.DiscreteLimits.X)
	ys := AsNumber(ycol, p.DiscreteLimits.Y)

	// Per-row position in image-pixel space, then the delta to the
	// interaction point normalized into CSS pixels.
	n := tbl.NumRows()
	dx := make([]float64, n)
	dy := make([]float64, n)
	for i := 0; i < n; i++ {
		dx[i], dy[i], _ = p.ScaleInfo.Map(xs[i], ys[i])
	}
	ratioX, ratioY := p.ImgCSSRatio.X, p.ImgCSSRatio.Y
	if ratioX == 0 {
		ratioX = 1
	}
	if ratioY == 0 {
		ratioY = 1
	}
	floats.AddConst(-p.CoordsImg.X, dx)
	floats.Scale(1/ratioX, dx)
	floats.AddConst(-p.CoordsImg.Y, dy)
	floats.Scale(1/ratioY, dy)

	dist := make([]float64, n)
	for i := range dist {
		dist[i] = math.Hypot(dx[i], dy[i])
	}

	if opt.AddDist {
		tbl = tbl.WithColumn(data.NumericCol(DistCol, dist))
	}

	threshold := opt.Threshold
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	keep := make([]bool, n)
	for i, d := range dist {
		keep[i] = d <= threshold // NaN distances never pass
	}

	if err := panelFilter(tbl, keep, opt.PanelVar1, p.Mapping.PanelVar1, p.PanelVar1); err != nil {
		return nil, err
	}
	if err := panelFilter(tbl, keep, opt.PanelVar2, p.Mapping.PanelVar2, p.PanelVar2); err != nil {
		return nil, err
	}

	idx := make([]int, 0, n)
	for i, k := range keep {
		if k {
			idx = append(idx, i)
		}
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return dist[idx[a]] < dist[idx[b]]
	})
	if opt.MaxPoints > 0 && len(idx) > opt.MaxPoints {
		idx = idx[:opt.MaxPoints]
	}

	if opt.AllRows {
		sel := make([]bool, n)
		for _, i := range idx {
			sel[i] = true
		}
		return tbl.WithColumn(data.BoolCol(SelectedCol, sel)), nil
	}
	return tbl.Take(idx), nil
}
