package interact

import (
	"math"

	"gonum.org/v1/plot"
)

// ----------------------------------------------------------------------------
// Interval

// Interval represents a (potentially degenerate) real interval.
// Intervals may be reversed, i.e. Min > Max: a reversed axis is described
// by a reversed interval.
type Interval struct {
	Min, Max float64
}

// Equal reports whether i and j are the same interval. NaN edges compare
// equal to NaN edges.
func (i Interval) Equal(j Interval) bool {
	if math.IsNaN(i.Min) {
		return math.IsNaN(j.Min)
	}
	if math.IsNaN(i.Max) {
		return math.IsNaN(j.Max)
	}
	return i.Min == j.Min && i.Max == j.Max
}

// ----------------------------------------------------------------------------
// Linear and logarithmic mapping

// linearScale normalizes values into the unit interval, see MapLinear.
var linearScale plot.LinearScale

// MapLinear maps x linearly from domain into rng. If clip is true the
// result is clamped into rng; the clamping bounds are order-independent
// so rng may be reversed. NaN propagates through mapping and clamping.
//
// A degenerate domain makes the mapping undefined, the caller has to
// avoid it.
func MapLinear(x float64, domain, rng Interval, clip bool) float64 {
	t := linearScale.Normalize(domain.Min, domain.Max, x)
	y := rng.Min + t*(rng.Max-rng.Min)
	if clip {
		lo, hi := rng.Min, rng.Max
		if lo > hi {
			lo, hi = hi, lo
		}
		y = math.Max(lo, math.Min(hi, y))
	}
	return y
}

// Scale1D maps val from domain into rng. A base > 0 selects a
// logarithmic axis: val is replaced by log_base(val) before the linear
// mapping. For log axes the domain is recorded in log-base units by the
// producer of the scale metadata. The logarithm of a non-positive value
// is NaN or -Inf and propagates into the result, it is never an error.
func Scale1D(val float64, domain, rng Interval, base float64, clip bool) float64 {
	if base > 0 {
		val = math.Log(val) / math.Log(base)
	}
	return MapLinear(val, domain, rng, clip)
}

// ScaleInv1D is the exact inverse of Scale1D: the linear mapping with
// domain and rng swapped, followed by base**result for log axes.
func ScaleInv1D(val float64, domain, rng Interval, base float64, clip bool) float64 {
	y := MapLinear(val, rng, domain, clip)
	if base > 0 {
		y = math.Pow(base, y)
	}
	return y
}

// ----------------------------------------------------------------------------
// ScaleInfo

// Rect describes one rectangular plotting region per axis pair. Left and
// Right bound the x-axis, Bottom and Top the y-axis. The values may be
// reversed when the corresponding axis is.
type Rect struct {
	Left   float64 `json:"left"`
	Right  float64 `json:"right"`
	Bottom float64 `json:"bottom"`
	Top    float64 `json:"top"`
}

// X returns the x-axis interval of r.
func (r Rect) X() Interval { return Interval{r.Left, r.Right} }

// Y returns the y-axis interval of r.
func (r Rect) Y() Interval { return Interval{r.Bottom, r.Top} }

// LogBase holds the per-axis logarithm base. A base of 0 means the axis
// is linear.
type LogBase struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DiscreteLimits holds the ordered categorical levels per axis as
// supplied by the rendering layer. It overrides the default alphabetical
// coercion of categorical columns, see AsNumber.
type DiscreteLimits struct {
	X []string `json:"x"`
	Y []string `json:"y"`
}

// ScaleInfo describes how one plotting region maps data coordinates to
// pixel coordinates: the data Domain, the pixel Range, the optional
// per-axis log base and the optional discrete levels. It is produced by
// the rendering layer and embedded into every interaction payload; the
// field names are a contract with that producer.
type ScaleInfo struct {
	Domain         Rect           `json:"domain"`
	Range          Rect           `json:"range"`
	Log            LogBase        `json:"log"`
	DiscreteLimits DiscreteLimits `json:"discrete_limits"`
}

// Map maps the data coordinate (x, y) into pixel space, per axis via
// Scale1D with clipping. A nil si returns ok == false, absence of scale
// metadata propagates instead of failing.
func (si *ScaleInfo) Map(x, y float64) (px, py float64, ok bool) {
	if si == nil {
		return 0, 0, false
	}
	px = Scale1D(x, si.Domain.X(), si.Range.X(), si.Log.X, true)
	py = Scale1D(y, si.Domain.Y(), si.Range.Y(), si.Log.Y, true)
	return px, py, true
}

// Unmap is the inverse of Map: it maps the pixel coordinate (px, py)
// back into data space. A nil si returns ok == false.
func (si *ScaleInfo) Unmap(px, py float64) (x, y float64, ok bool) {
	if si == nil {
		return 0, 0, false
	}
	x = ScaleInv1D(px, si.Domain.X(), si.Range.X(), si.Log.X, true)
	y = ScaleInv1D(py, si.Domain.Y(), si.Range.Y(), si.Log.Y, true)
	return x, y, true
}
