// Package interact resolves pointer interactions on a rendered 2-D plot
// against the tabular dataset the plot was drawn from.
//
// The rendering layer reports an interaction as a payload: a Brush for a
// rectangular (or single-axis) drag selection, a Point for a click or
// hover. Both carry their coordinates in data units together with the
// ScaleInfo of the plotting region they happened in, so that this
// package can map table rows into the same coordinate space.
//
// Selection
//
// BrushedRows returns the rows contained in a brushed region,
// NearRows the rows within a pixel threshold around a clicked point,
// nearest first. Both understand numeric, categorical, temporal and
// boolean columns and optional facet panels: rows from other panels are
// never selected, however close they are positionally.
//
// Tables are never modified. Selection either returns a row subset or,
// with AllRows, the full table with an appended selected_ (and
// optionally dist_) column, sharing the storage of all original columns.
//
// Coordinate spaces
//
// Three coordinate spaces are involved: the data domain of an axis, CSS
// pixels and backing-image pixels. The two pixel spaces differ by the
// device pixel ratio recorded in the Point payload; distances are
// normalized to CSS pixels before the threshold test so that a threshold
// means the same on every screen density.
package interact
