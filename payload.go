package interact

import (
	"encoding/json"
	"fmt"
	"math"
)

// ----------------------------------------------------------------------------
// Payloads

// Names of the columns appended to a table by AllRows selection and
// AddDist. They are part of the contract with consumers of the selected
// tables and must not change.
const (
	SelectedCol = "selected_"
	DistCol     = "dist_"
)

// Mapping names the table columns the plot's positional and panel
// aesthetics were drawn from. The rendering layer fills it in when it
// can infer the column names; empty entries mean the caller has to pass
// the variable explicitly via the selection options.
type Mapping struct {
	X         string `json:"x"`
	Y         string `json:"y"`
	PanelVar1 string `json:"panelvar1"`
	PanelVar2 string `json:"panelvar2"`
}

// Brush describes a rectangular or single-axis drag selection in data
// units. A nil *Brush means no brush has been drawn yet, which is a
// regular state, not an error.
//
// The bound fields are NaN when the producer did not record them;
// a non-nil Brush without an XMin is a malformed payload.
type Brush struct {
	XMin float64 `json:"xmin"`
	XMax float64 `json:"xmax"`
	YMin float64 `json:"ymin"`
	YMax float64 `json:"ymax"`

	// Direction selects which axes constrain the selection:
	// "x", "y" or "xy".
	Direction string `json:"direction"`

	// PanelVar1 and PanelVar2 are the facet panel values the brush was
	// drawn on. Panel identities always arrive as text, even when the
	// underlying panel column is numeric.
	PanelVar1 string `json:"panelvar1"`
	PanelVar2 string `json:"panelvar2"`

	Mapping Mapping `json:"mapping"`

	ScaleInfo
}

// Coords is a point in one coordinate space.
type Coords struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Point describes a click or hover position. A nil *Point means no
// interaction has happened yet, which is a regular state, not an error.
//
// X and Y are in data units and NaN when the producer did not record
// them; a non-nil Point without an X is a malformed payload. CoordsCSS
// and CoordsImg are the same position in CSS pixels and backing-image
// pixels, ImgCSSRatio is the per-axis device pixel ratio between the
// two.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`

	CoordsCSS   Coords `json:"coords_css"`
	CoordsImg   Coords `json:"coords_img"`
	ImgCSSRatio Coords `json:"img_css_ratio"`

	PanelVar1 string `json:"panelvar1"`
	PanelVar2 string `json:"panelvar2"`

	Mapping Mapping `json:"mapping"`

	ScaleInfo
}

// ----------------------------------------------------------------------------
// Decoding

// The rendering layer delivers payloads as JSON. The decoders below
// enforce the required-field rules at this boundary: a brush without
// xmin and a point without x are rejected, all optional fields decode
// to their neutral values.

type brushJSON struct {
	XMin      *float64 `json:"xmin"`
	XMax      *float64 `json:"xmax"`
	YMin      *float64 `json:"ymin"`
	YMax      *float64 `json:"ymax"`
	Direction string   `json:"direction"`
	PanelVar1 string   `json:"panelvar1"`
	PanelVar2 string   `json:"panelvar2"`
	Mapping   Mapping  `json:"mapping"`
	ScaleInfo
}

// DecodeBrush decodes a brush payload. It fails if the required xmin
// field is absent; all other fields are optional, absent bounds decode
// to NaN and an absent direction to "xy".
func DecodeBrush(raw []byte) (*Brush, error) {
	var aux brushJSON
	if err := json.Unmarshal(raw, &aux); err != nil {
		return nil, fmt.Errorf("interact: decoding brush payload: %w", err)
	}
	if aux.XMin == nil {
		return nil, fmt.Errorf("interact: brush payload lacks required field %q", "xmin")
	}
	if aux.Direction == "" {
		aux.Direction = "xy"
	}
	return &Brush{
		XMin:      *aux.XMin,
		XMax:      deref(aux.XMax),
		YMin:      deref(aux.YMin),
		YMax:      deref(aux.YMax),
		Direction: aux.Direction,
		PanelVar1: aux.PanelVar1,
		PanelVar2: aux.PanelVar2,
		Mapping:   aux.Mapping,
		ScaleInfo: aux.ScaleInfo,
	}, nil
}

type pointJSON struct {
	X           *float64 `json:"x"`
	Y           *float64 `json:"y"`
	CoordsCSS   Coords   `json:"coords_css"`
	CoordsImg   Coords   `json:"coords_img"`
	ImgCSSRatio *Coords  `json:"img_css_ratio"`
	PanelVar1   string   `json:"panelvar1"`
	PanelVar2   string   `json:"panelvar2"`
	Mapping     Mapping  `json:"mapping"`
	ScaleInfo
}

// DecodePoint decodes a click or hover payload. It fails if the
// required x field is absent; all other fields are optional, an absent
// y decodes to NaN and an absent device pixel ratio to 1 per axis.
func DecodePoint(raw []byte) (*Point, error) {
	var aux pointJSON
	if err := json.Unmarshal(raw, &aux); err != nil {
		return nil, fmt.Errorf("interact: decoding point payload: %w", err)
	}
	if aux.X == nil {
		return nil, fmt.Errorf("interact: point payload lacks required field %q", "x")
	}
	ratio := Coords{X: 1, Y: 1}
	if aux.ImgCSSRatio != nil {
		ratio = *aux.ImgCSSRatio
	}
	return &Point{
		X:           *aux.X,
		Y:           deref(aux.Y),
		CoordsCSS:   aux.CoordsCSS,
		CoordsImg:   aux.CoordsImg,
		ImgCSSRatio: ratio,
		PanelVar1:   aux.PanelVar1,
		PanelVar2:   aux.PanelVar2,
		Mapping:     aux.Mapping,
		ScaleInfo:   aux.ScaleInfo,
	}, nil
}

func deref(p *float64) float64 {
	if p == nil {
		return math.NaN()
	}
	return *p
}
