package document

// Direction is the reading direction of a rendered page
type Direction string

const (
	DirectionLTR Direction = "ltr"
	DirectionRTL Direction = "rtl"
)

// String returns the string representation of Direction
func (d Direction) String() string {
	return string(d)
}

// Layout is the resolved page geometry for one render. Width and height are
// expressed in Unit; Padding carries the template margins unchanged.
// Direction changes the leading edge, table column order and watermark
// rotation sign, but never the page box.
type Layout struct {
	Width     float64   `json:"width"`
	Height    float64   `json:"height"`
	Unit      Unit      `json:"unit"`
	Padding   Margins   `json:"padding"`
	Direction Direction `json:"direction"`
}

// ResolveLayout computes the effective page box for the given paper size,
// orientation and margins. Landscape swaps the portrait base dimensions.
// The direction follows the primary language: Arabic reads right-to-left.
func ResolveLayout(paper PaperSize, orientation Orientation, margins Margins, primary Language) Layout {
	w, h, unit := paper.Dimensions()
	if orientation == OrientationLandscape {
		w, h = h, w
	}

	dir := DirectionLTR
	if primary == LanguageArabic {
		dir = DirectionRTL
	}

	return Layout{
		Width:     w,
		Height:    h,
		Unit:      unit,
		Padding:   margins,
		Direction: dir,
	}
}

// IsRTL returns true when the layout reads right-to-left
func (l Layout) IsRTL() bool {
	return l.Direction == DirectionRTL
}

// WatermarkRotation returns the rotation angle in degrees for the watermark
// overlay. The sign follows the reading direction so the label rises toward
// the leading edge.
func (l Layout) WatermarkRotation() int {
	if l.IsRTL() {
		return 45
	}
	return -45
}
