package glyphtrace

import "strconv"

// The role of a contour point during Bézier arc reconstruction.
//
// Tags follow the FreeType outline conventions: on-curve points lie on
// the glyph outline, while conic and cubic off-curve points are control
// points for quadratic and cubic Bézier arcs respectively.
type PointTag uint8

const (
	OnCurve  PointTag = iota // point on the outline
	OffConic                 // quadratic control point
	OffCubic                 // cubic control point, always paired
)

// Returns the tag name ("OnCurve", "OffConic" or "OffCubic").
func (self PointTag) String() string {
	switch self {
	case OnCurve : return "OnCurve"
	case OffConic: return "OffConic"
	case OffCubic: return "OffCubic"
	default:
		return "PointTag(" + strconv.Itoa(int(self)) + ")"
	}
}

// Returns whether the tag is one of the known tag values.
func (self PointTag) IsValid() bool {
	return self <= OffCubic
}
