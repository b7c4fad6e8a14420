package glyphtrace

import "errors"
import "strconv"

// Returned by [SampleBezier]() and tracing methods when the number of
// samples per arc is lower than 2. No partial output is produced.
var ErrInvalidSampleCount = errors.New("glyphtrace: sample count must be at least 2")

// Returned by [SampleBezier]() when less than two control points are given.
var ErrInvalidControlPoints = errors.New("glyphtrace: a Bézier curve needs at least 2 control points")

// Wrapped by [PointError] when an off-curve conic point is adjacent to
// a point whose tag can't be used to resolve the arc anchors (typically
// a cubic control point). In strict mode, also used when the anchors
// around a cubic pair are not on-curve points.
var ErrUnsupportedAdjacency = errors.New("glyphtrace: unsupported point adjacency")

// Wrapped by [PointError] in strict mode when a cubic control point is
// not part of an adjacent pair of cubic control points.
var ErrUnpairedCubic = errors.New("glyphtrace: unpaired cubic control point")

// Returned when an outline's arrays are inconsistent (mismatched lengths,
// invalid contour ends or unknown tags).
var ErrMalformedOutline = errors.New("glyphtrace: malformed outline")

// Returned when an outline's vertical advance can't be used to
// normalize the traced coordinates (zero, infinite or NaN).
var ErrInvalidAdvance = errors.New("glyphtrace: invalid vertical advance")

// A structural error found while tracing a specific contour point.
// Use [errors.Is]() with [ErrUnsupportedAdjacency] or [ErrUnpairedCubic]
// to tell the error kinds apart.
type PointError struct {
	Contour  int      // contour index within the outline, -1 if unknown
	Index    int      // index of the traced point within its contour
	Neighbor int      // index of the offending point (may equal Index)
	Tag      PointTag // tag of the offending point
	Err      error
}

func (self *PointError) Error() string {
	var contour string
	if self.Contour >= 0 {
		contour = "contour " + strconv.Itoa(self.Contour) + ", "
	}
	return self.Err.Error() + " (" + contour + "point " + strconv.Itoa(self.Index) +
		", point " + strconv.Itoa(self.Neighbor) + " tagged " + self.Tag.String() + ")"
}

func (self *PointError) Unwrap() error { return self.Err }
