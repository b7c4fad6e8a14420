package glyphtrace

import "errors"
import "fmt"

// Traces a single contour into a closed polyline, without normalizing
// its coordinates. On-curve points are emitted directly, while conic and
// cubic control points are replaced by the points of their sampled arcs.
//
// Arcs share their anchors with the surrounding points, so consecutive
// duplicated points are emitted only once, and a final point equal to
// the first one is omitted (the polyline is implicitly closed).
func (self *Tracer) TraceContour(contour Contour) ([]Point, error) {
	if self.segments < 2 { return nil, ErrInvalidSampleCount }

	traced := make([]Point, 0, len(contour.Points)*self.segments)
	for i, tag := range contour.Tags {
		var arc []Point
		var err error
		switch tag {
		case OnCurve:
			traced = appendStitched(traced, contour.Points[i])
			continue
		case OffConic:
			arc, err = self.TraceConic(contour, i)
		case OffCubic:
			arc, err = self.TraceCubic(contour, i)
		default:
			return nil, fmt.Errorf("%w: point %d has unknown tag %s", ErrMalformedOutline, i, tag)
		}
		if err != nil { return nil, err }
		traced = appendStitched(traced, arc...)
	}

	if n := len(traced); n > 1 && traced[n - 1] == traced[0] {
		traced = traced[: n - 1]
	}
	return traced, nil
}

func appendStitched(traced []Point, points ...Point) []Point {
	for _, point := range points {
		if len(traced) > 0 && traced[len(traced) - 1] == point { continue }
		traced = append(traced, point)
	}
	return traced
}

// Traces all the contours of the given outline, in order, and divides
// the resulting coordinates by the outline's vertical advance, so glyphs
// from any font end up with a vertical advance of 1.
//
// Structural errors are returned as [*PointError] values with the
// contour index set. Contours without points result in empty traced
// contours.
func (self *Tracer) TraceOutline(outline *Outline) ([][]Point, error) {
	if self.segments < 2 { return nil, ErrInvalidSampleCount }
	if !validAdvance(outline.VertAdvance) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAdvance, outline.VertAdvance)
	}
	contours, err := outline.Contours()
	if err != nil { return nil, err }

	traced := make([][]Point, len(contours))
	for i, contour := range contours {
		points, err := self.TraceContour(contour)
		if err != nil {
			var pointErr *PointError
			if errors.As(err, &pointErr) { pointErr.Contour = i }
			return nil, err
		}
		for j, point := range points {
			points[j] = point.Div(outline.VertAdvance)
		}
		traced[i] = points
	}
	return traced, nil
}
