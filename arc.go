package glyphtrace

// Traces the quadratic arc implied by the conic control point at the
// given contour index. The arc anchors are resolved from the previous
// and next contour points: on-curve neighbors are used directly, while
// conic neighbors imply a virtual on-curve point at the middle of both
// control points. Any other neighbor tag results in a [*PointError]
// wrapping [ErrUnsupportedAdjacency].
//
// The returned slice contains exactly [Tracer.Segments]() points, the
// first and last being the arc anchors.
func (self *Tracer) TraceConic(contour Contour, idx int) ([]Point, error) {
	if self.segments < 2 { return nil, ErrInvalidSampleCount }

	start, err := conicAnchor(contour, idx, contour.prev(idx))
	if err != nil { return nil, err }
	end, err := conicAnchor(contour, idx, contour.next(idx))
	if err != nil { return nil, err }
	return SampleBezier([]Point{start, contour.Points[idx], end}, self.segments)
}

func conicAnchor(contour Contour, idx, neighbor int) (Point, error) {
	switch contour.Tags[neighbor] {
	case OnCurve:
		return contour.Points[neighbor], nil
	case OffConic:
		return Midpoint(contour.Points[neighbor], contour.Points[idx]), nil
	default:
		return Point{}, &PointError{
			Contour:  -1,
			Index:    idx,
			Neighbor: neighbor,
			Tag:      contour.Tags[neighbor],
			Err:      ErrUnsupportedAdjacency,
		}
	}
}

// Traces the cubic arc for the cubic control point at the given contour
// index. Cubic control points come in adjacent pairs, and the arc is only
// traced when idx is the second point of the pair, using the points
// before and after the pair as anchors. For the first point of a pair,
// the result is empty, so walking a contour doesn't trace arcs twice.
//
// Unpaired cubic control points also result in an empty slice, unless
// the tracer is in strict mode (see [Tracer.SetStrict]()).
func (self *Tracer) TraceCubic(contour Contour, idx int) ([]Point, error) {
	if self.segments < 2 { return nil, ErrInvalidSampleCount }

	// a single point contour wraps around to itself, which is no pair
	prev, next := contour.prev(idx), contour.next(idx)
	if prev == idx || contour.Tags[prev] != OffCubic || contour.Tags[idx] != OffCubic {
		if self.strict && contour.Tags[idx] == OffCubic && (next == idx || contour.Tags[next] != OffCubic) {
			return nil, cubicError(idx, idx, contour.Tags[idx], ErrUnpairedCubic)
		}
		return nil, nil
	}

	before := contour.prev(prev)
	if self.strict {
		err := checkCubicAnchor(contour, idx, before)
		if err != nil { return nil, err }
		err = checkCubicAnchor(contour, idx, next)
		if err != nil { return nil, err }
	}

	controls := []Point{
		contour.Points[before],
		contour.Points[prev],
		contour.Points[idx],
		contour.Points[next],
	}
	return SampleBezier(controls, self.segments)
}

func checkCubicAnchor(contour Contour, idx, anchor int) error {
	switch contour.Tags[anchor] {
	case OnCurve:
		return nil
	case OffCubic: // run of more than two cubic control points
		return cubicError(idx, anchor, OffCubic, ErrUnpairedCubic)
	default:
		return cubicError(idx, anchor, contour.Tags[anchor], ErrUnsupportedAdjacency)
	}
}

func cubicError(idx, neighbor int, tag PointTag, err error) *PointError {
	return &PointError{Contour: -1, Index: idx, Neighbor: neighbor, Tag: tag, Err: err}
}
