package glyphtrace

import "fmt"
import "math"

// A glyph outline as supplied by an outline provider: a flat array of
// points with a parallel array of tags, partitioned into closed contours
// by their ending indices.
//
// Outlines are read-only inputs. None of the tracing functions modify
// them, so the same outline can be traced concurrently.
type Outline struct {
	Points []Point
	Tags   []PointTag

	// Cumulative, inclusive ending index of each contour. Contour i
	// consists of the points Ends[i - 1] + 1 ... Ends[i], where
	// Ends[-1] is considered to be -1.
	Ends []int

	// Vertical advance of the glyph, in the same units as the points.
	// Traced coordinates are divided by this value.
	VertAdvance float64

	// Horizontal advance of the glyph, in the same units as the points.
	// Not used during tracing, but carried for text placement.
	HorzAdvance float64
}

// A single closed contour. Indices wrap around in both directions:
// the point after the last one is the first one, and vice versa.
type Contour struct {
	Points []Point
	Tags   []PointTag
}

// Returns the number of points in the contour.
func (self Contour) Len() int { return len(self.Points) }

// Returns the index preceding the given one, wrapping around.
func (self Contour) prev(idx int) int {
	if idx <= 0 { return len(self.Points) - 1 }
	return idx - 1
}

// Returns the index following the given one, wrapping around.
func (self Contour) next(idx int) int {
	if idx >= len(self.Points) - 1 { return 0 }
	return idx + 1
}

// Returns the number of contours in the outline.
func (self *Outline) NumContours() int { return len(self.Ends) }

// Checks that the point, tag and contour end arrays are consistent.
// Errors wrap [ErrMalformedOutline].
func (self *Outline) Validate() error {
	if len(self.Points) != len(self.Tags) {
		return fmt.Errorf("%w: %d points but %d tags", ErrMalformedOutline, len(self.Points), len(self.Tags))
	}
	prevEnd := -1
	for i, end := range self.Ends {
		if end < prevEnd || end >= len(self.Points) {
			return fmt.Errorf("%w: contour %d ends at invalid index %d", ErrMalformedOutline, i, end)
		}
		prevEnd = end
	}
	if prevEnd != len(self.Points) - 1 {
		return fmt.Errorf("%w: %d points not assigned to any contour", ErrMalformedOutline, len(self.Points) - 1 - prevEnd)
	}
	for i, tag := range self.Tags {
		if !tag.IsValid() {
			return fmt.Errorf("%w: point %d has unknown tag %s", ErrMalformedOutline, i, tag)
		}
	}
	return nil
}

// Returns the contours of the outline. The returned contours share
// their backing arrays with the outline and must not be modified.
func (self *Outline) Contours() ([]Contour, error) {
	err := self.Validate()
	if err != nil { return nil, err }

	contours := make([]Contour, len(self.Ends))
	start := 0
	for i, end := range self.Ends {
		contours[i] = Contour{
			Points: self.Points[start : end + 1],
			Tags:   self.Tags[start : end + 1],
		}
		start = end + 1
	}
	return contours, nil
}

func validAdvance(advance float64) bool {
	return advance != 0 && !math.IsNaN(advance) && !math.IsInf(advance, 0)
}
