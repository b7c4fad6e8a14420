package glyphtrace

import "unsafe"

// The traced result for a single glyph: its normalized contours, the
// corresponding line segments and its advance.
type Glyph struct {
	Contours [][]Point // normalized closed polylines, see [Tracer.TraceOutline]()
	Lines    []Point   // segments as consecutive pairs, see [Flatten]()
	Advance  Point     // horizontal advance over vertical advance, and 1
}

// Traces the outline and packs the results into a [Glyph].
func (self *Tracer) TraceGlyph(outline *Outline) (*Glyph, error) {
	contours, err := self.TraceOutline(outline)
	if err != nil { return nil, err }
	return &Glyph{
		Contours: contours,
		Lines:    Flatten(contours),
		Advance:  Pt(outline.HorzAdvance/outline.VertAdvance, 1),
	}, nil
}

// Returns the vertices of all the glyph contours concatenated.
func (self *Glyph) Vertices() []Point {
	vertices := make([]Point, 0, self.NumVertices())
	for _, contour := range self.Contours {
		vertices = append(vertices, contour...)
	}
	return vertices
}

// Returns the total number of vertices in the glyph contours.
func (self *Glyph) NumVertices() int {
	var n int
	for _, contour := range self.Contours {
		n += len(contour)
	}
	return n
}

// Returns the number of line segments of the glyph.
func (self *Glyph) NumLines() int { return len(self.Lines)/2 }

func (self *Glyph) XAdvance() float64 { return self.Advance.X }
func (self *Glyph) YAdvance() float64 { return self.Advance.Y }

// Returns an approximation of the memory used by the glyph, in bytes.
// Used by glyph caches to keep track of their size.
func (self *Glyph) ByteSize() uint32 {
	const glyphOverhead = uint32(unsafe.Sizeof(Glyph{}))
	const sliceOverhead = uint32(unsafe.Sizeof([]Point{}))
	const pointSize = uint32(unsafe.Sizeof(Point{}))
	if self == nil { return glyphOverhead }
	size := glyphOverhead + uint32(len(self.Contours))*sliceOverhead
	size += uint32(self.NumVertices() + len(self.Lines))*pointSize
	return size
}
