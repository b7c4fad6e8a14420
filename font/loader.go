package font

import "fmt"
import "errors"

import "github.com/golang/freetype/truetype"
import "golang.org/x/image/font/sfnt"
import "golang.org/x/image/math/fixed"
import xfont "golang.org/x/image/font"

import "github.com/tinne26/glyphtrace"

// Returned by [Loader.Outline]() when the font doesn't have a glyph
// for the requested rune.
var ErrMissingGlyph = errors.New("font: missing glyph")

// A Loader extracts glyph outlines from a [Font] as tagged points in
// font design units, with the y axis pointing up.
//
// Loaders keep internal buffers, so they can't be used concurrently.
// Create one loader per goroutine instead; they are cheap.
type Loader struct {
	font       *Font
	buffer     sfnt.Buffer
	glyphBuf   truetype.GlyphBuf
	metrics    xfont.Metrics
	hasMetrics bool
}

// Creates a new [Loader] for the given font. The method will panic
// if the font is nil.
func NewLoader(font *Font) *Loader {
	if font == nil { panic("nil font") }
	return &Loader{ font: font }
}

// Returns the loader's font.
func (self *Loader) Font() *Font { return self.font }

// Returns the glyph index for the given rune, or [ErrMissingGlyph]
// if the font doesn't have it.
func (self *Loader) GlyphIndex(codePoint rune) (sfnt.GlyphIndex, error) {
	index, err := self.font.sfnt.GlyphIndex(&self.buffer, codePoint)
	if err != nil { return 0, err }
	if index == 0 {
		return 0, fmt.Errorf("%w for %q", ErrMissingGlyph, codePoint)
	}
	return index, nil
}

// Returns the outline of the glyph for the given rune.
func (self *Loader) Outline(codePoint rune) (*glyphtrace.Outline, error) {
	index, err := self.GlyphIndex(codePoint)
	if err != nil { return nil, err }
	return self.OutlineByIndex(index)
}

// Returns the outline of the glyph with the given index. Index 0 is
// the .notdef glyph, usually drawn for missing runes.
func (self *Loader) OutlineByIndex(index sfnt.GlyphIndex) (*glyphtrace.Outline, error) {
	if int(index) >= self.font.sfnt.NumGlyphs() {
		return nil, fmt.Errorf("%w: glyph index %d out of range", ErrMissingGlyph, index)
	}
	if self.font.truetype != nil {
		return self.loadTrueType(index)
	}
	return self.loadSegments(index)
}

// Scale at which fixed.Int26_6 values match font design units.
func (self *Loader) unitScale() fixed.Int26_6 {
	return fixed.Int26_6(self.font.sfnt.UnitsPerEm())
}

func (self *Loader) loadTrueType(index sfnt.GlyphIndex) (*glyphtrace.Outline, error) {
	ttFont := self.font.truetype
	scale := fixed.Int26_6(ttFont.FUnitsPerEm())
	ttIndex := truetype.Index(index)
	err := self.glyphBuf.Load(ttFont, scale, ttIndex, xfont.HintingNone)
	if err != nil { return nil, err }

	// only points referenced by the contours, in case phantom points
	// are left at the end of the buffer
	var numPoints int
	ends := self.glyphBuf.Ends
	if len(ends) > 0 { numPoints = ends[len(ends) - 1] }
	points := self.glyphBuf.Points[: numPoints]
	outline := &glyphtrace.Outline{
		Points:      make([]glyphtrace.Point, len(points)),
		Tags:        make([]glyphtrace.PointTag, len(points)),
		Ends:        make([]int, len(ends)),
		VertAdvance: float64(ttFont.VMetric(scale, ttIndex).AdvanceHeight),
		HorzAdvance: float64(self.glyphBuf.AdvanceWidth),
	}
	for i, point := range points {
		outline.Points[i] = glyphtrace.Pt(float64(point.X), float64(point.Y))
		if point.Flags & 0x01 == 0 {
			outline.Tags[i] = glyphtrace.OffConic
		} // else glyphtrace.OnCurve, the zero value
	}
	for i, end := range ends {
		outline.Ends[i] = end - 1 // exclusive to inclusive
	}
	return outline, nil
}

func (self *Loader) loadSegments(index sfnt.GlyphIndex) (*glyphtrace.Outline, error) {
	scale := self.unitScale()
	segments, err := self.font.sfnt.LoadGlyph(&self.buffer, index, scale, nil)
	if err != nil { return nil, err }
	outline := &glyphtrace.Outline{}
	appendSegments(outline, segments)

	advance, err := self.font.sfnt.GlyphAdvance(&self.buffer, index, scale, xfont.HintingNone)
	if err != nil { return nil, err }
	outline.HorzAdvance = float64(advance)

	if !self.hasMetrics {
		self.metrics, err = self.font.sfnt.Metrics(&self.buffer, scale, xfont.HintingNone)
		if err != nil { return nil, err }
		self.hasMetrics = true
	}
	outline.VertAdvance = float64(self.metrics.Ascent + self.metrics.Descent)
	return outline, nil
}

// Converts sfnt drawing segments into tagged points. Quadratic
// segments add a conic control point, cubic segments add a pair of
// cubic control points, and closing points that repeat the start of
// their contour are dropped, as contours are implicitly closed.
// Segment coordinates have the y axis pointing down, so they are
// flipped.
func appendSegments(outline *glyphtrace.Outline, segments sfnt.Segments) {
	contourStart := len(outline.Points)
	closeContour := func() {
		last := len(outline.Points) - 1
		if last < contourStart { return }
		if last > contourStart && outline.Tags[last] == glyphtrace.OnCurve &&
			outline.Points[last] == outline.Points[contourStart] {
			outline.Points = outline.Points[: last]
			outline.Tags = outline.Tags[: last]
			last -= 1
		}
		outline.Ends = append(outline.Ends, last)
		contourStart = last + 1
	}
	add := func(point fixed.Point26_6, tag glyphtrace.PointTag) {
		pt := glyphtrace.Pt(float64(point.X), -float64(point.Y))
		outline.Points = append(outline.Points, pt)
		outline.Tags = append(outline.Tags, tag)
	}

	for _, segment := range segments {
		switch segment.Op {
		case sfnt.SegmentOpMoveTo:
			closeContour()
			add(segment.Args[0], glyphtrace.OnCurve)
		case sfnt.SegmentOpLineTo:
			add(segment.Args[0], glyphtrace.OnCurve)
		case sfnt.SegmentOpQuadTo:
			add(segment.Args[0], glyphtrace.OffConic)
			add(segment.Args[1], glyphtrace.OnCurve)
		case sfnt.SegmentOpCubeTo:
			add(segment.Args[0], glyphtrace.OffCubic)
			add(segment.Args[1], glyphtrace.OffCubic)
			add(segment.Args[2], glyphtrace.OnCurve)
		}
	}
	closeContour()
}
