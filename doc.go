// glyphtrace is a package to convert font glyph outlines into sets of
// line segments, ready to be drawn with line primitives or used as
// polylines.
//
// Outlines are given as tagged points, like FreeType and TrueType do:
// on-curve points lie on the glyph outline, while conic and cubic
// off-curve points are control points of Bézier arcs. The [Tracer]
// reconstructs the arcs implied by the tags, samples each of them with
// a fixed number of points and normalizes the results so the glyph's
// vertical advance is 1:
//   tracer := glyphtrace.NewTracer()
//   tracer.SetSegments(10)
//   contours, err := tracer.TraceOutline(outline)
//   if err != nil { ... }
//   lines := glyphtrace.Flatten(contours)
//
// The font subpackage can be used to obtain outlines from .ttf and .otf
// fonts, and the atlas subpackage to trace whole character sets at once.
package glyphtrace
