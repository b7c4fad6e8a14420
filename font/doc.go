// The font subpackage contains helper methods to parse fonts and
// obtain information from them (id, name, family, etc.), a [Library]
// type to assist with their management if necessary, and a [Loader]
// that extracts glyph outlines as tagged points ready for tracing.
//
// TrueType outlines are read directly from the glyf table, so their
// off-curve points reach the tracer exactly as encoded in the font.
// CFF outlines (most .otf fonts) are obtained from their drawing
// segments instead, which only ever contain cubic control points.
package font
