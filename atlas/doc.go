// The atlas subpackage traces whole character sets of a font at once
// and gives per-rune access to the traced contours, line segments and
// advances.
//
// An [Atlas] is built once per font and tracer configuration, and
// can then be shared freely between goroutines:
//   atlas, err := atlas.New(font, tracer, atlas.DefaultCharset)
//   if err != nil { ... }
//   lines := atlas.Layout("Hello,\nworld!")
//
// Runes outside the atlas charset can still be traced on demand if
// a glyph cache handler is set with [Atlas.SetCacheHandler]().
package atlas
