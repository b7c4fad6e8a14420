package cache

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/font"

// A [GlyphCacheHandler] acts as an intermediator between a glyph cache
// and another object, typically an [atlas.Atlas], to give the later a
// clear target interface to conform to while abstracting the details
// of an underlying cache.
//
// Glyph cache handlers can't be used concurrently unless the concrete
// implementation explicitly says otherwise.
//
// [atlas.Atlas]: https://pkg.go.dev/github.com/tinne26/glyphtrace/atlas#Atlas
type GlyphCacheHandler interface {

	// --- configuration notification methods ---
	// Update methods (called only if required so overhead can be low).
	// Passed values must always be non-nil.

	// Notifies that the font in use has changed.
	NotifyFontChange(*font.Font)

	// Notifies that the tracer configuration has changed. Typically,
	// the tracer's Signature() will be used to tell configurations apart.
	NotifyTracerChange(*glyphtrace.Tracer)

	// --- cache access methods ---

	// Gets the traced glyph for the given rune and current configuration.
	GetGlyph(rune) (*glyphtrace.Glyph, bool)

	// Passes a traced glyph for the given rune and current configuration
	// to the underlying cache. PassGlyph should only be called after
	// GetGlyph() fails.
	//
	// Given a specific configuration, traced glyphs must always be
	// consistent, so passed glyphs may be ignored if a glyph is already
	// cached under the same configuration.
	PassGlyph(rune, *glyphtrace.Glyph)
}
