// The cache subpackage defines the [GlyphCacheHandler] interface used
// by glyph atlases and provides a default cache implementation.
//
// Atlases trace their whole character set up front, so caches only
// come into play for runes outside that set (e.g. user input with
// accented letters or symbols). These are traced lazily, and a cache
// avoids tracing them again each time they appear in a text.
//
// Caches can be shared between atlases using different fonts or tracer
// configurations, as both are part of the cache keys.
//
// As far as sizes go, each traced glyph stores its contour vertices and
// its line segments (two points per segment), at 16 bytes per point.
// A simple glyph like 'o' with two contours of eight conic arcs each,
// traced with the default 5 samples per arc, takes around 3KiB. A full
// alphabet with punctuation in a single configuration is then in the
// hundreds of KiBs, so a few MiBs are a comfortable size for most uses.
// The [DefaultCache.PeakSize]() function can help you find the right
// value for your use-case.
package cache
