package cache

import "time"
import "sync/atomic"

import "github.com/tinne26/glyphtrace"

// A cached glyph with additional information to estimate how
// much the entry is being used.
type cachedGlyphEntry struct {
	Glyph *glyphtrace.Glyph // Read-only.
	ByteSize uint32 // Read-only.
	CreationInstant uint32 // see cacheEntryInstant(). Read-only.
	accessCount uint32 // number of times the entry has been accessed
}

// Must be called after accessing an entry in order to keep the
// Hotness() heuristic making sense. Concurrent-safe.
func (self *cachedGlyphEntry) IncreaseAccessCount() {
	atomic.AddUint32(&self.accessCount, 1)
}

// A measure of "bytes accessed per time". Coldest entries
// (smallest values) are candidates for eviction. Concurrent-safe.
func (self *cachedGlyphEntry) Hotness(instant uint32) uint32 {
	const ConstEvictionCost = 1000 // additional threshold and pad
	bytesHit := self.ByteSize*atomic.LoadUint32(&self.accessCount)
	elapsed  := instant - self.CreationInstant
	if elapsed == 0 { elapsed = 1 }
	return (ConstEvictionCost + bytesHit)/elapsed
}

// Reference for cache entry instants. time.Since() uses the
// monotonic clock reading, so instants are not affected by
// wall clock changes.
var cacheEpoch = time.Now()

// Lets tests move time forward without time.Sleep() calls. One
// second would be 1000_000_000, half a second 500_000_000, etc.
var testInstantNanosHack int64

// A time instant related to the monotonic clock, but with some
// arbitrary downscaling applied (close to converting nanoseconds
// to tenths of seconds).
func cacheEntryInstant() uint32 {
	return uint32((int64(time.Since(cacheEpoch)) + testInstantNanosHack) >> 27)
}

// Creates a new cached entry for the given glyph.
func newCachedGlyphEntry(glyph *glyphtrace.Glyph) (*cachedGlyphEntry, uint32) {
	instant := cacheEntryInstant()
	return &cachedGlyphEntry {
		Glyph: glyph,
		ByteSize: glyph.ByteSize(),
		CreationInstant: instant,
		accessCount: 1,
	}, instant
}
