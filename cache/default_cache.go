package cache

import "sync"
import "sync/atomic"

import "github.com/tinne26/glyphtrace"

// The default glyph cache. It is concurrent-safe (though not optimized
// for heavily concurrent scenarios), it has memory bounds and uses
// random sampling for evicting entries.
//
// Keys are pairs of uint64 values, typically built by a
// [DefaultCacheHandler]: the first one identifies the font and the
// second one packs the tracer signature and the glyph's rune.
type DefaultCache struct {
	cachedGlyphs map[[2]uint64]*cachedGlyphEntry
	spaceBytesLeft uint32
	lowestBytesLeft uint32
	byteSizeLimit uint32
	mutex sync.RWMutex
}

// Creates a new cache bounded by the given size. Negative values
// will panic.
//
// Traced glyphs are small (a few KiBs at most, even at high sample
// counts), so 1MiB is already enough to hold a few thousand glyphs.
// The package overview includes more detailed size estimations.
func NewDefaultCache(maxByteSize int) *DefaultCache {
	if maxByteSize < 0 { panic("maxByteSize < 0") } // likely a dev mistake
	return &DefaultCache {
		cachedGlyphs: make(map[[2]uint64]*cachedGlyphEntry, 128),
		spaceBytesLeft: uint32(maxByteSize),
		lowestBytesLeft: uint32(maxByteSize),
		byteSizeLimit: uint32(maxByteSize),
	}
}

// Attempts to remove the entry with the lowest eviction cost from a
// small pool of samples. Map iteration order is already randomized,
// so the samples can be taken directly. May not remove anything in
// some cases.
//
// The returned value is the freed space, which must be manually
// added to spaceBytesLeft by the caller.
func (self *DefaultCache) removeRandEntry(hotness uint32, instant uint32) uint32 {
	const SampleSize = 10 // NOTE: we could make this configurable, but not a big deal

	self.mutex.RLock()
	var selectedKey [2]uint64
	lowestHotness := ^uint32(0)
	samplesTaken  := 0
	for key, entry := range self.cachedGlyphs {
		currHotness := entry.Hotness(instant)
		// on lower hotness, update selected eviction target
		if currHotness < lowestHotness {
			lowestHotness = currHotness
			selectedKey = key
		}

		// break if we already took enough samples
		samplesTaken += 1
		if samplesTaken >= SampleSize { break }
	}
	self.mutex.RUnlock()

	// delete selected entry, if any
	freedSpace := uint32(0)
	if lowestHotness < hotness {
		self.mutex.Lock()
		entry, stillExists := self.cachedGlyphs[selectedKey]
		if stillExists {
			delete(self.cachedGlyphs, selectedKey)
			freedSpace = entry.ByteSize
		}
		self.mutex.Unlock()
	}
	return freedSpace
}

// Stores the given glyph with the given key. Glyphs already present
// are not replaced.
func (self *DefaultCache) PassGlyph(key [2]uint64, glyph *glyphtrace.Glyph) {
	const MaxMakeRoomAttempts = 2

	// see if we have enough space to add the glyph, or try to
	// make some room otherwise
	glyphEntry, instant := newCachedGlyphEntry(glyph)
	if glyphEntry.ByteSize > atomic.LoadUint32(&self.byteSizeLimit) { return }
	spaceBytesLeft := atomic.LoadUint32(&self.spaceBytesLeft)
	freedSpace := uint32(0)
	if glyphEntry.ByteSize > spaceBytesLeft {
		hotness := glyphEntry.Hotness(instant)
		missingSpace := glyphEntry.ByteSize - spaceBytesLeft
		for i := 0; i < MaxMakeRoomAttempts; i++ {
			freedSpace += self.removeRandEntry(hotness, instant)
			if freedSpace >= missingSpace { goto roomMade }
		}

		// we didn't make enough room for the new entry. desist.
		if freedSpace != 0 {
			atomic.AddUint32(&self.spaceBytesLeft, freedSpace)
		}
		return
	}

roomMade:
	// add the glyph to the cache
	self.mutex.Lock()
	defer self.mutex.Unlock()
	if freedSpace != 0 { atomic.AddUint32(&self.spaceBytesLeft, freedSpace) }
	_, glyphAlreadyExists := self.cachedGlyphs[key]
	if glyphAlreadyExists { return }
	if atomic.LoadUint32(&self.spaceBytesLeft) < glyphEntry.ByteSize { return }
	newLeft := atomic.AddUint32(&self.spaceBytesLeft, ^uint32(glyphEntry.ByteSize - 1))
	if newLeft < atomic.LoadUint32(&self.lowestBytesLeft) {
		atomic.StoreUint32(&self.lowestBytesLeft, newLeft)
	}
	self.cachedGlyphs[key] = glyphEntry
}

// Returns an approximation of the number of bytes taken by the
// glyphs currently stored in the cache.
func (self *DefaultCache) ApproxByteSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.spaceBytesLeft))
}

// Returns an approximation of the maximum amount of bytes that the
// cache has been filled with at any point of its life.
//
// This method can be useful to determine the actual usage of a cache
// within your application and set its capacity to a reasonable value.
func (self *DefaultCache) PeakSize() int {
	return int(atomic.LoadUint32(&self.byteSizeLimit) - atomic.LoadUint32(&self.lowestBytesLeft))
}

// Gets the glyph associated to the given key.
func (self *DefaultCache) GetGlyph(key [2]uint64) (*glyphtrace.Glyph, bool) {
	self.mutex.RLock()
	entry, found := self.cachedGlyphs[key]
	self.mutex.RUnlock()
	if !found { return nil, false }
	entry.IncreaseAccessCount()
	return entry.Glyph, true
}

// Returns the number of glyphs currently stored in the cache.
func (self *DefaultCache) NumEntries() int {
	self.mutex.RLock()
	defer self.mutex.RUnlock()
	return len(self.cachedGlyphs)
}

// Returns a new cache handler for the current cache. While DefaultCache
// is concurrent-safe, handlers can only be used non-concurrently. One
// can create multiple handlers for the same cache to be used with different
// atlases.
func (self *DefaultCache) NewHandler() *DefaultCacheHandler {
	var zeroKey [2]uint64
	return &DefaultCacheHandler { cache: self, activeKey: zeroKey }
}
