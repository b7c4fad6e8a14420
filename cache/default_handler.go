package cache

import "unsafe"

import "github.com/tinne26/glyphtrace"
import "github.com/tinne26/glyphtrace/font"

var _ GlyphCacheHandler = (*DefaultCacheHandler)(nil)

// Bits of the second key component. The tracer signature takes the
// lowest 33 bits (segment count and strict mode), the rune goes
// above them.
const (
	keySignatureMask = uint64(0x00000001FFFFFFFF)
	keyRuneShift     = 40
)

// A default implementation of [GlyphCacheHandler].
type DefaultCacheHandler struct {
	cache *DefaultCache
	activeKey [2]uint64
}

// Implements [GlyphCacheHandler].NotifyFontChange(...)
func (self *DefaultCacheHandler) NotifyFontChange(font *font.Font) {
	self.activeKey[0] = uint64(uintptr(unsafe.Pointer(font)))
}

// Implements [GlyphCacheHandler].NotifyTracerChange(...)
func (self *DefaultCacheHandler) NotifyTracerChange(tracer *glyphtrace.Tracer) {
	self.activeKey[1] = (self.activeKey[1] & ^keySignatureMask) | (tracer.Signature() & keySignatureMask)
}

func (self *DefaultCacheHandler) setRune(codePoint rune) {
	self.activeKey[1] = (self.activeKey[1] & keySignatureMask) | (uint64(uint32(codePoint)) << keyRuneShift)
}

// Implements [GlyphCacheHandler].GetGlyph(...)
func (self *DefaultCacheHandler) GetGlyph(codePoint rune) (*glyphtrace.Glyph, bool) {
	self.setRune(codePoint)
	return self.cache.GetGlyph(self.activeKey)
}

// Implements [GlyphCacheHandler].PassGlyph(...)
func (self *DefaultCacheHandler) PassGlyph(codePoint rune, glyph *glyphtrace.Glyph) {
	self.setRune(codePoint)
	self.cache.PassGlyph(self.activeKey, glyph)
}

// Provides access to [DefaultCache.ApproxByteSize]().
func (self *DefaultCacheHandler) ApproxCacheByteSize() int {
	return self.cache.ApproxByteSize()
}

// Provides access to [DefaultCache.PeakSize]().
func (self *DefaultCacheHandler) PeakCacheSize() int {
	return self.cache.PeakSize()
}

// Provides access to the underlying [DefaultCache].
func (self *DefaultCacheHandler) Cache() *DefaultCache {
	return self.cache
}
