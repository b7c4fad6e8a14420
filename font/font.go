package font

import "github.com/golang/freetype/truetype"
import "golang.org/x/image/font/sfnt"

// A parsed font. All fonts are available through [sfnt], but only
// fonts with TrueType outlines (glyf table) can also be read through
// [truetype], which preserves the raw on-curve and off-curve flags of
// each point.
//
// Fonts are safe for concurrent use, but [Loader] values are not.
type Font struct {
	sfnt     *sfnt.Font
	truetype *truetype.Font // nil for CFF fonts
}

// Creates a [Font] from an already parsed [sfnt.Font]. The resulting
// font will always use sfnt segments to obtain glyph outlines.
func FromSfnt(font *sfnt.Font) *Font {
	if font == nil { panic("nil sfnt.Font") }
	return &Font{ sfnt: font }
}

// Returns the underlying [sfnt.Font].
func (self *Font) Sfnt() *sfnt.Font { return self.sfnt }

// Returns the underlying [truetype.Font], or nil if the font doesn't
// have TrueType outlines or they couldn't be parsed.
func (self *Font) TrueType() *truetype.Font { return self.truetype }

// Returns whether glyph outlines will be obtained from the raw glyf
// table points.
func (self *Font) HasTrueTypeOutlines() bool { return self.truetype != nil }

// Returns the number of glyphs in the font.
func (self *Font) NumGlyphs() int { return self.sfnt.NumGlyphs() }

// Returns the font's design units per em.
func (self *Font) UnitsPerEm() int { return int(self.sfnt.UnitsPerEm()) }
