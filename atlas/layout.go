package atlas

import "golang.org/x/text/unicode/norm"

import "github.com/tinne26/glyphtrace"

// Places the line segments of each glyph of the given text one after
// another, using their horizontal advances. Line breaks move the
// position down by one vertical advance and back to x = 0. The text is
// normalized to NFC first, so decomposed sequences (like an 'e' followed
// by a combining acute accent) are looked up as single runes.
//
// Glyphs not available in the atlas are skipped. The result is a list
// of segments as consecutive point pairs, with the first line of text
// sitting on the y = 0 baseline.
func (self *Atlas) Layout(text string) []glyphtrace.Point {
	var lines []glyphtrace.Point
	self.EachGlyph(text, func(codePoint rune, origin glyphtrace.Point, glyph *glyphtrace.Glyph) {
		for _, point := range glyph.Lines {
			lines = append(lines, point.Add(origin))
		}
	})
	return lines
}

// Calls the given function for each glyph of the given text, along
// the glyph origin, following the same placement rules as [Atlas.Layout]().
func (self *Atlas) EachGlyph(text string, fn func(rune, glyphtrace.Point, *glyphtrace.Glyph)) {
	var position glyphtrace.Point
	for _, codePoint := range norm.NFC.String(text) {
		if codePoint == '\n' {
			position.X = 0
			position.Y -= 1
			continue
		}
		glyph, found := self.Glyph(codePoint)
		if !found { continue }
		fn(codePoint, position, glyph)
		position.X += glyph.XAdvance()
	}
}

// Returns the bounding box of the laid out text as the minimum and
// maximum corners. For empty layouts, both corners are the origin.
func Bounds(lines []glyphtrace.Point) (min, max glyphtrace.Point) {
	if len(lines) == 0 { return }
	min, max = lines[0], lines[0]
	for _, point := range lines[1 : ] {
		if point.X < min.X { min.X = point.X }
		if point.Y < min.Y { min.Y = point.Y }
		if point.X > max.X { max.X = point.X }
		if point.Y > max.Y { max.Y = point.Y }
	}
	return min, max
}
