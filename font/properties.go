package font

import "sync"
import "errors"

import "golang.org/x/image/font/sfnt"

// Returned by [GetProperty]() when the requested name entry is missing.
var ErrNotFound = errors.New("font property not found or empty")

// Naming table entries of a font, as reported by [GetProperties]().
// Missing entries are left empty.
type Properties struct {
	Name       string // full name, like "Go Bold"
	Family     string // like "Go"
	Subfamily  string // usually Regular, Italic, Bold or Bold Italic
	Identifier string // unique font identifier
}

// Property lookups don't go through a [Loader], so they take their
// sfnt buffers from here.
var sfntBuffers = sync.Pool{
	New: func() any { return &sfnt.Buffer{} },
}

// Returns the requested naming table entry for the given font, or
// [ErrNotFound] if it's missing.
func GetProperty(font *Font, property sfnt.NameID) (string, error) {
	buffer := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buffer)
	value, err := font.sfnt.Name(buffer, property)
	if err == sfnt.ErrNotFound { return "", ErrNotFound }
	return value, err
}

// Returns the full name of the given font. Fonts are indexed by this
// name in a [Library].
func GetName(font *Font) (string, error) {
	return GetProperty(font, sfnt.NameIDFull)
}

// Returns the main naming table entries of the given font. Only errors
// other than [ErrNotFound] are reported.
func GetProperties(font *Font) (Properties, error) {
	var props Properties
	targets := []struct{ id sfnt.NameID; value *string }{
		{ sfnt.NameIDFull, &props.Name },
		{ sfnt.NameIDFamily, &props.Family },
		{ sfnt.NameIDSubfamily, &props.Subfamily },
		{ sfnt.NameIDUniqueIdentifier, &props.Identifier },
	}
	for _, target := range targets {
		value, err := GetProperty(font, target.id)
		if err != nil && err != ErrNotFound { return props, err }
		*target.value = value
	}
	return props, nil
}

// Returns the runes of the given text that the font has no glyph for,
// without repetitions and in order of appearance.
func GetMissingRunes(font *Font, text string) ([]rune, error) {
	buffer := sfntBuffers.Get().(*sfnt.Buffer)
	defer sfntBuffers.Put(buffer)

	var missing []rune
	seen := make(map[rune]struct{})
	for _, codePoint := range text {
		if _, found := seen[codePoint]; found { continue }
		seen[codePoint] = struct{}{}
		index, err := font.sfnt.GlyphIndex(buffer, codePoint)
		if err != nil { return missing, err }
		if index == 0 { missing = append(missing, codePoint) }
	}
	return missing, nil
}
