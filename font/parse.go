package font

import "os"
import "errors"
import "path/filepath"

import "github.com/golang/freetype/truetype"
import "golang.org/x/image/font/sfnt"

// Parses the given font bytes and returns the font along its name.
// The bytes must not be modified while the font is in use.
//
// Fonts are always parsed with [sfnt.Parse](). If parsing them with
// [truetype.Parse]() also succeeds, glyph outlines will be obtained
// from the raw TrueType points.
//
// [sfnt.Parse]: https://pkg.go.dev/golang.org/x/image/font/sfnt#Parse.
func ParseFromBytes(fontBytes []byte) (*Font, string, error) {
	sfntFont, err := sfnt.Parse(fontBytes)
	if err != nil { return nil, "", err }
	newFont := &Font{ sfnt: sfntFont }
	ttFont, err := truetype.Parse(fontBytes)
	if err == nil { newFont.truetype = ttFont } // CFF fonts fail here

	fontName, err := GetName(newFont)
	return newFont, fontName, err
}

// Reads and parses the .ttf or .otf font at the given path.
func ParseFromPath(path string) (*Font, string, error) {
	if !hasValidFontExtension(path) {
		return nil, "", errors.New("invalid font path '" + path + "'")
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil { return nil, "", err }
	return ParseFromBytes(fontBytes)
}

// Whether the path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".ttf" || ext == ".otf"
}
