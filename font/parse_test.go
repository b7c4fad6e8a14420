package font

import "io/fs"
import "errors"
import "strings"
import "testing"
import "path/filepath"

// Successful parsing is also covered by the library and loader tests.
func TestParse(t *testing.T) {
	var err error

	_, _, err = ParseFromBytes([]byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	if err == nil { t.Fatal("expected error") }

	_, _, err = ParseFromPath("path/with/no/extension")
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}

	_, _, err = ParseFromPath("fake/path/must/not/exist/yay.ttf")
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("expected fs.ErrNotExist, got '%v'", err)
	}

	dir := writeTestFontsDir(t)
	_, _, err = ParseFromPath(filepath.Join(dir, "readme.txt"))
	if err == nil || !strings.Contains(err.Error(), "invalid font path") {
		t.Fatal("expected error with 'invalid font path' in its contents")
	}
	_, name, err := ParseFromPath(filepath.Join(dir, testPathA))
	if err != nil { t.Fatal(err) }
	if name != "Go Regular" { t.Fatalf("unexpected font name '%s'", name) }

	for _, path := range []string{"", ".", ".t", ".tt", ".ttx", "ttf", "otf", ".tgf", ".mp4a", ".xttf", "font.TTF"} {
		if hasValidFontExtension(path) { t.Fatalf("'%s' must not have a valid font extension", path) }
	}
	for _, path := range []string{".ttf", ".otf", "fonts/Go-Bold.otf"} {
		if !hasValidFontExtension(path) { t.Fatalf("'%s' must have a valid font extension", path) }
	}
}

func TestParseOutlineFlavors(t *testing.T) {
	ensureTestAssetsLoaded()
	if !testFontA.HasTrueTypeOutlines() {
		t.Fatal("expected TrueType outlines for a glyf font")
	}
	if testFontA.TrueType() == nil || testFontA.Sfnt() == nil {
		t.Fatal("expected both parsed fonts to be available")
	}

	sfntOnly := FromSfnt(testFontA.Sfnt())
	if sfntOnly.HasTrueTypeOutlines() {
		t.Fatal("fonts created from sfnt fonts must use sfnt segments")
	}
	if sfntOnly.NumGlyphs() != testFontA.NumGlyphs() {
		t.Fatal("glyph count mismatch")
	}
	if testFontA.UnitsPerEm() <= 0 {
		t.Fatalf("unexpected units per em %d", testFontA.UnitsPerEm())
	}
	if doesNotPanic(func() { FromSfnt(nil) }) {
		t.Fatal("FromSfnt(nil) should have panicked")
	}
}
