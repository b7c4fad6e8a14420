package font

import "os"
import "sort"
import "errors"
import "path/filepath"

// Returned when adding a font to a [Library] that already has a font
// with the same name. The existing font is kept.
var ErrAlreadyPresent = errors.New("font already present in the library")

// A collection of fonts indexed by their full name (see [GetName]()).
// Useful to load whole font directories and pick fonts by name.
type Library struct {
	fonts map[string]*Font
}

// Creates a new, empty font [Library].
func NewLibrary() *Library {
	return &Library{ fonts: make(map[string]*Font) }
}

// Returns the number of fonts in the library.
func (self *Library) Size() int { return len(self.fonts) }

// Returns whether a font with the given name is in the library.
func (self *Library) HasFont(name string) bool {
	_, found := self.fonts[name]
	return found
}

// Returns the font with the given name, or nil if not found.
func (self *Library) GetFont(name string) *Font {
	return self.fonts[name]
}

// Returns the names of all the fonts in the library, sorted.
func (self *Library) Names() []string {
	names := make([]string, 0, len(self.fonts))
	for name := range self.fonts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Calls the given function for each font in the library, in name
// order. Stops at the first error and returns it.
func (self *Library) EachFont(fontFunc func(string, *Font) error) error {
	for _, name := range self.Names() {
		err := fontFunc(name, self.fonts[name])
		if err != nil { return err }
	}
	return nil
}

// Adds the given font to the library and returns its name. Panics
// if the font is nil.
func (self *Library) AddFont(font *Font) (string, error) {
	if font == nil { panic("nil font") }
	name, err := GetName(font)
	if err != nil { return "", err }
	if self.HasFont(name) { return name, ErrAlreadyPresent }
	self.fonts[name] = font
	return name, nil
}

// Parses the given font bytes and adds the font to the library. The
// bytes must not be modified while the font is in use.
func (self *Library) ParseFromBytes(fontBytes []byte) (string, error) {
	font, _, err := ParseFromBytes(fontBytes)
	if err != nil { return "", err }
	return self.AddFont(font)
}

// Parses the font at the given path and adds it to the library.
func (self *Library) ParseFromPath(path string) (string, error) {
	font, _, err := ParseFromPath(path)
	if err != nil { return "", err }
	return self.AddFont(font)
}

// Adds all the .ttf and .otf fonts in the given directory, without
// going into subdirectories. Fonts with a name already present in the
// library are skipped and counted apart. Stops at the first parsing
// error.
func (self *Library) ParseAllFromPath(dirName string) (added, skipped int, err error) {
	entries, err := os.ReadDir(dirName)
	if err != nil { return 0, 0, err }
	for _, entry := range entries {
		if entry.IsDir() || !hasValidFontExtension(entry.Name()) { continue }
		_, err = self.ParseFromPath(filepath.Join(dirName, entry.Name()))
		switch err {
		case nil: added += 1
		case ErrAlreadyPresent: skipped += 1
		default:
			return added, skipped, err
		}
	}
	return added, skipped, nil
}
